/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"penkit/internal/path"
	"penkit/internal/svgpath"
)

// SVGOptions controls SVG export behavior.
// The coordinate system matches the model; a viewBox derived from the content
// bounds (plus Margin on every side) scales the drawing.
type SVGOptions struct {
	Margin     float64 // model units added around the content, default 10
	Background string  // hex background color; empty means none
}

// ExportSVG serializes every path in the store into a standalone SVG file.
// Curve commands are re-emitted through the interchange grammar, so the file
// round-trips through the importer.
func ExportSVG(st *path.Store, outPath string, opt SVGOptions) error {
	if st == nil {
		return fmt.Errorf("store is nil")
	}
	margin := opt.Margin
	if margin <= 0 {
		margin = 10
	}
	b, ok := ContentBounds(st)
	if !ok {
		return fmt.Errorf("store has no geometry to export")
	}
	b = b.Expand(margin)

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"%g %g %g %g\">\n",
		b.Min.X, b.Min.Y, b.Width(), b.Height())
	if opt.Background != "" {
		wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"%s\"/>\n",
			b.Min.X, b.Min.Y, b.Width(), b.Height(), opt.Background)
	}
	for _, p := range st.Paths() {
		d := svgpath.Encode(p)
		if d == "" {
			continue
		}
		fill := "none"
		if p.Style.HasFill {
			fill = svgColor(p.Style.Fill)
		}
		wf("  <path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%g\" stroke-linecap=\"%s\"/>\n",
			d, fill, svgColor(p.Style.Stroke), p.Style.StrokeWidth, svgLineCap(p.Style.StartCap))
	}
	wf("</svg>\n")

	if werr != nil {
		return fmt.Errorf("build svg: %w", werr)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func svgColor(c path.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func svgLineCap(c path.LineCap) string {
	switch c {
	case path.CapRound:
		return "round"
	case path.CapSquare:
		return "square"
	default:
		return "butt"
	}
}
