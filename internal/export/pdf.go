/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"penkit/internal/path"
)

// PDFOptions controls PDF export behavior. Units are points (pt) for a 1:1
// mapping from model coordinates; the page is sized to the content bounds
// plus Margin and the geometry is shifted so the content starts at the
// margin.
type PDFOptions struct {
	Margin float64 // default 10
	Title  string
}

// ExportPDF draws every path in the store onto a single PDF page using true
// curve operators, no flattening.
func ExportPDF(st *path.Store, outPath string, opt PDFOptions) error {
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

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: b.Width(), Ht: b.Height()},
		OrientationStr: "",
	})
	if opt.Title != "" {
		pdf.SetTitle(opt.Title, false)
	}
	pdf.AddPageFormat("", gofpdf.SizeType{Wd: b.Width(), Ht: b.Height()})

	ox, oy := b.Min.X, b.Min.Y
	for _, p := range st.Paths() {
		segs := p.Segments()
		if len(segs) == 0 {
			continue
		}
		setDrawColor(pdf, p.Style.Stroke)
		pdf.SetLineWidth(p.Style.StrokeWidth)
		pdf.SetLineCapStyle(pdfLineCap(p.Style.StartCap))
		styleStr := "D"
		if p.Style.HasFill {
			setFillColor(pdf, p.Style.Fill)
			styleStr = "B"
		}

		start := segs[0].Start.Position
		pdf.MoveTo(start.X-ox, start.Y-oy)
		for _, s := range segs {
			if s.Kind == path.CubicSegment {
				c := s.Cubic()
				pdf.CurveBezierCubicTo(c.P1.X-ox, c.P1.Y-oy, c.P2.X-ox, c.P2.Y-oy, c.P3.X-ox, c.P3.Y-oy)
				continue
			}
			end := s.End.Position
			pdf.LineTo(end.X-ox, end.Y-oy)
		}
		if p.Closed {
			pdf.ClosePath()
		}
		pdf.DrawPath(styleStr)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func setDrawColor(pdf *gofpdf.Fpdf, c path.Color) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func setFillColor(pdf *gofpdf.Fpdf, c path.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func pdfLineCap(c path.LineCap) string {
	switch c {
	case path.CapRound:
		return "round"
	case path.CapSquare:
		return "square"
	default:
		return "butt"
	}
}
