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
	"math"
	"os"
	"path/filepath"

	"penkit/internal/geom"
	"penkit/internal/path"
	"penkit/internal/render"
)

// PNGOptions controls PNG export behavior. The surface is sized to the
// content bounds plus Margin; geometry is shifted so the content starts at
// the margin. Handles and anchors are editing decorations and are only drawn
// when IncludeHandles is set.
type PNGOptions struct {
	Margin         float64 // default 10
	IncludeHandles bool
}

// ExportPNG rasterizes every path in the store into a PNG file.
func ExportPNG(st *path.Store, outPath string, opt PNGOptions) error {
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

	// The raster backend draws in model coordinates, so shift a copy of the
	// geometry into the image's coordinate space.
	shifted := shiftStore(st, -b.Min.X, -b.Min.Y)

	w := int(math.Ceil(b.Width()))
	h := int(math.Ceil(b.Height()))
	r := render.NewRaster(w, h)
	r.RenderPaths(shifted.Paths())
	if opt.IncludeHandles {
		r.RenderHandles(shifted.Paths())
	}
	r.Update()

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// shiftStore clones the store's paths into a fresh store with every anchor
// translated by (dx, dy). Relative handles ride along unchanged.
func shiftStore(st *path.Store, dx, dy float64) *path.Store {
	out := path.NewStore()
	for _, p := range st.Paths() {
		np := out.CreatePath(p.Style)
		for _, a := range p.Points {
			na, _ := out.AddPoint(np.ID, a.Position.Add(geom.Pt(dx, dy)))
			na.Mode = a.Mode
			na.HandleIn = cloneHandle(a.HandleIn)
			na.HandleOut = cloneHandle(a.HandleOut)
		}
		out.SetClosed(np.ID, p.Closed)
	}
	return out
}

func cloneHandle(h *path.Handle) *path.Handle {
	if h == nil {
		return nil
	}
	c := *h
	return &c
}
