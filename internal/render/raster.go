/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"penkit/internal/geom"
	"penkit/internal/path"
)

// curveFlattenSteps is the number of line segments a cubic is flattened into
// for display. Display-only; exports re-emit true curve commands.
const curveFlattenSteps = 24

const (
	anchorMarkerSize = 3.0
	handleMarkerSize = 2.0
	handleLineWidth  = 1.0
)

var (
	previewColor = path.Color{R: 90, G: 140, B: 255, A: 255}
	handleColor  = path.Color{R: 120, G: 120, B: 120, A: 255}
	anchorColor  = path.Color{R: 40, G: 40, B: 40, A: 255}
	selectColor  = path.Color{R: 230, G: 120, B: 0, A: 255}
)

// Raster implements Renderer on an in-memory RGBA image using the
// x/image/vector rasterizer. Update is a no-op because drawing happens
// directly into the image; Image and EncodePNG expose the result.
type Raster struct {
	width  int
	height int
	img    *image.RGBA
}

var _ Renderer = (*Raster)(nil)

func NewRaster(width, height int) *Raster {
	r := &Raster{width: width, height: height}
	r.Clear()
	return r
}

// Image returns the drawing surface.
func (r *Raster) Image() *image.RGBA { return r.img }

// Clear resets the surface to opaque white.
func (r *Raster) Clear() {
	r.img = image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
}

// Update is a no-op: the raster backend has no presentation step.
func (r *Raster) Update() {}

// EncodePNG writes the current surface as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Raster) RenderPaths(paths []*path.VectorPath) {
	for _, p := range paths {
		pts := flatten(p)
		if len(pts) < 2 {
			continue
		}
		if p.Style.HasFill {
			r.fillPolygon(pts, p.Style.Fill)
		}
		r.strokePolyline(pts, p.Style.StrokeWidth, p.Style.Stroke)
	}
}

func (r *Raster) RenderPreview(p *path.VectorPath) {
	if p == nil {
		return
	}
	pts := flatten(p)
	if len(pts) < 2 {
		return
	}
	r.strokePolyline(pts, 1, previewColor)
}

func (r *Raster) RenderHandles(paths []*path.VectorPath) {
	for _, p := range paths {
		for _, a := range p.Points {
			for _, side := range []path.Side{path.SideIn, path.SideOut} {
				h := a.HandleAbs(side)
				if h.Eq(a.Position) {
					continue
				}
				r.strokePolyline([]geom.Point{a.Position, h}, handleLineWidth, handleColor)
				r.fillSquare(h, handleMarkerSize, handleColor)
			}
			c := anchorColor
			if a.Selected {
				c = selectColor
			}
			r.fillSquare(a.Position, anchorMarkerSize, c)
		}
	}
}

// flatten reduces a path to a polyline; curved segments are sampled.
func flatten(p *path.VectorPath) []geom.Point {
	segs := p.Segments()
	if len(segs) == 0 {
		return nil
	}
	pts := []geom.Point{segs[0].Start.Position}
	for _, s := range segs {
		if s.Kind == path.CubicSegment {
			flat := s.Cubic().Flatten(curveFlattenSteps)
			pts = append(pts, flat[1:]...)
			continue
		}
		pts = append(pts, s.End.Position)
	}
	return pts
}

// fillPolygon fills the polyline outline with the nonzero winding rule.
func (r *Raster) fillPolygon(pts []geom.Point, c path.Color) {
	rast := vector.NewRasterizer(r.width, r.height)
	rast.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		rast.LineTo(float32(pt.X), float32(pt.Y))
	}
	rast.ClosePath()
	rast.Draw(r.img, r.img.Bounds(), image.NewUniform(nrgba(c)), image.Point{})
}

// strokePolyline draws each segment as a filled quad offset by half the
// stroke width. Joins are left to overlap, which the winding fill absorbs.
func (r *Raster) strokePolyline(pts []geom.Point, width float64, c path.Color) {
	if width <= 0 {
		width = 1
	}
	half := width / 2
	rast := vector.NewRasterizer(r.width, r.height)
	drew := false
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := geom.Pt(-d.Y/l*half, d.X/l*half)
		rast.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		rast.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		rast.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		rast.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		rast.ClosePath()
		drew = true
	}
	if !drew {
		return
	}
	rast.Draw(r.img, r.img.Bounds(), image.NewUniform(nrgba(c)), image.Point{})
}

// fillSquare draws an axis-aligned square marker centered on pt.
func (r *Raster) fillSquare(pt geom.Point, half float64, c path.Color) {
	rast := vector.NewRasterizer(r.width, r.height)
	rast.MoveTo(float32(pt.X-half), float32(pt.Y-half))
	rast.LineTo(float32(pt.X+half), float32(pt.Y-half))
	rast.LineTo(float32(pt.X+half), float32(pt.Y+half))
	rast.LineTo(float32(pt.X-half), float32(pt.Y+half))
	rast.ClosePath()
	rast.Draw(r.img, r.img.Bounds(), image.NewUniform(nrgba(c)), image.Point{})
}

func nrgba(c path.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
