/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export turns a path store into shareable artifacts: standalone SVG,
// single-page PDF and rasterized PNG.
package export

import (
	"penkit/internal/geom"
	"penkit/internal/path"
)

// Bounds is an axis-aligned bounding box in model coordinates.
type Bounds struct {
	Min geom.Point
	Max geom.Point
}

func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Expand grows the box by m on every side.
func (b Bounds) Expand(m float64) Bounds {
	return Bounds{
		Min: geom.Pt(b.Min.X-m, b.Min.Y-m),
		Max: geom.Pt(b.Max.X+m, b.Max.Y+m),
	}
}

// ContentBounds computes the bounding box over every anchor and visible
// handle in the store. Handle positions bound the curve hull, so the box is
// guaranteed to contain the drawn geometry. The second return is false when
// the store holds no points at all.
func ContentBounds(st *path.Store) (Bounds, bool) {
	var b Bounds
	found := false
	grow := func(pt geom.Point) {
		if !found {
			b.Min, b.Max = pt, pt
			found = true
			return
		}
		if pt.X < b.Min.X {
			b.Min.X = pt.X
		}
		if pt.Y < b.Min.Y {
			b.Min.Y = pt.Y
		}
		if pt.X > b.Max.X {
			b.Max.X = pt.X
		}
		if pt.Y > b.Max.Y {
			b.Max.Y = pt.Y
		}
	}
	for _, p := range st.Paths() {
		for _, a := range p.Points {
			grow(a.Position)
			for _, side := range []path.Side{path.SideIn, path.SideOut} {
				if h := a.HandleAbs(side); !h.Eq(a.Position) {
					grow(h)
				}
			}
		}
	}
	return b, found
}
