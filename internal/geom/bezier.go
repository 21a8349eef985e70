/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

// CubicBez is a cubic Bezier segment with absolute control points.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval returns the point on the curve at parameter t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	// Bernstein form
	p := c.P0.Scale(mt * mt * mt)
	p = p.Add(c.P1.Scale(3 * mt * mt * t))
	p = p.Add(c.P2.Scale(3 * mt * t * t))
	p = p.Add(c.P3.Scale(t * t * t))
	return p
}

// Subdivide splits the curve at parameter t using de Casteljau's algorithm.
// The two returned cubics together trace exactly the original curve:
// left covers [0, t] and right covers [t, 1] of the source parameter range.
func (c CubicBez) Subdivide(t float64) (left, right CubicBez) {
	p01 := Lerp(c.P0, c.P1, t)
	p12 := Lerp(c.P1, c.P2, t)
	p23 := Lerp(c.P2, c.P3, t)
	p012 := Lerp(p01, p12, t)
	p123 := Lerp(p12, p23, t)
	pm := Lerp(p012, p123, t)
	left = CubicBez{P0: c.P0, P1: p01, P2: p012, P3: pm}
	right = CubicBez{P0: pm, P1: p123, P2: p23, P3: c.P3}
	return left, right
}

// Flatten samples the curve at steps uniform parameter increments and returns
// the polyline points, including both endpoints (steps+1 points).
func (c CubicBez) Flatten(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, c.Eval(float64(i)/float64(steps)))
	}
	return pts
}
