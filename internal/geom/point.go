/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package geom provides 2D vector arithmetic and cubic Bezier math for
// resolution-independent path editing. All types are immutable values.
package geom

import "math"

// Epsilon is the tolerance used for approximate point and scalar equality.
const Epsilon = 0.001

// Point is a 2D point or vector in the plane.
type Point struct{ X, Y float64 }

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point       { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point       { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point   { return Point{p.X * s, p.Y * s} }
func (p Point) Neg() Point              { return Point{-p.X, -p.Y} }

// Length is the Euclidean norm of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance is the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// Angle is the direction of p treated as a vector, in radians.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// AngleTo is the direction of the vector from p to q, in radians.
func (p Point) AngleTo(q Point) float64 { return math.Atan2(q.Y-p.Y, q.X-p.X) }

// Eq reports whether both coordinates of p and q differ by less than Epsilon.
func (p Point) Eq(q Point) bool {
	return math.Abs(p.X-q.X) < Epsilon && math.Abs(p.Y-q.Y) < Epsilon
}

// IsZero reports whether p is the zero vector within Epsilon.
func (p Point) IsZero() bool { return p.Eq(Point{}) }

// FromPolar returns the vector with the given direction (radians) and length.
func FromPolar(angle, length float64) Point {
	return Point{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// SnapAngle constrains to around the pivot from so that the direction
// from→to lands on the nearest multiple of step radians. Distance is
// preserved. A zero-length vector is returned unchanged.
func SnapAngle(from, to Point, step float64) Point {
	v := to.Sub(from)
	l := v.Length()
	if l < Epsilon || step <= 0 {
		return to
	}
	a := math.Round(v.Angle()/step) * step
	return from.Add(FromPolar(a, l))
}
