/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package geom

import "testing"

func TestCubicEvalEndpoints(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(10, 0), P2: Pt(10, 10), P3: Pt(0, 10)}
	if got := c.Eval(0); !got.Eq(c.P0) {
		t.Fatalf("Eval(0) = %v", got)
	}
	if got := c.Eval(1); !got.Eq(c.P3) {
		t.Fatalf("Eval(1) = %v", got)
	}
}

func TestCubicEvalStraightLine(t *testing.T) {
	// control points collinear on y=x: the curve must stay on the line
	c := CubicBez{P0: Pt(0, 0), P1: Pt(1, 1), P2: Pt(2, 2), P3: Pt(3, 3)}
	for i := 0; i <= 10; i++ {
		p := c.Eval(float64(i) / 10)
		if diff := p.X - p.Y; diff > Epsilon || diff < -Epsilon {
			t.Fatalf("point off line at t=%v: %v", float64(i)/10, p)
		}
	}
}

// Subdividing at any t and re-evaluating both halves across their own [0,1]
// ranges must reproduce the original curve at the corresponding global
// parameter. Point insertion in the edit tool depends on this.
func TestSubdividePreservesCurve(t *testing.T) {
	curves := []CubicBez{
		{P0: Pt(0, 0), P1: Pt(10, 0), P2: Pt(10, 10), P3: Pt(0, 10)},
		{P0: Pt(-5, 3), P1: Pt(100, -40), P2: Pt(-30, 80), P3: Pt(60, 60)},
		{P0: Pt(0, 0), P1: Pt(0, 0), P2: Pt(0, 0), P3: Pt(0, 0)}, // degenerate
	}
	splits := []float64{0.1, 0.25, 0.5, 0.75, 0.9}
	for ci, c := range curves {
		for _, split := range splits {
			left, right := c.Subdivide(split)
			if !left.P3.Eq(right.P0) {
				t.Fatalf("curve %d t=%v: halves do not meet: %v vs %v", ci, split, left.P3, right.P0)
			}
			for i := 0; i <= 20; i++ {
				u := float64(i) / 20
				// left half covers [0, split]
				want := c.Eval(u * split)
				if got := left.Eval(u); !got.Eq(want) {
					t.Fatalf("curve %d t=%v: left(%v) = %v, want %v", ci, split, u, got, want)
				}
				// right half covers [split, 1]
				want = c.Eval(split + u*(1-split))
				if got := right.Eval(u); !got.Eq(want) {
					t.Fatalf("curve %d t=%v: right(%v) = %v, want %v", ci, split, u, got, want)
				}
			}
		}
	}
}

func TestFlatten(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 0), P2: Pt(10, 0), P3: Pt(10, 0)}
	pts := c.Flatten(4)
	if len(pts) != 5 {
		t.Fatalf("expected 5 points, got %d", len(pts))
	}
	if !pts[0].Eq(Pt(0, 0)) || !pts[4].Eq(Pt(10, 0)) {
		t.Fatalf("endpoints wrong: %v %v", pts[0], pts[4])
	}
}
