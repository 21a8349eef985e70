/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package path

import (
	"testing"

	"penkit/internal/geom"
)

func TestStoreIDsAreNeverReused(t *testing.T) {
	s := NewStore()
	p1 := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p1.ID, geom.Pt(0, 0))
	s.RemovePath(p1.ID)
	p2 := s.CreatePath(DefaultStyle())
	b, _ := s.AddPoint(p2.ID, geom.Pt(0, 0))

	if p1.ID == p2.ID {
		t.Fatalf("path id reused: %s", p1.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("anchor id reused: %s", a.ID)
	}
}

func TestStoreReferentialMisses(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))

	if ok := s.MovePoint("path-999", a.ID, geom.Pt(1, 1)); ok {
		t.Fatalf("move on unknown path must fail")
	}
	if ok := s.MovePoint(p.ID, "anchor-999", geom.Pt(1, 1)); ok {
		t.Fatalf("move on unknown anchor must fail")
	}
	if ok := s.RemovePoint(p.ID, "anchor-999"); ok {
		t.Fatalf("remove of unknown anchor must fail")
	}
	if ok := s.RemovePath("path-999"); ok {
		t.Fatalf("remove of unknown path must fail")
	}
	if _, ok := s.Path("nope"); ok {
		t.Fatalf("lookup of unknown path must fail")
	}
}

func TestStoreMovePointKeepsHandlesRelative(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))
	s.UpdateHandle(p.ID, a.ID, SideOut, geom.Pt(10, 10))

	s.MovePoint(p.ID, a.ID, geom.Pt(100, 100))

	if !a.HandleOut.Position.Eq(geom.Pt(10, 10)) {
		t.Fatalf("relative handle changed on move: %v", a.HandleOut.Position)
	}
	if got := a.HandleAbs(SideOut); !got.Eq(geom.Pt(110, 110)) {
		t.Fatalf("absolute handle = %v", got)
	}
}

func TestStoreInsertPoint(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))
	mid, ok := s.InsertPoint(p.ID, 1, geom.Pt(50, 0))
	if !ok {
		t.Fatalf("insert failed")
	}
	if p.Points[1] != mid {
		t.Fatalf("insert order wrong: %v", p.Points)
	}
	// clamped indexes
	first, _ := s.InsertPoint(p.ID, -5, geom.Pt(-10, 0))
	if p.Points[0] != first {
		t.Fatalf("negative index must clamp to front")
	}
	last, _ := s.InsertPoint(p.ID, 99, geom.Pt(200, 0))
	if p.Points[len(p.Points)-1] != last {
		t.Fatalf("oversized index must clamp to back")
	}
}

func TestStoreObserverFiresOncePerMutation(t *testing.T) {
	s := NewStore()
	n := 0
	s.SetOnChange(func() { n++ })

	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(10, 0))
	s.MovePoint(p.ID, a.ID, geom.Pt(5, 5))
	s.UpdateHandle(p.ID, a.ID, SideOut, geom.Pt(20, 20))
	s.SetPointMode(p.ID, a.ID, AngleLocked)
	s.SetClosed(p.ID, true)
	s.RemovePoint(p.ID, a.ID)
	s.RemovePath(p.ID)

	if n != 9 {
		t.Fatalf("observer fired %d times, want 9", n)
	}

	// reads must not notify
	before := n
	_ = p.Segments()
	_ = p.SVGPath()
	_, _, _ = s.ClosestAnchor(geom.Pt(0, 0), 10)
	if n != before {
		t.Fatalf("read operations must not notify")
	}
}

func TestClosestAnchorFirstFoundWinsTies(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(10, 0))
	s.AddPoint(p.ID, geom.Pt(-10, 0)) // same distance from origin

	_, got, ok := s.ClosestAnchor(geom.Pt(0, 0), 20)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if got != a {
		t.Fatalf("lowest index must win on ties, got %s", got.ID)
	}
}

func TestClosestAnchorRespectsThreshold(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(100, 100))

	if _, _, ok := s.ClosestAnchor(geom.Pt(0, 0), 50); ok {
		t.Fatalf("anchor beyond threshold must not match")
	}
	if _, _, ok := s.ClosestAnchor(geom.Pt(99, 100), 5); !ok {
		t.Fatalf("anchor within threshold must match")
	}
}

func TestSelectPointReplacesOrAdds(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))
	b, _ := s.AddPoint(p.ID, geom.Pt(10, 0))

	s.SelectPoint(p.ID, a.ID, false)
	s.SelectPoint(p.ID, b.ID, true)
	if !a.Selected || !b.Selected {
		t.Fatalf("additive select must keep both")
	}
	s.SelectPoint(p.ID, a.ID, false)
	if !a.Selected || b.Selected {
		t.Fatalf("plain select must clear previous selection")
	}
	s.ClearSelection()
	if a.Selected || b.Selected {
		t.Fatalf("ClearSelection left points selected")
	}
}

func TestInsertPointOnStraightSegment(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))

	a, ok := s.InsertPointOnSegment(p.ID, 0, 0.5)
	if !ok {
		t.Fatalf("insert failed")
	}
	if !a.Position.Eq(geom.Pt(50, 0)) {
		t.Fatalf("new anchor at %v, want (50,0)", a.Position)
	}
	if a.Mode != Mirrored || !a.HasIn() || !a.HasOut() {
		t.Fatalf("straight-segment insert must synthesize default handles: %+v", a)
	}
	// synthesized handles along the line keep it straight
	wantLen := DefaultHandleLength / 3.0
	if got := a.HandleOut.Position; !got.Eq(geom.Pt(wantLen, 0)) {
		t.Fatalf("out handle = %v", got)
	}
	if p.Points[1] != a {
		t.Fatalf("anchor not inserted between the endpoints")
	}
}

func TestInsertPointOnCurvePreservesShape(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))
	b, _ := s.AddPoint(p.ID, geom.Pt(100, 0))
	a.Mode = Independent
	b.Mode = Independent
	s.UpdateHandle(p.ID, a.ID, SideOut, geom.Pt(30, 60))
	s.UpdateHandle(p.ID, b.ID, SideIn, geom.Pt(70, 60))

	before := p.Segments()[0].Cubic()
	samples := make([]geom.Point, 0, 21)
	for i := 0; i <= 20; i++ {
		samples = append(samples, before.Eval(float64(i)/20))
	}

	const split = 0.3
	mid, ok := s.InsertPointOnSegment(p.ID, 0, split)
	if !ok {
		t.Fatalf("insert failed")
	}
	if mid.Mode != Independent {
		t.Fatalf("subdivision anchor mode = %v", mid.Mode)
	}

	segs := p.Segments()
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments after insert, got %d", len(segs))
	}
	left, right := segs[0].Cubic(), segs[1].Cubic()
	for i, want := range samples {
		u := float64(i) / 20
		var got geom.Point
		if u <= split {
			got = left.Eval(u / split)
		} else {
			got = right.Eval((u - split) / (1 - split))
		}
		if !got.Eq(want) {
			t.Fatalf("curve changed at t=%v: %v vs %v", u, got, want)
		}
	}
}

func TestInsertPointOnSegmentBadIndex(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))
	if _, ok := s.InsertPointOnSegment(p.ID, 5, 0.5); ok {
		t.Fatalf("out-of-range segment index must fail")
	}
	if _, ok := s.InsertPointOnSegment("path-999", 0, 0.5); ok {
		t.Fatalf("unknown path must fail")
	}
}

func TestPathsIterationOrder(t *testing.T) {
	s := NewStore()
	p1 := s.CreatePath(DefaultStyle())
	p2 := s.CreatePath(DefaultStyle())
	p3 := s.CreatePath(DefaultStyle())
	s.RemovePath(p2.ID)

	got := s.Paths()
	if len(got) != 2 || got[0] != p1 || got[1] != p3 {
		t.Fatalf("iteration order broken: %v", got)
	}
}
