/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package path

import (
	"reflect"
	"testing"

	"penkit/internal/geom"
)

func TestSegmentsStraight(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))

	segs := p.Segments()
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Kind != LineSegment {
		t.Fatalf("expected line segment")
	}
	if got := p.SVGPath(); got != "M 0 0 L 100 0" {
		t.Fatalf("SVGPath = %q", got)
	}
}

func TestSegmentsTooFewPoints(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	if segs := p.Segments(); segs != nil {
		t.Fatalf("empty path must have no segments, got %d", len(segs))
	}
	s.AddPoint(p.ID, geom.Pt(1, 2))
	if segs := p.Segments(); segs != nil {
		t.Fatalf("single-point path must have no segments")
	}
	if got := p.SVGPath(); got != "" {
		t.Fatalf("SVGPath of single-point path = %q, want empty", got)
	}
}

func TestSegmentsCurvedWithFallback(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))
	b, _ := s.AddPoint(p.ID, geom.Pt(100, 0))

	// only the start has an out-handle; the end side must fall back to the
	// anchor position, keeping the segment a (flat-ended) curve
	a.Mode = Independent
	UpdateHandle(a, SideOut, geom.Pt(30, 30))

	segs := p.Segments()
	if len(segs) != 1 || segs[0].Kind != CubicSegment {
		t.Fatalf("expected one cubic segment, got %+v", segs)
	}
	if !segs[0].C1.Eq(geom.Pt(30, 30)) {
		t.Fatalf("C1 = %v", segs[0].C1)
	}
	if !segs[0].C2.Eq(b.Position) {
		t.Fatalf("C2 should fall back to the end anchor, got %v", segs[0].C2)
	}
}

// A zero-length visible handle still classifies the segment as curved. The
// codec and renderers rely on this observable behavior.
func TestZeroLengthHandleStillCurved(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))

	a.Mode = Independent
	UpdateHandle(a, SideOut, a.Position) // zero offset, still visible

	segs := p.Segments()
	if segs[0].Kind != CubicSegment {
		t.Fatalf("zero-length handle must still produce a cubic segment")
	}
}

func TestSegmentsClosedWrap(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))
	s.AddPoint(p.ID, geom.Pt(50, 80))
	s.SetClosed(p.ID, true)

	segs := p.Segments()
	if len(segs) != 3 {
		t.Fatalf("closed 3-point path must have 3 segments, got %d", len(segs))
	}
	if segs[2].Start != p.Points[2] || segs[2].End != p.Points[0] {
		t.Fatalf("last segment must wrap to the first point")
	}
}

func TestClosedPathSerialization(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))
	s.SetClosed(p.ID, true)

	if !p.Closed {
		t.Fatalf("closed flag not set")
	}
	got := p.SVGPath()
	if got != "M 0 0 L 100 0 L 0 0 Z" {
		t.Fatalf("SVGPath = %q", got)
	}
}

// Segment derivation must be a pure function of the anchor sequence.
func TestSegmentsIdempotent(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	a, _ := s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))
	UpdateHandle(a, SideOut, geom.Pt(20, 40))

	first := p.Segments()
	second := p.Segments()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("segment derivation is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestLineSegmentAsCubic(t *testing.T) {
	s := NewStore()
	p := s.CreatePath(DefaultStyle())
	s.AddPoint(p.ID, geom.Pt(0, 0))
	s.AddPoint(p.ID, geom.Pt(100, 0))

	c := p.Segments()[0].Cubic()
	if got := c.Eval(0.5); !got.Eq(geom.Pt(50, 0)) {
		t.Fatalf("line-as-cubic midpoint = %v", got)
	}
}
