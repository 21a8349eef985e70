/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package path

import (
	"fmt"
	"strings"

	"penkit/internal/geom"
)

// SegmentKind distinguishes straight from curved segments.
type SegmentKind uint8

const (
	LineSegment SegmentKind = iota
	CubicSegment
)

// Segment is the derived piece of a path between two consecutive anchors.
// Segments are never stored; they are recomputed on demand as a pure function
// of the anchor sequence. C1 and C2 are absolute control points and only
// meaningful for CubicSegment.
type Segment struct {
	Kind   SegmentKind
	Start  *AnchorPoint
	End    *AnchorPoint
	C1, C2 geom.Point
}

// Cubic returns the segment as a cubic Bezier. Straight segments degrade to a
// cubic with control points on the endpoints, which traces the same line.
func (s Segment) Cubic() geom.CubicBez {
	if s.Kind == LineSegment {
		return geom.CubicBez{P0: s.Start.Position, P1: s.Start.Position, P2: s.End.Position, P3: s.End.Position}
	}
	return geom.CubicBez{P0: s.Start.Position, P1: s.C1, P2: s.C2, P3: s.End.Position}
}

// Segments derives the ordered segment list. A path with fewer than 2 anchors
// has no segments. A segment is curved when either the start's out-handle or
// the end's in-handle is visible; the missing side falls back to the anchor's
// own position, which keeps the curve flat on the handle-less end rather than
// degrading it to a line.
func (p *VectorPath) Segments() []Segment {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	last := n - 1
	if p.Closed {
		last = n
	}
	segs := make([]Segment, 0, last)
	for i := 0; i < last; i++ {
		start := p.Points[i]
		end := p.Points[(i+1)%n]
		if start.HasOut() || end.HasIn() {
			segs = append(segs, Segment{
				Kind:  CubicSegment,
				Start: start,
				End:   end,
				C1:    start.HandleAbs(SideOut),
				C2:    end.HandleAbs(SideIn),
			})
		} else {
			segs = append(segs, Segment{Kind: LineSegment, Start: start, End: end})
		}
	}
	return segs
}

// SVGPath serializes the path into the interchange grammar: one absolute
// move-to, then a line-to or curve-to per segment, and a close command for
// closed paths. Output is a direct transcription; nothing is deduplicated or
// optimized. A path with fewer than 2 anchors yields "".
func (p *VectorPath) SVGPath() string {
	if len(p.Points) < 2 {
		return ""
	}
	var b strings.Builder
	first := p.Points[0].Position
	fmt.Fprintf(&b, "M %s %s", fnum(first.X), fnum(first.Y))
	for _, s := range p.Segments() {
		end := s.End.Position
		switch s.Kind {
		case LineSegment:
			fmt.Fprintf(&b, " L %s %s", fnum(end.X), fnum(end.Y))
		case CubicSegment:
			fmt.Fprintf(&b, " C %s %s %s %s %s %s",
				fnum(s.C1.X), fnum(s.C1.Y), fnum(s.C2.X), fnum(s.C2.Y), fnum(end.X), fnum(end.Y))
		}
	}
	if p.Closed {
		b.WriteString(" Z")
	}
	return b.String()
}

func fnum(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
