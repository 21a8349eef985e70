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

	"penkit/internal/geom"
)

// Store owns every vector path, keyed by identity. Ids for paths and anchors
// are minted from one shared monotonic counter and are never reused, even
// after deletion. The store is single-threaded; consumers treat its
// collections as a live snapshot and re-read after any mutation.
type Store struct {
	paths    map[string]*VectorPath
	order    []string // iteration order = creation order
	nextID   int
	onChange func()
}

func NewStore() *Store {
	return &Store{paths: make(map[string]*VectorPath)}
}

// SetOnChange registers the observer invoked synchronously once after every
// completed mutation. Passing nil removes it.
func (s *Store) SetOnChange(fn func()) { s.onChange = fn }

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Store) mintID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

// CreatePath creates a new empty path with the given style.
func (s *Store) CreatePath(style Style) *VectorPath {
	p := &VectorPath{ID: s.mintID("path"), Style: style}
	s.paths[p.ID] = p
	s.order = append(s.order, p.ID)
	s.notify()
	return p
}

// Path returns the path with the given id.
func (s *Store) Path(id string) (*VectorPath, bool) {
	p, ok := s.paths[id]
	return p, ok
}

// Paths returns every path in creation order.
func (s *Store) Paths() []*VectorPath {
	out := make([]*VectorPath, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.paths[id])
	}
	return out
}

// RemovePath deletes the path with the given id. Returns false when the id is
// unknown; that is an expected race with UI callbacks, not an error.
func (s *Store) RemovePath(id string) bool {
	if _, ok := s.paths[id]; !ok {
		return false
	}
	delete(s.paths, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.notify()
	return true
}

// AddPoint appends a new handle-less anchor to the path.
func (s *Store) AddPoint(pathID string, pos geom.Point) (*AnchorPoint, bool) {
	p, ok := s.paths[pathID]
	if !ok {
		return nil, false
	}
	a := &AnchorPoint{ID: s.mintID("anchor"), Position: pos, Mode: Mirrored}
	p.Points = append(p.Points, a)
	s.notify()
	return a, true
}

// InsertPoint inserts a new handle-less anchor at index, clamping index into
// [0, len].
func (s *Store) InsertPoint(pathID string, index int, pos geom.Point) (*AnchorPoint, bool) {
	p, ok := s.paths[pathID]
	if !ok {
		return nil, false
	}
	if index < 0 {
		index = 0
	}
	if index > len(p.Points) {
		index = len(p.Points)
	}
	a := &AnchorPoint{ID: s.mintID("anchor"), Position: pos, Mode: Mirrored}
	p.Points = append(p.Points, nil)
	copy(p.Points[index+1:], p.Points[index:])
	p.Points[index] = a
	s.notify()
	return a, true
}

// RemovePoint removes the anchor with pointID from the path. Paths are not
// auto-removed when they become empty.
func (s *Store) RemovePoint(pathID, pointID string) bool {
	p, ok := s.paths[pathID]
	if !ok {
		return false
	}
	i := p.PointIndex(pointID)
	if i < 0 {
		return false
	}
	p.Points = append(p.Points[:i], p.Points[i+1:]...)
	s.notify()
	return true
}

// MovePoint moves the anchor to a new absolute position. Handles ride along
// for free since they are stored relative to the anchor.
func (s *Store) MovePoint(pathID, pointID string, pos geom.Point) bool {
	p, ok := s.paths[pathID]
	if !ok {
		return false
	}
	a := p.Point(pointID)
	if a == nil {
		return false
	}
	a.Position = pos
	s.notify()
	return true
}

// SetClosed opens or closes the path.
func (s *Store) SetClosed(pathID string, closed bool) bool {
	p, ok := s.paths[pathID]
	if !ok {
		return false
	}
	p.Closed = closed
	s.notify()
	return true
}

// UpdateHandle routes a handle edit through the mirroring rules and notifies.
func (s *Store) UpdateHandle(pathID, pointID string, side Side, abs geom.Point) bool {
	p, ok := s.paths[pathID]
	if !ok {
		return false
	}
	a := p.Point(pointID)
	if a == nil {
		return false
	}
	UpdateHandle(a, side, abs)
	s.notify()
	return true
}

// SetPointMode switches an anchor's mirror mode, re-deriving handles.
func (s *Store) SetPointMode(pathID, pointID string, mode MirrorMode) bool {
	p, ok := s.paths[pathID]
	if !ok {
		return false
	}
	a := p.Point(pointID)
	if a == nil {
		return false
	}
	SetMode(a, mode)
	s.notify()
	return true
}

// SelectPoint marks an anchor selected. With add=false the previous selection
// across all paths is cleared first.
func (s *Store) SelectPoint(pathID, pointID string, add bool) bool {
	p, ok := s.paths[pathID]
	if !ok {
		return false
	}
	a := p.Point(pointID)
	if a == nil {
		return false
	}
	if !add {
		s.clearSelectionLocked()
	}
	a.Selected = true
	s.notify()
	return true
}

// ClearSelection deselects every path and anchor point.
func (s *Store) ClearSelection() {
	s.clearSelectionLocked()
	s.notify()
}

func (s *Store) clearSelectionLocked() {
	for _, id := range s.order {
		p := s.paths[id]
		p.Selected = false
		for _, a := range p.Points {
			a.Selected = false
		}
	}
}

// InsertPointOnSegment inserts a new anchor on segment segIndex of the path at
// curve parameter t. Curved segments are split with de Casteljau subdivision:
// the new anchor takes the subdivision's inner control points as its handles
// and the segment endpoints' handles are rewritten to the outer ones, so the
// rendered shape is identical before and after. Straight segments get a new
// anchor with synthesized default handles instead, since there is no curve
// shape to preserve.
func (s *Store) InsertPointOnSegment(pathID string, segIndex int, t float64) (*AnchorPoint, bool) {
	p, ok := s.paths[pathID]
	if !ok {
		return nil, false
	}
	segs := p.Segments()
	if segIndex < 0 || segIndex >= len(segs) {
		return nil, false
	}
	seg := segs[segIndex]
	a := &AnchorPoint{ID: s.mintID("anchor")}

	if seg.Kind == CubicSegment {
		left, right := seg.Cubic().Subdivide(t)
		a.Position = left.P3
		a.Mode = Independent
		a.HandleIn = &Handle{Position: left.P2.Sub(a.Position), Visible: true}
		a.HandleOut = &Handle{Position: right.P1.Sub(a.Position), Visible: true}
		seg.Start.HandleOut = &Handle{Position: left.P1.Sub(seg.Start.Position), Visible: true}
		seg.End.HandleIn = &Handle{Position: right.P2.Sub(seg.End.Position), Visible: true}
	} else {
		a.Position = seg.Cubic().Eval(t)
		SynthesizeHandles(a, seg.Start, seg.End, DefaultHandleLength)
	}

	// segment i sits between points[i] and points[i+1], wrapped for closed paths
	idx := segIndex + 1
	p.Points = append(p.Points, nil)
	copy(p.Points[idx+1:], p.Points[idx:])
	p.Points[idx] = a
	s.notify()
	return a, true
}

// ClosestAnchor scans every path in creation order and returns the closest
// anchor within maxDist of pos. On exact distance ties the first one found
// during the linear scan wins.
func (s *Store) ClosestAnchor(pos geom.Point, maxDist float64) (*VectorPath, *AnchorPoint, bool) {
	var (
		bestPath *VectorPath
		bestPt   *AnchorPoint
		bestDist = maxDist
		found    bool
	)
	for _, id := range s.order {
		p := s.paths[id]
		for _, a := range p.Points {
			d := a.Position.Distance(pos)
			if d < bestDist || (!found && d <= bestDist) {
				bestPath, bestPt, bestDist, found = p, a, d, true
			}
		}
	}
	return bestPath, bestPt, found
}
