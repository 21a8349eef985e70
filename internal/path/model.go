/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package path owns the vector path data model: anchor points with relative
// control handles, the id-keyed store, derived segments, and the handle
// mirroring rules. Everything here is single-threaded; mutations notify a
// synchronous observer after they are fully applied.
package path

import "penkit/internal/geom"

// MirrorMode governs how editing one handle of an anchor point propagates to
// its sibling handle on the same point.
type MirrorMode uint8

const (
	// Mirrored keeps the sibling at the exact negation of the edited handle.
	Mirrored MirrorMode = iota
	// AngleLocked keeps the sibling opposite in direction but preserves its length.
	AngleLocked
	// Independent leaves the sibling untouched.
	Independent
)

func (m MirrorMode) String() string {
	switch m {
	case Mirrored:
		return "mirrored"
	case AngleLocked:
		return "angle-locked"
	default:
		return "independent"
	}
}

// Side selects one of an anchor point's two handles.
type Side uint8

const (
	SideIn Side = iota
	SideOut
)

// Handle is a control-point offset stored relative to its owning anchor.
// Absolute position is always anchor.Position + handle.Position. A nil handle
// and Visible=false are both valid "no handle" states and every consumer
// treats them identically.
type Handle struct {
	Position geom.Point
	Visible  bool
}

// AnchorPoint is a user-placed vertex of a path. Owned exclusively by one
// VectorPath; never shared.
type AnchorPoint struct {
	ID           string
	Position     geom.Point
	HandleIn     *Handle
	HandleOut    *Handle
	Mode         MirrorMode
	CornerRadius float64 // reserved
	Selected     bool
}

// HasIn reports whether the in-handle exists and is visible.
func (a *AnchorPoint) HasIn() bool { return a.HandleIn != nil && a.HandleIn.Visible }

// HasOut reports whether the out-handle exists and is visible.
func (a *AnchorPoint) HasOut() bool { return a.HandleOut != nil && a.HandleOut.Visible }

func (a *AnchorPoint) handle(side Side) *Handle {
	if side == SideIn {
		return a.HandleIn
	}
	return a.HandleOut
}

func (a *AnchorPoint) has(side Side) bool {
	if side == SideIn {
		return a.HasIn()
	}
	return a.HasOut()
}

// HandleAbs returns the absolute position of the given handle. For an absent
// or hidden handle it returns the anchor position itself.
func (a *AnchorPoint) HandleAbs(side Side) geom.Point {
	if h := a.handle(side); h != nil && h.Visible {
		return a.Position.Add(h.Position)
	}
	return a.Position
}

// VectorPath is an ordered sequence of anchor points. Order defines segment
// adjacency; for closed paths the last point wraps to the first.
type VectorPath struct {
	ID       string
	Points   []*AnchorPoint
	Closed   bool
	Style    Style
	Selected bool
}

// Point returns the anchor with the given id, or nil.
func (p *VectorPath) Point(id string) *AnchorPoint {
	for _, a := range p.Points {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// PointIndex returns the index of the anchor with the given id, or -1.
func (p *VectorPath) PointIndex(id string) int {
	for i, a := range p.Points {
		if a.ID == id {
			return i
		}
	}
	return -1
}
