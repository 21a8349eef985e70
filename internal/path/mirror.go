/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package path

import "penkit/internal/geom"

// Handle mirroring rules. These operate on a single anchor point and are the
// only code allowed to rewrite a sibling handle as a consequence of editing
// the other one.

// DefaultHandleLength is the basis for synthesized handles; each synthesized
// handle is one third of this.
const DefaultHandleLength = 50

// HandleHitThreshold is the default pick radius for IsNearHandle.
const HandleHitThreshold = 10

// UpdateHandle stores abs (converted to an offset relative to the anchor) on
// the selected handle, creating it if absent, and re-derives the sibling
// according to the anchor's mirror mode.
func UpdateHandle(a *AnchorPoint, side Side, abs geom.Point) {
	rel := abs.Sub(a.Position)
	setHandle(a, side, rel)
	mirrorSibling(a, side)
}

// SetMode switches the anchor's mirror mode. Switching to a mirroring mode
// re-applies the derivation immediately, preferring the out-handle as the
// source of truth and falling back to the in-handle.
func SetMode(a *AnchorPoint, mode MirrorMode) {
	a.Mode = mode
	if mode == Independent {
		return
	}
	switch {
	case a.HasOut():
		mirrorSibling(a, SideOut)
	case a.HasIn():
		mirrorSibling(a, SideIn)
	}
}

func setHandle(a *AnchorPoint, side Side, rel geom.Point) {
	h := a.handle(side)
	if h == nil {
		h = &Handle{}
		if side == SideIn {
			a.HandleIn = h
		} else {
			a.HandleOut = h
		}
	}
	h.Position = rel
	h.Visible = true
}

// mirrorSibling rewrites the handle opposite to source per the anchor's mode.
func mirrorSibling(a *AnchorPoint, source Side) {
	src := a.handle(source)
	if src == nil || !src.Visible {
		return
	}
	sibling := SideIn
	if source == SideIn {
		sibling = SideOut
	}
	switch a.Mode {
	case Mirrored:
		setHandle(a, sibling, src.Position.Neg())
	case AngleLocked:
		sib := a.handle(sibling)
		if sib == nil || !sib.Visible {
			// absent sibling gets the fully mirrored vector
			setHandle(a, sibling, src.Position.Neg())
			return
		}
		srcLen := src.Position.Length()
		if srcLen < geom.Epsilon {
			// zero-length source: direction is undefined, leave the sibling alone
			return
		}
		sibLen := sib.Position.Length()
		setHandle(a, sibling, src.Position.Neg().Scale(sibLen/srcLen))
	case Independent:
		// sibling untouched
	}
}

// SynthesizeHandles gives a newly created smooth point default handles derived
// from its neighbors: a third of defaultLen projected along the tangent
// through the neighbor geometry, mode Mirrored. A point with no neighbor on
// either side is left without handles. prev and next may be nil.
func SynthesizeHandles(a *AnchorPoint, prev, next *AnchorPoint, defaultLen float64) {
	if prev == nil && next == nil {
		return
	}
	if defaultLen <= 0 {
		defaultLen = DefaultHandleLength
	}
	var tangent float64
	switch {
	case prev != nil && next != nil:
		tangent = prev.Position.AngleTo(next.Position)
	case prev != nil:
		tangent = prev.Position.AngleTo(a.Position)
	default:
		tangent = a.Position.AngleTo(next.Position)
	}
	length := defaultLen / 3
	a.Mode = Mirrored
	setHandle(a, SideOut, geom.FromPolar(tangent, length))
	setHandle(a, SideIn, geom.FromPolar(tangent, length).Neg())
}

// IsNearHandle reports which visible handle of a lies within threshold of pos.
// The out-handle is checked first, so it wins when both are in range. This is
// a pure read; it never mutates the anchor.
func IsNearHandle(a *AnchorPoint, pos geom.Point, threshold float64) (Side, bool) {
	if threshold <= 0 {
		threshold = HandleHitThreshold
	}
	if a.HasOut() && a.HandleAbs(SideOut).Distance(pos) <= threshold {
		return SideOut, true
	}
	if a.HasIn() && a.HandleAbs(SideIn).Distance(pos) <= threshold {
		return SideIn, true
	}
	return 0, false
}
