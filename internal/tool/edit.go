/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tool

import (
	"log/slog"

	"penkit/internal/config"
	"penkit/internal/geom"
	applog "penkit/internal/log"
	"penkit/internal/path"
)

// EditState is the editing machine's state.
type EditState uint8

const (
	EditIdle EditState = iota
	EditDraggingPoint
	EditDraggingHandle
)

// Hover describes the closest point on any segment currently under the
// pointer, within the hover distance.
type Hover struct {
	Path     *path.VectorPath
	SegIndex int
	T        float64
	Pos      geom.Point
}

// Edit is the editing state machine: select and move anchors, drag handles
// through the mirroring rules, insert points on hovered segments, delete the
// selection.
type Edit struct {
	store *path.Store
	cfg   config.EditorConfig
	log   *slog.Logger

	state EditState
	mods  modifiers
	hover *Hover

	// point drag bookkeeping: position updates are original position plus
	// total pointer displacement, never incremental deltas, so nothing drifts
	dragPath    *path.VectorPath
	dragPoint   *path.AnchorPoint
	pointerFrom geom.Point
	pointFrom   geom.Point

	// handle drag bookkeeping
	handleSide path.Side
	altForced  bool
	savedMode  path.MirrorMode
}

func NewEdit(store *path.Store, cfg config.EditorConfig) *Edit {
	return &Edit{
		store: store,
		cfg:   cfg,
		log:   applog.WithComponent("edit"),
	}
}

func (t *Edit) State() EditState { return t.state }

// CurrentHover returns the active hover point, or nil.
func (t *Edit) CurrentHover() *Hover { return t.hover }

func (t *Edit) PointerDown(ev PointerEvent) {
	// handles win over anchor points when they overlap: test every handle
	// across all paths before any anchor, first match in store order wins
	for _, p := range t.store.Paths() {
		for _, a := range p.Points {
			if side, ok := path.IsNearHandle(a, ev.Pos, t.cfg.HandleHitRadius); ok {
				t.beginHandleDrag(p, a, side)
				return
			}
		}
	}
	for _, p := range t.store.Paths() {
		for _, a := range p.Points {
			if a.Position.Distance(ev.Pos) <= t.cfg.AnchorHitRadius {
				t.store.SelectPoint(p.ID, a.ID, t.mods.shift)
				t.dragPath = p
				t.dragPoint = a
				t.pointerFrom = ev.Pos
				t.pointFrom = a.Position
				t.state = EditDraggingPoint
				return
			}
		}
	}
	// empty space
	if !t.mods.shift {
		t.store.ClearSelection()
	}
}

func (t *Edit) beginHandleDrag(p *path.VectorPath, a *path.AnchorPoint, side path.Side) {
	t.dragPath = p
	t.dragPoint = a
	t.handleSide = side
	t.state = EditDraggingHandle
	if t.mods.alt {
		t.forceIndependent()
	}
}

// forceIndependent suspends mirroring for the duration of the drag.
func (t *Edit) forceIndependent() {
	if t.altForced || t.dragPoint == nil {
		return
	}
	t.altForced = true
	t.savedMode = t.dragPoint.Mode
	t.dragPoint.Mode = path.Independent
}

// restoreMode puts the pre-drag mirror mode back without re-deriving the
// sibling; the temporary independence is supposed to survive as geometry.
func (t *Edit) restoreMode() {
	if !t.altForced {
		return
	}
	t.altForced = false
	if t.dragPoint != nil {
		t.dragPoint.Mode = t.savedMode
	}
}

func (t *Edit) PointerMove(ev PointerEvent) {
	switch t.state {
	case EditDraggingPoint:
		if t.dragPath == nil || t.dragPoint == nil {
			return
		}
		delta := ev.Pos.Sub(t.pointerFrom)
		t.store.MovePoint(t.dragPath.ID, t.dragPoint.ID, t.pointFrom.Add(delta))
	case EditDraggingHandle:
		if t.dragPath == nil || t.dragPoint == nil {
			return
		}
		t.store.UpdateHandle(t.dragPath.ID, t.dragPoint.ID, t.handleSide, ev.Pos)
	default:
		t.hover = findClosestPointOnPaths(t.store, ev.Pos, t.cfg.HoverDistance, t.cfg.SampleSteps)
	}
}

func (t *Edit) PointerUp(PointerEvent) {
	if t.state == EditDraggingHandle {
		t.restoreMode()
	}
	t.dragPath = nil
	t.dragPoint = nil
	t.state = EditIdle
}

// DoubleClick inserts an anchor at the hovered curve location. Curved
// segments are subdivided so the shape is untouched; straight segments get a
// fresh point with synthesized handles.
func (t *Edit) DoubleClick(PointerEvent) {
	h := t.hover
	if h == nil {
		return
	}
	a, ok := t.store.InsertPointOnSegment(h.Path.ID, h.SegIndex, h.T)
	if !ok {
		t.log.Debug("hover insert failed", slog.String("path", h.Path.ID), slog.Int("segment", h.SegIndex))
		return
	}
	t.log.Debug("point inserted",
		slog.String("path", h.Path.ID), slog.String("anchor", a.ID), slog.Float64("t", h.T))
	t.hover = nil
}

func (t *Edit) KeyDown(ev KeyEvent) {
	t.mods.keyDown(ev.Key)
	switch ev.Key {
	case KeyAlt:
		if t.state == EditDraggingHandle {
			t.forceIndependent()
		}
	case KeyDelete, KeyBackspace:
		t.deleteSelection()
	}
}

func (t *Edit) KeyUp(ev KeyEvent) {
	t.mods.keyUp(ev.Key)
	if ev.Key == KeyAlt && t.state == EditDraggingHandle {
		t.restoreMode()
	}
}

// deleteSelection removes every selected anchor from every path. Paths are
// kept even when they end up empty or with a single point.
func (t *Edit) deleteSelection() {
	for _, p := range t.store.Paths() {
		var doomed []string
		for _, a := range p.Points {
			if a.Selected {
				doomed = append(doomed, a.ID)
			}
		}
		for _, id := range doomed {
			t.store.RemovePoint(p.ID, id)
		}
	}
}

// findClosestPointOnPaths samples every segment of every path at steps
// uniform parameter increments and returns the overall closest sample within
// maxDist, or nil. Near-zero-length straight segments are skipped so the
// sampling cannot produce junk hits on degenerate geometry.
func findClosestPointOnPaths(st *path.Store, pos geom.Point, maxDist float64, steps int) *Hover {
	if steps <= 0 {
		steps = 50
	}
	var best *Hover
	bestDist := maxDist
	for _, p := range st.Paths() {
		for si, seg := range p.Segments() {
			if seg.Kind == path.LineSegment && seg.Start.Position.Eq(seg.End.Position) {
				continue
			}
			c := seg.Cubic()
			for i := 0; i <= steps; i++ {
				u := float64(i) / float64(steps)
				sample := c.Eval(u)
				d := sample.Distance(pos)
				if d < bestDist || (best == nil && d <= bestDist) {
					best = &Hover{Path: p, SegIndex: si, T: u, Pos: sample}
					bestDist = d
				}
			}
		}
	}
	return best
}
