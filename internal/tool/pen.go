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
	"math"

	"penkit/internal/config"
	"penkit/internal/geom"
	applog "penkit/internal/log"
	"penkit/internal/path"
)

// PenState is the drawing machine's state.
type PenState uint8

const (
	PenIdle PenState = iota
	PenDrawing
	PenDraggingHandle
)

// Pen is the drawing state machine: click to add straight points, drag to
// pull out symmetric handles, click near the first point to close. It only
// ever appends points; deletion belongs to the edit tool.
type Pen struct {
	store *path.Store
	cfg   config.EditorConfig
	log   *slog.Logger
	style path.Style

	state   PenState
	current *path.VectorPath
	active  *path.AnchorPoint
	pressed bool
	mods    modifiers
}

func NewPen(store *path.Store, cfg config.EditorConfig) *Pen {
	return &Pen{
		store: store,
		cfg:   cfg,
		log:   applog.WithComponent("pen"),
		style: path.DefaultStyle(),
	}
}

// SetStyle sets the style applied to paths the pen creates next.
func (t *Pen) SetStyle(s path.Style) { t.style = s }

func (t *Pen) State() PenState { return t.state }

// CurrentPath returns the in-progress path, or nil.
func (t *Pen) CurrentPath() *path.VectorPath { return t.current }

func (t *Pen) PointerDown(ev PointerEvent) {
	// close detection first: near the first point of a path with enough anchors
	if t.current != nil && len(t.current.Points) >= 3 {
		first := t.current.Points[0]
		if ev.Pos.Distance(first.Position) <= t.cfg.CloseThreshold {
			t.store.SetClosed(t.current.ID, true)
			t.log.Debug("path closed", slog.String("path", t.current.ID))
			t.reset()
			return
		}
	}

	pos := ev.Pos
	if t.mods.shift && t.current != nil && len(t.current.Points) > 0 {
		prev := t.current.Points[len(t.current.Points)-1]
		pos = geom.SnapAngle(prev.Position, pos, math.Pi/4)
	}

	if t.current == nil {
		t.current = t.store.CreatePath(t.style)
		t.log.Debug("drawing started", slog.String("path", t.current.ID))
	}
	t.active, _ = t.store.AddPoint(t.current.ID, pos)
	t.pressed = true
	t.state = PenDrawing
}

func (t *Pen) PointerMove(ev PointerEvent) {
	if !t.pressed || t.active == nil {
		return
	}
	if t.state != PenDraggingHandle {
		if ev.Pos.Distance(t.active.Position) <= t.cfg.DragThreshold {
			return
		}
		// the press becomes a drag: the just-placed point turns curved
		t.state = PenDraggingHandle
	}
	target := ev.Pos
	if t.mods.shift {
		target = geom.SnapAngle(t.active.Position, target, math.Pi/4)
	}
	mode := path.Mirrored
	if t.mods.alt {
		mode = path.Independent
	}
	t.active.Mode = mode
	t.store.UpdateHandle(t.current.ID, t.active.ID, path.SideOut, target)
}

func (t *Pen) PointerUp(PointerEvent) {
	if !t.pressed {
		return
	}
	t.pressed = false
	t.state = PenDrawing
}

func (t *Pen) KeyDown(ev KeyEvent) {
	t.mods.keyDown(ev.Key)
	switch ev.Key {
	case KeyEnter:
		if t.current != nil && len(t.current.Points) >= 2 {
			t.store.SetClosed(t.current.ID, true)
		}
		t.reset()
	case KeyEscape:
		// end drawing, leave the path open
		t.reset()
	}
}

func (t *Pen) KeyUp(ev KeyEvent) { t.mods.keyUp(ev.Key) }

func (t *Pen) reset() {
	t.current = nil
	t.active = nil
	t.pressed = false
	t.state = PenIdle
}
