/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package tool holds the interaction state machines: the pen tool that
// constructs new paths and the edit tool that manipulates existing ones. Both
// consume plain pointer/key events and mutate the path store; all rendering
// happens elsewhere off the store snapshot.
package tool

import "penkit/internal/geom"

// Key is a logical key identifier as delivered by the host shell.
type Key string

const (
	KeyShift     Key = "Shift"
	KeyAlt       Key = "Alt"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyDelete    Key = "Delete"
	KeyBackspace Key = "Backspace"
)

// PointerEvent carries a plane position for down/move/up/double-click.
type PointerEvent struct {
	Pos geom.Point
}

// KeyEvent carries a logical key for key-down/key-up.
type KeyEvent struct {
	Key Key
}

// modifiers tracks held modifier keys between key events.
type modifiers struct {
	shift bool
	alt   bool
}

func (m *modifiers) keyDown(k Key) {
	switch k {
	case KeyShift:
		m.shift = true
	case KeyAlt:
		m.alt = true
	}
}

func (m *modifiers) keyUp(k Key) {
	switch k {
	case KeyShift:
		m.shift = false
	case KeyAlt:
		m.alt = false
	}
}
