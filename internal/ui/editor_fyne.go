//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"penkit/internal/config"
	"penkit/internal/geom"
	"penkit/internal/path"
	"penkit/internal/tool"
)

type activeTool uint8

const (
	toolPen activeTool = iota
	toolEdit
)

// editorWidget is the drawing surface. It feeds pointer and key events into
// the pen and edit state machines and redraws from the store on every
// mutation.
type editorWidget struct {
	widget.BaseWidget

	store *path.Store
	pen   *tool.Pen
	edit  *tool.Edit
	tool  activeTool
}

var (
	_ fyne.Widget         = (*editorWidget)(nil)
	_ fyne.Draggable      = (*editorWidget)(nil)
	_ fyne.DoubleTappable = (*editorWidget)(nil)
	_ desktop.Mouseable   = (*editorWidget)(nil)
	_ desktop.Hoverable   = (*editorWidget)(nil)
)

func newEditorWidget(st *path.Store, cfg config.EditorConfig) *editorWidget {
	w := &editorWidget{
		store: st,
		pen:   tool.NewPen(st, cfg),
		edit:  tool.NewEdit(st, cfg),
	}
	st.SetOnChange(w.Refresh)
	w.ExtendBaseWidget(w)
	return w
}

func (w *editorWidget) setTool(t activeTool) {
	if w.tool == t {
		return
	}
	// leaving the pen abandons the in-progress path cleanly
	w.pen.KeyDown(tool.KeyEvent{Key: tool.KeyEscape})
	w.pen.KeyUp(tool.KeyEvent{Key: tool.KeyEscape})
	w.tool = t
	w.Refresh()
}

func pointerEvent(pos fyne.Position) tool.PointerEvent {
	return tool.PointerEvent{Pos: geom.Pt(float64(pos.X), float64(pos.Y))}
}

func (w *editorWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	ev := pointerEvent(e.Position)
	if w.tool == toolPen {
		w.pen.PointerDown(ev)
	} else {
		w.edit.PointerDown(ev)
	}
	w.Refresh()
}

func (w *editorWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	ev := pointerEvent(e.Position)
	if w.tool == toolPen {
		w.pen.PointerUp(ev)
	} else {
		w.edit.PointerUp(ev)
	}
	w.Refresh()
}

func (w *editorWidget) Dragged(e *fyne.DragEvent) {
	ev := pointerEvent(e.Position)
	if w.tool == toolPen {
		w.pen.PointerMove(ev)
	} else {
		w.edit.PointerMove(ev)
	}
	w.Refresh()
}

func (w *editorWidget) DragEnd() {}

func (w *editorWidget) MouseMoved(e *desktop.MouseEvent) {
	if w.tool != toolEdit {
		return
	}
	// idle moves drive hover detection for double-click insertion
	w.edit.PointerMove(pointerEvent(e.Position))
	w.Refresh()
}

func (w *editorWidget) MouseIn(*desktop.MouseEvent) {}
func (w *editorWidget) MouseOut()                   {}

func (w *editorWidget) DoubleTapped(e *fyne.PointEvent) {
	if w.tool != toolEdit {
		return
	}
	w.edit.PointerMove(pointerEvent(e.Position))
	w.edit.DoubleClick(pointerEvent(e.Position))
	w.Refresh()
}

func (w *editorWidget) keyDown(k tool.Key) {
	if k == "" {
		return
	}
	ev := tool.KeyEvent{Key: k}
	if w.tool == toolPen {
		w.pen.KeyDown(ev)
	} else {
		w.edit.KeyDown(ev)
	}
	w.Refresh()
}

func (w *editorWidget) keyUp(k tool.Key) {
	if k == "" {
		return
	}
	ev := tool.KeyEvent{Key: k}
	if w.tool == toolPen {
		w.pen.KeyUp(ev)
	} else {
		w.edit.KeyUp(ev)
	}
}

func mapKey(name fyne.KeyName) tool.Key {
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return tool.KeyShift
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return tool.KeyAlt
	case fyne.KeyReturn, fyne.KeyEnter:
		return tool.KeyEnter
	case fyne.KeyEscape:
		return tool.KeyEscape
	case fyne.KeyDelete:
		return tool.KeyDelete
	case fyne.KeyBackspace:
		return tool.KeyBackspace
	}
	return ""
}

const editorFlattenSteps = 24

var (
	strokeFallback = color.NRGBA{A: 255}
	handleStroke   = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	anchorFill     = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	selectedFill   = color.NRGBA{R: 230, G: 120, B: 0, A: 255}
	hoverFill      = color.NRGBA{R: 90, G: 140, B: 255, A: 255}
)

func (w *editorWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &editorRenderer{editor: w}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type editorRenderer struct {
	editor     *editorWidget
	background *canvas.Rectangle
}

func (r *editorRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}
	for _, p := range r.editor.store.Paths() {
		objects = append(objects, pathLines(p)...)
		objects = append(objects, pathMarkers(p)...)
	}
	if h := r.editor.edit.CurrentHover(); h != nil && r.editor.tool == toolEdit {
		objects = append(objects, marker(h.Pos, 3, hoverFill))
	}
	return objects
}

// pathLines flattens every segment into canvas lines.
func pathLines(p *path.VectorPath) []fyne.CanvasObject {
	col := nrgba(p.Style.Stroke)
	width := float32(p.Style.StrokeWidth)
	if width <= 0 {
		width = 1
	}
	var out []fyne.CanvasObject
	for _, s := range p.Segments() {
		pts := []geom.Point{s.Start.Position, s.End.Position}
		if s.Kind == path.CubicSegment {
			pts = s.Cubic().Flatten(editorFlattenSteps)
		}
		for i := 0; i+1 < len(pts); i++ {
			l := canvas.NewLine(col)
			l.StrokeWidth = width
			l.Position1 = fynePos(pts[i])
			l.Position2 = fynePos(pts[i+1])
			out = append(out, l)
		}
	}
	return out
}

// pathMarkers draws anchor squares, handle knobs and handle stalks.
func pathMarkers(p *path.VectorPath) []fyne.CanvasObject {
	var out []fyne.CanvasObject
	for _, a := range p.Points {
		for _, side := range []path.Side{path.SideIn, path.SideOut} {
			h := a.HandleAbs(side)
			if h.Eq(a.Position) {
				continue
			}
			stalk := canvas.NewLine(handleStroke)
			stalk.Position1 = fynePos(a.Position)
			stalk.Position2 = fynePos(h)
			out = append(out, stalk, marker(h, 2, handleStroke))
		}
		fill := anchorFill
		if a.Selected {
			fill = selectedFill
		}
		out = append(out, marker(a.Position, 3, fill))
	}
	return out
}

func marker(at geom.Point, half float32, c color.Color) fyne.CanvasObject {
	rect := canvas.NewRectangle(c)
	rect.Move(fyne.NewPos(float32(at.X)-half, float32(at.Y)-half))
	rect.Resize(fyne.NewSize(2*half, 2*half))
	return rect
}

func fynePos(p geom.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func nrgba(c path.Color) color.NRGBA {
	if c.A == 0 {
		return strokeFallback
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *editorRenderer) Refresh()              { canvas.Refresh(r.editor) }
func (r *editorRenderer) Destroy()              {}
func (r *editorRenderer) Layout(size fyne.Size) { r.background.Resize(size) }
func (r *editorRenderer) MinSize() fyne.Size    { return fyne.NewSize(480, 360) }
