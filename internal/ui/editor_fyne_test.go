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
	"testing"

	"fyne.io/fyne/v2/canvas"

	"penkit/internal/geom"
	"penkit/internal/path"
)

func TestPathLinesFlattensSegments(t *testing.T) {
	st := path.NewStore()
	p := st.CreatePath(path.DefaultStyle())
	a, _ := st.AddPoint(p.ID, geom.Pt(0, 0))
	st.AddPoint(p.ID, geom.Pt(50, 0))
	st.AddPoint(p.ID, geom.Pt(100, 0))
	st.UpdateHandle(p.ID, a.ID, path.SideOut, geom.Pt(20, 30))

	objects := pathLines(p)
	// The curved first segment flattens into editorFlattenSteps lines, the
	// straight second segment contributes exactly one.
	want := editorFlattenSteps + 1
	if len(objects) != want {
		t.Fatalf("line count = %d, want %d", len(objects), want)
	}

	first, ok := objects[0].(*canvas.Line)
	if !ok {
		t.Fatalf("object 0 is %T, want *canvas.Line", objects[0])
	}
	if first.Position1.X != 0 || first.Position1.Y != 0 {
		t.Fatalf("first line starts at %v, want the anchor position", first.Position1)
	}

	last, ok := objects[len(objects)-1].(*canvas.Line)
	if !ok {
		t.Fatalf("last object is %T, want *canvas.Line", objects[len(objects)-1])
	}
	if last.Position2.X != 100 || last.Position2.Y != 0 {
		t.Fatalf("last line ends at %v, want the final anchor position", last.Position2)
	}
}
