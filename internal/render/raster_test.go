/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"bytes"
	"testing"

	"penkit/internal/geom"
	"penkit/internal/path"
)

func TestClearProducesWhiteSurface(t *testing.T) {
	r := NewRaster(32, 32)
	px := r.Image().RGBAAt(0, 0)
	if px.R != 255 || px.G != 255 || px.B != 255 || px.A != 255 {
		t.Fatalf("corner pixel = %+v, want white", px)
	}
	if b := r.Image().Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds = %v", b)
	}
}

func TestRenderPathsStrokesLine(t *testing.T) {
	st := path.NewStore()
	p := st.CreatePath(path.DefaultStyle())
	st.AddPoint(p.ID, geom.Pt(10, 16))
	st.AddPoint(p.ID, geom.Pt(54, 16))
	p.Style.StrokeWidth = 4

	r := NewRaster(64, 32)
	r.RenderPaths(st.Paths())

	on := r.Image().RGBAAt(32, 16)
	if on.R > 60 || on.G > 60 || on.B > 60 {
		t.Fatalf("pixel on the stroke = %+v, want near black", on)
	}
	off := r.Image().RGBAAt(32, 28)
	if off.R != 255 || off.G != 255 || off.B != 255 {
		t.Fatalf("pixel off the stroke = %+v, want white", off)
	}
}

func TestRenderPathsStrokesMixedSegments(t *testing.T) {
	st := path.NewStore()
	p := st.CreatePath(path.DefaultStyle())
	a, _ := st.AddPoint(p.ID, geom.Pt(10, 16))
	st.AddPoint(p.ID, geom.Pt(32, 16))
	st.AddPoint(p.ID, geom.Pt(54, 16))
	// A collinear out-handle makes the first segment cubic while keeping it
	// on y=16, so the pixel checks stay exact. The second segment is a line.
	st.UpdateHandle(p.ID, a.ID, path.SideOut, geom.Pt(20, 16))
	p.Style.StrokeWidth = 4

	r := NewRaster(64, 32)
	r.RenderPaths(st.Paths())

	onCurve := r.Image().RGBAAt(20, 16)
	if onCurve.R > 60 || onCurve.G > 60 || onCurve.B > 60 {
		t.Fatalf("pixel on the curved segment = %+v, want near black", onCurve)
	}
	onLine := r.Image().RGBAAt(43, 16)
	if onLine.R > 60 || onLine.G > 60 || onLine.B > 60 {
		t.Fatalf("pixel on the line segment = %+v, want near black", onLine)
	}
}

func TestRenderPathsFillsClosedPath(t *testing.T) {
	st := path.NewStore()
	style := path.DefaultStyle()
	style.HasFill = true
	style.Fill = path.Color{R: 255, A: 255}
	p := st.CreatePath(style)
	st.AddPoint(p.ID, geom.Pt(8, 8))
	st.AddPoint(p.ID, geom.Pt(56, 8))
	st.AddPoint(p.ID, geom.Pt(56, 56))
	st.AddPoint(p.ID, geom.Pt(8, 56))
	st.SetClosed(p.ID, true)

	r := NewRaster(64, 64)
	r.RenderPaths(st.Paths())

	inside := r.Image().RGBAAt(32, 32)
	if inside.R < 200 || inside.G > 60 || inside.B > 60 {
		t.Fatalf("interior pixel = %+v, want red", inside)
	}
	outside := r.Image().RGBAAt(2, 2)
	if outside.R != 255 || outside.G != 255 || outside.B != 255 {
		t.Fatalf("exterior pixel = %+v, want white", outside)
	}
}

func TestRenderHandlesMarksAnchors(t *testing.T) {
	st := path.NewStore()
	p := st.CreatePath(path.DefaultStyle())
	st.AddPoint(p.ID, geom.Pt(16, 16))
	st.AddPoint(p.ID, geom.Pt(48, 16))

	r := NewRaster(64, 32)
	r.RenderHandles(st.Paths())

	marker := r.Image().RGBAAt(16, 16)
	if marker.R == 255 && marker.G == 255 && marker.B == 255 {
		t.Fatalf("anchor marker missing at (16,16)")
	}
}

func TestRenderPreviewIgnoresNilAndShortPaths(t *testing.T) {
	r := NewRaster(16, 16)
	r.RenderPreview(nil)

	st := path.NewStore()
	p := st.CreatePath(path.DefaultStyle())
	st.AddPoint(p.ID, geom.Pt(8, 8))
	r.RenderPreview(p)

	px := r.Image().RGBAAt(8, 8)
	if px.R != 255 || px.G != 255 || px.B != 255 {
		t.Fatalf("single-point preview must not draw, got %+v", px)
	}
}

func TestEncodePNGWritesSignature(t *testing.T) {
	r := NewRaster(8, 8)
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Fatalf("output does not start with the PNG signature")
	}
}
