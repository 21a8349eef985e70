/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package path

// Styling attached to a vector path. Purely descriptive; the core never
// rasterizes, it only hands these through to renderer backends and exporters.

type Color struct{ R, G, B, A uint8 }

var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type Style struct {
	Fill        Color
	HasFill     bool
	Stroke      Color
	StrokeWidth float64
	StartCap    LineCap
	EndCap      LineCap
}

// DefaultStyle is a hairline black stroke with no fill.
func DefaultStyle() Style {
	return Style{Stroke: Black, StrokeWidth: 1, StartCap: CapButt, EndCap: CapButt}
}
