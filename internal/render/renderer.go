/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render defines the display contract between the editing core and
// concrete backends, plus a PNG raster backend.
package render

import "penkit/internal/path"

// Renderer is the capability interface a display backend implements. Callers
// push store snapshots through it; the editing core never imports a concrete
// backend.
type Renderer interface {
	// RenderPaths draws the committed path geometry.
	RenderPaths(paths []*path.VectorPath)
	// RenderHandles draws editing decorations: anchor markers and visible
	// handle lines.
	RenderHandles(paths []*path.VectorPath)
	// RenderPreview draws the path currently under construction.
	RenderPreview(p *path.VectorPath)
	// Update presents everything drawn since the last Clear.
	Update()
	// Clear resets the drawing surface.
	Clear()
}
