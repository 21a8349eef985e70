/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import "penkit/internal/path"

// Encode returns the path's description in the interchange grammar, or ""
// for a path with fewer than two anchors. Re-importing the output yields a
// geometrically equivalent path; byte identity is not guaranteed because
// curve commands are re-expressed from relative handle storage.
func Encode(p *path.VectorPath) string {
	if p == nil {
		return ""
	}
	return p.SVGPath()
}
