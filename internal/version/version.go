/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package version exposes build-time version information.
package version

import "fmt"

// These are intended to be overridden at build time via -ldflags, e.g.
//
//	go build -ldflags "-X penkit/internal/version.Version=v0.2.0 -X penkit/internal/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "v0.1.0-dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns a single human-readable version line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
