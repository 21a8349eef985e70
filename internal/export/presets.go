/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"penkit/internal/path"
)

// PresetName represents a named export preset.
type PresetName string

const (
	PresetWeb   PresetName = "web"
	PresetPrint PresetName = "print"
)

// BatchOptions controls batch export across multiple formats.
//
// Path semantics:
//   - Outputs are written under OutDir as <base>.svg, <base>.pdf, <base>.png.
//   - Formats empty means the preset's defaults.
type BatchOptions struct {
	Preset   PresetName
	Formats  []string // allowed: svg, pdf, png; empty means preset defaults
	BaseName string   // output file base name, default "paths"
	Margin   float64
}

// BatchExport writes the store to every requested format.
func BatchExport(st *path.Store, outDir string, opt BatchOptions) error {
	if st == nil {
		return fmt.Errorf("store is nil")
	}
	requested := opt.Formats
	if len(requested) == 0 {
		requested = presetDefaultFormats(opt.Preset)
	}
	base := opt.BaseName
	if base == "" {
		base = "paths"
	}
	// Normalize into a fresh slice; the caller's Formats stays untouched.
	formats := make([]string, len(requested))
	for i, f := range requested {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	for _, f := range formats {
		out := filepath.Join(outDir, base+"."+f)
		switch f {
		case "svg":
			if err := ExportSVG(st, out, SVGOptions{Margin: opt.Margin}); err != nil {
				return fmt.Errorf("svg: %w", err)
			}
		case "pdf":
			if err := ExportPDF(st, out, PDFOptions{Margin: opt.Margin}); err != nil {
				return fmt.Errorf("pdf: %w", err)
			}
		case "png":
			if err := ExportPNG(st, out, PNGOptions{Margin: opt.Margin}); err != nil {
				return fmt.Errorf("png: %w", err)
			}
		default:
			return fmt.Errorf("unknown format: %s", f)
		}
	}
	return nil
}

func presetDefaultFormats(p PresetName) []string {
	switch p {
	case PresetWeb:
		return []string{"svg", "png"}
	case PresetPrint:
		return []string{"pdf", "svg"}
	default:
		return []string{"svg"}
	}
}
