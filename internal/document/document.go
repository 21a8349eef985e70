/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package document reads JSON path documents: collections of path
// descriptions with per-entry styling. Documents are validated against the
// embedded schema before anything touches the store, and entries that fail
// individually are skipped rather than failing the batch.
package document

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	applog "penkit/internal/log"
	"penkit/internal/path"
	"penkit/internal/svgpath"
)

//go:embed schema.json
var schemaBytes []byte

// CurrentVersion is the document format version this build writes.
const CurrentVersion = 1

// Document is the on-disk JSON format.
type Document struct {
	Version int         `json:"version,omitempty"`
	Paths   []PathEntry `json:"paths"`
}

// PathEntry describes one path: the grammar text plus optional styling.
// Colors are hex strings (#rgb, #rrggbb or #rrggbbaa); an empty fill means
// the path is not filled.
type PathEntry struct {
	Data        string  `json:"d"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Fill        string  `json:"fill,omitempty"`
}

// Parse validates data against the embedded schema and decodes it.
func Parse(data []byte) (*Document, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	docLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	if !result.Valid() {
		var b strings.Builder
		for i, e := range result.Errors() {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(e.String())
		}
		return nil, fmt.Errorf("document does not conform to schema: %s", b.String())
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &d, nil
}

// Load reads and parses a document file.
func Load(name string) (*Document, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(b)
}

// Save writes the document in human-readable form.
func Save(name string, d *Document) error {
	if d == nil {
		return errors.New("nil document")
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Apply imports every entry into the store and returns the paths that were
// actually constructed. Entries whose grammar or styling cannot be read are
// logged and skipped; the rest of the batch proceeds.
func (d *Document) Apply(st *path.Store) []*path.VectorPath {
	log := applog.WithComponent("document")
	var out []*path.VectorPath
	for i, e := range d.Paths {
		style, err := e.style()
		if err != nil {
			log.Warn("skipping entry with bad styling", slog.Int("entry", i), slog.String("error", err.Error()))
			continue
		}
		p, err := svgpath.Import(st, e.Data, style)
		if err != nil {
			log.Warn("skipping entry that failed to parse", slog.Int("entry", i), slog.String("error", err.Error()))
			continue
		}
		out = append(out, p)
	}
	log.Info("document applied", slog.Int("imported", len(out)), slog.Int("skipped", len(d.Paths)-len(out)))
	return out
}

// style resolves the entry's styling attributes over the defaults.
func (e PathEntry) style() (path.Style, error) {
	s := path.DefaultStyle()
	if e.Stroke != "" {
		c, err := ParseColor(e.Stroke)
		if err != nil {
			return s, fmt.Errorf("stroke: %w", err)
		}
		s.Stroke = c
	}
	if e.StrokeWidth > 0 {
		s.StrokeWidth = e.StrokeWidth
	}
	if e.Fill != "" {
		c, err := ParseColor(e.Fill)
		if err != nil {
			return s, fmt.Errorf("fill: %w", err)
		}
		s.Fill = c
		s.HasFill = true
	}
	return s, nil
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa hex colors.
func ParseColor(s string) (path.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return path.Color{}, fmt.Errorf("color %q: must start with #", s)
	}
	hex := s[1:]
	var r, g, b, a uint8
	a = 255
	switch len(hex) {
	case 3:
		rn, err1 := nibble(hex[0])
		gn, err2 := nibble(hex[1])
		bn, err3 := nibble(hex[2])
		if err := firstErr(err1, err2, err3); err != nil {
			return path.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		r, g, b = rn*17, gn*17, bn*17
	case 8:
		an, err := byteAt(hex, 6)
		if err != nil {
			return path.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		a = an
		fallthrough
	case 6:
		rn, err1 := byteAt(hex, 0)
		gn, err2 := byteAt(hex, 2)
		bn, err3 := byteAt(hex, 4)
		if err := firstErr(err1, err2, err3); err != nil {
			return path.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		r, g, b = rn, gn, bn
	default:
		return path.Color{}, fmt.Errorf("color %q: unsupported length", s)
	}
	return path.Color{R: r, G: g, B: b, A: a}, nil
}

func byteAt(hex string, i int) (uint8, error) {
	hi, err := nibble(hex[i])
	if err != nil {
		return 0, err
	}
	lo, err := nibble(hex[i+1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func nibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", c)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
