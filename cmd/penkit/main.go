/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"penkit/internal/crash"
	"penkit/internal/document"
	"penkit/internal/export"
	applog "penkit/internal/log"
	"penkit/internal/path"
	"penkit/internal/ui"
	"penkit/internal/version"
)

func usage() {
	fmt.Println("Penkit — pen-tool vector outline editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  penkit version|-v|--version                 Show version")
	fmt.Println("  penkit import <doc.json>                    Read a path document and print a summary")
	fmt.Println("  penkit export <doc.json> <out>              Export to the format given by <out>'s extension (svg, pdf, png)")
	fmt.Println("  penkit ui [<doc.json>]                      Launch desktop editor (build with -tags fyne for full UI)")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer func() { crash.Recover("") }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Penkit — pen-tool vector outline editor")
			fmt.Println(version.String())
			return
		case "import":
			if len(args) < 3 {
				fmt.Println("import requires <doc.json>")
				usage()
				os.Exit(2)
			}
			st, err := loadDocument(args[2])
			if err != nil {
				l.Error("import failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			printSummary(st)
			return
		case "export":
			if len(args) < 4 {
				fmt.Println("export requires <doc.json> and <out>")
				usage()
				os.Exit(2)
			}
			st, err := loadDocument(args[2])
			if err != nil {
				l.Error("import before export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			out := args[3]
			l.Info("export", slog.String("out", out))
			if err := exportTo(st, out); err != nil {
				l.Error("export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote", out)
			return
		case "ui":
			var doc string
			if len(args) >= 3 {
				doc = args[2]
			}
			if err := ui.Run(doc); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

func loadDocument(name string) (*path.Store, error) {
	abs, _ := filepath.Abs(name)
	doc, err := document.Load(abs)
	if err != nil {
		return nil, err
	}
	st := path.NewStore()
	doc.Apply(st)
	return st, nil
}

func printSummary(st *path.Store) {
	paths := st.Paths()
	fmt.Printf("Paths: %d\n", len(paths))
	for _, p := range paths {
		state := "open"
		if p.Closed {
			state = "closed"
		}
		fmt.Printf("  %s: %d anchors, %s\n", p.ID, len(p.Points), state)
	}
}

func exportTo(st *path.Store, out string) error {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".svg":
		return export.ExportSVG(st, out, export.SVGOptions{})
	case ".pdf":
		return export.ExportPDF(st, out, export.PDFOptions{Title: "Penkit export"})
	case ".png":
		return export.ExportPNG(st, out, export.PNGOptions{})
	}
	return fmt.Errorf("unsupported output format: %s", filepath.Ext(out))
}
