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
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"penkit/internal/config"
	"penkit/internal/document"
	"penkit/internal/export"
	applog "penkit/internal/log"
	"penkit/internal/path"
)

// Run starts the desktop editor. Pass an optional document file to open
// immediately.
func Run(docPath string) error {
	log := applog.WithComponent("ui")
	cfg, err := config.Load()
	if err != nil {
		log.Warn("config load failed, using defaults", slog.String("error", err.Error()))
		cfg = config.Defaults()
	}

	st := path.NewStore()
	if docPath != "" {
		doc, err := document.Load(docPath)
		if err != nil {
			return fmt.Errorf("open document: %w", err)
		}
		doc.Apply(st)
	}

	a := app.New()
	win := a.NewWindow("Penkit")

	editor := newEditorWidget(st, cfg.Editor)
	status := widget.NewLabel("Pen")

	penBtn := widget.NewButton("Pen", func() {
		editor.setTool(toolPen)
		status.SetText("Pen")
	})
	editBtn := widget.NewButton("Edit", func() {
		editor.setTool(toolEdit)
		status.SetText("Edit")
	})
	exportBtn := widget.NewButton("Export SVG", func() {
		dialog.ShowFileSave(func(wr fyne.URIWriteCloser, err error) {
			if err != nil || wr == nil {
				return
			}
			out := wr.URI().Path()
			_ = wr.Close()
			if err := export.ExportSVG(st, out, export.SVGOptions{}); err != nil {
				dialog.ShowError(err, win)
				return
			}
			status.SetText("Exported " + out)
		}, win)
	})

	toolbar := container.NewHBox(penBtn, editBtn, exportBtn)
	win.SetContent(container.NewBorder(toolbar, status, nil, nil, editor))

	if dc, ok := win.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) { editor.keyDown(mapKey(ev.Name)) })
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) { editor.keyUp(mapKey(ev.Name)) })
	}

	win.Resize(fyne.NewSize(900, 700))
	log.Info("editor window opened")
	win.ShowAndRun()
	return nil
}
