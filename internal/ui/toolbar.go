package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"CurveLab/internal/export"
)

func NewToolbar(w *CurveWidget, win fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomFitIcon(), w.ResetView),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			savePDF(w, win)
		}),
	)

	hint := widget.NewLabel("I insert · D delete · right-click modes · middle-drag pan · scroll zoom (Ctrl = value axis)")

	return container.NewHBox(tb, widget.NewSeparator(), hint, layout.NewSpacer())
}

func savePDF(w *CurveWidget, win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			w.SetStatus("Export failed: " + err.Error())
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("Error closing export writer: %v", err)
			}
		}()

		sess := w.Session()
		if err := export.WritePDF(writer, sess.Curve, sess.View); err != nil {
			log.Printf("PDF export failed: %v", err)
			w.SetStatus("Export failed: " + err.Error())
			return
		}
		w.SetStatus("Exported " + writer.URI().Name())
	}, win)
}
