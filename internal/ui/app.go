package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp builds the window around the curve widget and blocks until the
// window closes.
func RunApp(title, status string, size fyne.Size, w *CurveWidget) {
	myApp := app.New()
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(size)

	statusBar := widget.NewLabel(status)
	w.OnStatus = func(text string) {
		fyne.Do(func() {
			statusBar.SetText(text)
		})
	}

	content := container.NewBorder(NewToolbar(w, myWindow), statusBar, nil, nil, w)
	myWindow.SetContent(content)
	myWindow.Canvas().Focus(w)
	myWindow.ShowAndRun()
}
