package editor

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Styling shared by the frame emitter, the Fyne renderer and the PDF
// exporter.
var (
	ColorCurve    = color.NRGBA{R: 220, G: 60, B: 60, A: 255}
	ColorTangent  = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	ColorHovered  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorSelected = color.NRGBA{R: 250, G: 200, B: 40, A: 255}
	ColorPreview  = color.NRGBA{R: 150, G: 150, B: 150, A: 180}
)

const (
	keyframeRadius  = 3.0
	handleRadius    = 2.0
	previewRadius   = 2.0
	hitRadius       = 6.0
	handleLength    = 50.0
	dragThresholdPx = 0.5
)

// Line is a stroked segment in screen space.
type Line struct {
	P1, P2 fyne.Position
	Color  color.Color
	Width  float32
}

// Dot is a filled circle in screen space.
type Dot struct {
	Center fyne.Position
	Radius float32
	Color  color.Color
}

// DrawList is one frame's render output, consumed in order (lines under
// dots, both in append order).
type DrawList struct {
	Lines []Line
	Dots  []Dot
}

func (d *DrawList) line(p1, p2 fyne.Position, c color.Color) {
	d.Lines = append(d.Lines, Line{P1: p1, P2: p2, Color: c, Width: 1})
}

func (d *DrawList) dot(center fyne.Position, radius float32, c color.Color) {
	d.Dots = append(d.Dots, Dot{Center: center, Radius: radius, Color: c})
}
