package export

import (
	"io"
	"os"

	"fyne.io/fyne/v2"
	"github.com/jung-kurt/gofpdf"

	"CurveLab/internal/curve"
	"CurveLab/internal/editor"
)

const (
	pageMargin = 10.0 // mm
	plotWidth  = 277.0
	plotHeight = 190.0
	markerSize = 1.2
	steps      = 256
)

// WritePDF renders the viewport's slice of the curve onto one landscape
// A4 page: sampled polyline plus keyframe markers, in the editor colors.
func WritePDF(w io.Writer, c *curve.Curve, vp *editor.Viewport) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	bounds := fyne.NewSize(plotWidth, plotHeight)

	p.SetDrawColor(120, 120, 120)
	p.SetLineWidth(0.2)
	p.Rect(pageMargin, pageMargin, plotWidth, plotHeight, "D")
	p.ClipRect(pageMargin, pageMargin, plotWidth, plotHeight, false)

	p.SetDrawColor(220, 60, 60)
	p.SetLineWidth(0.4)
	t0 := vp.Offset.T
	span := vp.Range.T
	cur, v0 := c.SampleWithCursor(0, t0)
	prev := vp.ToScreen(editor.Vec{T: t0, V: v0}, bounds)
	for i := 1; i < steps; i++ {
		t := t0 + span*float64(i)/float64(steps-1)
		var v float64
		cur, v = c.SampleWithCursor(cur, t)
		pos := vp.ToScreen(editor.Vec{T: t, V: v}, bounds)
		p.Line(
			pageMargin+float64(prev.X), pageMargin+float64(prev.Y),
			pageMargin+float64(pos.X), pageMargin+float64(pos.Y),
		)
		prev = pos
	}

	p.SetFillColor(220, 60, 60)
	for i := 0; i < c.Len(); i++ {
		pos := vp.ToScreen(editor.Vec{T: c.GetTime(i), V: c.GetValue(i)}, bounds)
		p.Circle(pageMargin+float64(pos.X), pageMargin+float64(pos.Y), markerSize, "F")
	}
	p.ClipEnd()

	return p.Output(w)
}

// ExportFile writes the PDF straight to a path, for callers outside the
// file-dialog flow.
func ExportFile(path string, c *curve.Curve, vp *editor.Viewport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WritePDF(f, c, vp)
}
