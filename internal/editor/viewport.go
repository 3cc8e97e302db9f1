package editor

import "fyne.io/fyne/v2"

// minRange keeps a degenerate viewport out of division by zero.
const minRange = 1e-9

// Vec is a point or extent in curve space: T along the time axis, V along
// the value axis.
type Vec struct {
	T float64
	V float64
}

// Viewport is the visible curve-space rectangle. Offset is the bottom-left
// corner (lowest time, lowest value); Range the spans along both axes.
// Screen space has Y growing downward, so every mapping inverts the value
// axis.
type Viewport struct {
	Offset Vec
	Range  Vec
}

func NewViewport(offset, rng Vec) *Viewport {
	vp := &Viewport{Offset: offset, Range: rng}
	vp.clampRange()
	return vp
}

func (vp *Viewport) clampRange() {
	if vp.Range.T < minRange {
		vp.Range.T = minRange
	}
	if vp.Range.V < minRange {
		vp.Range.V = minRange
	}
}

// ToScreen maps a curve-space point onto the pixel rectangle (0,0)-bounds.
func (vp *Viewport) ToScreen(p Vec, bounds fyne.Size) fyne.Position {
	x := (p.T - vp.Offset.T) / vp.Range.T * float64(bounds.Width)
	y := (1 - (p.V-vp.Offset.V)/vp.Range.V) * float64(bounds.Height)
	return fyne.NewPos(float32(x), float32(y))
}

// ToCurve maps a pixel position back into curve space.
func (vp *Viewport) ToCurve(pos fyne.Position, bounds fyne.Size) Vec {
	return Vec{
		T: vp.TimeAt(pos.X, bounds),
		V: vp.ValueAt(pos.Y, bounds),
	}
}

func (vp *Viewport) TimeAt(x float32, bounds fyne.Size) float64 {
	return vp.Offset.T + float64(x)/float64(bounds.Width)*vp.Range.T
}

func (vp *Viewport) ValueAt(y float32, bounds fyne.Size) float64 {
	return vp.Offset.V + (1-float64(y)/float64(bounds.Height))*vp.Range.V
}

// Pan shifts the viewport by a screen-space drag delta. The content
// follows the pointer, so the offset moves against the drag on the time
// axis and with it on the value axis.
func (vp *Viewport) Pan(delta fyne.Position, bounds fyne.Size) {
	vp.Offset.T -= float64(delta.X) / float64(bounds.Width) * vp.Range.T
	vp.Offset.V += float64(delta.Y) / float64(bounds.Height) * vp.Range.V
}

// Zoom rescales one axis by a scroll delta, keeping the curve-space point
// under the pointer fixed. valueAxis selects the vertical axis; otherwise
// the time axis scales.
func (vp *Viewport) Zoom(scroll float32, pointer fyne.Position, bounds fyne.Size, valueAxis bool) {
	if scroll == 0 {
		return
	}
	if valueAxis {
		frac := 1 - float64(pointer.Y)/float64(bounds.Height)
		old := vp.Range.V
		vp.Range.V -= float64(scroll) / float64(bounds.Height) * old
		vp.clampRange()
		vp.Offset.V += frac * (old - vp.Range.V)
	} else {
		frac := float64(pointer.X) / float64(bounds.Width)
		old := vp.Range.T
		vp.Range.T -= float64(scroll) / float64(bounds.Width) * old
		vp.clampRange()
		vp.Offset.T += frac * (old - vp.Range.T)
	}
}
