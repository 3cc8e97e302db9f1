package editor

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

var testBounds = fyne.NewSize(700, 300)

func testViewport() *Viewport {
	return NewViewport(Vec{T: 0, V: -0.5}, Vec{T: 2, V: 3.5})
}

func TestToScreenYInversion(t *testing.T) {
	vp := testViewport()

	bottomLeft := vp.ToScreen(Vec{T: 0, V: -0.5}, testBounds)
	assert.InDelta(t, 0, bottomLeft.X, 1e-3)
	assert.InDelta(t, 300, bottomLeft.Y, 1e-3)

	topRight := vp.ToScreen(Vec{T: 2, V: 3.0}, testBounds)
	assert.InDelta(t, 700, topRight.X, 1e-3)
	assert.InDelta(t, 0, topRight.Y, 1e-3)
}

func TestScreenCurveRoundTrip(t *testing.T) {
	vp := testViewport()
	for _, p := range []fyne.Position{
		fyne.NewPos(0, 0),
		fyne.NewPos(350, 150),
		fyne.NewPos(699, 1),
		fyne.NewPos(123.5, 250.25),
	} {
		back := vp.ToScreen(vp.ToCurve(p, testBounds), testBounds)
		assert.InDelta(t, p.X, back.X, 1e-2)
		assert.InDelta(t, p.Y, back.Y, 1e-2)
	}
}

func TestPanFollowsPointer(t *testing.T) {
	vp := testViewport()
	under := vp.ToCurve(fyne.NewPos(100, 100), testBounds)

	// Dragging 70px right should shift the visible window a tenth of its
	// time range to the left.
	vp.Pan(fyne.NewPos(70, 0), testBounds)
	assert.InDelta(t, -0.2, vp.Offset.T, 1e-9)
	assert.InDelta(t, -0.5, vp.Offset.V, 1e-9)

	// The point that was under x=100 is now under x=170.
	moved := vp.ToCurve(fyne.NewPos(170, 100), testBounds)
	assert.InDelta(t, under.T, moved.T, 1e-9)

	// Dragging down moves the window up in value space.
	vp.Pan(fyne.NewPos(0, 30), testBounds)
	assert.InDelta(t, -0.15, vp.Offset.V, 1e-9)
}

func TestZoomAnchorsPointer(t *testing.T) {
	for _, valueAxis := range []bool{false, true} {
		vp := testViewport()
		pointer := fyne.NewPos(520, 80)
		before := vp.ToCurve(pointer, testBounds)

		vp.Zoom(40, pointer, testBounds, valueAxis)
		after := vp.ToCurve(pointer, testBounds)
		assert.InDelta(t, before.T, after.T, 1e-9, "valueAxis=%v", valueAxis)
		assert.InDelta(t, before.V, after.V, 1e-9, "valueAxis=%v", valueAxis)

		vp.Zoom(-25, pointer, testBounds, valueAxis)
		after = vp.ToCurve(pointer, testBounds)
		assert.InDelta(t, before.T, after.T, 1e-9, "valueAxis=%v", valueAxis)
		assert.InDelta(t, before.V, after.V, 1e-9, "valueAxis=%v", valueAxis)
	}
}

func TestZoomSelectsAxis(t *testing.T) {
	vp := testViewport()
	vp.Zoom(40, fyne.NewPos(350, 150), testBounds, false)
	assert.Less(t, vp.Range.T, 2.0)
	assert.Equal(t, 3.5, vp.Range.V)

	vp = testViewport()
	vp.Zoom(40, fyne.NewPos(350, 150), testBounds, true)
	assert.Equal(t, 2.0, vp.Range.T)
	assert.Less(t, vp.Range.V, 3.5)
}

func TestDegenerateRangeClamped(t *testing.T) {
	vp := NewViewport(Vec{}, Vec{T: -1, V: 0})
	assert.Greater(t, vp.Range.T, 0.0)
	assert.Greater(t, vp.Range.V, 0.0)

	// A huge zoom-in cannot collapse the range to zero.
	vp = testViewport()
	vp.Zoom(1e9, fyne.NewPos(350, 150), testBounds, false)
	assert.Greater(t, vp.Range.T, 0.0)
}
