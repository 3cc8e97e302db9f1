package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlopeDirectionRoundTrip(t *testing.T) {
	for _, slope := range []float64{0, 1, -1, 0.25, -17.5, 1e3, -1e3, maxSlope, -maxSlope} {
		got := HandleSlope(HandleDir(slope))
		assert.InDelta(t, slope, got, 1e-9*(1+slope*slope), "slope %v", slope)
	}
}

func TestHandleSlopeClampsNearVertical(t *testing.T) {
	assert.Equal(t, maxSlope, HandleSlope(Vec{T: 0, V: 1}))
	assert.Equal(t, maxSlope, HandleSlope(Vec{T: 1e-15, V: 1}))
	assert.Equal(t, -maxSlope, HandleSlope(Vec{T: 1e-15, V: -1}))
}

func TestHandleSlopeKeepsHorizontalSign(t *testing.T) {
	// Dragging the handle to the lower-left still means a positive slope:
	// both components are negative and the signs cancel.
	assert.InDelta(t, 1.0, HandleSlope(Vec{T: -0.5, V: -0.5}), 1e-12)
	assert.InDelta(t, -1.0, HandleSlope(Vec{T: -0.5, V: 0.5}), 1e-12)
}
