package editor

import "math"

// maxSlope bounds tangent slopes so a near-vertical handle never produces
// an infinite value.
const maxSlope = 1e5

// HandleDir converts a tangent slope into a curve-space unit direction for
// the outgoing handle; the incoming handle uses the negation. Inverse of
// HandleSlope for any |slope| <= maxSlope.
func HandleDir(slope float64) Vec {
	n := math.Hypot(1, slope)
	return Vec{T: 1 / n, V: slope / n}
}

// HandleSlope converts a curve-space handle vector back into a slope,
// clamped to ±maxSlope. The horizontal component keeps its sign with its
// magnitude floored, so a vertical drag saturates instead of flipping.
func HandleSlope(v Vec) float64 {
	dt := v.T
	if math.Abs(dt) < 1e-12 {
		dt = math.Copysign(1e-12, dt)
	}
	slope := v.V / dt
	if slope > maxSlope {
		return maxSlope
	}
	if slope < -maxSlope {
		return -maxSlope
	}
	return slope
}
