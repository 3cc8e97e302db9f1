package curve

// Cursor is a forward-search hint threaded through successive
// SampleWithCursor calls. It stays cheap for non-decreasing query times
// within one sampling pass and must not be reused across structural
// mutations of the curve.
type Cursor int

// SampleWithCursor evaluates the curve at t, advancing the cursor to the
// segment containing t. Repeated calls with non-decreasing times scan
// forward in amortized constant time; a cursor that is ahead of t is
// rewound so the result never depends on the hint. Outside the keyframe
// range the boundary value is returned (flat extrapolation).
func (c *Curve) SampleWithCursor(cur Cursor, t float64) (Cursor, float64) {
	if len(c.keys) == 0 {
		return cur, 0
	}
	if t <= c.keys[0].Time {
		return cur, c.keys[0].Value
	}
	last := Cursor(len(c.keys) - 1)
	if cur < 0 {
		cur = 0
	} else if cur > last {
		cur = last
	}
	for cur > 0 && c.keys[cur].Time > t {
		cur--
	}
	for cur < last && c.keys[cur+1].Time <= t {
		cur++
	}
	if cur == last {
		return cur, c.keys[last].Value
	}

	left, right := c.keys[cur], c.keys[cur+1]
	switch left.Interpolation {
	case Step:
		return cur, left.Value
	case Linear:
		s := (t - left.Time) / (right.Time - left.Time)
		return cur, left.Value + (right.Value-left.Value)*s
	default:
		return cur, hermite(left, right, t)
	}
}

// Sample is the single-shot entry point, with the cursor reset to the
// start of the sequence.
func (c *Curve) Sample(t float64) float64 {
	_, v := c.SampleWithCursor(0, t)
	return v
}

// hermite evaluates the cubic Hermite basis on the unit interval, with the
// endpoint slopes scaled by the segment's time span.
func hermite(left, right Keyframe, t float64) float64 {
	dt := right.Time - left.Time
	s := (t - left.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*left.Value + h10*dt*left.OutTangent + h01*right.Value + h11*dt*right.InTangent
}
