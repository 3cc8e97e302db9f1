package curve

import (
	"fmt"
	"sort"
)

// timeEpsilon is the minimum spacing between two keyframe times. Inserts
// closer than this to an existing keyframe are rejected; reslotted
// keyframes are nudged by it to keep ordering strict.
const timeEpsilon = 1e-6

// Curve is an ordered sequence of keyframes sorted by strictly increasing
// time. All mutators preserve that invariant and keep auto tangents of the
// touched neighborhood up to date. An out-of-range index makes a mutator a
// no-op rather than a fault.
type Curve struct {
	keys []Keyframe
}

func New() *Curve {
	return &Curve{}
}

// WithAutoTangents builds a curve from parallel time/value slices, every
// keyframe Hermite with auto tangents.
func WithAutoTangents(times, values []float64) (*Curve, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("mismatched lengths: %d times, %d values", len(times), len(values))
	}
	c := New()
	for i := range times {
		if i > 0 && times[i] <= times[i-1] {
			return nil, fmt.Errorf("times must strictly increase: t[%d]=%v after t[%d]=%v", i, times[i], i-1, times[i-1])
		}
		c.keys = append(c.keys, newKeyframe(times[i], values[i], Hermite))
	}
	for i := range c.keys {
		c.refreshAuto(i)
	}
	return c, nil
}

func (c *Curve) Len() int { return len(c.keys) }

func (c *Curve) valid(i int) bool { return i >= 0 && i < len(c.keys) }

func (c *Curve) GetID(i int) string {
	if !c.valid(i) {
		return ""
	}
	return c.keys[i].ID
}

func (c *Curve) GetTime(i int) float64 {
	if !c.valid(i) {
		return 0
	}
	return c.keys[i].Time
}

func (c *Curve) GetValue(i int) float64 {
	if !c.valid(i) {
		return 0
	}
	return c.keys[i].Value
}

func (c *Curve) GetInterpolation(i int) Interpolation {
	if !c.valid(i) {
		return Hermite
	}
	return c.keys[i].Interpolation
}

func (c *Curve) GetTangentControl(i int) TangentControl {
	if !c.valid(i) {
		return TangentAuto
	}
	return c.keys[i].TangentControl
}

// GetInOutTangent returns the incoming and outgoing slopes at keyframe i.
func (c *Curve) GetInOutTangent(i int) (in, out float64) {
	if !c.valid(i) {
		return 0, 0
	}
	return c.keys[i].InTangent, c.keys[i].OutTangent
}

// Keyframes returns a copy of the sequence.
func (c *Curve) Keyframes() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Replace swaps the whole sequence, sorting defensively. Used by mirror
// clients applying a remote snapshot; any outstanding cursor or index is
// invalid afterwards.
func (c *Curve) Replace(keys []Keyframe) {
	c.keys = make([]Keyframe, len(keys))
	copy(c.keys, keys)
	sort.SliceStable(c.keys, func(a, b int) bool { return c.keys[a].Time < c.keys[b].Time })
}

// Insert adds a keyframe keeping the sequence sorted and returns its index.
// A time within timeEpsilon of an existing keyframe is rejected (ok=false).
// New keyframes start with auto tangent control.
func (c *Curve) Insert(time, value float64, interp Interpolation) (index int, ok bool) {
	at := c.slot(time)
	if c.collides(at, time) {
		return -1, false
	}
	kf := newKeyframe(time, value, interp)
	c.keys = append(c.keys, Keyframe{})
	copy(c.keys[at+1:], c.keys[at:])
	c.keys[at] = kf
	c.refreshAutoAround(at)
	return at, true
}

// Remove deletes the keyframe at i, a no-op when out of range.
func (c *Curve) Remove(i int) {
	if !c.valid(i) {
		return
	}
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	c.refreshAuto(i - 1)
	c.refreshAuto(i)
}

// SetValue updates the dependent value at i.
func (c *Curve) SetValue(i int, value float64) {
	if !c.valid(i) {
		return
	}
	c.keys[i].Value = value
	c.refreshAutoAround(i)
}

// SetTime moves keyframe i along the time axis. When the move crosses a
// neighbor the sequence is reslotted and the keyframe's new index is
// returned with moved=true; the caller must re-target anything holding the
// old index. A landing time colliding with a neighbor is nudged by
// timeEpsilon so ordering stays strict.
func (c *Curve) SetTime(i int, time float64) (newIndex int, moved bool) {
	if !c.valid(i) {
		return i, false
	}
	if !c.crosses(i, time) {
		c.keys[i].Time = c.clampBetweenNeighbors(i, time)
		c.refreshAutoAround(i)
		return i, false
	}

	kf := c.keys[i]
	kf.Time = time
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	at := c.slot(kf.Time)
	if at < len(c.keys) && c.keys[at].Time-kf.Time < timeEpsilon {
		kf.Time = c.keys[at].Time - timeEpsilon
		at = c.slot(kf.Time)
	} else if at > 0 && kf.Time-c.keys[at-1].Time < timeEpsilon {
		kf.Time = c.keys[at-1].Time + timeEpsilon
		at = c.slot(kf.Time)
	}
	c.keys = append(c.keys, Keyframe{})
	copy(c.keys[at+1:], c.keys[at:])
	c.keys[at] = kf

	lo, hi := i, at
	if lo > hi {
		lo, hi = hi, lo
	}
	for j := lo - 1; j <= hi+1; j++ {
		c.refreshAuto(j)
	}
	return at, true
}

// SetInterpolation sets the segment rule leaving keyframe i.
func (c *Curve) SetInterpolation(i int, mode Interpolation) {
	if !c.valid(i) {
		return
	}
	c.keys[i].Interpolation = mode
}

// SetTangentControl switches the tangent policy at i. Entering auto
// recomputes immediately; entering flat zeroes both sides; leaving auto
// freezes the last computed slopes as the editable values.
func (c *Curve) SetTangentControl(i int, mode TangentControl) {
	if !c.valid(i) {
		return
	}
	c.keys[i].TangentControl = mode
	switch mode {
	case TangentAuto:
		c.refreshAuto(i)
	case TangentFlat:
		c.keys[i].InTangent = 0
		c.keys[i].OutTangent = 0
	}
}

// SetInTangent edits the incoming slope. Ignored under auto and flat;
// broken edits one side, every other mode mirrors both.
func (c *Curve) SetInTangent(i int, slope float64) {
	if !c.editableTangent(i) {
		return
	}
	c.keys[i].InTangent = slope
	if c.keys[i].TangentControl != TangentBroken {
		c.keys[i].OutTangent = slope
	}
}

// SetOutTangent edits the outgoing slope, with the same policy as
// SetInTangent.
func (c *Curve) SetOutTangent(i int, slope float64) {
	if !c.editableTangent(i) {
		return
	}
	c.keys[i].OutTangent = slope
	if c.keys[i].TangentControl != TangentBroken {
		c.keys[i].InTangent = slope
	}
}

// SetInOutTangent sets both slopes at once, ignored under auto and flat.
func (c *Curve) SetInOutTangent(i int, slope float64) {
	if !c.editableTangent(i) {
		return
	}
	c.keys[i].InTangent = slope
	c.keys[i].OutTangent = slope
}

func (c *Curve) editableTangent(i int) bool {
	if !c.valid(i) {
		return false
	}
	tc := c.keys[i].TangentControl
	return tc != TangentAuto && tc != TangentFlat
}

// slot returns the index where a keyframe with the given time belongs.
func (c *Curve) slot(time float64) int {
	return sort.Search(len(c.keys), func(j int) bool { return c.keys[j].Time >= time })
}

// collides reports whether a time landing at slot `at` would sit within
// timeEpsilon of either neighbor.
func (c *Curve) collides(at int, time float64) bool {
	if at < len(c.keys) && c.keys[at].Time-time < timeEpsilon {
		return true
	}
	if at > 0 && time-c.keys[at-1].Time < timeEpsilon {
		return true
	}
	return false
}

// crosses reports whether moving keyframe i to the given time would pass a
// neighbor and so require reslotting.
func (c *Curve) crosses(i int, time float64) bool {
	if i > 0 && time <= c.keys[i-1].Time {
		return true
	}
	if i < len(c.keys)-1 && time >= c.keys[i+1].Time {
		return true
	}
	return false
}

// clampBetweenNeighbors keeps a non-crossing move strictly inside its
// neighbors. Only reachable when crosses(i, time) is false, so the clamp
// covers exact-equality edges only.
func (c *Curve) clampBetweenNeighbors(i int, time float64) float64 {
	if i > 0 && time < c.keys[i-1].Time+timeEpsilon {
		time = c.keys[i-1].Time + timeEpsilon
	}
	if i < len(c.keys)-1 && time > c.keys[i+1].Time-timeEpsilon {
		time = c.keys[i+1].Time - timeEpsilon
	}
	return time
}

func (c *Curve) refreshAutoAround(i int) {
	c.refreshAuto(i - 1)
	c.refreshAuto(i)
	c.refreshAuto(i + 1)
}

// refreshAuto recomputes the tangents of keyframe i when it is under auto
// control. Interior keyframes take the Catmull-Rom style secant between
// their neighbors, weighted by the time deltas; boundary keyframes take
// the secant to their single neighbor.
func (c *Curve) refreshAuto(i int) {
	if !c.valid(i) || c.keys[i].TangentControl != TangentAuto {
		return
	}
	slope := 0.0
	switch {
	case len(c.keys) < 2:
	case i == 0:
		slope = secant(c.keys[0], c.keys[1])
	case i == len(c.keys)-1:
		slope = secant(c.keys[i-1], c.keys[i])
	default:
		slope = secant(c.keys[i-1], c.keys[i+1])
	}
	c.keys[i].InTangent = slope
	c.keys[i].OutTangent = slope
}

func secant(a, b Keyframe) float64 {
	dt := b.Time - a.Time
	if dt < timeEpsilon {
		return 0
	}
	return (b.Value - a.Value) / dt
}
