package curve

import "github.com/google/uuid"

// Interpolation selects how the segment from a keyframe to its right
// neighbor is evaluated.
type Interpolation int

const (
	Step Interpolation = iota
	Linear
	Hermite
)

func (i Interpolation) String() string {
	switch i {
	case Step:
		return "step"
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	}
	return "unknown"
}

// TangentControl governs how a keyframe's tangents are derived or edited.
// Only meaningful while the keyframe interpolates with Hermite.
type TangentControl int

const (
	// TangentAuto recomputes tangents from the neighbors whenever the
	// curve's shape changes. Direct tangent edits are ignored.
	TangentAuto TangentControl = iota
	// TangentFree keeps both sides editable and mirrored.
	TangentFree
	// TangentFlat pins both tangents to zero.
	TangentFlat
	// TangentBroken lets the in and out sides diverge.
	TangentBroken
)

func (t TangentControl) String() string {
	switch t {
	case TangentAuto:
		return "auto"
	case TangentFree:
		return "free"
	case TangentFlat:
		return "flat"
	case TangentBroken:
		return "broken"
	}
	return "unknown"
}

// Keyframe is one control point of the curve. Time strictly increases
// across the sequence; tangents are slopes (dValue/dTime) used by Hermite
// segments touching this keyframe.
type Keyframe struct {
	ID             string         `json:"id"`
	Time           float64        `json:"time"`
	Value          float64        `json:"value"`
	InTangent      float64        `json:"in_tangent"`
	OutTangent     float64        `json:"out_tangent"`
	Interpolation  Interpolation  `json:"interpolation"`
	TangentControl TangentControl `json:"tangent_control"`
}

func newKeyframe(time, value float64, interp Interpolation) Keyframe {
	return Keyframe{
		ID:            uuid.NewString(),
		Time:          time,
		Value:         value,
		Interpolation: interp,
	}
}
