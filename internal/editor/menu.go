package editor

import "CurveLab/internal/curve"

// MenuOption is one entry of the context menu. Apply calls the matching
// curve mutator immediately; there is no separate commit step.
type MenuOption struct {
	Label     string
	Checked   bool
	Disabled  bool
	Separator bool
	Apply     func()
}

// ContextMenu builds the interpolation and tangent-control menu for the
// currently selected keyframe. Every option is disabled while nothing is
// selected; tangent-control options also force Hermite interpolation, so a
// Linear keyframe can be promoted in one click.
func (s *Session) ContextMenu() []MenuOption {
	i := s.State.Selected
	enabled := i >= 0 && i < s.Curve.Len()

	var interp curve.Interpolation = curve.Hermite
	var tc curve.TangentControl
	if enabled {
		interp = s.Curve.GetInterpolation(i)
		tc = s.Curve.GetTangentControl(i)
	}
	hermite := interp == curve.Hermite

	interpOption := func(label string, mode curve.Interpolation) MenuOption {
		return MenuOption{
			Label:    label,
			Checked:  enabled && interp == mode,
			Disabled: !enabled,
			Apply: func() {
				s.Curve.SetInterpolation(i, mode)
				s.markChanged()
				s.flushChanged()
			},
		}
	}
	tangentOption := func(label string, mode curve.TangentControl) MenuOption {
		return MenuOption{
			Label:    label,
			Checked:  enabled && hermite && tc == mode,
			Disabled: !enabled,
			Apply: func() {
				s.Curve.SetInterpolation(i, curve.Hermite)
				s.Curve.SetTangentControl(i, mode)
				s.markChanged()
				s.flushChanged()
			},
		}
	}

	return []MenuOption{
		interpOption("Step", curve.Step),
		interpOption("Linear", curve.Linear),
		{Separator: true},
		tangentOption("Auto", curve.TangentAuto),
		tangentOption("Free", curve.TangentFree),
		tangentOption("Flat", curve.TangentFlat),
		tangentOption("Broken", curve.TangentBroken),
	}
}
