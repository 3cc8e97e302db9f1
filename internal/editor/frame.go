package editor

import (
	"math"

	"fyne.io/fyne/v2"

	"CurveLab/internal/curve"
)

// Frame runs one read-mutate-render pass: classify the gesture in the
// input snapshot, apply the matching mutation, and emit the draw list for
// the resulting curve. bounds is the pixel size of the interaction
// rectangle.
func (s *Session) Frame(in Input, bounds fyne.Size) DrawList {
	var dl DrawList
	if bounds.Width <= 0 || bounds.Height <= 0 {
		s.State.prev = in
		return dl
	}

	st := &s.State
	pressBegan := in.Primary && !st.prev.Primary

	switch {
	case in.Pan && st.prev.Pan:
		delta := fyne.NewPos(in.Pointer.X-st.prev.Pointer.X, in.Pointer.Y-st.prev.Pointer.Y)
		s.View.Pan(delta, bounds)
	case in.PointerInside:
		s.View.Zoom(in.Scroll, in.Pointer, bounds, in.AltAxis)
	}

	inserted := false
	if !s.ReadOnly {
		if in.MenuClick && in.PointerInside {
			pos := in.Pointer
			st.menuRequest = &pos
		}
		if in.Insert && in.PointerInside {
			inserted = s.insertAtPointer(in, bounds)
		}
		if in.Delete && st.Selected >= 0 {
			s.Curve.Remove(st.Selected)
			st.Selected = -1
			st.Dragging = false
			st.TangentDrag = TangentNone
			s.markChanged()
		}
	}

	if !in.Primary {
		st.Dragging = false
		st.TangentDrag = TangentNone
	}

	s.emitCurve(&dl, bounds)
	if in.PointerInside && !in.Pan && !s.ReadOnly {
		s.emitInsertPreview(&dl, in, bounds)
	}
	if s.ReadOnly {
		for i := 0; i < s.Curve.Len(); i++ {
			pos := s.keyframeScreen(i, bounds)
			if inBounds(pos, bounds) {
				dl.dot(pos, keyframeRadius, ColorCurve)
			}
		}
		st.prev = in
		return dl
	}

	s.keyframePass(&dl, in, bounds, pressBegan, inserted)

	st.prev = in
	s.flushChanged()
	return dl
}

// keyframePass walks the keyframes in index order: drag handling for the
// selected one, tangent handles, then hit testing and marker emission.
// Lowest index wins when hit regions overlap, because a press selects the
// first hovered keyframe and later ones see the selection taken.
// pinned suppresses the deselect rule for a frame that just moved the
// selection itself (an insert), since "previously selected" only covers
// selections older than this frame.
func (s *Session) keyframePass(dl *DrawList, in Input, bounds fyne.Size, pressBegan, pinned bool) {
	st := &s.State
	claimed := false

	for i := 0; i < s.Curve.Len(); i++ {
		pos := s.keyframeScreen(i, bounds)
		if !inBounds(pos, bounds) {
			continue
		}
		selected := i == st.Selected

		if selected && st.Dragging && st.TangentDrag == TangentNone {
			if s.dragKeyframe(i, in, pos, bounds) {
				// Reordered: the selection was re-targeted, and i is
				// stale for the rest of this iteration.
				continue
			}
			pos = s.keyframeScreen(i, bounds)
		}

		if selected && s.Curve.GetInterpolation(i) == curve.Hermite {
			s.tangentPass(dl, i, in, pos, bounds, pressBegan)
		}

		hovered := in.PointerInside && dist(in.Pointer, pos) <= hitRadius
		switch {
		case hovered && !claimed:
			dl.dot(pos, keyframeRadius*1.2, ColorHovered)
			if in.Primary {
				st.Selected = i
				if pressBegan {
					st.Dragging = true
				}
				claimed = true
			}
		case selected:
			dl.dot(pos, keyframeRadius, ColorSelected)
			// Selection survives unpressed pointer moves so the pointer
			// can travel out to the tangent handles. Only a press that
			// starts away from the keyframe (and not on a handle, which
			// tangentPass already claimed) drops it.
			if pressBegan && !hovered && !pinned && st.TangentDrag == TangentNone {
				st.Selected = -1
			}
		default:
			dl.dot(pos, keyframeRadius, ColorCurve)
		}
	}
}

// dragKeyframe applies threshold-gated value and time drags. Returns true
// when the time drag reordered the sequence, after re-targeting the
// selection.
func (s *Session) dragKeyframe(i int, in Input, pos fyne.Position, bounds fyne.Size) (reordered bool) {
	dx := float64(pos.X - in.Pointer.X)
	dy := float64(pos.Y - in.Pointer.Y)

	if math.Abs(dy) > dragThresholdPx {
		s.Curve.SetValue(i, s.View.ValueAt(in.Pointer.Y, bounds))
		s.markChanged()
	}
	if math.Abs(dx) > dragThresholdPx {
		newIdx, moved := s.Curve.SetTime(i, s.View.TimeAt(in.Pointer.X, bounds))
		s.markChanged()
		if moved {
			s.State.Selected = newIdx
			return true
		}
	}
	return false
}

// tangentPass draws the tangent lines of the selected Hermite keyframe and
// runs the handle hit/drag protocol when the control mode allows editing.
func (s *Session) tangentPass(dl *DrawList, i int, in Input, pos fyne.Position, bounds fyne.Size, pressBegan bool) {
	inT, outT := s.Curve.GetInOutTangent(i)
	kf := Vec{T: s.Curve.GetTime(i), V: s.Curve.GetValue(i)}

	inPos := s.handleScreen(kf, HandleDir(inT), -1, pos, bounds)
	outPos := s.handleScreen(kf, HandleDir(outT), 1, pos, bounds)
	dl.line(pos, inPos, ColorTangent)
	dl.line(pos, outPos, ColorTangent)

	tc := s.Curve.GetTangentControl(i)
	if tc == curve.TangentAuto || tc == curve.TangentFlat {
		return
	}

	s.handleHit(dl, i, TangentIn, inPos, in, kf, bounds, pressBegan)
	s.handleHit(dl, i, TangentOut, outPos, in, kf, bounds, pressBegan)
}

func (s *Session) handleHit(dl *DrawList, i int, side TangentDrag, handlePos fyne.Position, in Input, kf Vec, bounds fyne.Size, pressBegan bool) {
	st := &s.State
	hovered := in.PointerInside && dist(in.Pointer, handlePos) <= hitRadius

	if hovered && pressBegan && st.TangentDrag == TangentNone {
		st.TangentDrag = side
	}
	if st.TangentDrag != side {
		if hovered {
			dl.dot(handlePos, handleRadius*1.2, ColorHovered)
		} else {
			dl.dot(handlePos, handleRadius, ColorTangent)
		}
		return
	}

	dl.dot(handlePos, handleRadius*1.2, ColorSelected)
	p := s.View.ToCurve(in.Pointer, bounds)
	slope := HandleSlope(Vec{T: p.T - kf.T, V: p.V - kf.V})
	if s.Curve.GetTangentControl(i) == curve.TangentBroken {
		if side == TangentIn {
			s.Curve.SetInTangent(i, slope)
		} else {
			s.Curve.SetOutTangent(i, slope)
		}
	} else {
		s.Curve.SetInOutTangent(i, slope)
	}
	s.markChanged()
}

// handleScreen places a tangent handle a fixed pixel distance from the
// keyframe marker, along the screen projection of the tangent direction.
func (s *Session) handleScreen(kf Vec, dir Vec, sign float64, pos fyne.Position, bounds fyne.Size) fyne.Position {
	tip := s.View.ToScreen(Vec{T: kf.T + sign*dir.T, V: kf.V + sign*dir.V}, bounds)
	dx := float64(tip.X - pos.X)
	dy := float64(tip.Y - pos.Y)
	n := math.Hypot(dx, dy)
	if n < 1e-6 {
		return fyne.NewPos(pos.X+float32(sign)*handleLength, pos.Y)
	}
	return fyne.NewPos(
		pos.X+float32(dx/n*handleLength),
		pos.Y+float32(dy/n*handleLength),
	)
}

func (s *Session) insertAtPointer(in Input, bounds fyne.Size) bool {
	t := s.View.TimeAt(in.Pointer.X, bounds)
	v := s.Curve.Sample(t)
	idx, ok := s.Curve.Insert(t, v, curve.Hermite)
	if !ok {
		s.State.Selected = -1
		return false
	}
	s.State.Selected = idx
	s.markChanged()
	return true
}

// emitCurve samples the visible time span at a fixed step count and emits
// the polyline, threading the cursor through the monotonic queries.
func (s *Session) emitCurve(dl *DrawList, bounds fyne.Size) {
	steps := s.SampleSteps
	if steps < 2 {
		steps = 2
	}
	span := s.View.Range.T
	t0 := s.View.Offset.T

	cur, v0 := s.Curve.SampleWithCursor(0, t0)
	p0 := s.View.ToScreen(Vec{T: t0, V: v0}, bounds)
	for i := 1; i < steps; i++ {
		t1 := t0 + span*float64(i)/float64(steps-1)
		var v1 float64
		cur, v1 = s.Curve.SampleWithCursor(cur, t1)
		p1 := s.View.ToScreen(Vec{T: t1, V: v1}, bounds)
		dl.line(p0, p1, ColorCurve)
		p0 = p1
	}
}

// emitInsertPreview marks where an insert would land: on the curve,
// directly under the pointer's time.
func (s *Session) emitInsertPreview(dl *DrawList, in Input, bounds fyne.Size) {
	t := s.View.TimeAt(in.Pointer.X, bounds)
	v := s.Curve.Sample(t)
	pos := s.View.ToScreen(Vec{T: t, V: v}, bounds)
	dl.dot(fyne.NewPos(in.Pointer.X, pos.Y), previewRadius, ColorPreview)
}

func (s *Session) keyframeScreen(i int, bounds fyne.Size) fyne.Position {
	return s.View.ToScreen(Vec{T: s.Curve.GetTime(i), V: s.Curve.GetValue(i)}, bounds)
}

func inBounds(p fyne.Position, bounds fyne.Size) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= bounds.Width && p.Y <= bounds.Height
}

func dist(a, b fyne.Position) float32 {
	return float32(math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y)))
}
