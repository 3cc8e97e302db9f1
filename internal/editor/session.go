package editor

import (
	"fyne.io/fyne/v2"

	"CurveLab/internal/curve"
)

// TangentDrag tracks which tangent handle, if any, is mid-drag. A single
// field keeps the two handles mutually exclusive.
type TangentDrag int

const (
	TangentNone TangentDrag = iota
	TangentIn
	TangentOut
)

// EditorState is the transient interaction memory, rebuilt frame by frame
// and never persisted.
type EditorState struct {
	Selected    int // keyframe index, -1 for none
	Dragging    bool
	TangentDrag TangentDrag

	// menuRequest is set when a frame wants the host to open the context
	// menu, and handed over once through TakeMenuRequest.
	menuRequest *fyne.Position

	// prev is the previous frame's input snapshot, the reference for
	// edge-triggered press detection.
	prev Input
}

// Session is one editing session: the curve, the viewport and the
// interaction state, explicitly constructed and exclusively owned by its
// frame loop. ReadOnly sessions (mirror viewers) pan and zoom but never
// mutate the curve.
type Session struct {
	Curve *curve.Curve
	View  *Viewport
	State EditorState

	SampleSteps int
	ReadOnly    bool

	// OnChanged fires after any frame that mutated the curve. Hosts wire
	// it to the share hub.
	OnChanged func()

	changed bool
}

func NewSession(c *curve.Curve, vp *Viewport) *Session {
	return &Session{
		Curve:       c,
		View:        vp,
		State:       EditorState{Selected: -1},
		SampleSteps: 256,
	}
}

// TakeMenuRequest returns the screen position where the last frame asked
// for a context menu, or nil. The request is cleared so the menu opens
// once.
func (s *Session) TakeMenuRequest() *fyne.Position {
	r := s.State.menuRequest
	s.State.menuRequest = nil
	return r
}

// ApplyRemote swaps in a snapshot received from the host. Selection and
// drag state are reset: the indices they hold belong to the old sequence.
func (s *Session) ApplyRemote(keys []curve.Keyframe) {
	s.Curve.Replace(keys)
	s.State.Selected = -1
	s.State.Dragging = false
	s.State.TangentDrag = TangentNone
}

func (s *Session) markChanged() {
	s.changed = true
}

func (s *Session) flushChanged() {
	if s.changed && s.OnChanged != nil {
		s.OnChanged()
	}
	s.changed = false
}
