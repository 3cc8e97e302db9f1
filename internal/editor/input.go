package editor

import "fyne.io/fyne/v2"

// Input is one frame's immutable snapshot of the pointing device and the
// editor keys. Level state (held buttons, pointer position) is compared
// against the previous frame's snapshot to derive edges; the discrete
// fields are already edge events and are consumed by exactly one frame.
type Input struct {
	Pointer       fyne.Position
	PointerInside bool

	// Primary selects and drags, Pan (middle button) pans the viewport.
	Primary bool
	Pan     bool

	// Scroll is this frame's vertical scroll delta in pixels. AltAxis
	// redirects the zoom to the value axis.
	Scroll  float32
	AltAxis bool

	// Discrete events.
	MenuClick bool
	Insert    bool
	Delete    bool
}
