package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"CurveLab/internal/curve"
	"CurveLab/internal/editor"
)

// CurveWidget adapts Fyne's event callbacks into the session's per-frame
// input snapshots and renders the resulting draw list. Every delivered
// event runs exactly one frame; discrete events (scroll, keys, menu
// click) are consumed by the frame they trigger.
type CurveWidget struct {
	widget.BaseWidget
	session *editor.Session

	pending  editor.Input
	drawList editor.DrawList

	homeOffset editor.Vec
	homeRange  editor.Vec

	OnStatus func(string)
}

var _ fyne.Widget = (*CurveWidget)(nil)
var _ fyne.Draggable = (*CurveWidget)(nil)
var _ fyne.Scrollable = (*CurveWidget)(nil)
var _ desktop.Mouseable = (*CurveWidget)(nil)
var _ desktop.Hoverable = (*CurveWidget)(nil)
var _ desktop.Keyable = (*CurveWidget)(nil)

func NewCurveWidget(session *editor.Session) *CurveWidget {
	w := &CurveWidget{
		session:    session,
		homeOffset: session.View.Offset,
		homeRange:  session.View.Range,
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *CurveWidget) Session() *editor.Session { return w.session }

func (w *CurveWidget) SetStatus(text string) {
	if w.OnStatus != nil {
		w.OnStatus(text)
	}
}

// ApplySnapshot swaps in a remote curve. Call from the Fyne thread
// (wrap in fyne.Do when coming off a network goroutine).
func (w *CurveWidget) ApplySnapshot(keys []curve.Keyframe) {
	w.session.ApplyRemote(keys)
	w.tick()
}

// ResetView restores the viewport the session started with.
func (w *CurveWidget) ResetView() {
	w.session.View.Offset = w.homeOffset
	w.session.View.Range = w.homeRange
	w.tick()
}

// tick runs one frame over the accumulated input, consumes the discrete
// events, and refreshes the canvas.
func (w *CurveWidget) tick() {
	w.drawList = w.session.Frame(w.pending, w.Size())
	w.pending.Scroll = 0
	w.pending.MenuClick = false
	w.pending.Insert = false
	w.pending.Delete = false

	if pos := w.session.TakeMenuRequest(); pos != nil {
		w.openMenu(*pos)
	}
	w.Refresh()
}

func (w *CurveWidget) openMenu(pos fyne.Position) {
	items := make([]*fyne.MenuItem, 0, 8)
	for _, opt := range w.session.ContextMenu() {
		if opt.Separator {
			items = append(items, fyne.NewMenuItemSeparator())
			continue
		}
		apply := opt.Apply
		item := fyne.NewMenuItem(opt.Label, func() {
			apply()
			w.tick()
		})
		item.Checked = opt.Checked
		item.Disabled = opt.Disabled
		items = append(items, item)
	}

	driver := fyne.CurrentApp().Driver()
	cnv := driver.CanvasForObject(w)
	if cnv == nil {
		return
	}
	menu := widget.NewPopUpMenu(fyne.NewMenu("", items...), cnv)
	menu.ShowAtPosition(driver.AbsolutePositionForObject(w).Add(pos))
}

func (w *CurveWidget) MouseDown(e *desktop.MouseEvent) {
	if cnv := fyne.CurrentApp().Driver().CanvasForObject(w); cnv != nil {
		cnv.Focus(w)
	}
	w.pending.Pointer = e.Position
	switch e.Button {
	case desktop.MouseButtonPrimary:
		w.pending.Primary = true
	case desktop.MouseButtonTertiary:
		w.pending.Pan = true
	case desktop.MouseButtonSecondary:
		w.pending.MenuClick = true
	}
	w.tick()
}

func (w *CurveWidget) MouseUp(e *desktop.MouseEvent) {
	w.pending.Pointer = e.Position
	switch e.Button {
	case desktop.MouseButtonPrimary:
		w.pending.Primary = false
	case desktop.MouseButtonTertiary:
		w.pending.Pan = false
	}
	w.tick()
}

func (w *CurveWidget) MouseIn(e *desktop.MouseEvent) {
	w.pending.PointerInside = true
	w.pending.Pointer = e.Position
	w.tick()
}

func (w *CurveWidget) MouseMoved(e *desktop.MouseEvent) {
	w.pending.PointerInside = true
	w.pending.Pointer = e.Position
	w.tick()
}

func (w *CurveWidget) MouseOut() {
	w.pending.PointerInside = false
	w.tick()
}

func (w *CurveWidget) Dragged(e *fyne.DragEvent) {
	w.pending.PointerInside = true
	w.pending.Pointer = e.Position
	w.tick()
}

func (w *CurveWidget) DragEnd() {}

func (w *CurveWidget) Scrolled(e *fyne.ScrollEvent) {
	w.pending.Pointer = e.Position
	w.pending.Scroll = e.Scrolled.DY
	w.tick()
}

func (w *CurveWidget) FocusGained() {}
func (w *CurveWidget) FocusLost()   {}

func (w *CurveWidget) TypedRune(r rune) {
	switch r {
	case 'i', 'I':
		w.pending.Insert = true
	case 'd', 'D':
		w.pending.Delete = true
	default:
		return
	}
	w.tick()
}

func (w *CurveWidget) TypedKey(e *fyne.KeyEvent) {
	if e.Name == fyne.KeyDelete {
		w.pending.Delete = true
		w.tick()
	}
}

func (w *CurveWidget) KeyDown(e *fyne.KeyEvent) {
	if e.Name == desktop.KeyControlLeft || e.Name == desktop.KeyControlRight {
		w.pending.AltAxis = true
	}
}

func (w *CurveWidget) KeyUp(e *fyne.KeyEvent) {
	if e.Name == desktop.KeyControlLeft || e.Name == desktop.KeyControlRight {
		w.pending.AltAxis = false
	}
}

func (w *CurveWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.NRGBA{R: 24, G: 24, B: 28, A: 255})
	return &curveRenderer{widget: w, background: bg}
}

type curveRenderer struct {
	widget     *CurveWidget
	background *canvas.Rectangle
}

func (r *curveRenderer) Objects() []fyne.CanvasObject {
	dl := r.widget.drawList
	objects := make([]fyne.CanvasObject, 0, 1+len(dl.Lines)+len(dl.Dots))
	objects = append(objects, r.background)

	for _, l := range dl.Lines {
		seg := canvas.NewLine(l.Color)
		seg.StrokeWidth = l.Width
		seg.Position1 = l.P1
		seg.Position2 = l.P2
		objects = append(objects, seg)
	}
	for _, d := range dl.Dots {
		dot := canvas.NewCircle(d.Color)
		dot.Resize(fyne.NewSize(d.Radius*2, d.Radius*2))
		dot.Move(fyne.NewPos(d.Center.X-d.Radius, d.Center.Y-d.Radius))
		objects = append(objects, dot)
	}
	return objects
}

func (r *curveRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *curveRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 240)
}

func (r *curveRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *curveRenderer) Destroy() {}
