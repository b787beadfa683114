package zoom

import (
	"errors"

	"github.com/gogpu/ggchart"
)

// DeltaMode is the unit of a wheel delta, matching DOM WheelEvent.deltaMode.
type DeltaMode uint8

const (
	DeltaPixel DeltaMode = iota // Delta in pixels
	DeltaLine                   // Delta in lines
	DeltaPage                   // Delta in pages
)

// WheelEvent is a scroll gesture at a pointer position.
// Negative DeltaY scrolls up, which zooms in.
type WheelEvent struct {
	Pos       ggchart.Point
	DeltaY    float64
	DeltaMode DeltaMode

	// Ctrl marks pinch gestures, which trackpads report as ctrl+wheel.
	Ctrl bool
}

// PointerEvent is a pointer (mouse, pen, touch) position event.
type PointerEvent struct {
	Pos ggchart.Point
}

// Listener receives low-level gesture events from a Surface.
// Controller implements Listener.
type Listener interface {
	Wheel(e WheelEvent)
	PointerDown(e PointerEvent)
	PointerMove(e PointerEvent)
	PointerUp(e PointerEvent)
	PointerLeave(e PointerEvent)
	DoubleClick(e PointerEvent)
}

// Surface is anything that can deliver gesture events to a Listener: an
// SVG overlay node, a canvas, or the headless Overlay.
//
// Bind registers l and returns a function that removes it again.
type Surface interface {
	Bind(l Listener) (unbind func(), err error)
}

// ErrSurfaceBound is returned by Overlay.Bind when a listener is already
// registered.
var ErrSurfaceBound = errors.New("zoom: surface already has a listener")

// Overlay is a headless Surface covering a rectangle, typically the plot
// area of a chart. It forwards events to at most one bound Listener.
//
// Like a DOM element, the overlay only receives wheel, pointer-down and
// double-click events that hit its rectangle. Moves, releases and leaves
// are forwarded regardless of position so a drag can continue outside
// the plot.
type Overlay struct {
	rect     ggchart.Rect
	listener Listener
}

// NewOverlay creates an overlay covering rect.
func NewOverlay(rect ggchart.Rect) *Overlay {
	return &Overlay{rect: rect}
}

// Rect returns the rectangle covered by the overlay.
func (o *Overlay) Rect() ggchart.Rect {
	return o.rect
}

// Bound reports whether a listener is registered.
func (o *Overlay) Bound() bool {
	return o.listener != nil
}

// Bind implements Surface.
func (o *Overlay) Bind(l Listener) (func(), error) {
	if l == nil {
		return nil, errors.New("zoom: nil listener")
	}
	if o.listener != nil {
		return nil, ErrSurfaceBound
	}
	o.listener = l
	return func() {
		if o.listener == l {
			o.listener = nil
		}
	}, nil
}

// Wheel dispatches a pixel-mode wheel event at p.
func (o *Overlay) Wheel(p ggchart.Point, deltaY float64) {
	o.DispatchWheel(WheelEvent{Pos: p, DeltaY: deltaY})
}

// DispatchWheel dispatches a wheel event if it hits the overlay.
func (o *Overlay) DispatchWheel(e WheelEvent) {
	if o.listener == nil || !o.rect.Contains(e.Pos) {
		return
	}
	o.listener.Wheel(e)
}

// Down dispatches a pointer-down event if it hits the overlay.
func (o *Overlay) Down(p ggchart.Point) {
	if o.listener == nil || !o.rect.Contains(p) {
		return
	}
	o.listener.PointerDown(PointerEvent{Pos: p})
}

// Move dispatches a pointer-move event.
func (o *Overlay) Move(p ggchart.Point) {
	if o.listener != nil {
		o.listener.PointerMove(PointerEvent{Pos: p})
	}
}

// Up dispatches a pointer-up event.
func (o *Overlay) Up(p ggchart.Point) {
	if o.listener != nil {
		o.listener.PointerUp(PointerEvent{Pos: p})
	}
}

// Leave dispatches a pointer-leave event.
func (o *Overlay) Leave(p ggchart.Point) {
	if o.listener != nil {
		o.listener.PointerLeave(PointerEvent{Pos: p})
	}
}

// DoubleClick dispatches a double-click event if it hits the overlay.
func (o *Overlay) DoubleClick(p ggchart.Point) {
	if o.listener == nil || !o.rect.Contains(p) {
		return
	}
	o.listener.DoubleClick(PointerEvent{Pos: p})
}

// Drag performs a full drag from one point to another: pointer down, steps
// intermediate moves (at least one), pointer up.
func (o *Overlay) Drag(from, to ggchart.Point, steps int) {
	if steps < 1 {
		steps = 1
	}
	o.Down(from)
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		o.Move(ggchart.Pt(from.X+(to.X-from.X)*f, from.Y+(to.Y-from.Y)*f))
	}
	o.Up(to)
}
