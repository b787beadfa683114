package zoom

import (
	"errors"
	"log/slog"
	"math"

	"github.com/gogpu/ggchart"
)

// Axis identifies a zoomable axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// State is the zoom state of a controller.
type State uint8

const (
	// StateIdentity means every configured axis has K=1 and T=0.
	StateIdentity State = iota
	// StateZoomed means at least one axis is scaled or translated.
	StateZoomed
)

// String returns the state name.
func (s State) String() string {
	if s == StateZoomed {
		return "Zoomed"
	}
	return "Identity"
}

// Domains is a snapshot of the effective domains of a controller.
// Y is meaningful only when HasY is true.
type Domains struct {
	X    ggchart.Domain
	Y    ggchart.Domain
	HasY bool
}

// axis is the per-axis zoom state.
type axis struct {
	base ggchart.Domain
	rng  ggchart.Range
	tr   Transform
}

func (a *axis) domain() ggchart.Domain {
	return a.tr.Rescale(a.base, a.rng)
}

// Controller owns the zoom/pan state of one chart instance.
// See the package documentation for the gesture model.
type Controller struct {
	vp      ggchart.Viewport
	x       axis
	y       *axis
	maxZoom float64
	wheel   float64

	onChange func(Domains)
	log      *slog.Logger

	unbind func()

	dragging bool
	last     ggchart.Point
}

// Compile-time check that Controller receives gestures.
var _ Listener = (*Controller)(nil)

// New creates a controller for viewport vp with base X domain x.
//
// It returns a *ggchart.ConfigurationError when the plotting rectangle has
// no area or the max zoom is below 1 (or not finite).
func New(vp ggchart.Viewport, x ggchart.Domain, opts ...Option) (*Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if !(o.maxZoom >= 1) || math.IsInf(o.maxZoom, 0) {
		return nil, &ggchart.ConfigurationError{
			Field:  "max zoom",
			Value:  o.maxZoom,
			Reason: "must be a finite number of at least 1",
			Err:    ggchart.ErrInvalidMaxZoom,
		}
	}

	c := &Controller{
		vp: vp,
		x: axis{
			base: ggchart.Dom(x.Min, x.Max),
			rng:  vp.XRange(),
			tr:   Identity(),
		},
		maxZoom:  o.maxZoom,
		wheel:    o.wheelSensitivity,
		onChange: o.onChange,
		log:      o.logger,
	}
	if o.yDomain != nil {
		c.y = &axis{base: *o.yDomain, rng: vp.YRange(), tr: Identity()}
	}
	return c, nil
}

func (c *Controller) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return ggchart.Logger()
}

// Viewport returns the geometry the controller was created with.
func (c *Controller) Viewport() ggchart.Viewport {
	return c.vp
}

// MaxZoom returns the scale-factor ceiling.
func (c *Controller) MaxZoom() float64 {
	return c.maxZoom
}

// HasY reports whether the Y axis is zoomable.
func (c *Controller) HasY() bool {
	return c.y != nil
}

// BaseXDomain returns the un-zoomed X domain.
func (c *Controller) BaseXDomain() ggchart.Domain {
	return c.x.base
}

// BaseYDomain returns the un-zoomed Y domain, if configured.
func (c *Controller) BaseYDomain() (ggchart.Domain, bool) {
	if c.y == nil {
		return ggchart.Domain{}, false
	}
	return c.y.base, true
}

// XDomain returns the effective X domain.
func (c *Controller) XDomain() ggchart.Domain {
	return c.x.domain()
}

// YDomain returns the effective Y domain. The second result is false when
// the Y axis is not zoomable; the chart then uses its own fixed domain.
func (c *Controller) YDomain() (ggchart.Domain, bool) {
	if c.y == nil {
		return ggchart.Domain{}, false
	}
	return c.y.domain(), true
}

// Domains returns a snapshot of every effective domain.
func (c *Controller) Domains() Domains {
	d := Domains{X: c.x.domain()}
	if c.y != nil {
		d.Y = c.y.domain()
		d.HasY = true
	}
	return d
}

// XRange returns the fixed horizontal display range of the plot.
func (c *Controller) XRange() ggchart.Range {
	return c.x.rng
}

// YRange returns the fixed vertical display range of the plot (bottom to
// top). It is valid whether or not the Y axis is zoomable.
func (c *Controller) YRange() ggchart.Range {
	return c.vp.YRange()
}

// Transform returns the current transform of an axis. An unconfigured Y
// axis reports the identity.
func (c *Controller) Transform(a Axis) Transform {
	if a == AxisY {
		if c.y == nil {
			return Identity()
		}
		return c.y.tr
	}
	return c.x.tr
}

// State reports whether the controller is at identity.
func (c *Controller) State() State {
	if !c.x.tr.IsIdentity() || (c.y != nil && !c.y.tr.IsIdentity()) {
		return StateZoomed
	}
	return StateIdentity
}

// Dragging reports whether a drag gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Reset returns every axis to the identity transform.
func (c *Controller) Reset() {
	c.update(func(a *axis, _ float64) Transform { return Identity() }, ggchart.Point{})
	c.logger().Debug("zoom: reset")
}

// ZoomAt multiplies the scale factor by factor, anchored at pixel p: the
// data value under p is unchanged unless the bounds clamp engages.
// factor > 1 zooms in. Non-positive or non-finite factors are ignored.
func (c *Controller) ZoomAt(p ggchart.Point, factor float64) {
	if !(factor > 0) || math.IsInf(factor, 0) || !p.IsFinite() {
		return
	}
	c.update(func(a *axis, pos float64) Transform {
		k := math.Max(1, math.Min(c.maxZoom, a.tr.K*factor))
		pos = math.Max(a.rng.Lo(), math.Min(a.rng.Hi(), pos))
		return a.tr.ScaleTo(pos, k)
	}, p)
	c.logger().Debug("zoom: scale", "x", p.X, "y", p.Y, "factor", factor, "k", c.x.tr.K)
}

// Pan translates the view by (dx, dy) pixels. dy is ignored for an
// X-only controller.
func (c *Controller) Pan(dx, dy float64) {
	if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return
	}
	c.update(func(a *axis, d float64) Transform {
		return a.tr.Translate(d)
	}, ggchart.Pt(dx, dy))
}

// WheelFactor converts a wheel event into a zoom factor using the
// controller's sensitivity.
func (c *Controller) WheelFactor(e WheelEvent) float64 {
	s := c.wheel
	switch e.DeltaMode {
	case DeltaLine:
		s *= 25
	case DeltaPage:
		s *= 500
	}
	if e.Ctrl {
		s *= 10
	}
	return math.Exp2(-e.DeltaY * s)
}

// Wheel implements Listener.
func (c *Controller) Wheel(e WheelEvent) {
	if math.IsNaN(e.DeltaY) || e.DeltaY == 0 {
		return
	}
	c.ZoomAt(e.Pos, c.WheelFactor(e))
}

// PointerDown implements Listener. It starts a drag at e.Pos.
func (c *Controller) PointerDown(e PointerEvent) {
	if !e.Pos.IsFinite() {
		return
	}
	c.dragging = true
	c.last = e.Pos
}

// PointerMove implements Listener. While a drag is in progress it pans by
// the distance moved since the previous event; otherwise it is ignored.
func (c *Controller) PointerMove(e PointerEvent) {
	if !c.dragging {
		c.logger().Debug("zoom: ignoring move outside drag", "x", e.Pos.X, "y", e.Pos.Y)
		return
	}
	if !e.Pos.IsFinite() {
		return
	}
	d := e.Pos.Sub(c.last)
	c.last = e.Pos
	c.Pan(d.X, d.Y)
}

// PointerUp implements Listener. It ends the current drag.
func (c *Controller) PointerUp(PointerEvent) {
	c.endDrag()
}

// PointerLeave implements Listener. It ends the current drag.
func (c *Controller) PointerLeave(PointerEvent) {
	c.endDrag()
}

// DoubleClick implements Listener. It resets the zoom.
func (c *Controller) DoubleClick(PointerEvent) {
	c.Reset()
}

func (c *Controller) endDrag() {
	c.dragging = false
	c.last = ggchart.Point{}
}

// Attach registers the controller as the gesture listener of s. A
// previously attached surface is detached first.
func (c *Controller) Attach(s Surface) error {
	if s == nil {
		return errors.New("zoom: attach to nil surface")
	}
	c.Detach()
	unbind, err := s.Bind(c)
	if err != nil {
		return err
	}
	c.unbind = unbind
	return nil
}

// Detach removes the controller from its surface and cancels any drag in
// progress. It is a no-op when nothing is attached.
func (c *Controller) Detach() {
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
	c.endDrag()
}

// Attached reports whether the controller is bound to a surface.
func (c *Controller) Attached() bool {
	return c.unbind != nil
}

// update applies step to every configured axis, passing the X or Y
// component of p, constrains the result and notifies on change.
func (c *Controller) update(step func(a *axis, v float64) Transform, p ggchart.Point) {
	changed := c.apply(&c.x, step, p.X)
	if c.y != nil {
		changed = c.apply(c.y, step, p.Y) || changed
	}
	if changed && c.onChange != nil {
		c.onChange(c.Domains())
	}
}

func (c *Controller) apply(a *axis, step func(a *axis, v float64) Transform, v float64) bool {
	prev := a.tr
	next := step(a, v)
	a.tr = next.Constrain(a.rng, c.maxZoom)
	if a.tr != next {
		c.logger().Debug("zoom: clamped", "k", a.tr.K, "t", a.tr.T, "wantT", next.T)
	}
	return a.tr != prev
}
