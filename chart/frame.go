package chart

import (
	"fmt"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/zoom"
)

// OverlayHint is the tooltip of the interaction overlay.
const OverlayHint = "Drag to pan, scroll to zoom, double-click to reset"

// AxisLabelSize is the text size of tick labels and axis titles.
const AxisLabelSize = 12

// Card is the text that surrounds a chart: its heading, a description
// of what it shows, an optional data-driven insight and the legend.
type Card struct {
	Title       string
	Description string
	Insight     string
	Legend      []LegendItem
}

// FrameConfig describes the data-independent layout of one chart.
type FrameConfig struct {
	Kind Kind
	Card Card

	// Margin is the chart's default margin; WithMargin overrides it.
	Margin ggchart.Margin

	// X is the base domain of the zoomable X axis.
	X ggchart.Domain

	// Y is the Y domain. It is fixed unless ZoomY is set, in which case
	// it becomes the base domain of a second zoomable axis.
	Y     ggchart.Domain
	ZoomY bool
}

// Series draws the chart-specific layers of a frame. Draw runs inside a
// group clipped to the plot rectangle.
type Series interface {
	Grid(p *Plot)
	Draw(p *Plot)
	Axes(p *Plot)
}

// Frame is the shared chrome of a chart: geometry, zoom state and the
// overlay that receives gestures.
type Frame struct {
	kind   Kind
	id     string
	card   Card
	vp     ggchart.Viewport
	yBase  ggchart.Domain
	theme  recording.Theme
	format *Formatter

	ctrl    *zoom.Controller
	overlay *zoom.Overlay
}

// NewFrame creates a frame and its zoom controller, and attaches the
// controller to the frame's overlay.
//
// It returns a *ggchart.ConfigurationError (wrapped) when the options
// produce a viewport without plot area or an invalid max zoom.
func NewFrame(cfg FrameConfig, opts ...Option) (*Frame, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	vp := o.viewport(cfg.Margin)

	zopts := []zoom.Option{zoom.WithMaxZoom(o.maxZoom)}
	if o.wheel > 0 {
		zopts = append(zopts, zoom.WithWheelSensitivity(o.wheel))
	}
	if cfg.ZoomY {
		zopts = append(zopts, zoom.WithYDomain(cfg.Y))
	}
	ctrl, err := zoom.New(vp, cfg.X, zopts...)
	if err != nil {
		return nil, fmt.Errorf("chart: %s: %w", cfg.Kind, err)
	}
	overlay := zoom.NewOverlay(vp.PlotRect())
	if err := ctrl.Attach(overlay); err != nil {
		return nil, fmt.Errorf("chart: %s: %w", cfg.Kind, err)
	}

	theme := o.theme
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Frame{
		kind:    cfg.Kind,
		id:      fmt.Sprintf("%s-%s", cfg.Kind, o.newID()),
		card:    cfg.Card,
		vp:      vp,
		yBase:   ggchart.Dom(cfg.Y.Min, cfg.Y.Max),
		theme:   theme,
		format:  NewFormatter(o.lang),
		ctrl:    ctrl,
		overlay: overlay,
	}, nil
}

// Kind returns the chart kind.
func (f *Frame) Kind() Kind { return f.kind }

// ID returns the element id of the chart's root group. Clip and gradient
// ids are derived from it, so several charts can share one document.
func (f *Frame) ID() string { return f.id }

// Card returns the chart's card text.
func (f *Frame) Card() Card { return f.card }

// Viewport returns the chart geometry.
func (f *Frame) Viewport() ggchart.Viewport { return f.vp }

// Controller returns the zoom controller.
func (f *Frame) Controller() *zoom.Controller { return f.ctrl }

// Overlay returns the gesture surface covering the plot rectangle.
func (f *Frame) Overlay() *zoom.Overlay { return f.overlay }

// Formatter returns the label formatter.
func (f *Frame) Formatter() *Formatter { return f.format }

// XScale returns the X scale for the current zoom state.
func (f *Frame) XScale() ggchart.Scale {
	return ggchart.NewScale(f.ctrl.XDomain(), f.ctrl.XRange())
}

// YScale returns the Y scale: zoomed when the frame has a zoomable Y
// axis, fixed otherwise.
func (f *Frame) YScale() ggchart.Scale {
	if d, ok := f.ctrl.YDomain(); ok {
		return ggchart.NewScale(d, f.ctrl.YRange())
	}
	return ggchart.NewScale(f.yBase, f.vp.YRange())
}

// Close detaches the controller from the overlay. Gestures delivered
// afterwards are dropped.
func (f *Frame) Close() {
	f.ctrl.Detach()
}

// Record draws the frame and s for the current zoom state.
func (f *Frame) Record(s Series) *recording.Recording {
	rec := recording.NewRecorder(int(f.vp.Width), int(f.vp.Height), f.theme)
	p := &Plot{
		Recorder: rec,
		X:        f.XScale(),
		Y:        f.YScale(),
		Rect:     f.vp.PlotRect(),
		Viewport: f.vp,
		Format:   f.format,
		ID:       f.id,
	}

	clipID := f.id + "-plot"
	rec.DefineClip(clipID, p.Rect)

	rec.BeginGroup(recording.Group{
		ID:    f.id,
		Class: ClassCard,
		Title: f.card.Title,
		Desc:  f.card.Description,
	})

	rec.BeginGroup(recording.Group{Class: "grid"})
	s.Grid(p)
	rec.EndGroup()

	rec.BeginGroup(recording.Group{Class: "series", ClipID: clipID})
	s.Draw(p)
	rec.EndGroup()

	rec.BeginGroup(recording.Group{Class: "axes"})
	s.Axes(p)
	rec.EndGroup()

	drawLegend(rec, f.vp, f.card.Legend)
	if f.card.Insight != "" {
		rec.BeginGroup(recording.Group{Class: "insight", Desc: f.card.Insight})
		rec.EndGroup()
	}

	rec.Rect(recording.Box{
		Rect:  p.Rect,
		Style: recording.Style{Class: ClassInteraction},
		Title: OverlayHint,
	})

	out := rec.FinishRecording()
	ggchart.Logger().Debug("chart recorded",
		"kind", f.kind,
		"x", p.X.Domain,
		"y", p.Y.Domain,
		"commands", len(out.Commands()))
	return out
}

// Plot is what a Series draws with: the recorder plus the scales and
// geometry of the current frame.
type Plot struct {
	*recording.Recorder

	X, Y     ggchart.Scale
	Rect     ggchart.Rect
	Viewport ggchart.Viewport
	Format   *Formatter

	// ID is the frame id, used to derive resource ids.
	ID string
}

// HGrid draws a horizontal grid line across the plot at each Y tick.
func (p *Plot) HGrid(ticks []float64) {
	for _, t := range ticks {
		y := p.Y.Map(t)
		p.Line(p.Rect.MinX, y, p.Rect.MaxX, y, recording.Style{Class: ClassGrid})
	}
}

// XLabels writes a centered label for each X tick, dy pixels below the
// plot.
func (p *Plot) XLabels(ticks []float64, dy float64, label func(float64) string) {
	y := p.Rect.MaxY + dy
	for _, t := range ticks {
		p.Label(label(t), p.X.Map(t), y, recording.AnchorMiddle)
	}
}

// YLabels writes a right-aligned label for each Y tick, dx pixels left
// of the plot.
func (p *Plot) YLabels(ticks []float64, dx float64, label func(float64) string) {
	x := p.Rect.MinX - dx
	for _, t := range ticks {
		p.Label(label(t), x, p.Y.Map(t)+4, recording.AnchorEnd)
	}
}

// Label writes axis text at (x, y).
func (p *Plot) Label(s string, x, y float64, anchor recording.TextAnchor) {
	p.Text(recording.Text{
		Text:   s,
		Pos:    ggchart.Pt(x, y),
		Anchor: anchor,
		Size:   AxisLabelSize,
		Style:  recording.Style{Class: ClassAxisLabel},
	})
}

// VerticalLabel writes axis text centered on (x, y) and turned to read
// bottom to top.
func (p *Plot) VerticalLabel(s string, x, y float64) {
	p.Text(recording.Text{
		Text:   s,
		Pos:    ggchart.Pt(x, y),
		Anchor: recording.AnchorMiddle,
		Size:   AxisLabelSize,
		Style:  recording.Style{Class: ClassAxisLabel},
		Rotate: -90,
	})
}
