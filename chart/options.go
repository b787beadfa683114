package chart

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/zoom"
)

const (
	// DefaultWidth and DefaultHeight are the chart canvas size in pixels.
	DefaultWidth  = 640
	DefaultHeight = 360
)

var (
	// DefaultMargin is used by the completion, listener mix and growth
	// charts.
	DefaultMargin = ggchart.Margin{Top: 24, Right: 24, Bottom: 42, Left: 60}

	// ScatterMargin leaves room for the scatter chart's axis titles.
	ScatterMargin = ggchart.Margin{Top: 24, Right: 32, Bottom: 52, Left: 68}
)

// Option configures a chart during creation.
//
// Example:
//
//	c, err := chart.NewScatter(ds,
//	    chart.WithSize(800, 450),
//	    chart.WithMaxZoom(20),
//	    chart.WithLocale(language.German),
//	)
type Option func(*options)

type options struct {
	width, height float64
	margin        *ggchart.Margin
	maxZoom       float64
	wheel         float64
	theme         recording.Theme
	lang          language.Tag
	newID         func() string
}

func defaultOptions() options {
	return options{
		width:   DefaultWidth,
		height:  DefaultHeight,
		maxZoom: zoom.DefaultMaxZoom,
		lang:    language.English,
		newID:   uuid.NewString,
	}
}

// viewport applies size and margin overrides to the chart's default
// geometry.
func (o *options) viewport(def ggchart.Margin) ggchart.Viewport {
	vp := ggchart.Viewport{Width: o.width, Height: o.height, Margin: def}
	if o.margin != nil {
		vp.Margin = *o.margin
	}
	return vp
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithMargin replaces the chart's default margins.
func WithMargin(m ggchart.Margin) Option {
	return func(o *options) {
		o.margin = &m
	}
}

// WithMaxZoom sets the zoom ceiling. Values below 1 make chart creation
// fail with a configuration error.
func WithMaxZoom(k float64) Option {
	return func(o *options) {
		o.maxZoom = k
	}
}

// WithWheelSensitivity sets how strongly wheel deltas zoom.
// Non-positive values keep the controller default.
func WithWheelSensitivity(s float64) Option {
	return func(o *options) {
		o.wheel = s
	}
}

// WithTheme replaces the default theme.
func WithTheme(t recording.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithLocale sets the language used to format axis numbers.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithIDGenerator replaces the random suffix used for element ids.
// Tests use it for stable output.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}
