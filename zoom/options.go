package zoom

import (
	"log/slog"

	"github.com/gogpu/ggchart"
)

const (
	// DefaultMaxZoom is the scale-factor ceiling used by the charts.
	DefaultMaxZoom = 12.0

	// DefaultWheelSensitivity converts one pixel of wheel delta into a
	// zoom exponent: factor = 2^(-deltaY * sensitivity).
	DefaultWheelSensitivity = 0.002
)

// Option configures a Controller during creation.
//
// Example:
//
//	// X-only controller with the default ceiling
//	ctrl, err := zoom.New(vp, xDomain)
//
//	// Dual-axis controller for a scatter plot
//	ctrl, err := zoom.New(vp, xDomain, zoom.WithYDomain(yDomain), zoom.WithMaxZoom(12))
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	yDomain          *ggchart.Domain
	maxZoom          float64
	wheelSensitivity float64
	onChange         func(Domains)
	logger           *slog.Logger
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		maxZoom:          DefaultMaxZoom,
		wheelSensitivity: DefaultWheelSensitivity,
	}
}

// WithYDomain makes the Y axis zoomable with d as its base domain.
// Without it the controller is X-only and charts supply a fixed Y domain.
func WithYDomain(d ggchart.Domain) Option {
	return func(o *options) {
		d = ggchart.Dom(d.Min, d.Max)
		o.yDomain = &d
	}
}

// WithMaxZoom sets the scale-factor ceiling. Values below 1 make New
// return a configuration error; exactly 1 disables zooming and panning.
func WithMaxZoom(k float64) Option {
	return func(o *options) {
		o.maxZoom = k
	}
}

// WithWheelSensitivity sets the zoom exponent per pixel of wheel delta.
// Line-mode deltas use 25 times and page-mode deltas 500 times this value.
// Non-positive values are ignored.
func WithWheelSensitivity(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.wheelSensitivity = s
		}
	}
}

// WithOnChange registers fn to be called after every gesture or reset
// that changes the transform. fn runs synchronously on the event goroutine
// and receives the new effective domains.
func WithOnChange(fn func(Domains)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithLogger sets a controller-specific logger. By default the controller
// logs through ggchart.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
