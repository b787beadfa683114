// Package ggchart renders interactive analytics charts on top of the gg
// 2D graphics library.
//
// # Overview
//
// The root package holds the numeric core shared by every chart: the
// [Domain] and [Range] intervals, the affine mapping between them
// ([ToPixel], [ToValue], [Scale]), "nice" tick generation ([Ticks]) and the
// [Viewport] geometry that defines the plotting rectangle.
//
// Interaction lives in sub-packages:
//
//   - zoom: the pan/zoom controller that turns wheel, drag and
//     double-click gestures into effective (narrowed) domains
//   - trend: ordinary least squares line fitting
//   - shape: line and area path generators (linear and monotone curves)
//     and layer stacking
//   - dataset: loading, schema validation and filtering of episode data
//   - chart: the chart frame and the four concrete charts
//   - recording: the display list and its SVG and raster backends
//
// The ggchart command (cmd/ggchart) renders charts from a dataset file.
//
// # Quick Start
//
//	vp := ggchart.Viewport{
//	    Width: 640, Height: 360,
//	    Margin: ggchart.Margin{Top: 24, Right: 24, Bottom: 42, Left: 60},
//	}
//	ctrl, err := zoom.New(vp, ggchart.Domain{Min: 1, Max: 50})
//	if err != nil {
//	    // invalid viewport or max zoom
//	}
//	ctrl.ZoomAt(ggchart.Pt(350, 180), 2)
//	x := ggchart.NewScale(ctrl.XDomain(), ctrl.XRange())
//
// # Coordinate System
//
// Pixel coordinates follow SVG conventions: origin at the top-left corner,
// X increases right, Y increases down. Y ranges are therefore inverted
// ([Viewport.YRange] runs from the bottom of the plot to its top) so that
// larger values are drawn higher.
//
// # Degenerate Input
//
// A domain with Min == Max is valid. Mapping functions return defined
// values for it (the range midpoint, or Min) instead of dividing by zero.
package ggchart

// Version is the current version of the library.
const Version = "0.3.0"
