// Package trend fits straight trend lines to scatter data with ordinary
// least squares.
//
// Fit never fails. When every x value is the same (which includes a single
// point) the slope is undefined; Fit then returns a flat line through the
// mean of y and sets Line.Degenerate so callers that need a vertical fit
// can detect the case themselves.
package trend
