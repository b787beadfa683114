package shape

import (
	"math"

	"github.com/gogpu/gg"
)

// Curve selects how consecutive points are joined.
type Curve uint8

const (
	// Linear joins points with straight segments.
	Linear Curve = iota

	// MonotoneX joins points with cubic segments that preserve the
	// monotonicity of y between points, assuming x increases. The curve
	// never overshoots a local extremum of the data.
	MonotoneX
)

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case MonotoneX:
		return "monotone-x"
	}
	return "unknown"
}

// writer feeds points into a path using a curve. With join set, the
// first point continues the current subpath with a line instead of
// starting a new one.
type writer struct {
	path  *gg.Path
	curve Curve
	join  bool

	n              int
	x0, y0, x1, y1 float64
	t0             float64
}

func (w *writer) point(x, y float64) {
	if w.n > 0 && x == w.x1 && y == w.y1 {
		return
	}
	if w.curve == Linear {
		w.linear(x, y)
		return
	}

	t1 := math.NaN()
	switch w.n {
	case 0:
		w.start(x, y)
	case 1:
	case 2:
		t1 = w.slope3(x, y)
		w.bezier(w.slope2(t1), t1)
	default:
		t1 = w.slope3(x, y)
		w.bezier(w.t0, t1)
	}
	w.n++
	w.x0, w.x1 = w.x1, x
	w.y0, w.y1 = w.y1, y
	w.t0 = t1
}

func (w *writer) linear(x, y float64) {
	if w.n == 0 {
		w.start(x, y)
	} else {
		w.path.LineTo(x, y)
	}
	w.n++
	w.x1, w.y1 = x, y
}

func (w *writer) start(x, y float64) {
	if w.join {
		w.path.LineTo(x, y)
	} else {
		w.path.MoveTo(x, y)
	}
}

// end flushes the pending segment of a monotone curve.
func (w *writer) end() {
	if w.curve != MonotoneX {
		return
	}
	switch {
	case w.n == 2:
		w.path.LineTo(w.x1, w.y1)
	case w.n >= 3:
		w.bezier(w.t0, w.slope2(w.t0))
	}
}

// slope3 is the tangent at (x1, y1) given the next point, limited so the
// curve stays monotone (Steffen 1990).
func (w *writer) slope3(x2, y2 float64) float64 {
	h0 := w.x1 - w.x0
	h1 := x2 - w.x1
	s0 := safeDiv(w.y1-w.y0, h0, h1 < 0)
	s1 := safeDiv(y2-w.y1, h1, h0 < 0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 is the one-sided tangent at an end point given the tangent t at
// the other end of the segment.
func (w *writer) slope2(t float64) float64 {
	h := w.x1 - w.x0
	if h == 0 {
		return t
	}
	return (3*(w.y1-w.y0)/h - t) / 2
}

// bezier emits the Hermite segment from (x0, y0) to (x1, y1) with
// tangents t0 and t1 as a cubic Bezier.
func (w *writer) bezier(t0, t1 float64) {
	dx := (w.x1 - w.x0) / 3
	w.path.CubicTo(w.x0+dx, w.y0+dx*t0, w.x1-dx, w.y1-dx*t1, w.x1, w.y1)
}

// safeDiv divides a by h. A zero h yields an infinity whose sign follows
// the direction of the neighbouring interval, like division by -0.
func safeDiv(a, h float64, negative bool) float64 {
	if h != 0 {
		return a / h
	}
	if negative {
		h = math.Copysign(0, -1)
	}
	return a / h
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
