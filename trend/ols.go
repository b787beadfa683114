package trend

import (
	"fmt"
	"math"

	"github.com/gogpu/ggchart"
)

// Point is one (x, y) observation.
type Point struct {
	X, Y float64
}

// Line is the fitted line y = Slope*x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64

	// Degenerate is set when the x values had no spread and the line is
	// the flat mean-of-y fallback.
	Degenerate bool

	// N is the number of points the line was fitted to.
	N int
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("y = %gx + %g", l.Slope, l.Intercept)
}

// Fit returns the least squares line through points, using the closed
// form over the sums of x, y, xy and x squared. Points with a NaN or
// infinite coordinate are skipped.
//
// An empty input yields the zero Line marked Degenerate.
func Fit(points []Point) Line {
	var n, sumX, sumY, sumXY, sumX2 float64
	first, spread := math.NaN(), false
	for _, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		if n == 0 {
			first = p.X
		} else if p.X != first {
			spread = true
		}
		n++
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}
	if n == 0 {
		return Line{Degenerate: true}
	}

	denom := n*sumX2 - sumX*sumX
	if !spread || denom == 0 {
		return Line{Intercept: sumY / n, Degenerate: true, N: int(n)}
	}
	slope := (n*sumXY - sumX*sumY) / denom
	return Line{
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / n,
		N:         int(n),
	}
}

// FitXY fits a line to parallel x and y slices. Extra elements of the
// longer slice are ignored.
func FitXY(xs, ys []float64) Line {
	n := min(len(xs), len(ys))
	points := make([]Point, n)
	for i := range n {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return Fit(points)
}

// Segment returns the endpoints of the line across the domain d, from
// d.Min to d.Max.
func Segment(l Line, d ggchart.Domain) (from, to ggchart.Point) {
	return ggchart.Pt(d.Min, l.At(d.Min)), ggchart.Pt(d.Max, l.At(d.Max))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
