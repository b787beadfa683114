package trend

import (
	"math"
	"testing"

	"github.com/gogpu/ggchart"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		points     []Point
		slope      float64
		intercept  float64
		degenerate bool
	}{
		{
			name:      "exact line through origin",
			points:    []Point{{1, 2}, {2, 4}, {3, 6}},
			slope:     2,
			intercept: 0,
		},
		{
			name:      "negative slope with offset",
			points:    []Point{{0, 10}, {1, 7}, {2, 4}, {3, 1}},
			slope:     -3,
			intercept: 10,
		},
		{
			name:      "noisy points",
			points:    []Point{{1, 1}, {2, 3}, {3, 2}, {4, 4}},
			slope:     0.8,
			intercept: 0.5,
		},
		{
			name:       "all x equal",
			points:     []Point{{5, 1}, {5, 3}, {5, 10}},
			slope:      0,
			intercept:  14.0 / 3,
			degenerate: true,
		},
		{
			name:       "single point",
			points:     []Point{{12, 0.42}},
			slope:      0,
			intercept:  0.42,
			degenerate: true,
		},
		{
			name:       "empty",
			points:     nil,
			degenerate: true,
		},
		{
			name:      "non-finite points skipped",
			points:    []Point{{1, 2}, {math.NaN(), 9}, {2, 4}, {3, math.Inf(1)}, {3, 6}},
			slope:     2,
			intercept: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.points)
			if !closeTo(got.Slope, tt.slope) || !closeTo(got.Intercept, tt.intercept) {
				t.Errorf("Fit() = %v, want slope %v intercept %v", got, tt.slope, tt.intercept)
			}
			if got.Degenerate != tt.degenerate {
				t.Errorf("Degenerate = %v, want %v", got.Degenerate, tt.degenerate)
			}
		})
	}
}

func TestFitXY(t *testing.T) {
	got := FitXY([]float64{1, 2, 3, 4}, []float64{2, 4, 6})
	if got.N != 3 || !closeTo(got.Slope, 2) {
		t.Errorf("FitXY() = %+v, want slope 2 over 3 points", got)
	}
}

func TestLineAtAndSegment(t *testing.T) {
	l := Line{Slope: 0.5, Intercept: 1}
	if l.At(4) != 3 {
		t.Errorf("At(4) = %v, want 3", l.At(4))
	}
	from, to := Segment(l, ggchart.Dom(2, 10))
	if from != ggchart.Pt(2, 2) || to != ggchart.Pt(10, 6) {
		t.Errorf("Segment() = %v, %v", from, to)
	}
}

func BenchmarkFit(b *testing.B) {
	points := make([]Point, 50)
	for i := range points {
		points[i] = Point{X: float64(i + 1), Y: 0.6 + 0.002*float64(i)}
	}
	b.ResetTimer()
	for b.Loop() {
		Fit(points)
	}
}
