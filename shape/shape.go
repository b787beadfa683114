package shape

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// Line returns an open path through points joined with curve.
// Points with a NaN or infinite coordinate are skipped. An input with no
// usable points yields an empty path.
func Line(points []ggchart.Point, curve Curve) *gg.Path {
	path := gg.NewPath()
	w := &writer{path: path, curve: curve}
	for _, p := range points {
		if p.IsFinite() {
			w.point(p.X, p.Y)
		}
	}
	w.end()
	return path
}

// Area returns a closed path that runs along top from first to last
// point, then back along base from last to first. top and base must
// describe the same x positions; extra points of the longer slice are
// ignored. Index positions where either point is not finite are
// skipped.
func Area(top, base []ggchart.Point, curve Curve) *gg.Path {
	n := min(len(top), len(base))
	upper := make([]ggchart.Point, 0, n)
	lower := make([]ggchart.Point, 0, n)
	for i := range n {
		if top[i].IsFinite() && base[i].IsFinite() {
			upper = append(upper, top[i])
			lower = append(lower, base[i])
		}
	}

	path := gg.NewPath()
	if len(upper) == 0 {
		return path
	}
	w := &writer{path: path, curve: curve}
	for _, p := range upper {
		w.point(p.X, p.Y)
	}
	w.end()

	slices.Reverse(lower)
	w = &writer{path: path, curve: curve, join: true}
	for _, p := range lower {
		w.point(p.X, p.Y)
	}
	w.end()
	path.Close()
	return path
}

// AreaToBaseline returns a closed area between points and the horizontal
// line y = baseline.
func AreaToBaseline(points []ggchart.Point, baseline float64, curve Curve) *gg.Path {
	base := make([]ggchart.Point, len(points))
	for i, p := range points {
		base[i] = ggchart.Pt(p.X, baseline)
	}
	return Area(points, base, curve)
}

// Band is one layer of a stack: for each index, the layer spans
// [Lower[i], Upper[i]] in data units.
type Band struct {
	Key          string
	Lower, Upper []float64
}

// Stack piles layers on top of each other in the given order, starting
// from zero. All layers are expected to have the same length; a shorter
// layer is treated as zero beyond its end. Non-finite values count as
// zero.
func Stack(keys []string, layers [][]float64) []Band {
	n := 0
	for _, l := range layers {
		n = max(n, len(l))
	}
	sum := make([]float64, n)
	bands := make([]Band, len(layers))
	for k, layer := range layers {
		b := Band{Lower: make([]float64, n), Upper: make([]float64, n)}
		if k < len(keys) {
			b.Key = keys[k]
		}
		for i := range n {
			v := 0.0
			if i < len(layer) && isFinite(layer[i]) {
				v = layer[i]
			}
			b.Lower[i] = sum[i]
			sum[i] += v
			b.Upper[i] = sum[i]
		}
		bands[k] = b
	}
	return bands
}

// Project maps a band to pixel points using the x positions xs and the
// y scale. It returns the upper and lower edges, ready for Area.
func (b Band) Project(xs []float64, y ggchart.Scale) (upper, lower []ggchart.Point) {
	n := min(len(xs), len(b.Upper))
	upper = make([]ggchart.Point, n)
	lower = make([]ggchart.Point, n)
	for i := range n {
		upper[i] = ggchart.Pt(xs[i], y.Map(b.Upper[i]))
		lower[i] = ggchart.Pt(xs[i], y.Map(b.Lower[i]))
	}
	return upper, lower
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
