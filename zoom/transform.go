package zoom

import (
	"math"

	"github.com/gogpu/ggchart"
)

// Transform is a one-dimensional affine zoom transform in pixel space:
//
//	x' = x*K + T
//
// K is the scale factor and T the translation. The zero value is not the
// identity; use [Identity].
type Transform struct {
	K, T float64
}

// Identity returns the identity transform (K=1, T=0).
func Identity() Transform {
	return Transform{K: 1}
}

// IsIdentity reports whether the transform leaves pixels unchanged.
func (t Transform) IsIdentity() bool {
	return t.K == 1 && t.T == 0
}

// Apply transforms a base pixel into display space.
func (t Transform) Apply(px float64) float64 {
	return px*t.K + t.T
}

// Invert maps a display pixel back into base pixel space.
func (t Transform) Invert(px float64) float64 {
	return (px - t.T) / t.K
}

// ScaleTo returns the transform with scale factor k whose Invert(p) is
// unchanged, so the base pixel under p stays under p.
func (t Transform) ScaleTo(p, k float64) Transform {
	return Transform{K: k, T: p - (p-t.T)*k/t.K}
}

// Translate returns the transform shifted by d display pixels.
func (t Transform) Translate(d float64) Transform {
	return Transform{K: t.K, T: t.T + d}
}

// Constrain limits K to [1, maxZoom] and T so that the transformed range
// r still covers r itself: Apply(lo) <= lo and Apply(hi) >= hi. At K=1
// this forces T=0.
func (t Transform) Constrain(r ggchart.Range, maxZoom float64) Transform {
	k := math.Max(1, math.Min(maxZoom, t.K))
	if k == 1 {
		return Identity()
	}
	lo, hi := r.Lo(), r.Hi()
	tMin := hi * (1 - k)
	tMax := lo * (1 - k)
	return Transform{K: k, T: math.Max(tMin, math.Min(tMax, t.T))}
}

// Rescale returns the sub-interval of base that is visible through the
// transform when base is drawn over r. The identity returns base exactly.
func (t Transform) Rescale(base ggchart.Domain, r ggchart.Range) ggchart.Domain {
	if t.IsIdentity() {
		return base
	}
	v0 := ggchart.ToValue(base, r, t.Invert(r.From))
	v1 := ggchart.ToValue(base, r, t.Invert(r.To))
	d := ggchart.Dom(v0, v1)
	d.Min = base.Clamp(d.Min)
	d.Max = base.Clamp(d.Max)
	return d
}
