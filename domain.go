package ggchart

import "math"

// Domain is a closed interval of data values on one axis.
// Min must not exceed Max; Min == Max is a valid, degenerate domain.
type Domain struct {
	Min, Max float64
}

// Dom is a convenience function to create a Domain.
// The bounds are swapped if given in descending order.
func Dom(a, b float64) Domain {
	if a > b {
		a, b = b, a
	}
	return Domain{Min: a, Max: b}
}

// Extent returns the smallest domain containing every finite value.
// NaN and infinite values are skipped. The second result is false when
// no finite value was found, in which case the zero Domain is returned.
func Extent(values []float64) (Domain, bool) {
	d := Domain{Min: math.Inf(1), Max: math.Inf(-1)}
	found := false
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		found = true
		d.Min = math.Min(d.Min, v)
		d.Max = math.Max(d.Max, v)
	}
	if !found {
		return Domain{}, false
	}
	return d, true
}

// Span returns Max - Min.
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// IsDegenerate reports whether the domain has zero width.
func (d Domain) IsDegenerate() bool {
	return d.Min == d.Max
}

// Contains reports whether v lies within the closed interval.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// ContainsDomain reports whether o is a sub-interval of d.
func (d Domain) ContainsDomain(o Domain) bool {
	return o.Min >= d.Min && o.Max <= d.Max
}

// Clamp limits v to the interval.
func (d Domain) Clamp(v float64) float64 {
	return math.Max(d.Min, math.Min(d.Max, v))
}

// Range is a closed interval of pixel coordinates on one axis.
// From maps to a domain's Min and To maps to its Max, so From > To is
// allowed and describes an inverted (bottom-up) axis.
type Range struct {
	From, To float64
}

// Rng is a convenience function to create a Range.
func Rng(from, to float64) Range {
	return Range{From: from, To: to}
}

// Len returns the absolute length of the range.
func (r Range) Len() float64 {
	return math.Abs(r.To - r.From)
}

// Lo returns the smaller endpoint.
func (r Range) Lo() float64 {
	return math.Min(r.From, r.To)
}

// Hi returns the larger endpoint.
func (r Range) Hi() float64 {
	return math.Max(r.From, r.To)
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.From + r.To) / 2
}
