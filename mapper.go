package ggchart

// ToPixel maps a domain value to the pixel range.
// For a degenerate domain (Min == Max) every value maps to the midpoint
// of r.
func ToPixel(d Domain, r Range, v float64) float64 {
	if d.IsDegenerate() {
		return r.Mid()
	}
	t := (v - d.Min) / (d.Max - d.Min)
	return r.From + t*(r.To-r.From)
}

// ToValue maps a pixel back to the domain; it is the inverse of ToPixel.
// A degenerate domain or a zero-length range returns d.Min.
func ToValue(d Domain, r Range, px float64) float64 {
	if d.IsDegenerate() || r.From == r.To {
		return d.Min
	}
	t := (px - r.From) / (r.To - r.From)
	return d.Min + t*(d.Max-d.Min)
}

// Scale is a linear scale: a Domain bound to a pixel Range.
// The zero value maps everything to 0.
type Scale struct {
	Domain Domain
	Range  Range
}

// NewScale creates a linear scale.
func NewScale(d Domain, r Range) Scale {
	return Scale{Domain: d, Range: r}
}

// Map converts a domain value to a pixel.
func (s Scale) Map(v float64) float64 {
	return ToPixel(s.Domain, s.Range, v)
}

// Invert converts a pixel to a domain value.
func (s Scale) Invert(px float64) float64 {
	return ToValue(s.Domain, s.Range, px)
}

// Ticks returns nice tick values across the scale's domain.
func (s Scale) Ticks(approxCount int) []float64 {
	return Ticks(s.Domain, approxCount)
}
