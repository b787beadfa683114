package recording

import (
	"github.com/gogpu/gg"
)

// Brush is a fill or stroke paint stored in a recording.
// This is a sealed interface; only types in this package implement it.
//
// Unlike gg.Brush, a recording Brush keeps its definition (stops, ids)
// so that vector backends can emit it as a named resource.
type Brush interface {
	brushMarker()
}

// SolidBrush is a solid color brush.
type SolidBrush struct {
	Color gg.RGBA
}

func (SolidBrush) brushMarker() {}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(color gg.RGBA) SolidBrush {
	return SolidBrush{Color: color}
}

// Hex creates a solid brush from a hex color such as "#38bdf8".
func Hex(hex string) SolidBrush {
	return SolidBrush{Color: gg.Hex(hex)}
}

// RGBA creates a solid brush from components in [0, 1].
func RGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: gg.RGBA2(r, g, b, a)}
}

// Transparent is a fully transparent brush. Shapes painted with it are
// still hit targets in interactive output.
var Transparent = SolidBrush{}

// GradientStop is a color at an offset in [0, 1] along a gradient.
type GradientStop struct {
	Offset float64
	Color  gg.RGBA
}

// LinearGradientBrush is a linear gradient between two points in canvas
// coordinates. ID names the gradient in vector output and must be unique
// within a recording.
type LinearGradientBrush struct {
	ID    string
	Start gg.Point
	End   gg.Point
	Stops []GradientStop
}

func (*LinearGradientBrush) brushMarker() {}

// NewLinearGradientBrush creates a gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(id string, x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		ID:    id,
		Start: gg.Pt(x0, y0),
		End:   gg.Pt(x1, y1),
	}
}

// AddColorStop adds a color stop at offset, clamped to [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, color gg.RGBA) *LinearGradientBrush {
	offset = max(0, min(1, offset))
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color})
	return g
}

// ColorAt returns the interpolated color at offset t.
// A gradient without stops is transparent.
func (g *LinearGradientBrush) ColorAt(t float64) gg.RGBA {
	if len(g.Stops) == 0 {
		return gg.RGBA{}
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		s0, s1 := g.Stops[i-1], g.Stops[i]
		if t <= s1.Offset {
			span := s1.Offset - s0.Offset
			if span <= 0 {
				return s1.Color
			}
			f := (t - s0.Offset) / span
			return gg.RGBA{
				R: s0.Color.R + (s1.Color.R-s0.Color.R)*f,
				G: s0.Color.G + (s1.Color.G-s0.Color.G)*f,
				B: s0.Color.B + (s1.Color.B-s0.Color.B)*f,
				A: s0.Color.A + (s1.Color.A-s0.Color.A)*f,
			}
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}
