package recording

import (
	"maps"
	"slices"
)

// LineCap specifies the shape of stroke end points.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

var lineCapNames = [...]string{"butt", "round", "square"}

// String returns the SVG keyword of the cap.
func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return "butt"
}

// LineJoin specifies how stroke segments are joined.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

var lineJoinNames = [...]string{"miter", "round", "bevel"}

// String returns the SVG keyword of the join.
func (j LineJoin) String() string {
	if int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return "miter"
}

// Style describes how a shape is painted.
//
// Class names the style in vector output and selects defaults from a
// Theme. A nil Fill or Stroke paints nothing.
type Style struct {
	Class     string
	Fill      Brush
	Stroke    Brush
	LineWidth float64
	LineCap   LineCap
	LineJoin  LineJoin
	Dash      []float64
}

// Stroked reports whether the style draws an outline.
func (s Style) Stroked() bool {
	return s.Stroke != nil && s.LineWidth > 0
}

// merge fills the zero fields of s from def.
func (s Style) merge(def Style) Style {
	if s.Fill == nil {
		s.Fill = def.Fill
	}
	if s.Stroke == nil {
		s.Stroke = def.Stroke
	}
	if s.LineWidth == 0 {
		s.LineWidth = def.LineWidth
	}
	if s.LineCap == LineCapButt {
		s.LineCap = def.LineCap
	}
	if s.LineJoin == LineJoinMiter {
		s.LineJoin = def.LineJoin
	}
	if s.Dash == nil {
		s.Dash = def.Dash
	}
	return s
}

// Theme maps style classes to their default paint.
type Theme map[string]Style

// Resolve returns s with unset fields taken from the theme entry for
// s.Class. Styles without a class, or with an unknown class, are
// returned unchanged.
func (t Theme) Resolve(s Style) Style {
	if s.Class == "" {
		return s
	}
	def, ok := t[s.Class]
	if !ok {
		return s
	}
	return s.merge(def)
}

// Classes returns the theme's class names in sorted order.
func (t Theme) Classes() []string {
	return slices.Sorted(maps.Keys(t))
}

// Clone returns a copy of the theme that can be modified independently.
func (t Theme) Clone() Theme {
	return maps.Clone(t)
}

// TextAnchor aligns text horizontally around its position.
type TextAnchor uint8

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

var textAnchorNames = [...]string{"start", "middle", "end"}

// String returns the SVG text-anchor keyword.
func (a TextAnchor) String() string {
	if int(a) < len(textAnchorNames) {
		return textAnchorNames[a]
	}
	return "start"
}

// Fraction returns the horizontal anchor as a fraction of the text width.
func (a TextAnchor) Fraction() float64 {
	switch a {
	case AnchorMiddle:
		return 0.5
	case AnchorEnd:
		return 1
	}
	return 0
}
