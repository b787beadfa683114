package chart

import (
	"github.com/gogpu/ggchart/recording"
)

// Style classes used by the charts. They appear as CSS classes in SVG
// output and select paint from the Theme.
const (
	ClassCard        = "chart-card"
	ClassGrid        = "grid-line"
	ClassLinePrimary = "line-primary"
	ClassLineSecond  = "line-secondary"
	ClassAverage     = "average-line"
	ClassDot         = "dot"
	ClassDotHigh     = "dot-highlight"
	ClassAxisLabel   = "axis-label"
	ClassStackReturn = "stack-returning"
	ClassStackNew    = "stack-new"
	ClassGrowthArea  = "growth-area"
	ClassLegendLabel = "legend-label"
	ClassInteraction = "interaction-layer"
)

// Palette colors shared by the theme and the legends.
var (
	colorSky       = recording.Hex("#38bdf8")
	colorIndigo    = rgba(129, 140, 248, 0.85)
	colorAmber     = recording.Hex("#facc15")
	colorSkyFaint  = rgba(56, 189, 248, 0.3)
	colorAmberDot  = rgba(250, 204, 21, 0.9)
	colorSlate     = recording.Hex("#94a3b8")
	colorSlateText = recording.Hex("#cbd5e1")
	colorInk       = recording.Hex("#0f172a")
)

// DefaultTheme returns the dark dashboard theme. The result may be
// modified by the caller.
func DefaultTheme() recording.Theme {
	return recording.Theme{
		ClassGrid: {
			Stroke:    rgba(148, 163, 184, 0.2),
			LineWidth: 1,
		},
		ClassLinePrimary: {
			Stroke:    colorSky,
			LineWidth: 2.5,
			LineCap:   recording.LineCapRound,
			LineJoin:  recording.LineJoinRound,
		},
		ClassLineSecond: {
			Stroke:    colorIndigo,
			LineWidth: 2,
			LineCap:   recording.LineCapRound,
			LineJoin:  recording.LineJoinRound,
		},
		ClassAverage: {
			Stroke:    colorAmber,
			LineWidth: 1.8,
			Dash:      []float64{6, 6},
		},
		ClassDot: {
			Fill:      colorSky,
			Stroke:    colorInk,
			LineWidth: 1.5,
		},
		ClassDotHigh: {
			Fill:      colorAmberDot,
			Stroke:    colorInk,
			LineWidth: 1.5,
		},
		ClassAxisLabel:   {Fill: colorSlate},
		ClassLegendLabel: {Fill: colorSlateText},
		ClassStackReturn: {Fill: rgba(56, 189, 248, 0.55)},
		ClassStackNew:    {Fill: rgba(129, 140, 248, 0.55)},
		ClassInteraction: {Fill: recording.Transparent},
	}
}

func rgba(r, g, b uint8, a float64) recording.SolidBrush {
	return recording.RGBA(float64(r)/255, float64(g)/255, float64(b)/255, a)
}
