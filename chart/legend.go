package chart

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

const (
	legendTextSize = 11
	legendSwatch   = 10
	legendGap      = 4
	legendSpacing  = 14
)

// LegendItem is one swatch and label in a chart legend. The swatch is
// painted with Swatch when set, otherwise with the theme paint of Class.
type LegendItem struct {
	Label  string
	Class  string
	Swatch recording.Brush
}

// TextWidth estimates the rendered width of s at the given pixel size.
// It scales the advances of the fixed 7x13 face, which is close enough
// to proportional UI fonts for layout.
func TextWidth(s string, size float64) float64 {
	face := basicfont.Face7x13
	return toFloat(font.MeasureString(face, s)) * size / float64(face.Height)
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// drawLegend lays the items out right to left, ending at the right edge
// of the plot, on a baseline inside the top margin.
func drawLegend(r *recording.Recorder, vp ggchart.Viewport, items []LegendItem) {
	if len(items) == 0 {
		return
	}
	r.BeginGroup(recording.Group{Class: "legend"})
	defer r.EndGroup()

	baseline := vp.Margin.Top - 10
	x := vp.Width - vp.Margin.Right
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		r.Text(recording.Text{
			Text:   it.Label,
			Pos:    ggchart.Pt(x, baseline),
			Anchor: recording.AnchorEnd,
			Size:   legendTextSize,
			Style:  recording.Style{Class: ClassLegendLabel},
		})
		x -= TextWidth(it.Label, legendTextSize) + legendGap + legendSwatch
		r.Rect(recording.Box{
			Rect: ggchart.Rect{
				MinX: x,
				MinY: baseline - legendSwatch + 1,
				MaxX: x + legendSwatch,
				MaxY: baseline + 1,
			},
			Radius: 2,
			Style:  recording.Style{Class: it.Class, Fill: it.Swatch},
		})
		x -= legendSpacing
	}
}
