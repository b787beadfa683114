package recording

import (
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func TestThemeResolve(t *testing.T) {
	theme := Theme{
		"line-secondary": {Stroke: Hex("#818cf8"), LineWidth: 2, Dash: []float64{6, 4}},
	}
	tests := []struct {
		name  string
		in    Style
		width float64
		dash  int
	}{
		{"class defaults", Style{Class: "line-secondary"}, 2, 2},
		{"explicit width wins", Style{Class: "line-secondary", LineWidth: 1}, 1, 2},
		{"explicit empty dash wins", Style{Class: "line-secondary", Dash: []float64{}}, 2, 0},
		{"unknown class unchanged", Style{Class: "nope", LineWidth: 3}, 3, 0},
		{"no class unchanged", Style{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := theme.Resolve(tt.in)
			if got.LineWidth != tt.width || len(got.Dash) != tt.dash {
				t.Errorf("Resolve() = %+v", got)
			}
		})
	}
}

func TestThemeClasses(t *testing.T) {
	theme := Theme{"dot": {}, "axis-label": {}, "grid-line": {}}
	if got := theme.Classes(); !slices.Equal(got, []string{"axis-label", "dot", "grid-line"}) {
		t.Errorf("Classes() = %v", got)
	}
	clone := theme.Clone()
	clone["extra"] = Style{}
	if len(theme) != 3 {
		t.Error("Clone shares storage with the original")
	}
}

func TestStyleStroked(t *testing.T) {
	if (Style{Stroke: Hex("#fff")}).Stroked() {
		t.Error("zero width style reported as stroked")
	}
	if !(Style{Stroke: Hex("#fff"), LineWidth: 1}).Stroked() {
		t.Error("stroked style not reported")
	}
}

func TestEnumStrings(t *testing.T) {
	if LineCapRound.String() != "round" || LineJoinBevel.String() != "bevel" || AnchorEnd.String() != "end" {
		t.Error("unexpected SVG keywords")
	}
	if AnchorMiddle.Fraction() != 0.5 || AnchorStart.Fraction() != 0 || AnchorEnd.Fraction() != 1 {
		t.Error("unexpected anchor fractions")
	}
}

func TestLinearGradientColorAt(t *testing.T) {
	g := NewLinearGradientBrush("g", 0, 0, 0, 100).
		AddColorStop(0, gg.RGBA2(0, 0, 1, 0.5)).
		AddColorStop(1.5, gg.RGBA2(0, 0, 1, 0))

	if g.Stops[1].Offset != 1 {
		t.Errorf("offset not clamped: %v", g.Stops[1].Offset)
	}
	tests := []struct {
		t, alpha float64
	}{
		{-1, 0.5},
		{0, 0.5},
		{0.5, 0.25},
		{1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := g.ColorAt(tt.t).A; got != tt.alpha {
			t.Errorf("ColorAt(%v).A = %v, want %v", tt.t, got, tt.alpha)
		}
	}
	if (&LinearGradientBrush{}).ColorAt(0.5) != (gg.RGBA{}) {
		t.Error("gradient without stops should be transparent")
	}
}
