package ggchart

import (
	"errors"
	"math"
	"testing"
)

var trendViewport = Viewport{
	Width: 640, Height: 360,
	Margin: Margin{Top: 24, Right: 24, Bottom: 42, Left: 60},
}

func TestViewportRanges(t *testing.T) {
	vp := trendViewport
	if got := vp.XRange(); got != Rng(60, 616) {
		t.Errorf("XRange() = %v, want [60 616]", got)
	}
	if got := vp.YRange(); got != Rng(318, 24) {
		t.Errorf("YRange() = %v, want [318 24]", got)
	}
	r := vp.PlotRect()
	if r.Width() != 556 || r.Height() != 294 {
		t.Errorf("PlotRect() = %v, want 556x294", r)
	}
	if !r.Contains(Pt(350, 180)) || r.Contains(Pt(10, 180)) {
		t.Error("PlotRect().Contains gave wrong answer")
	}
}

func TestViewportValidate(t *testing.T) {
	tests := []struct {
		name    string
		vp      Viewport
		wantErr bool
	}{
		{"valid", trendViewport, false},
		{"zero width plot", Viewport{Width: 84, Height: 360, Margin: Margin{Left: 60, Right: 24}}, true},
		{"zero height plot", Viewport{Width: 640, Height: 66, Margin: Margin{Top: 24, Bottom: 42}}, true},
		{"negative width", Viewport{Width: -1, Height: 100}, true},
		{"nan height", Viewport{Width: 100, Height: math.NaN()}, true},
		{"no margins", Viewport{Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vp.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("errors.Is(err, ErrInvalidViewport) = false for %v", err)
			}
			var cfg *ConfigurationError
			if !errors.As(err, &cfg) {
				t.Errorf("error %T is not a *ConfigurationError", err)
			}
		})
	}
}

func TestDomainHelpers(t *testing.T) {
	d := Dom(50, 1)
	if d.Min != 1 || d.Max != 50 {
		t.Fatalf("Dom(50, 1) = %v, want ordered bounds", d)
	}
	if !d.ContainsDomain(Dom(10, 20)) || d.ContainsDomain(Dom(0, 20)) {
		t.Error("ContainsDomain gave wrong answer")
	}
	if d.Clamp(99) != 50 || d.Clamp(-3) != 1 {
		t.Error("Clamp did not limit to bounds")
	}
}
