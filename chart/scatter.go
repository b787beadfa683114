package chart

import (
	"fmt"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/trend"
)

// Scatter plots social shares against subscribers gained, with a least
// squares trend line. Both axes zoom.
type Scatter struct {
	frame     *Frame
	eps       []dataset.Episode
	shares    []float64
	gained    []float64
	fit       trend.Line
	highlight int
}

var _ Series = (*Scatter)(nil)

// NewScatter creates the share conversion scatter chart.
func NewScatter(ds *dataset.Dataset, opts ...Option) (*Scatter, error) {
	eps, err := episodes(ds)
	if err != nil {
		return nil, err
	}
	s := &Scatter{
		eps:    eps,
		shares: column(eps, func(e dataset.Episode) float64 { return float64(e.SocialMediaShares) }),
		gained: column(eps, func(e dataset.Episode) float64 { return float64(e.SubscribersGained) }),
	}
	s.fit = trend.FitXY(s.shares, s.gained)
	for i, x := range s.shares {
		if x > s.shares[s.highlight] {
			s.highlight = i
		}
	}

	s.frame, err = NewFrame(FrameConfig{
		Kind: KindScatter,
		Card: Card{
			Title:       "Social Share Conversion",
			Description: "Correlate social push energy with subscriber lift to decide where to double down on promotion.",
			Insight:     ds.Insight(string(KindScatter)),
			Legend: []LegendItem{
				{Label: "Episode", Swatch: colorSky},
				{Label: "Highest share push", Swatch: colorAmberDot},
			},
		},
		Margin: ScatterMargin,
		X:      extent(s.shares),
		Y:      ggchart.Dom(0, extent(s.gained).Max*1.1),
		ZoomY:  true,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Frame implements Chart.
func (s *Scatter) Frame() *Frame { return s.frame }

// Record implements Chart.
func (s *Scatter) Record() *recording.Recording { return s.frame.Record(s) }

// Trend returns the least squares fit of subscribers gained on shares.
func (s *Scatter) Trend() trend.Line { return s.fit }

// Highlight returns the episode with the most shares. Ties go to the
// earliest episode.
func (s *Scatter) Highlight() dataset.Episode { return s.eps[s.highlight] }

// Grid implements Series.
func (s *Scatter) Grid(p *Plot) {
	p.HGrid(p.Y.Ticks(5))
}

// Draw implements Series. The trend line spans the visible X domain.
func (s *Scatter) Draw(p *Plot) {
	from, to := trend.Segment(s.fit, p.X.Domain)
	p.Line(p.X.Map(from.X), p.Y.Map(from.Y), p.X.Map(to.X), p.Y.Map(to.Y),
		recording.Style{Class: ClassLineSecond})

	for i, e := range s.eps {
		c := recording.Circle{
			Center: ggchart.Pt(p.X.Map(s.shares[i]), p.Y.Map(s.gained[i])),
			Radius: 4,
			Style:  recording.Style{Class: ClassDot},
			Title: fmt.Sprintf("Ep %d: %s\n%d shares → %d subscribers",
				e.Episode, e.Title, e.SocialMediaShares, e.SubscribersGained),
		}
		if i == s.highlight {
			c.Radius = 6
			c.Style.Class = ClassDotHigh
		}
		p.Circle(c)
	}
}

// Axes implements Series.
func (s *Scatter) Axes(p *Plot) {
	p.YLabels(p.Y.Ticks(5), 16, p.Format.Integer)
	p.XLabels(p.X.Ticks(5), 30, p.Format.Integer)
	p.Label("Social media shares", p.Viewport.Width/2, p.Viewport.Height-12, recording.AnchorMiddle)
	p.VerticalLabel("Subscribers gained", p.Rect.MinX-42, p.Viewport.Height/2)
}
