package chart

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/shape"
)

// Growth plots cumulative subscribers as a gradient-filled area.
type Growth struct {
	frame *Frame
	xs    []float64
	total []float64
}

var _ Series = (*Growth)(nil)

// NewGrowth creates the subscriber growth chart.
func NewGrowth(ds *dataset.Dataset, opts ...Option) (*Growth, error) {
	eps, err := episodes(ds)
	if err != nil {
		return nil, err
	}
	g := &Growth{
		xs:    column(eps, episodeNumber),
		total: column(eps, func(e dataset.Episode) float64 { return float64(e.CumulativeSubscribers) }),
	}
	g.frame, err = NewFrame(FrameConfig{
		Kind: KindGrowth,
		Card: Card{
			Title:       "Subscriber Trajectory",
			Description: "Cumulative subscriber growth shows which seasons or campaigns produced inflection points and where momentum slowed.",
			Insight:     ds.Insight(string(KindGrowth)),
			Legend: []LegendItem{
				{Label: "Total subscribers", Swatch: colorSkyFaint},
			},
		},
		Margin: DefaultMargin,
		X:      extent(g.xs),
		Y:      ggchart.Dom(0, extent(g.total).Max*1.05),
	}, opts...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Frame implements Chart.
func (g *Growth) Frame() *Frame { return g.frame }

// Record implements Chart.
func (g *Growth) Record() *recording.Recording { return g.frame.Record(g) }

// Grid implements Series.
func (g *Growth) Grid(p *Plot) {
	p.HGrid(p.Y.Ticks(5))
}

// Draw implements Series.
func (g *Growth) Draw(p *Plot) {
	fill := recording.NewLinearGradientBrush(p.ID+"-fill", 0, p.Rect.MinY, 0, p.Rect.MaxY).
		AddColorStop(0, rgba(129, 140, 248, 0.5).Color).
		AddColorStop(1, rgba(129, 140, 248, 0).Color)
	p.DefineGradient(fill)

	pts := project(p, g.xs, g.total)
	p.FillPath(shape.AreaToBaseline(pts, p.Y.Map(0), shape.MonotoneX),
		recording.Style{Class: ClassGrowthArea, Fill: fill})
	p.StrokePath(shape.Line(pts, shape.MonotoneX), recording.Style{Class: ClassLineSecond})
}

// Axes implements Series.
func (g *Growth) Axes(p *Plot) {
	p.XLabels(p.X.Ticks(6), 28, p.Format.Episode)
	p.Label("Total subscribers", p.Rect.MinX, p.Rect.MinY-10, recording.AnchorStart)
	p.YLabels(p.Y.Ticks(5), 12, p.Format.Integer)
}
