package chart

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/shape"
)

// Completion plots completion rate and its rolling average per episode
// against the portfolio average.
type Completion struct {
	frame   *Frame
	xs      []float64
	rates   []float64
	rolling []float64
	average float64
}

var _ Series = (*Completion)(nil)

// NewCompletion creates the completion chart.
func NewCompletion(ds *dataset.Dataset, opts ...Option) (*Completion, error) {
	eps, err := episodes(ds)
	if err != nil {
		return nil, err
	}
	c := &Completion{
		xs:      column(eps, episodeNumber),
		rates:   column(eps, func(e dataset.Episode) float64 { return e.CompletionRate }),
		rolling: column(eps, func(e dataset.Episode) float64 { return e.CompletionRolling }),
		average: ds.AverageCompletionRate,
	}
	r := extent(c.rates)
	c.frame, err = NewFrame(FrameConfig{
		Kind: KindCompletion,
		Card: Card{
			Title:       "Completion Discipline",
			Description: "Track how well episodes keep listeners to the end and spot the dips that signal pacing or segment order issues.",
			Insight:     ds.Insight(string(KindCompletion)),
			Legend: []LegendItem{
				{Label: "Completion rate", Swatch: colorSky},
				{Label: "Rolling average", Swatch: colorIndigo},
				{Label: "Portfolio average", Swatch: colorAmber},
			},
		},
		Margin: DefaultMargin,
		X:      extent(c.xs),
		Y:      ggchart.Dom(min(0.45, r.Min-0.02), max(0.95, r.Max+0.02)),
	}, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Frame implements Chart.
func (c *Completion) Frame() *Frame { return c.frame }

// Record implements Chart.
func (c *Completion) Record() *recording.Recording { return c.frame.Record(c) }

// Grid implements Series.
func (c *Completion) Grid(p *Plot) {
	p.HGrid(p.Y.Ticks(5))
}

// Draw implements Series.
func (c *Completion) Draw(p *Plot) {
	avg := p.Y.Map(c.average)
	p.Line(p.Rect.MinX, avg, p.Rect.MaxX, avg, recording.Style{Class: ClassAverage})

	pts := project(p, c.xs, c.rates)
	p.StrokePath(shape.Line(pts, shape.MonotoneX), recording.Style{Class: ClassLinePrimary})
	p.StrokePath(shape.Line(project(p, c.xs, c.rolling), shape.MonotoneX), recording.Style{Class: ClassLineSecond})
	for _, pt := range pts {
		p.Circle(recording.Circle{Center: pt, Radius: 3, Style: recording.Style{Class: ClassDot}})
	}
}

// Axes implements Series.
func (c *Completion) Axes(p *Plot) {
	p.XLabels(p.X.Ticks(6), 28, p.Format.Episode)
	p.Label("Completion %", p.Rect.MinX-12, p.Rect.MinY, recording.AnchorEnd)
	p.YLabels(p.Y.Ticks(5), 14, p.Format.Percent)
}
