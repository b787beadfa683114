package chart

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/shape"
)

// shareTicks are the fixed Y ticks of the listener mix chart.
var shareTicks = []float64{0, 0.25, 0.5, 0.75, 1}

// ListenerMix stacks the share of returning listeners under the share of
// new listeners per episode.
type ListenerMix struct {
	frame *Frame
	xs    []float64
	bands []shape.Band
}

var _ Series = (*ListenerMix)(nil)

// NewListenerMix creates the listener mix chart. Episodes without
// listeners contribute zero to both shares.
func NewListenerMix(ds *dataset.Dataset, opts ...Option) (*ListenerMix, error) {
	eps, err := episodes(ds)
	if err != nil {
		return nil, err
	}
	m := &ListenerMix{
		xs: column(eps, episodeNumber),
		bands: shape.Stack(
			[]string{ClassStackReturn, ClassStackNew},
			[][]float64{
				column(eps, dataset.Episode.ReturningShare),
				column(eps, dataset.Episode.NewShare),
			},
		),
	}
	m.frame, err = NewFrame(FrameConfig{
		Kind: KindListenerMix,
		Card: Card{
			Title:       "Listener Mix",
			Description: "See how the audience blend between new and returning listeners shifts, so you can balance acquisition campaigns and retention hooks.",
			Insight:     ds.Insight(string(KindListenerMix)),
			Legend: []LegendItem{
				{Label: "Returning listeners", Class: ClassStackReturn},
				{Label: "New listeners", Class: ClassStackNew},
			},
		},
		Margin: DefaultMargin,
		X:      extent(m.xs),
		Y:      ggchart.Dom(0, 1),
	}, opts...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Frame implements Chart.
func (m *ListenerMix) Frame() *Frame { return m.frame }

// Record implements Chart.
func (m *ListenerMix) Record() *recording.Recording { return m.frame.Record(m) }

// Grid implements Series.
func (m *ListenerMix) Grid(p *Plot) {
	p.HGrid(shareTicks)
}

// Draw implements Series.
func (m *ListenerMix) Draw(p *Plot) {
	xs := make([]float64, len(m.xs))
	for i, x := range m.xs {
		xs[i] = p.X.Map(x)
	}
	for _, b := range m.bands {
		upper, lower := b.Project(xs, p.Y)
		p.FillPath(shape.Area(upper, lower, shape.MonotoneX), recording.Style{Class: b.Key})
	}
}

// Axes implements Series.
func (m *ListenerMix) Axes(p *Plot) {
	p.YLabels(shareTicks, 16, p.Format.Percent)
	p.XLabels(p.X.Ticks(6), 28, p.Format.Episode)
	p.Label("Audience share", p.Rect.MinX-10, p.Rect.MinY, recording.AnchorEnd)
}
