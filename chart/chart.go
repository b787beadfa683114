package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/recording"
)

// ErrNoData is returned when a chart is created from a dataset without
// episodes.
var ErrNoData = errors.New("chart: dataset has no episodes")

// Kind names a chart type. It doubles as the key of the chart's insight
// in a dataset.
type Kind string

const (
	KindCompletion  Kind = "completion"
	KindListenerMix Kind = "mix"
	KindGrowth      Kind = "growth"
	KindScatter     Kind = "scatter"
)

// Kinds returns every chart kind in display order.
func Kinds() []Kind {
	return []Kind{KindCompletion, KindListenerMix, KindScatter, KindGrowth}
}

// ParseKind parses a chart kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("chart: unknown kind %q", s)
}

// Chart is a renderable chart.
type Chart interface {
	// Frame returns the chart's frame, which owns zoom state.
	Frame() *Frame

	// Record draws the chart for the current zoom state.
	Record() *recording.Recording
}

// New creates the chart of the given kind.
func New(kind Kind, ds *dataset.Dataset, opts ...Option) (Chart, error) {
	switch kind {
	case KindCompletion:
		return NewCompletion(ds, opts...)
	case KindListenerMix:
		return NewListenerMix(ds, opts...)
	case KindGrowth:
		return NewGrowth(ds, opts...)
	case KindScatter:
		return NewScatter(ds, opts...)
	}
	return nil, fmt.Errorf("chart: unknown kind %q", kind)
}

// NewAll creates one chart of every kind.
func NewAll(ds *dataset.Dataset, opts ...Option) ([]Chart, error) {
	charts := make([]Chart, 0, len(Kinds()))
	for _, k := range Kinds() {
		c, err := New(k, ds, opts...)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}

func episodes(ds *dataset.Dataset) ([]dataset.Episode, error) {
	if ds == nil || len(ds.Episodes) == 0 {
		return nil, ErrNoData
	}
	return ds.Episodes, nil
}

func column(eps []dataset.Episode, get func(dataset.Episode) float64) []float64 {
	out := make([]float64, len(eps))
	for i, e := range eps {
		out[i] = get(e)
	}
	return out
}

func episodeNumber(e dataset.Episode) float64 { return float64(e.Episode) }

// extent is ggchart.Extent for columns known to hold finite values.
func extent(values []float64) ggchart.Domain {
	d, _ := ggchart.Extent(values)
	return d
}

// project maps parallel data columns through the plot scales.
func project(p *Plot, xs, ys []float64) []ggchart.Point {
	pts := make([]ggchart.Point, len(xs))
	for i := range xs {
		pts[i] = ggchart.Pt(p.X.Map(xs[i]), p.Y.Map(ys[i]))
	}
	return pts
}
