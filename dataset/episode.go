package dataset

import (
	"cmp"
	"slices"
)

// DefaultRollingWindow is the number of episodes averaged for the rolling
// completion rate.
const DefaultRollingWindow = 3

// Episode holds the analytics of one published episode.
type Episode struct {
	Episode               int     `yaml:"episode" json:"episode"`
	Title                 string  `yaml:"title,omitempty" json:"title,omitempty"`
	CompletionRate        float64 `yaml:"completionRate" json:"completionRate"`
	CompletionRolling     float64 `yaml:"completionRolling,omitempty" json:"completionRolling,omitempty"`
	ListenersTotal        int     `yaml:"listenersTotal,omitempty" json:"listenersTotal,omitempty"`
	NewListeners          int     `yaml:"newListeners,omitempty" json:"newListeners,omitempty"`
	ReturningListeners    int     `yaml:"returningListeners,omitempty" json:"returningListeners,omitempty"`
	SubscribersGained     int     `yaml:"subscribersGained,omitempty" json:"subscribersGained,omitempty"`
	CumulativeSubscribers int     `yaml:"cumulativeSubscribers,omitempty" json:"cumulativeSubscribers,omitempty"`
	SocialMediaShares     int     `yaml:"socialMediaShares,omitempty" json:"socialMediaShares,omitempty"`
}

// NewShare returns the fraction of listeners that were new, or 0 when
// the episode had no listeners.
func (e Episode) NewShare() float64 {
	if e.ListenersTotal == 0 {
		return 0
	}
	return float64(e.NewListeners) / float64(e.ListenersTotal)
}

// ReturningShare returns the fraction of listeners that were returning,
// or 0 when the episode had no listeners.
func (e Episode) ReturningShare() float64 {
	if e.ListenersTotal == 0 {
		return 0
	}
	return float64(e.ReturningListeners) / float64(e.ListenersTotal)
}

// env exposes the episode to filter expressions under its field names.
func (e Episode) env() map[string]any {
	return map[string]any{
		"episode":               e.Episode,
		"title":                 e.Title,
		"completionRate":        e.CompletionRate,
		"completionRolling":     e.CompletionRolling,
		"listenersTotal":        e.ListenersTotal,
		"newListeners":          e.NewListeners,
		"returningListeners":    e.ReturningListeners,
		"subscribersGained":     e.SubscribersGained,
		"cumulativeSubscribers": e.CumulativeSubscribers,
		"socialMediaShares":     e.SocialMediaShares,
		"newShare":              e.NewShare(),
		"returningShare":        e.ReturningShare(),
	}
}

// Dataset is a show's episode analytics plus per-chart insight text.
type Dataset struct {
	Name                  string            `yaml:"name,omitempty" json:"name,omitempty"`
	AverageCompletionRate float64           `yaml:"averageCompletionRate,omitempty" json:"averageCompletionRate,omitempty"`
	RollingWindow         int               `yaml:"rollingWindow,omitempty" json:"rollingWindow,omitempty"`
	Insights              map[string]string `yaml:"insights,omitempty" json:"insights,omitempty"`
	Episodes              []Episode         `yaml:"episodes" json:"episodes"`
}

// Insight returns the insight text for a chart, or "" if there is none.
func (d *Dataset) Insight(chart string) string {
	return d.Insights[chart]
}

// Derive sorts episodes by number and fills in the derived columns that
// the document left out: the rolling completion average, cumulative
// subscribers and the portfolio average completion rate. A column is
// considered absent when it is zero for every episode.
func (d *Dataset) Derive() {
	slices.SortStableFunc(d.Episodes, func(a, b Episode) int {
		return cmp.Compare(a.Episode, b.Episode)
	})
	if d.RollingWindow <= 0 {
		d.RollingWindow = DefaultRollingWindow
	}

	if !slices.ContainsFunc(d.Episodes, func(e Episode) bool { return e.CompletionRolling != 0 }) {
		rolling := RollingMean(completionRates(d.Episodes), d.RollingWindow)
		for i := range d.Episodes {
			d.Episodes[i].CompletionRolling = rolling[i]
		}
	}
	if !slices.ContainsFunc(d.Episodes, func(e Episode) bool { return e.CumulativeSubscribers != 0 }) {
		total := 0
		for i := range d.Episodes {
			total += d.Episodes[i].SubscribersGained
			d.Episodes[i].CumulativeSubscribers = total
		}
	}
	if d.AverageCompletionRate == 0 {
		d.AverageCompletionRate = Mean(completionRates(d.Episodes))
	}
}

// RollingMean returns the trailing mean of values over window elements.
// The first elements average over as many values as are available.
func RollingMean(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Mean returns the arithmetic mean of values, or 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func completionRates(eps []Episode) []float64 {
	out := make([]float64, len(eps))
	for i, e := range eps {
		out[i] = e.CompletionRate
	}
	return out
}
