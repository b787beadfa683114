package chart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders axis tick values as labels in a given locale.
type Formatter struct {
	p *message.Printer
}

// NewFormatter creates a formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Integer rounds v half up and groups thousands: 12345.6 -> "12,346".
func (f *Formatter) Integer(v float64) string {
	return f.p.Sprintf("%d", int64(roundHalfUp(v)))
}

// Percent renders a fraction as a whole percentage: 0.45 -> "45%".
func (f *Formatter) Percent(v float64) string {
	return f.p.Sprintf("%d%%", int64(roundHalfUp(v*100)))
}

// Episode renders an episode axis tick: 3.2 -> "Ep 3".
func (f *Formatter) Episode(v float64) string {
	return f.p.Sprintf("Ep %d", int64(roundHalfUp(v)))
}

func roundHalfUp(v float64) float64 {
	r := math.Floor(v + 0.5)
	if r == 0 {
		return 0
	}
	return r
}
