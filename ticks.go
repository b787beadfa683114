package ggchart

import "math"

// Thresholds for choosing a 10, 5 or 2 multiple of a power of ten.
var (
	tickE10 = math.Sqrt(50)
	tickE5  = math.Sqrt(10)
	tickE2  = math.Sqrt(2)
)

// tickSpec describes a run of ticks as integers i1..i2 multiplied by inc,
// or divided by inv when the step is below 1. Dividing keeps values such
// as 0.1 or 0.3 exact instead of accumulating 0.30000000000000004.
type tickSpec struct {
	i1, i2 float64
	inc    float64
	inv    bool
}

func (s tickSpec) value(i float64) float64 {
	if s.inv {
		return i / s.inc
	}
	return i * s.inc
}

func newTickSpec(start, stop float64, count float64) tickSpec {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= tickE10:
		factor = 10
	case e >= tickE5:
		factor = 5
	case e >= tickE2:
		factor = 2
	}

	var s tickSpec
	if power < 0 {
		s.inv = true
		s.inc = math.Pow(10, -power) / factor
		s.i1 = math.Round(start * s.inc)
		s.i2 = math.Round(stop * s.inc)
		if s.i1/s.inc < start {
			s.i1++
		}
		if s.i2/s.inc > stop {
			s.i2--
		}
	} else {
		s.inc = math.Pow(10, power) * factor
		s.i1 = math.Round(start / s.inc)
		s.i2 = math.Round(stop / s.inc)
		if s.i1*s.inc < start {
			s.i1++
		}
		if s.i2*s.inc > stop {
			s.i2--
		}
	}
	if s.i2 < s.i1 && count >= 0.5 && count < 2 {
		return newTickSpec(start, stop, count*2)
	}
	return s
}

// Ticks returns approximately approxCount "nice" values (multiples of 1, 2
// or 5 times a power of ten) inside d, in ascending order. The exact
// length depends on the domain; callers must not rely on it matching
// approxCount.
//
// A degenerate domain yields its single value. Non-finite bounds or a
// non-positive count yield nil.
func Ticks(d Domain, approxCount int) []float64 {
	if approxCount <= 0 || !isFinite(d.Min) || !isFinite(d.Max) {
		return nil
	}
	if d.IsDegenerate() {
		return []float64{d.Min}
	}
	s := newTickSpec(d.Min, d.Max, float64(approxCount))
	if !(s.i2 >= s.i1) {
		return nil
	}
	n := int(s.i2-s.i1) + 1
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = s.value(s.i1 + float64(i))
	}
	return ticks
}

// TickStep returns the increment Ticks would use for d and approxCount.
// It returns 0 when Ticks would return nil or a single value.
func TickStep(d Domain, approxCount int) float64 {
	if approxCount <= 0 || !isFinite(d.Min) || !isFinite(d.Max) || d.IsDegenerate() {
		return 0
	}
	s := newTickSpec(d.Min, d.Max, float64(approxCount))
	if s.inv {
		return 1 / s.inc
	}
	return s.inc
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
