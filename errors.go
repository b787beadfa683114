package ggchart

import (
	"errors"
	"strconv"
)

// Sentinel errors wrapped by ConfigurationError.
var (
	// ErrInvalidViewport is returned when the plotting rectangle has zero
	// or negative width or height.
	ErrInvalidViewport = errors.New("ggchart: invalid viewport")

	// ErrInvalidMaxZoom is returned when the zoom ceiling is below 1.
	ErrInvalidMaxZoom = errors.New("ggchart: invalid max zoom")
)

// ConfigurationError reports programmer-supplied configuration that cannot
// be used. It is returned once, at construction time; nothing recovers from
// it at runtime.
//
// Use errors.Is with ErrInvalidViewport or ErrInvalidMaxZoom to classify it.
type ConfigurationError struct {
	Field  string
	Value  float64
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return "ggchart: invalid " + e.Field + " (" +
		strconv.FormatFloat(e.Value, 'g', -1, 64) + "): " + e.Reason
}

// Unwrap returns the sentinel error classifying the failure.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
