package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chart"
	"github.com/gogpu/ggchart/recording"
)

// RenderConfig is the optional YAML file passed with --config.
//
//	width: 800
//	height: 450
//	maxZoom: 20
//	locale: de
//	font: fonts/Inter-Regular.ttf
//	background: "#0f172a"
//	margin: {top: 24, right: 24, bottom: 42, left: 60}
//	theme:
//	  dot: {fill: "#f472b6"}
//	  line-primary: {stroke: "#f472b6", strokeWidth: 3}
//	  stack-new: {opacity: 0.4}
type RenderConfig struct {
	Width            float64                `yaml:"width"`
	Height           float64                `yaml:"height"`
	Margin           *MarginConfig          `yaml:"margin"`
	MaxZoom          float64                `yaml:"maxZoom"`
	WheelSensitivity float64                `yaml:"wheelSensitivity"`
	Locale           string                 `yaml:"locale"`
	Font             string                 `yaml:"font"`
	Background       string                 `yaml:"background"`
	Theme            map[string]StyleConfig `yaml:"theme"`
}

// MarginConfig overrides every chart's margins.
type MarginConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// StyleConfig overrides the paint of one theme class. Colors are hex.
// Opacity, in [0, 1], replaces the alpha of the solid fill and stroke.
type StyleConfig struct {
	Fill        string    `yaml:"fill"`
	Stroke      string    `yaml:"stroke"`
	StrokeWidth float64   `yaml:"strokeWidth"`
	Dash        []float64 `yaml:"dash"`
	Opacity     *float64  `yaml:"opacity"`
}

// LoadConfig reads a render config file. Unknown keys are an error.
func LoadConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &RenderConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ChartOptions converts the config to chart options.
func (c *RenderConfig) ChartOptions() ([]chart.Option, error) {
	var opts []chart.Option
	if c.Width != 0 || c.Height != 0 {
		w, h := c.Width, c.Height
		if w == 0 {
			w = chart.DefaultWidth
		}
		if h == 0 {
			h = chart.DefaultHeight
		}
		opts = append(opts, chart.WithSize(w, h))
	}
	if m := c.Margin; m != nil {
		opts = append(opts, chart.WithMargin(ggchart.Margin{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}))
	}
	if c.MaxZoom != 0 {
		opts = append(opts, chart.WithMaxZoom(c.MaxZoom))
	}
	if c.WheelSensitivity != 0 {
		opts = append(opts, chart.WithWheelSensitivity(c.WheelSensitivity))
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("config locale %q: %w", c.Locale, err)
		}
		opts = append(opts, chart.WithLocale(tag))
	}
	if len(c.Theme) > 0 {
		for class, sc := range c.Theme {
			if o := sc.Opacity; o != nil && !(*o >= 0 && *o <= 1) {
				return nil, fmt.Errorf("config theme %s: opacity %v outside [0, 1]", class, *o)
			}
		}
		opts = append(opts, chart.WithTheme(c.theme()))
	}
	return opts, nil
}

// theme applies the class overrides on top of the default theme.
func (c *RenderConfig) theme() recording.Theme {
	theme := chart.DefaultTheme()
	for class, sc := range c.Theme {
		s := theme[class]
		if sc.Fill != "" {
			s.Fill = recording.Hex(sc.Fill)
		}
		if sc.Stroke != "" {
			s.Stroke = recording.Hex(sc.Stroke)
		}
		if sc.StrokeWidth != 0 {
			s.LineWidth = sc.StrokeWidth
		}
		if sc.Dash != nil {
			s.Dash = sc.Dash
		}
		if sc.Opacity != nil {
			s.Fill = withAlpha(s.Fill, *sc.Opacity)
			s.Stroke = withAlpha(s.Stroke, *sc.Opacity)
		}
		theme[class] = s
	}
	return theme
}

// withAlpha sets the alpha of a solid brush. Other brushes keep their
// own stop colors.
func withAlpha(b recording.Brush, a float64) recording.Brush {
	if sb, ok := b.(recording.SolidBrush); ok {
		sb.Color.A = a
		return sb
	}
	return b
}

// BackgroundColor returns the raster background, if configured.
func (c *RenderConfig) BackgroundColor() (gg.RGBA, bool) {
	if c.Background == "" {
		return gg.RGBA{}, false
	}
	return gg.Hex(c.Background), true
}
