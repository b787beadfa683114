package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/recording/backends/raster"
	_ "github.com/gogpu/ggchart/recording/backends/svg"
	"github.com/gogpu/ggchart/zoom"
)

type renderFlags struct {
	data     string
	jsonPath string
	where    string
	chart    string
	format   string
	out      string
	config   string
	font     string
	gestures []string
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render charts from a dataset",
		Long: `Render one or all charts from an episode dataset.

Each chart is written to <out>/<chart>.<ext>. Gestures are applied in
order to every rendered chart before it is drawn.

Gestures:
  wheel:X,Y,DELTA       wheel at (X,Y); negative DELTA zooms in
  zoom:X,Y,FACTOR       zoom by FACTOR keeping (X,Y) fixed
  drag:X1,Y1:X2,Y2      drag from one point to another
  pan:DX,DY             pan by a pixel offset
  dblclick[:X,Y]        double-click (resets zoom)
  reset                 reset zoom

Examples:
  ggchart render --data episodes.yaml
  ggchart render --data episodes.yaml --chart scatter --format png --font Inter.ttf
  ggchart render --data export.json --json-path shows.0 --where "episode >= 10"
  ggchart render --data episodes.yaml --chart completion --gesture zoom:338,171,4 --gesture pan:-120,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), f)
		},
	}

	cmd.Flags().StringVar(&f.data, "data", "", "Dataset file (YAML or JSON)")
	cmd.Flags().StringVar(&f.jsonPath, "json-path", "", "gjson path selecting the dataset inside a JSON file")
	cmd.Flags().StringVar(&f.where, "where", "", "Episode filter expression")
	cmd.Flags().StringVar(&f.chart, "chart", "all", "Chart to render: all, completion, mix, scatter or growth")
	cmd.Flags().StringVar(&f.format, "format", "svg", "Output format: svg or png")
	cmd.Flags().StringVar(&f.out, "out", ".", "Output directory")
	cmd.Flags().StringVar(&f.config, "config", "", "Render config file (YAML)")
	cmd.Flags().StringVar(&f.font, "font", "", "TrueType font for PNG labels (overrides the config)")
	cmd.Flags().StringArrayVar(&f.gestures, "gesture", nil, "Gesture script, repeatable")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runRender(stdout io.Writer, f *renderFlags) error {
	cfg := &RenderConfig{}
	if f.config != "" {
		var err error
		if cfg, err = LoadConfig(f.config); err != nil {
			return err
		}
	}
	if f.font != "" {
		cfg.Font = f.font
	}
	opts, err := cfg.ChartOptions()
	if err != nil {
		return err
	}

	ds, err := loadDataset(f.data, f.jsonPath)
	if err != nil {
		return err
	}
	if f.where != "" {
		if ds, err = ds.Where(f.where); err != nil {
			return err
		}
	}

	kinds, err := selectKinds(f.chart)
	if err != nil {
		return err
	}
	backendName, ext, err := selectFormat(f.format)
	if err != nil {
		return err
	}
	gestures, err := zoom.ParseGestures(f.gestures)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	_, _ = fmt.Fprintf(stdout, "Rendering %s episodes from %s\n", humanize.Comma(int64(len(ds.Episodes))), f.data)
	for _, kind := range kinds {
		c, err := chart.New(kind, ds, opts...)
		if err != nil {
			return err
		}
		for _, g := range gestures {
			g.Dispatch(c.Frame().Overlay(), c.Frame().Controller())
		}

		path := filepath.Join(f.out, string(kind)+ext)
		size, err := writeChart(c.Record(), backendName, cfg, path)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		ggchart.Logger().Info("chart written", "chart", kind, "path", path, "bytes", size)
		_, _ = fmt.Fprintf(stdout, "✓ %-10s %s (%s)\n", kind, path, humanize.Bytes(uint64(size)))
	}
	return nil
}

func loadDataset(path, jsonPath string) (*dataset.Dataset, error) {
	if jsonPath == "" {
		return dataset.Load(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	ds, err := dataset.ParseJSONPath(data, jsonPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

func selectKinds(name string) ([]chart.Kind, error) {
	if strings.EqualFold(name, "all") || name == "" {
		return chart.Kinds(), nil
	}
	k, err := chart.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []chart.Kind{k}, nil
}

// selectFormat maps an output format to the backend that claims its
// file extension.
func selectFormat(format string) (backend, ext string, err error) {
	ext = "." + strings.ToLower(strings.TrimPrefix(format, "."))
	backend, ok := recording.ForPath("chart" + ext)
	if !ok {
		return "", "", fmt.Errorf("unsupported format %q (registered backends: %s)",
			format, strings.Join(recording.Backends(), ", "))
	}
	return backend, ext, nil
}

// writeChart plays rec back into a fresh backend and saves it to path.
// It returns the size of the written file.
func writeChart(rec *recording.Recording, name string, cfg *RenderConfig, path string) (int64, error) {
	backend, err := newBackend(name, cfg)
	if err != nil {
		return 0, err
	}
	if err := rec.Playback(backend); err != nil {
		return 0, err
	}
	if rb, ok := backend.(*raster.Backend); ok && rb.SkippedText() > 0 {
		ggchart.Logger().Warn("labels skipped: no font configured (use --font)",
			"path", path, "labels", rb.SkippedText())
	}

	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return 0, fmt.Errorf("backend %q cannot write files", name)
	}
	if err := fb.SaveToFile(path); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// newBackend creates a backend by name. The raster backend is built
// directly so the font and background from the config reach it.
func newBackend(name string, cfg *RenderConfig) (recording.Backend, error) {
	if name != "raster" {
		return recording.NewBackend(name)
	}
	var opts []raster.Option
	if cfg.Font != "" {
		src, err := raster.LoadFont(cfg.Font)
		if err != nil {
			return nil, err
		}
		opts = append(opts, raster.WithFont(src))
	}
	if bg, ok := cfg.BackgroundColor(); ok {
		opts = append(opts, raster.WithBackground(bg))
	}
	return raster.NewBackend(opts...), nil
}
