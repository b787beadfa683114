package chart

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/dataset"
	"github.com/gogpu/ggchart/recording"
	"github.com/gogpu/ggchart/recording/backends/svg"
)

const showYAML = `
name: Signal Path
insights:
  completion: Completion climbs after episode 2.
  scatter: Shares convert at roughly one subscriber per three shares.
episodes:
  - {episode: 1, title: Pilot, completionRate: 0.58, listenersTotal: 1000, newListeners: 800, returningListeners: 200, subscribersGained: 20, socialMediaShares: 60}
  - {episode: 2, title: Routing Tables, completionRate: 0.64, listenersTotal: 1500, newListeners: 600, returningListeners: 900, subscribersGained: 40, socialMediaShares: 120}
  - {episode: 3, title: Backpressure, completionRate: 0.73, listenersTotal: 2000, newListeners: 700, returningListeners: 1300, subscribersGained: 90, socialMediaShares: 260}
  - {episode: 4, title: Consensus, completionRate: 0.81, listenersTotal: 2400, newListeners: 600, returningListeners: 1800, subscribersGained: 130, socialMediaShares: 340}
`

func loadShow(t *testing.T, doc string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("dataset.Parse: %v", err)
	}
	return ds
}

var fixedID = WithIDGenerator(func() string { return "test" })

func texts(rec *recording.Recording) []recording.Text {
	var out []recording.Text
	for _, c := range rec.Commands() {
		if t, ok := c.(recording.DrawTextCommand); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

func circles(rec *recording.Recording) []recording.Circle {
	var out []recording.Circle
	for _, c := range rec.Commands() {
		if ci, ok := c.(recording.DrawCircleCommand); ok {
			out = append(out, ci.Circle)
		}
	}
	return out
}

func findText(t *testing.T, rec *recording.Recording, s string) recording.Text {
	t.Helper()
	for _, tx := range texts(rec) {
		if tx.Text == s {
			return tx
		}
	}
	t.Fatalf("text %q not recorded", s)
	return recording.Text{}
}

func strokes(rec *recording.Recording, class string) []*gg.Path {
	var out []*gg.Path
	for _, c := range rec.Commands() {
		if s, ok := c.(recording.StrokePathCommand); ok && s.Style.Class == class {
			out = append(out, rec.Resources().Path(s.Path))
		}
	}
	return out
}

func nearly(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func renderSVG(t *testing.T, rec *recording.Recording) string {
	t.Helper()
	b := svg.NewBackend()
	if err := rec.Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	out := b.String()
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("malformed SVG: %v\n%s", err, out)
		}
	}
	return out
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"completion", KindCompletion, false},
		{" MIX ", KindListenerMix, false},
		{"growth", KindGrowth, false},
		{"Scatter", KindScatter, false},
		{"pie", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
	if len(Kinds()) != 4 {
		t.Errorf("Kinds() = %v", Kinds())
	}
}

func TestNewErrors(t *testing.T) {
	ds := loadShow(t, showYAML)
	tests := []struct {
		name string
		ds   *dataset.Dataset
		opts []Option
		is   error
	}{
		{"nil dataset", nil, nil, ErrNoData},
		{"no episodes", &dataset.Dataset{}, nil, ErrNoData},
		{"max zoom below one", ds, []Option{WithMaxZoom(0.5)}, ggchart.ErrInvalidMaxZoom},
		{"no plot area", ds, []Option{WithSize(80, 50)}, ggchart.ErrInvalidViewport},
	}
	for _, tt := range tests {
		for _, k := range Kinds() {
			t.Run(tt.name+"/"+string(k), func(t *testing.T) {
				_, err := New(k, tt.ds, tt.opts...)
				if !errors.Is(err, tt.is) {
					t.Errorf("err = %v, want %v", err, tt.is)
				}
			})
		}
	}
	if _, err := New("pie", ds); err == nil {
		t.Error("New accepted an unknown kind")
	}
}

func TestFrameStructure(t *testing.T) {
	c, err := NewCompletion(loadShow(t, showYAML), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	rec := c.Record()
	cmds := rec.Commands()

	root, ok := cmds[0].(recording.BeginGroupCommand)
	if !ok {
		t.Fatalf("first command = %T, want BeginGroupCommand", cmds[0])
	}
	if root.Group.ID != "completion-test" || root.Group.Class != ClassCard || root.Group.Title != "Completion Discipline" {
		t.Errorf("root group = %+v", root.Group)
	}

	clip, ok := rec.Resources().Clip("completion-test-plot")
	if !ok {
		t.Fatal("plot clip not defined")
	}
	if clip.Rect != (ggchart.Rect{MinX: 60, MinY: 24, MaxX: 616, MaxY: 318}) {
		t.Errorf("clip rect = %+v", clip.Rect)
	}

	var classes []string
	clipped := false
	for _, cmd := range cmds {
		if g, ok := cmd.(recording.BeginGroupCommand); ok {
			classes = append(classes, g.Group.Class)
			if g.Group.Class == "series" && g.Group.ClipID == "completion-test-plot" {
				clipped = true
			}
		}
	}
	want := []string{ClassCard, "grid", "series", "axes", "legend", "insight"}
	if strings.Join(classes, ",") != strings.Join(want, ",") {
		t.Errorf("groups = %v, want %v", classes, want)
	}
	if !clipped {
		t.Error("series group is not clipped to the plot")
	}

	last, ok := cmds[len(cmds)-2].(recording.DrawRectCommand)
	if !ok {
		t.Fatalf("overlay: command = %T, want DrawRectCommand before the closing group", cmds[len(cmds)-2])
	}
	if last.Box.Style.Class != ClassInteraction || last.Box.Title != OverlayHint {
		t.Errorf("overlay box = %+v", last.Box)
	}
	if last.Box.Rect != c.Frame().Overlay().Rect() {
		t.Errorf("overlay rect %+v differs from the gesture surface %+v", last.Box.Rect, c.Frame().Overlay().Rect())
	}
	if _, ok := cmds[len(cmds)-1].(recording.EndGroupCommand); !ok {
		t.Errorf("last command = %T, want EndGroupCommand", cmds[len(cmds)-1])
	}
}

func TestCompletionChart(t *testing.T) {
	ds := loadShow(t, showYAML)
	c, err := NewCompletion(ds, fixedID)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Frame().YScale().Domain; !nearly(got.Min, 0.45) || !nearly(got.Max, 0.95) {
		t.Errorf("y domain = %+v, want [0.45, 0.95]", got)
	}

	rec := c.Record()
	title := findText(t, rec, "Completion %")
	if title.Pos != ggchart.Pt(48, 24) || title.Anchor != recording.AnchorEnd {
		t.Errorf("axis title = %+v", title)
	}
	for _, s := range []string{"50%", "90%", "Ep 1", "Ep 4"} {
		findText(t, rec, s)
	}
	ep1 := findText(t, rec, "Ep 1")
	if ep1.Pos != ggchart.Pt(60, 346) || ep1.Anchor != recording.AnchorMiddle {
		t.Errorf("Ep 1 label = %+v", ep1)
	}
	pct := findText(t, rec, "50%")
	if pct.Pos.X != 46 || !nearly(pct.Pos.Y, c.Frame().YScale().Map(0.5)+4) {
		t.Errorf("50%% label = %+v", pct)
	}

	dots := circles(rec)
	if len(dots) != 4 {
		t.Fatalf("dots = %d, want 4", len(dots))
	}
	for _, d := range dots {
		if d.Radius != 3 || d.Style.Class != ClassDot || d.Style.Fill == nil {
			t.Errorf("dot = %+v", d)
		}
	}

	avg := strokes(rec, ClassAverage)
	if len(avg) != 1 {
		t.Fatalf("average lines = %d, want 1", len(avg))
	}
	y := c.Frame().YScale().Map(ds.AverageCompletionRate)
	start := avg[0].Elements()[0].(gg.MoveTo).Point
	if start.X != 60 || !nearly(start.Y, y) {
		t.Errorf("average line starts at %v, want (60, %v)", start, y)
	}
	for _, cmd := range rec.Commands() {
		if s, ok := cmd.(recording.StrokePathCommand); ok && s.Style.Class == ClassAverage {
			if len(s.Style.Dash) != 2 || s.Style.LineWidth != 1.8 {
				t.Errorf("average style = %+v, want dashed 6 6 at width 1.8", s.Style)
			}
		}
	}
	if len(strokes(rec, ClassLinePrimary)) != 1 || len(strokes(rec, ClassLineSecond)) != 1 {
		t.Error("want one completion line and one rolling line")
	}
}

func TestZoomRerecords(t *testing.T) {
	c, err := NewCompletion(loadShow(t, showYAML), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	spacing := func() float64 {
		d := circles(c.Record())
		return d[1].Center.X - d[0].Center.X
	}
	base := spacing()
	if !nearly(base, 556.0/3) {
		t.Fatalf("base spacing = %v", base)
	}

	ov := c.Frame().Overlay()
	ov.Wheel(ggchart.Pt(338, 171), -500)
	if got := spacing(); !nearly(got, 2*base) {
		t.Errorf("spacing after 2x zoom = %v, want %v", got, 2*base)
	}

	ov.Drag(ggchart.Pt(300, 150), ggchart.Pt(340, 150), 4)
	if c.Frame().Controller().Dragging() {
		t.Error("drag left the controller dragging")
	}

	ov.DoubleClick(ggchart.Pt(300, 150))
	if got := spacing(); !nearly(got, base) {
		t.Errorf("spacing after reset = %v, want %v", got, base)
	}
}

func TestFrameClose(t *testing.T) {
	c, err := NewGrowth(loadShow(t, showYAML), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	before := c.Frame().XScale().Domain
	c.Frame().Close()
	c.Frame().Overlay().Wheel(ggchart.Pt(300, 150), -500)
	if got := c.Frame().XScale().Domain; got != before {
		t.Errorf("closed frame zoomed: %+v -> %+v", before, got)
	}
	if c.Frame().Overlay().Bound() {
		t.Error("overlay still bound after Close")
	}
}

func TestListenerMixChart(t *testing.T) {
	doc := showYAML + "  - {episode: 5, title: Silent, completionRate: 0.5, listenersTotal: 0}\n"
	m, err := NewListenerMix(loadShow(t, doc), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	rec := m.Record()

	var fills []string
	for _, cmd := range rec.Commands() {
		if f, ok := cmd.(recording.FillPathCommand); ok {
			fills = append(fills, f.Style.Class)
			if f.Style.Fill == nil {
				t.Errorf("%s has no fill from the theme", f.Style.Class)
			}
		}
	}
	if strings.Join(fills, ",") != ClassStackReturn+","+ClassStackNew {
		t.Errorf("fills = %v, want returning then new", fills)
	}
	for _, s := range []string{"0%", "25%", "50%", "75%", "100%", "Ep 5"} {
		findText(t, rec, s)
	}
	if l := findText(t, rec, "100%"); l.Pos != ggchart.Pt(44, 28) {
		t.Errorf("100%% label at %v, want (44, 28)", l.Pos)
	}
	if l := findText(t, rec, "Audience share"); l.Pos != ggchart.Pt(50, 24) {
		t.Errorf("axis title at %v", l.Pos)
	}

	// The silent episode contributes zero to both layers: the top of the
	// stack drops to the baseline.
	top := m.bands[1].Upper
	if top[len(top)-1] != 0 || !nearly(top[0], 1) {
		t.Errorf("stack top = %v", top)
	}
}

func TestGrowthChart(t *testing.T) {
	doc := `
episodes:
  - {episode: 1, completionRate: 0.5, subscribersGained: 400}
  - {episode: 2, completionRate: 0.5, subscribersGained: 700}
  - {episode: 3, completionRate: 0.5, subscribersGained: 900}
`
	g, err := NewGrowth(loadShow(t, doc), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Frame().YScale().Domain; !nearly(got.Max, 2100) || got.Min != 0 {
		t.Errorf("y domain = %+v, want [0, 2100]", got)
	}
	rec := g.Record()

	grads := rec.Resources().Gradients()
	if len(grads) != 1 || grads[0].ID != "growth-test-fill" || len(grads[0].Stops) != 2 {
		t.Fatalf("gradients = %+v", grads)
	}
	var area recording.FillPathCommand
	for _, cmd := range rec.Commands() {
		if f, ok := cmd.(recording.FillPathCommand); ok {
			area = f
		}
	}
	if area.Style.Fill != recording.Brush(grads[0]) {
		t.Errorf("area fill = %#v, want the gradient", area.Style.Fill)
	}

	for _, s := range []string{"0", "500", "1,000", "1,500", "2,000"} {
		findText(t, rec, s)
	}
	if l := findText(t, rec, "Total subscribers"); l.Pos != ggchart.Pt(60, 14) || l.Anchor != recording.AnchorStart {
		t.Errorf("axis title = %+v", l)
	}
}

func TestScatterChart(t *testing.T) {
	s, err := NewScatter(loadShow(t, showYAML), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	if s.Highlight().Episode != 4 {
		t.Errorf("highlight = episode %d, want 4", s.Highlight().Episode)
	}
	if fit := s.Trend(); !(fit.Slope > 0) || fit.Degenerate {
		t.Errorf("trend = %v", fit)
	}
	y := s.Frame().YScale().Domain
	if y.Min != 0 || !nearly(y.Max, 143) {
		t.Errorf("y domain = %+v, want [0, 143]", y)
	}

	rec := s.Record()
	dots := circles(rec)
	if len(dots) != 4 {
		t.Fatalf("dots = %d", len(dots))
	}
	for i, d := range dots {
		if i == 3 {
			if d.Radius != 6 || d.Style.Class != ClassDotHigh {
				t.Errorf("highlight dot = %+v", d)
			}
			if d.Title != "Ep 4: Consensus\n340 shares → 130 subscribers" {
				t.Errorf("highlight title = %q", d.Title)
			}
			continue
		}
		if d.Radius != 4 || d.Style.Class != ClassDot {
			t.Errorf("dot %d = %+v", i, d)
		}
	}

	line := strokes(rec, ClassLineSecond)
	if len(line) != 1 {
		t.Fatalf("trend lines = %d", len(line))
	}
	els := line[0].Elements()
	if from, to := els[0].(gg.MoveTo).Point, els[1].(gg.LineTo).Point; from.X != 68 || to.X != 608 {
		t.Errorf("trend spans %v..%v, want x 68..608", from, to)
	}

	v := findText(t, rec, "Subscribers gained")
	if v.Rotate != -90 || v.Pos != ggchart.Pt(26, 180) || v.Anchor != recording.AnchorMiddle {
		t.Errorf("vertical title = %+v", v)
	}
	if h := findText(t, rec, "Social media shares"); h.Pos != ggchart.Pt(320, 348) {
		t.Errorf("horizontal title at %v", h.Pos)
	}
}

func TestScatterZoomsBothAxes(t *testing.T) {
	s, err := NewScatter(loadShow(t, showYAML), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	x0, y0 := s.Frame().XScale().Domain, s.Frame().YScale().Domain
	s.Frame().Overlay().Wheel(ggchart.Pt(338, 171), -500)
	x1, y1 := s.Frame().XScale().Domain, s.Frame().YScale().Domain
	if !nearly(x1.Span(), x0.Span()/2) || !nearly(y1.Span(), y0.Span()/2) {
		t.Errorf("spans after 2x zoom: x %v -> %v, y %v -> %v", x0.Span(), x1.Span(), y0.Span(), y1.Span())
	}

	// The trend line follows the visible X domain.
	line := strokes(s.Record(), ClassLineSecond)[0]
	if from := line.Elements()[0].(gg.MoveTo).Point; from.X != 68 {
		t.Errorf("zoomed trend starts at x=%v, want the plot edge", from.X)
	}
}

func TestSinglePointDataset(t *testing.T) {
	ds := loadShow(t, "- {episode: 7, title: Solo, completionRate: 0.6, listenersTotal: 10, newListeners: 4, returningListeners: 6, subscribersGained: 3, socialMediaShares: 9}\n")
	charts, err := NewAll(ds, fixedID)
	if err != nil {
		t.Fatalf("NewAll: %v", err)
	}
	for _, c := range charts {
		t.Run(string(c.Frame().Kind()), func(t *testing.T) {
			c.Frame().Overlay().Wheel(ggchart.Pt(300, 150), -300)
			c.Frame().Overlay().Drag(ggchart.Pt(300, 150), ggchart.Pt(320, 160), 2)
			rec := c.Record()
			for _, d := range circles(rec) {
				if !d.Center.IsFinite() {
					t.Errorf("non-finite dot %v", d.Center)
				}
			}
			renderSVG(t, rec)
		})
	}
}

func TestAllChartsSVG(t *testing.T) {
	charts, err := NewAll(loadShow(t, showYAML))
	if err != nil {
		t.Fatal(err)
	}
	ids := map[string]bool{}
	for _, c := range charts {
		id := c.Frame().ID()
		if ids[id] {
			t.Errorf("duplicate chart id %q", id)
		}
		ids[id] = true

		out := renderSVG(t, c.Record())
		for _, want := range []string{
			`class="interaction-layer"`,
			"<title>" + OverlayHint + "</title>",
			"<title>" + c.Frame().Card().Title + "</title>",
			`clip-path="url(#` + id + `-plot)"`,
			".axis-label",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("%s: output missing %q", c.Frame().Kind(), want)
			}
		}
	}
}

func TestInsightGroup(t *testing.T) {
	ds := loadShow(t, showYAML)
	with, _ := NewScatter(ds, fixedID)
	without, _ := NewGrowth(ds, fixedID)

	hasInsight := func(rec *recording.Recording) string {
		for _, cmd := range rec.Commands() {
			if g, ok := cmd.(recording.BeginGroupCommand); ok && g.Group.Class == "insight" {
				return g.Group.Desc
			}
		}
		return ""
	}
	if got := hasInsight(with.Record()); !strings.HasPrefix(got, "Shares convert") {
		t.Errorf("scatter insight = %q", got)
	}
	if got := hasInsight(without.Record()); got != "" {
		t.Errorf("growth has no insight, got %q", got)
	}
}

func TestLegendLayout(t *testing.T) {
	c, err := NewCompletion(loadShow(t, showYAML), fixedID)
	if err != nil {
		t.Fatal(err)
	}
	rec := c.Record()
	var labels []recording.Text
	var swatches []recording.Box
	inLegend := false
	for _, cmd := range rec.Commands() {
		switch cmd := cmd.(type) {
		case recording.BeginGroupCommand:
			inLegend = cmd.Group.Class == "legend"
		case recording.EndGroupCommand:
			inLegend = false
		case recording.DrawTextCommand:
			if inLegend {
				labels = append(labels, cmd.Text)
			}
		case recording.DrawRectCommand:
			if inLegend {
				swatches = append(swatches, cmd.Box)
			}
		}
	}
	if len(labels) != 3 || len(swatches) != 3 {
		t.Fatalf("legend has %d labels and %d swatches, want 3 each", len(labels), len(swatches))
	}
	// Items are laid out right to left.
	if labels[0].Text != "Portfolio average" || labels[0].Pos.X != 616 {
		t.Errorf("rightmost label = %+v", labels[0])
	}
	for i := 1; i < len(swatches); i++ {
		if !(swatches[i].Rect.MaxX < labels[i-1].Pos.X-TextWidth(labels[i-1].Text, legendTextSize)) {
			t.Errorf("legend item %d overlaps its right neighbour", i)
		}
	}
}

func TestFormatter(t *testing.T) {
	en := NewFormatter(language.English)
	de := NewFormatter(language.German)
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"integer", en.Integer(12345.6), "12,346"},
		{"integer half up", en.Integer(2.5), "3"},
		{"integer negative zero", en.Integer(-0.2), "0"},
		{"integer german", de.Integer(12345), "12.345"},
		{"percent", en.Percent(0.45), "45%"},
		{"percent float noise", en.Percent(0.55), "55%"},
		{"episode", en.Episode(2.5), "Ep 3"},
		{"episode exact", en.Episode(10), "Ep 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("abc", 13); got != 21 {
		t.Errorf("TextWidth(abc, 13) = %v, want 21", got)
	}
	if got := TextWidth("", 11); got != 0 {
		t.Errorf("TextWidth(empty) = %v", got)
	}
	if a, b := TextWidth("abcd", 11), TextWidth("ab", 11); !nearly(a, 2*b) {
		t.Errorf("width not proportional to length: %v vs %v", a, b)
	}
}

func TestOptions(t *testing.T) {
	theme := DefaultTheme()
	theme[ClassDot] = recording.Style{Fill: recording.Hex("#ff0000")}
	c, err := NewCompletion(loadShow(t, showYAML),
		fixedID,
		WithTheme(theme),
		WithSize(800, 400),
		WithMargin(ggchart.Margin{Top: 10, Right: 10, Bottom: 10, Left: 10}),
		WithMaxZoom(2),
	)
	if err != nil {
		t.Fatal(err)
	}
	vp := c.Frame().Viewport()
	if vp.Width != 800 || vp.Height != 400 || vp.Margin.Left != 10 {
		t.Errorf("viewport = %+v", vp)
	}
	if c.Frame().Controller().MaxZoom() != 2 {
		t.Errorf("max zoom = %v", c.Frame().Controller().MaxZoom())
	}
	rec := c.Record()
	if rec.Width() != 800 || rec.Height() != 400 {
		t.Errorf("recording size = %dx%d", rec.Width(), rec.Height())
	}
	dot := circles(rec)[0]
	if dot.Style.Fill != recording.Brush(recording.Hex("#ff0000")) {
		t.Errorf("dot fill = %#v, want theme override", dot.Style.Fill)
	}

	var buf bytes.Buffer
	b := svg.NewBackend()
	if err := rec.Playback(b); err != nil {
		t.Fatal(err)
	}
	if _, err := b.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `viewBox="0 0 800 400"`) {
		t.Error("viewBox does not follow WithSize")
	}
}
