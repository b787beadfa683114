// Package svg provides an SVG backend for the recording system.
//
// The output is a standalone SVG document. Style classes are kept as
// class attributes and the recording theme is emitted as a <style> sheet,
// so the markup can be restyled by a host page. Every element also
// carries its resolved paint as presentation attributes, so the document
// renders correctly on its own.
//
// # Example
//
//	import _ "github.com/gogpu/ggchart/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("chart.svg")
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	}, ".svg")
}

// DefaultFontFamily is the font stack used for text.
const DefaultFontFamily = "Inter, system-ui, sans-serif"

// Backend renders recordings to SVG markup.
// It implements recording.ThemedBackend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	width, height int
	precision     int
	fontFamily    string
	theme         recording.Theme

	defs  bytes.Buffer
	body  bytes.Buffer
	out   []byte
	depth int
	ended bool
}

var (
	_ recording.ThemedBackend = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// ErrNotFinished is returned by output methods called before End.
var ErrNotFinished = errors.New("svg: output requested before End")

// Option configures a Backend.
type Option func(*Backend)

// WithPrecision sets the number of decimals written for coordinates.
// The default is 2.
func WithPrecision(n int) Option {
	return func(b *Backend) {
		if n >= 0 {
			b.precision = n
		}
	}
}

// WithFontFamily sets the font-family used for text.
func WithFontFamily(family string) Option {
	return func(b *Backend) {
		if family != "" {
			b.fontFamily = family
		}
	}
}

// NewBackend creates a new SVG backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{precision: 2, fontFamily: DefaultFontFamily}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetTheme implements recording.ThemedBackend.
func (b *Backend) SetTheme(t recording.Theme) {
	b.theme = t
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.defs.Reset()
	b.body.Reset()
	b.out = nil
	b.depth = 0
	b.ended = false
	return nil
}

// End closes open groups and assembles the document.
func (b *Backend) End() error {
	for b.depth > 0 {
		b.EndGroup()
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" font-family="%s">`,
		b.width, b.height, b.width, b.height, html.EscapeString(b.fontFamily))
	doc.WriteByte('\n')
	if css := b.stylesheet(); css != "" {
		doc.WriteString("<style>")
		doc.WriteString(css)
		doc.WriteString("</style>\n")
	}
	if b.defs.Len() > 0 {
		doc.WriteString("<defs>\n")
		doc.Write(b.defs.Bytes())
		doc.WriteString("</defs>\n")
	}
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")

	b.out = doc.Bytes()
	b.ended = true
	return nil
}

// DefineGradient declares a vertical or diagonal linear gradient in
// canvas coordinates.
func (b *Backend) DefineGradient(g *recording.LinearGradientBrush) {
	fmt.Fprintf(&b.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
		html.EscapeString(g.ID), b.num(g.Start.X), b.num(g.Start.Y), b.num(g.End.X), b.num(g.End.Y))
	for _, s := range g.Stops {
		color, opacity := colorAttr(s.Color)
		fmt.Fprintf(&b.defs, `<stop offset="%s" stop-color="%s"`, b.num(s.Offset), color)
		if opacity != "" {
			fmt.Fprintf(&b.defs, ` stop-opacity="%s"`, opacity)
		}
		b.defs.WriteString("/>")
	}
	b.defs.WriteString("</linearGradient>\n")
}

// DefineClip declares a rectangular clipPath.
func (b *Backend) DefineClip(c recording.Clip) {
	fmt.Fprintf(&b.defs, `<clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath>`+"\n",
		html.EscapeString(c.ID), b.num(c.Rect.MinX), b.num(c.Rect.MinY), b.num(c.Rect.Width()), b.num(c.Rect.Height()))
}

// BeginGroup opens a <g> element.
func (b *Backend) BeginGroup(g recording.Group) {
	b.depth++
	b.body.WriteString("<g")
	b.attr("id", g.ID)
	b.attr("class", g.Class)
	if g.ClipID != "" {
		b.attr("clip-path", "url(#"+g.ClipID+")")
	}
	b.body.WriteString(">")
	b.title("title", g.Title)
	b.title("desc", g.Desc)
	b.body.WriteByte('\n')
}

// EndGroup closes the innermost <g> element.
func (b *Backend) EndGroup() {
	if b.depth == 0 {
		return
	}
	b.depth--
	b.body.WriteString("</g>\n")
}

// FillPath writes a filled <path>.
func (b *Backend) FillPath(path *gg.Path, style recording.Style) {
	b.body.WriteString(`<path d="`)
	b.body.WriteString(b.pathData(path))
	b.body.WriteByte('"')
	b.attr("class", style.Class)
	b.paint("fill", style.Fill)
	b.body.WriteString(` stroke="none"/>` + "\n")
}

// StrokePath writes a stroked, unfilled <path>.
func (b *Backend) StrokePath(path *gg.Path, style recording.Style) {
	b.body.WriteString(`<path d="`)
	b.body.WriteString(b.pathData(path))
	b.body.WriteByte('"')
	b.attr("class", style.Class)
	b.body.WriteString(` fill="none"`)
	b.stroke(style)
	b.body.WriteString("/>\n")
}

// DrawCircle writes a <circle>, with a <title> tooltip if set.
func (b *Backend) DrawCircle(c recording.Circle) {
	fmt.Fprintf(&b.body, `<circle cx="%s" cy="%s" r="%s"`, b.num(c.Center.X), b.num(c.Center.Y), b.num(c.Radius))
	b.attr("class", c.Style.Class)
	b.paint("fill", c.Style.Fill)
	b.stroke(c.Style)
	b.closeWithTitle("circle", c.Title)
}

// DrawRect writes a <rect>, with a <title> tooltip if set.
func (b *Backend) DrawRect(r recording.Box) {
	fmt.Fprintf(&b.body, `<rect x="%s" y="%s" width="%s" height="%s"`,
		b.num(r.Rect.MinX), b.num(r.Rect.MinY), b.num(r.Rect.Width()), b.num(r.Rect.Height()))
	if r.Radius > 0 {
		b.attr("rx", b.num(r.Radius))
	}
	b.attr("class", r.Style.Class)
	b.paint("fill", r.Style.Fill)
	b.stroke(r.Style)
	b.closeWithTitle("rect", r.Title)
}

// DrawText writes a <text> element positioned at its baseline.
func (b *Backend) DrawText(t recording.Text) {
	fmt.Fprintf(&b.body, `<text x="%s" y="%s"`, b.num(t.Pos.X), b.num(t.Pos.Y))
	if t.Anchor != recording.AnchorStart {
		b.attr("text-anchor", t.Anchor.String())
	}
	if t.Rotate != 0 {
		b.attr("transform", "rotate("+b.num(t.Rotate)+" "+b.num(t.Pos.X)+" "+b.num(t.Pos.Y)+")")
	}
	b.attr("class", t.Style.Class)
	if t.Size > 0 {
		b.attr("font-size", b.num(t.Size))
	}
	if t.Style.Fill != nil {
		b.paint("fill", t.Style.Fill)
	}
	b.body.WriteByte('>')
	b.body.WriteString(html.EscapeString(t.Text))
	b.body.WriteString("</text>\n")
}

// Bytes returns the finished document, or nil before End.
func (b *Backend) Bytes() []byte {
	return b.out
}

// String returns the finished document as a string.
func (b *Backend) String() string {
	return string(b.out)
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.ended {
		return ErrNotFinished
	}
	return os.WriteFile(path, b.out, 0o644)
}

// stylesheet renders the theme as CSS rules, one per class.
func (b *Backend) stylesheet() string {
	if len(b.theme) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, class := range b.theme.Classes() {
		s := b.theme[class]
		var decls []string
		if c, ok := s.Fill.(recording.SolidBrush); ok {
			decls = append(decls, "fill:"+cssColor(c.Color))
		}
		if c, ok := s.Stroke.(recording.SolidBrush); ok {
			decls = append(decls, "stroke:"+cssColor(c.Color))
		}
		if s.LineWidth > 0 {
			decls = append(decls, "stroke-width:"+b.num(s.LineWidth))
		}
		if len(s.Dash) > 0 {
			decls = append(decls, "stroke-dasharray:"+b.nums(s.Dash))
		}
		if len(decls) == 0 {
			continue
		}
		fmt.Fprintf(&sb, ".%s{%s}", class, strings.Join(decls, ";"))
	}
	return sb.String()
}

// pathData converts path elements to SVG path data.
func (b *Backend) pathData(path *gg.Path) string {
	var sb strings.Builder
	for _, elem := range path.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case gg.MoveTo:
			sb.WriteString("M" + b.num(e.Point.X) + "," + b.num(e.Point.Y))
		case gg.LineTo:
			sb.WriteString("L" + b.num(e.Point.X) + "," + b.num(e.Point.Y))
		case gg.QuadTo:
			sb.WriteString("Q" + b.num(e.Control.X) + "," + b.num(e.Control.Y) + " " +
				b.num(e.Point.X) + "," + b.num(e.Point.Y))
		case gg.CubicTo:
			sb.WriteString("C" + b.num(e.Control1.X) + "," + b.num(e.Control1.Y) + " " +
				b.num(e.Control2.X) + "," + b.num(e.Control2.Y) + " " +
				b.num(e.Point.X) + "," + b.num(e.Point.Y))
		case gg.Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func (b *Backend) attr(name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(&b.body, ` %s="%s"`, name, html.EscapeString(value))
}

// paint writes a fill or stroke attribute, with a matching opacity
// attribute for translucent solid colors.
func (b *Backend) paint(name string, brush recording.Brush) {
	switch br := brush.(type) {
	case recording.SolidBrush:
		color, opacity := colorAttr(br.Color)
		b.attr(name, color)
		if opacity != "" {
			b.attr(name+"-opacity", opacity)
		}
	case *recording.LinearGradientBrush:
		b.attr(name, "url(#"+br.ID+")")
	default:
		b.attr(name, "none")
	}
}

func (b *Backend) stroke(s recording.Style) {
	if !s.Stroked() {
		return
	}
	b.paint("stroke", s.Stroke)
	b.attr("stroke-width", b.num(s.LineWidth))
	if s.LineCap != recording.LineCapButt {
		b.attr("stroke-linecap", s.LineCap.String())
	}
	if s.LineJoin != recording.LineJoinMiter {
		b.attr("stroke-linejoin", s.LineJoin.String())
	}
	if len(s.Dash) > 0 {
		b.attr("stroke-dasharray", b.nums(s.Dash))
	}
}

func (b *Backend) title(tag, text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(&b.body, "<%s>%s</%s>", tag, html.EscapeString(text), tag)
}

func (b *Backend) closeWithTitle(tag, title string) {
	if title == "" {
		b.body.WriteString("/>\n")
		return
	}
	b.body.WriteByte('>')
	b.title("title", title)
	fmt.Fprintf(&b.body, "</%s>\n", tag)
}

// num formats v with the configured precision, trimming trailing zeros.
func (b *Backend) num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', b.precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (b *Backend) nums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = b.num(v)
	}
	return strings.Join(parts, " ")
}

// colorAttr returns the hex color and, for translucent colors, the
// opacity as separate attribute values.
func colorAttr(c gg.RGBA) (color, opacity string) {
	color = hexColor(c)
	if c.A < 1 {
		opacity = strconv.FormatFloat(math.Round(c.A*1000)/1000, 'f', -1, 64)
	}
	return color, opacity
}

func cssColor(c gg.RGBA) string {
	if c.A >= 1 {
		return hexColor(c)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", channel(c.R), channel(c.G), channel(c.B),
		strconv.FormatFloat(math.Round(c.A*1000)/1000, 'f', -1, 64))
}

func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(max(0, min(1, v)) * 255))
}
