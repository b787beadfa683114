// Package raster provides a raster backend for the recording system.
// It renders chart recordings to pixel images using gg.Context, for PNG
// export of charts that are otherwise shown as SVG.
//
// # Supported Features
//
//   - Solid color and linear gradient fills and strokes
//   - Paths, circles and rounded rectangles
//   - Rectangular clips on groups
//   - Stroke styling (width, cap, join, dash patterns)
//   - Text, when a font source is configured
//   - PNG output
//
// Text needs a font: without WithFont, text runs are skipped. Rotated
// text is drawn horizontally, since gg draws glyphs in device space.
//
// # Example
//
//	import _ "github.com/gogpu/ggchart/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	_ = rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("chart.png")
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	}, ".png")
}

// DefaultTextSize is the text size in pixels used when a text run does
// not set one.
const DefaultTextSize = 12.0

// Backend renders recordings to a pixel image using gg.Context.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend.
type Backend struct {
	ctx        *gg.Context
	width      int
	height     int
	background gg.RGBA
	font       *text.FontSource
	faces      map[float64]text.Face
	clips      map[string]ggchart.Rect
	skipped    int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithFont sets the font used for text runs.
func WithFont(src *text.FontSource) Option {
	return func(b *Backend) {
		b.font = src
	}
}

// WithBackground fills the canvas with c before drawing.
func WithBackground(c gg.RGBA) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// LoadFont loads a TrueType or OpenType font file for use with WithFont.
func LoadFont(path string) (*text.FontSource, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("raster: load font %s: %w", path, err)
	}
	return src, nil
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.faces = make(map[float64]text.Face)
	b.clips = make(map[string]ggchart.Rect)
	b.skipped = 0
	if b.background.A > 0 {
		b.ctx.ClearWithColor(b.background)
	}
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.skipped > 0 {
		ggchart.Logger().Debug("raster: text skipped, no font configured", "runs", b.skipped)
	}
	return nil
}

// DefineGradient is a no-op: gradient brushes carry their own stops.
func (b *Backend) DefineGradient(*recording.LinearGradientBrush) {}

// DefineClip remembers a clip rectangle for later groups.
func (b *Backend) DefineClip(c recording.Clip) {
	b.clips[c.ID] = c.Rect
}

// BeginGroup saves the state and applies the group's clip.
func (b *Backend) BeginGroup(g recording.Group) {
	b.ctx.Push()
	if r, ok := b.clips[g.ClipID]; ok {
		b.ctx.ClipRect(r.MinX, r.MinY, r.Width(), r.Height())
	}
}

// EndGroup restores the state saved by BeginGroup, removing its clip.
func (b *Backend) EndGroup() {
	b.ctx.Pop()
}

// FillPath fills the given path.
func (b *Backend) FillPath(path *gg.Path, style recording.Style) {
	if style.Fill == nil {
		return
	}
	b.setPath(path)
	b.applyBrush(style.Fill)
	_ = b.ctx.Fill()
}

// StrokePath strokes the given path.
func (b *Backend) StrokePath(path *gg.Path, style recording.Style) {
	if !style.Stroked() {
		return
	}
	b.setPath(path)
	b.applyStroke(style)
	_ = b.ctx.Stroke()
}

// DrawCircle fills and strokes a circle.
func (b *Backend) DrawCircle(c recording.Circle) {
	b.paintShape(c.Style, func() {
		b.ctx.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	})
}

// DrawRect fills and strokes a rectangle.
func (b *Backend) DrawRect(r recording.Box) {
	b.paintShape(r.Style, func() {
		if r.Radius > 0 {
			b.ctx.DrawRoundedRectangle(r.Rect.MinX, r.Rect.MinY, r.Rect.Width(), r.Rect.Height(), r.Radius)
			return
		}
		b.ctx.DrawRectangle(r.Rect.MinX, r.Rect.MinY, r.Rect.Width(), r.Rect.Height())
	})
}

// DrawText draws a text run with its baseline at t.Pos.
func (b *Backend) DrawText(t recording.Text) {
	if b.font == nil {
		b.skipped++
		return
	}
	size := t.Size
	if size <= 0 {
		size = DefaultTextSize
	}
	face, ok := b.faces[size]
	if !ok {
		face = b.font.Face(size)
		b.faces[size] = face
	}
	b.ctx.SetFont(face)
	if t.Style.Fill != nil {
		b.applyBrush(t.Style.Fill)
	} else {
		b.ctx.SetFillBrush(gg.Solid(gg.Black))
	}
	b.ctx.DrawStringAnchored(t.Text, t.Pos.X, t.Pos.Y, t.Anchor.Fraction(), 0)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	return b.ctx.SavePNG(path)
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// Width returns the backend width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the backend height.
func (b *Backend) Height() int {
	return b.height
}

// SkippedText returns the number of text runs dropped for lack of a font.
func (b *Backend) SkippedText() int {
	return b.skipped
}

// paintShape builds a shape with draw, then fills and strokes it as
// style asks.
func (b *Backend) paintShape(style recording.Style, draw func()) {
	fill, stroke := style.Fill != nil, style.Stroked()
	if !fill && !stroke {
		return
	}
	b.ctx.ClearPath()
	draw()
	if fill {
		b.applyBrush(style.Fill)
		if !stroke {
			_ = b.ctx.Fill()
			return
		}
		_ = b.ctx.FillPreserve()
	}
	b.applyStroke(style)
	_ = b.ctx.Stroke()
}

// setPath replaces the context path with path's elements.
func (b *Backend) setPath(path *gg.Path) {
	b.ctx.ClearPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			b.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			b.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			b.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			b.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			b.ctx.ClosePath()
		}
	}
}

// applyBrush sets brush as the context paint. Fill and stroke share
// one brush in gg, so this is called right before each operation.
func (b *Backend) applyBrush(brush recording.Brush) {
	switch br := brush.(type) {
	case recording.SolidBrush:
		b.ctx.SetFillBrush(gg.Solid(br.Color))
	case *recording.LinearGradientBrush:
		grad := gg.NewLinearGradientBrush(br.Start.X, br.Start.Y, br.End.X, br.End.Y)
		for _, stop := range br.Stops {
			grad.AddColorStop(stop.Offset, stop.Color)
		}
		b.ctx.SetFillBrush(grad)
	default:
		b.ctx.SetFillBrush(gg.Solid(gg.Black))
	}
}

// applyStroke applies the stroke paint and settings to the context.
func (b *Backend) applyStroke(style recording.Style) {
	b.applyBrush(style.Stroke)
	b.ctx.SetLineWidth(style.LineWidth)
	b.ctx.SetLineCap(convertLineCap(style.LineCap))
	b.ctx.SetLineJoin(convertLineJoin(style.LineJoin))
	if len(style.Dash) > 0 {
		b.ctx.SetDash(style.Dash...)
	} else {
		b.ctx.ClearDash()
	}
}

// convertLineCap converts recording.LineCap to gg.LineCap.
func convertLineCap(lineCap recording.LineCap) gg.LineCap {
	switch lineCap {
	case recording.LineCapRound:
		return gg.LineCapRound
	case recording.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// convertLineJoin converts recording.LineJoin to gg.LineJoin.
func convertLineJoin(join recording.LineJoin) gg.LineJoin {
	switch join {
	case recording.LineJoinRound:
		return gg.LineJoinRound
	case recording.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
