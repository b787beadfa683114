package recording

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// Recorder captures chart primitives as commands. Styles are resolved
// against the recorder's theme when they are recorded, so every command
// carries concrete paint as well as its class.
//
// Example:
//
//	rec := recording.NewRecorder(640, 360, theme)
//	rec.BeginGroup(recording.Group{Class: "grid"})
//	rec.Line(60, 24, 60, 318, recording.Style{Class: "grid-line"})
//	rec.EndGroup()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	theme         Theme
	commands      []Command
	resources     *Resources
	depth         int
}

// NewRecorder creates a Recorder for a canvas of the given size.
// A nil theme leaves every style as given.
func NewRecorder(width, height int, theme Theme) *Recorder {
	if theme == nil {
		theme = Theme{}
	}
	return &Recorder{
		width:     width,
		height:    height,
		theme:     theme,
		commands:  make([]Command, 0, 256),
		resources: NewResources(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Theme returns the theme styles are resolved against.
func (r *Recorder) Theme() Theme {
	return r.theme
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Depth returns the number of open groups.
func (r *Recorder) Depth() int {
	return r.depth
}

// DefineGradient registers g so styles can use it as a brush.
func (r *Recorder) DefineGradient(g *LinearGradientBrush) *LinearGradientBrush {
	r.resources.AddGradient(g)
	return g
}

// DefineClip registers a rectangular clip under id.
func (r *Recorder) DefineClip(id string, rect ggchart.Rect) {
	r.resources.AddClip(Clip{ID: id, Rect: rect})
}

// BeginGroup opens a group.
func (r *Recorder) BeginGroup(g Group) {
	r.depth++
	r.commands = append(r.commands, BeginGroupCommand{Group: g})
}

// EndGroup closes the innermost group. Unbalanced calls are ignored.
func (r *Recorder) EndGroup() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.commands = append(r.commands, EndGroupCommand{})
}

// FillPath records a fill of path. Empty paths are skipped.
func (r *Recorder) FillPath(path *gg.Path, style Style) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	r.commands = append(r.commands, FillPathCommand{
		Path:  r.resources.AddPath(path),
		Style: r.theme.Resolve(style),
	})
}

// StrokePath records a stroke of path. Empty paths are skipped.
func (r *Recorder) StrokePath(path *gg.Path, style Style) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	r.commands = append(r.commands, StrokePathCommand{
		Path:  r.resources.AddPath(path),
		Style: r.theme.Resolve(style),
	})
}

// Line records a straight stroked segment.
func (r *Recorder) Line(x1, y1, x2, y2 float64, style Style) {
	p := gg.NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	r.StrokePath(p, style)
}

// Circle records a circle. Circles with a non-positive radius are skipped.
func (r *Recorder) Circle(c Circle) {
	if !(c.Radius > 0) {
		return
	}
	c.Style = r.theme.Resolve(c.Style)
	r.commands = append(r.commands, DrawCircleCommand{Circle: c})
}

// Rect records a rectangle. Empty rectangles are skipped.
func (r *Recorder) Rect(b Box) {
	if !(b.Rect.Width() > 0) || !(b.Rect.Height() > 0) {
		return
	}
	b.Style = r.theme.Resolve(b.Style)
	r.commands = append(r.commands, DrawRectCommand{Box: b})
}

// Text records a text run. Empty strings are skipped.
func (r *Recorder) Text(t Text) {
	if t.Text == "" {
		return
	}
	t.Style = r.theme.Resolve(t.Style)
	r.commands = append(r.commands, DrawTextCommand{Text: t})
}

// FinishRecording closes any open groups and returns an immutable
// Recording. After calling FinishRecording, the Recorder should not be
// used again.
func (r *Recorder) FinishRecording() *Recording {
	for r.depth > 0 {
		r.EndGroup()
	}
	return &Recording{
		width:     r.width,
		height:    r.height,
		theme:     r.theme,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded chart commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	theme         Theme
	commands      []Command
	resources     *Resources
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Theme returns the theme the recording was made with.
func (r *Recording) Theme() Theme {
	return r.theme
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the paths, gradients and clips the commands use.
func (r *Recording) Resources() *Resources {
	return r.resources
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if tb, ok := backend.(ThemedBackend); ok {
		tb.SetTheme(r.theme)
	}
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	for _, g := range r.resources.Gradients() {
		backend.DefineGradient(g)
	}
	for _, c := range r.resources.Clips() {
		backend.DefineClip(c)
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginGroupCommand:
			backend.BeginGroup(c.Group)
		case EndGroupCommand:
			backend.EndGroup()
		case FillPathCommand:
			if path := r.resources.Path(c.Path); path != nil {
				backend.FillPath(path, c.Style)
			}
		case StrokePathCommand:
			if path := r.resources.Path(c.Path); path != nil {
				backend.StrokePath(path, c.Style)
			}
		case DrawCircleCommand:
			backend.DrawCircle(c.Circle)
		case DrawRectCommand:
			backend.DrawRect(c.Box)
		case DrawTextCommand:
			backend.DrawText(c.Text)
		}
	}

	ggchart.Logger().Debug("recording: playback finished",
		"commands", len(r.commands), "paths", r.resources.PathCount())
	return backend.End()
}
