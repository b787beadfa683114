package recording

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Backend is the interface that all output backends must implement.
// Backends receive recorded chart primitives and translate them to their
// output format (SVG markup, raster pixels).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Accept DefineGradient and DefineClip before any drawing
//  4. Balance BeginGroup and EndGroup, restoring any clip on EndGroup
//
// # Example Backend Registration
//
//	func init() {
//	    recording.Register("pdf", func() recording.Backend {
//	        return NewPDFBackend()
//	    })
//	}
type Backend interface {
	// Begin initializes the backend for output of the given size.
	Begin(width, height int) error

	// End finalizes the output. After End, output methods
	// (WriteTo, SaveToFile) can be used.
	End() error

	// DefineGradient declares a gradient that styles may reference.
	DefineGradient(g *LinearGradientBrush)

	// DefineClip declares a clip that groups may reference by ID.
	DefineClip(c Clip)

	// BeginGroup opens a group. Drawing until the matching EndGroup
	// belongs to it and is limited by its clip, if any.
	BeginGroup(g Group)

	// EndGroup closes the innermost group.
	EndGroup()

	// FillPath fills path with style.Fill.
	FillPath(path *gg.Path, style Style)

	// StrokePath strokes path with style.Stroke.
	StrokePath(path *gg.Path, style Style)

	// DrawCircle fills and strokes a circle.
	DrawCircle(c Circle)

	// DrawRect fills and strokes a rectangle.
	DrawRect(b Box)

	// DrawText draws a text run.
	DrawText(t Text)
}

// ThemedBackend is implemented by backends that can emit the theme as a
// stylesheet. Playback calls SetTheme before Begin.
type ThemedBackend interface {
	Backend

	SetTheme(t Theme)
}

// WriterBackend extends Backend with the ability to write output to an
// io.Writer. This should only be called after End().
type WriterBackend interface {
	Backend

	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly
// to a file. This should only be called after End().
type FileBackend interface {
	Backend

	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rendered image.
// This is implemented by the raster backend.
type ImageBackend interface {
	Backend

	Image() image.Image
}
