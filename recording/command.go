package recording

import (
	"github.com/gogpu/ggchart"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Structure commands
	CmdBeginGroup CommandType = iota // Open a group
	CmdEndGroup                      // Close the innermost group

	// Drawing commands
	CmdFillPath   // Fill a path
	CmdStrokePath // Stroke a path
	CmdDrawCircle // Fill and stroke a circle
	CmdDrawRect   // Fill and stroke a rectangle
	CmdDrawText   // Draw a text run
)

var commandTypeNames = [...]string{
	CmdBeginGroup: "BeginGroup",
	CmdEndGroup:   "EndGroup",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
	CmdDrawCircle: "DrawCircle",
	CmdDrawRect:   "DrawRect",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in a recording's resources.
type PathRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// Group is a logical container for the commands between BeginGroup and
// the matching EndGroup. Vector backends emit it as an SVG <g> element;
// raster backends use it for clipping.
type Group struct {
	ID    string
	Class string

	// Title and Desc are accessible text, emitted as <title> and <desc>.
	Title string
	Desc  string

	// ClipID references a clip registered with Recorder.DefineClip.
	// Drawing inside the group is limited to that rectangle.
	ClipID string
}

// BeginGroupCommand opens a group.
type BeginGroupCommand struct {
	Group Group
}

// Type implements Command.
func (BeginGroupCommand) Type() CommandType { return CmdBeginGroup }

// EndGroupCommand closes the innermost open group.
type EndGroupCommand struct{}

// Type implements Command.
func (EndGroupCommand) Type() CommandType { return CmdEndGroup }

// FillPathCommand fills a path.
type FillPathCommand struct {
	Path  PathRef
	Style Style
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path  PathRef
	Style Style
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// Circle is a filled and optionally stroked circle with an optional
// tooltip title.
type Circle struct {
	Center ggchart.Point
	Radius float64
	Style  Style
	Title  string
}

// DrawCircleCommand draws a circle.
type DrawCircleCommand struct {
	Circle Circle
}

// Type implements Command.
func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// Box is a filled and optionally stroked rectangle with corner radius.
type Box struct {
	Rect   ggchart.Rect
	Radius float64
	Style  Style
	Title  string
}

// DrawRectCommand draws a rectangle.
type DrawRectCommand struct {
	Box Box
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// Text is a single line of text positioned at its baseline.
type Text struct {
	Text   string
	Pos    ggchart.Point
	Anchor TextAnchor
	Size   float64
	Style  Style

	// Rotate turns the text by this many degrees about Pos.
	Rotate float64
}

// DrawTextCommand draws a text run.
type DrawTextCommand struct {
	Text Text
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
