package recording

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

var testTheme = Theme{
	"grid-line":    {Stroke: RGBA(0.58, 0.64, 0.72, 0.2), LineWidth: 1},
	"line-primary": {Stroke: Hex("#38bdf8"), LineWidth: 2.5, LineCap: LineCapRound},
	"dot":          {Fill: Hex("#facc15")},
}

func TestRecorderResolvesStyles(t *testing.T) {
	rec := NewRecorder(640, 360, testTheme)
	rec.Line(60, 24, 60, 318, Style{Class: "grid-line"})
	rec.Line(60, 24, 60, 318, Style{Class: "line-primary", LineWidth: 4})
	r := rec.FinishRecording()

	cmds := r.Commands()
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	grid := cmds[0].(StrokePathCommand).Style
	if grid.LineWidth != 1 || grid.Stroke == nil {
		t.Errorf("grid style not resolved: %+v", grid)
	}
	primary := cmds[1].(StrokePathCommand).Style
	if primary.LineWidth != 4 {
		t.Errorf("explicit width overridden: %v", primary.LineWidth)
	}
	if primary.LineCap != LineCapRound {
		t.Errorf("LineCap = %v, want round", primary.LineCap)
	}
}

func TestRecorderSkipsEmptyShapes(t *testing.T) {
	rec := NewRecorder(100, 100, nil)
	rec.FillPath(nil, Style{})
	rec.StrokePath(gg.NewPath(), Style{})
	rec.Circle(Circle{Center: ggchart.Pt(5, 5)})
	rec.Rect(Box{Rect: ggchart.Rect{MinX: 10, MinY: 10, MaxX: 10, MaxY: 40}})
	rec.Text(Text{})
	rec.EndGroup()
	if rec.Len() != 0 {
		t.Errorf("recorded %d commands for empty input", rec.Len())
	}
}

func TestRecorderClosesOpenGroups(t *testing.T) {
	rec := NewRecorder(100, 100, nil)
	rec.BeginGroup(Group{Class: "chart"})
	rec.BeginGroup(Group{Class: "plot"})
	if rec.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", rec.Depth())
	}
	r := rec.FinishRecording()
	if r.Count(CmdBeginGroup) != r.Count(CmdEndGroup) {
		t.Errorf("unbalanced groups: %d begin, %d end", r.Count(CmdBeginGroup), r.Count(CmdEndGroup))
	}
}

func TestRecordingPlayback(t *testing.T) {
	rec := NewRecorder(640, 360, testTheme)
	rec.DefineClip("clip-1", ggchart.Rect{MinX: 60, MinY: 24, MaxX: 616, MaxY: 318})
	rec.DefineGradient(NewLinearGradientBrush("fill-1", 0, 24, 0, 318).
		AddColorStop(0, gg.RGBA2(0.5, 0.55, 0.97, 0.5)).
		AddColorStop(1, gg.RGBA2(0.5, 0.55, 0.97, 0)))
	rec.BeginGroup(Group{Class: "plot", ClipID: "clip-1"})
	p := gg.NewPath()
	p.MoveTo(60, 300)
	p.LineTo(200, 100)
	p.LineTo(400, 150)
	rec.StrokePath(p, Style{Class: "line-primary"})
	rec.Circle(Circle{Center: ggchart.Pt(200, 100), Radius: 4, Style: Style{Class: "dot"}})
	rec.EndGroup()
	rec.Text(Text{Text: "Ep 10", Pos: ggchart.Pt(200, 340), Anchor: AnchorMiddle})
	r := rec.FinishRecording()

	mock := newMockBackend("mock")
	if err := r.Playback(mock); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}

	want := []string{
		"gradient:fill-1",
		"clip:clip-1",
		"group:plot",
		"stroke:line-primary:3",
		"circle:dot",
		"end",
		"text:Ep 10",
	}
	if !slices.Equal(mock.calls, want) {
		t.Errorf("calls = %v\nwant %v", mock.calls, want)
	}
	if mock.width != 640 || mock.height != 360 || mock.endCalls != 1 {
		t.Errorf("size %dx%d, End calls %d", mock.width, mock.height, mock.endCalls)
	}
	if mock.theme == nil {
		t.Error("SetTheme was not called")
	}
}

func TestRecordingPlaybackBeginError(t *testing.T) {
	rec := NewRecorder(10, 10, nil)
	rec.Line(0, 0, 10, 10, Style{})
	mock := newMockBackend("failing")
	mock.beginErr = errBeginFailed

	err := rec.FinishRecording().Playback(mock)
	if !errors.Is(err, errBeginFailed) {
		t.Errorf("Playback() error = %v, want %v", err, errBeginFailed)
	}
	if len(mock.calls) != 0 || mock.endCalls != 0 {
		t.Error("backend received commands after Begin failed")
	}
}

func TestResourcesReplaceByID(t *testing.T) {
	res := NewResources()
	res.AddClip(Clip{ID: "a", Rect: ggchart.Rect{MaxX: 1, MaxY: 1}})
	res.AddClip(Clip{ID: "a", Rect: ggchart.Rect{MaxX: 2, MaxY: 2}})
	if len(res.Clips()) != 1 {
		t.Fatalf("Clips() has %d entries, want 1", len(res.Clips()))
	}
	if c, _ := res.Clip("a"); c.Rect.MaxX != 2 {
		t.Errorf("clip not replaced: %+v", c)
	}
	if _, ok := res.Clip("missing"); ok {
		t.Error("Clip(missing) reported ok")
	}
	if res.Path(PathRef(InvalidRef)) != nil || res.Path(7) != nil {
		t.Error("Path returned a path for an invalid reference")
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdDrawText.String() != "DrawText" || CommandType(200).String() != "Unknown" {
		t.Errorf("unexpected names %q %q", CmdDrawText, CommandType(200))
	}
}
