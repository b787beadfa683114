// Package recording captures rendered charts as a display list that can be
// played back to different output backends.
//
// Charts never draw pixels or write markup directly. They record
// primitives (groups, paths, circles, rectangles, text) into a Recorder,
// and the finished Recording is replayed to a Backend chosen at run time:
// SVG markup for the interactive view, or raster pixels for PNG export.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures chart primitives as commands
//   - Recording: Stores commands and resources for playback
//   - Backend: Renders commands to a specific output format
//
// # Styles and Themes
//
// Every primitive carries a Style. Its Class names the role of the shape
// ("grid-line", "line-primary", "dot-highlight") and a Theme supplies the
// default paint for each class. The Recorder resolves styles against its
// theme when recording, so backends always see concrete paint. Backends
// that implement ThemedBackend also receive the theme itself and can emit
// it as a stylesheet.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(640, 360, theme)
//	rec.DefineClip("plot", plotRect)
//	rec.BeginGroup(recording.Group{Class: "series", ClipID: "plot"})
//	rec.StrokePath(path, recording.Style{Class: "line-primary"})
//	rec.EndGroup()
//	r := rec.FinishRecording()
//
//	backend, _ := recording.NewBackend("svg")
//	_ = r.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("chart.svg")
//
// # Backend Registration
//
// Backends register themselves in init(), following the database/sql
// driver pattern. Import a backend package for its side effect:
//
//	import _ "github.com/gogpu/ggchart/recording/backends/svg"
//	import _ "github.com/gogpu/ggchart/recording/backends/raster"
//
// Registered backends can claim file extensions, so ForPath("out.png")
// selects the raster backend.
package recording
