// Package chart draws the four episode analytics charts into recordings
// that any recording backend can play back.
//
// Every chart is built on a Frame. The frame owns the viewport, the zoom
// controller and the transparent interaction overlay the controller
// listens on, and it lays out the parts every chart shares: grid, clipped
// series layer, axes, legend and card metadata. A chart only supplies a
// Series with its three layers.
//
// Basic usage:
//
//	ds, err := dataset.Load("episodes.yaml")
//	if err != nil {
//	    return err
//	}
//	c, err := chart.NewCompletion(ds)
//	if err != nil {
//	    return err
//	}
//
//	// Gestures go through the overlay, as they would in a browser.
//	c.Frame().Overlay().Wheel(ggchart.Pt(320, 180), -240)
//
//	backend := recording.MustBackend("svg")
//	if err := c.Record().Playback(backend); err != nil {
//	    return err
//	}
//
// Record reads the controller's domains each time it is called, so a
// chart is re-recorded after every gesture rather than patched.
package chart
