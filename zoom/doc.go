// Package zoom implements the pan/zoom controller shared by every chart.
//
// A [Controller] owns one [Transform] (scale factor K and pixel
// translation T) per zoomable axis. Gestures update the transform:
//
//   - Wheel: multiplies K, anchored at the pointer so the value under the
//     pointer stays put, clamped to [1, MaxZoom]
//   - Drag: pointer down, then pointer moves translate T by the pixel delta
//   - Double click: resets every axis to the identity transform
//
// After every transition the translation is clamped so the transformed
// base range keeps covering the plotting rectangle. As a consequence the
// effective domain reported by [Controller.XDomain] and
// [Controller.YDomain] is always a sub-interval of the base domain, and
// equals it exactly at identity.
//
// Charts never see the transform. They ask for the effective domain and
// build their scales against the fixed plot range:
//
//	ctrl, err := zoom.New(vp, base, zoom.WithMaxZoom(12))
//	if err != nil {
//	    return err
//	}
//	if err := ctrl.Attach(overlay); err != nil {
//	    return err
//	}
//	x := ggchart.NewScale(ctrl.XDomain(), ctrl.XRange())
//
// # Thread Safety
//
// Controller is NOT safe for concurrent use. Events must be delivered from
// a single goroutine, in order; each chart instance owns its own
// Controller.
package zoom
