package zoom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/ggchart"
)

// GestureKind identifies a scripted gesture.
type GestureKind uint8

const (
	GestureWheel    GestureKind = iota // wheel:X,Y,DELTA
	GestureZoom                        // zoom:X,Y,FACTOR
	GestureDrag                        // drag:X1,Y1:X2,Y2
	GesturePan                         // pan:DX,DY
	GestureDblClick                    // dblclick or dblclick:X,Y
	GestureReset                       // reset
)

var gestureKindNames = [...]string{
	GestureWheel:    "wheel",
	GestureZoom:     "zoom",
	GestureDrag:     "drag",
	GesturePan:      "pan",
	GestureDblClick: "dblclick",
	GestureReset:    "reset",
}

// String returns the script keyword of the gesture kind.
func (k GestureKind) String() string {
	if int(k) < len(gestureKindNames) {
		return gestureKindNames[k]
	}
	return "unknown"
}

// Gesture is one scripted interaction, used to drive a controller without
// a live rendering surface (command line rendering, tests).
type Gesture struct {
	Kind  GestureKind
	From  ggchart.Point
	To    ggchart.Point
	Value float64
}

// ParseGesture parses a gesture script such as "wheel:350,180,-120",
// "zoom:350,180,2", "drag:300,200:200,200", "pan:-40,0", "dblclick" or
// "reset".
func ParseGesture(s string) (Gesture, error) {
	s = strings.TrimSpace(s)
	name, args, _ := strings.Cut(s, ":")
	switch strings.ToLower(name) {
	case "wheel", "zoom":
		v, err := parseFloats(args, 3)
		if err != nil {
			return Gesture{}, fmt.Errorf("zoom: gesture %q: %w", s, err)
		}
		kind := GestureWheel
		if strings.EqualFold(name, "zoom") {
			kind = GestureZoom
		}
		return Gesture{Kind: kind, From: ggchart.Pt(v[0], v[1]), Value: v[2]}, nil
	case "drag":
		a, b, ok := strings.Cut(args, ":")
		if !ok {
			return Gesture{}, fmt.Errorf("zoom: gesture %q: want drag:X1,Y1:X2,Y2", s)
		}
		from, err := parseFloats(a, 2)
		if err != nil {
			return Gesture{}, fmt.Errorf("zoom: gesture %q: %w", s, err)
		}
		to, err := parseFloats(b, 2)
		if err != nil {
			return Gesture{}, fmt.Errorf("zoom: gesture %q: %w", s, err)
		}
		return Gesture{Kind: GestureDrag, From: ggchart.Pt(from[0], from[1]), To: ggchart.Pt(to[0], to[1])}, nil
	case "pan":
		v, err := parseFloats(args, 2)
		if err != nil {
			return Gesture{}, fmt.Errorf("zoom: gesture %q: %w", s, err)
		}
		return Gesture{Kind: GesturePan, To: ggchart.Pt(v[0], v[1])}, nil
	case "dblclick":
		g := Gesture{Kind: GestureDblClick}
		if args != "" {
			v, err := parseFloats(args, 2)
			if err != nil {
				return Gesture{}, fmt.Errorf("zoom: gesture %q: %w", s, err)
			}
			g.From = ggchart.Pt(v[0], v[1])
		}
		return g, nil
	case "reset":
		return Gesture{Kind: GestureReset}, nil
	}
	return Gesture{}, fmt.Errorf("zoom: unknown gesture %q", s)
}

// ParseGestures parses a list of gesture scripts, stopping at the first
// error.
func ParseGestures(scripts []string) ([]Gesture, error) {
	out := make([]Gesture, 0, len(scripts))
	for _, s := range scripts {
		g, err := ParseGesture(s)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// Apply plays the gesture against c. Pointer gestures go through the
// Listener methods so they follow the same path as live events.
func (g Gesture) Apply(c *Controller) {
	switch g.Kind {
	case GestureWheel:
		c.Wheel(WheelEvent{Pos: g.From, DeltaY: g.Value})
	case GestureZoom:
		c.ZoomAt(g.From, g.Value)
	case GestureDrag:
		c.PointerDown(PointerEvent{Pos: g.From})
		c.PointerMove(PointerEvent{Pos: g.To})
		c.PointerUp(PointerEvent{Pos: g.To})
	case GesturePan:
		c.Pan(g.To.X, g.To.Y)
	case GestureDblClick:
		c.DoubleClick(PointerEvent{Pos: g.From})
	case GestureReset:
		c.Reset()
	}
}

// Dispatch plays the gesture the way a user would perform it on o, the
// overlay c is attached to. Wheel, drag and double-click gestures are
// hit-tested against the overlay, so one that starts outside the plot is
// dropped. A double-click without coordinates hits the overlay center.
// Zoom, pan and reset have no pointer position and go to c directly.
func (g Gesture) Dispatch(o *Overlay, c *Controller) {
	switch g.Kind {
	case GestureWheel:
		o.Wheel(g.From, g.Value)
	case GestureDrag:
		o.Drag(g.From, g.To, 1)
	case GestureDblClick:
		p := g.From
		if p == (ggchart.Point{}) {
			r := o.Rect()
			p = ggchart.Pt((r.MinX+r.MaxX)/2, (r.MinY+r.MaxY)/2)
		}
		o.DoubleClick(p)
	default:
		g.Apply(c)
	}
}

// String formats the gesture back into script form.
func (g Gesture) String() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	switch g.Kind {
	case GestureWheel, GestureZoom:
		return g.Kind.String() + ":" + f(g.From.X) + "," + f(g.From.Y) + "," + f(g.Value)
	case GestureDrag:
		return "drag:" + f(g.From.X) + "," + f(g.From.Y) + ":" + f(g.To.X) + "," + f(g.To.Y)
	case GesturePan:
		return "pan:" + f(g.To.X) + "," + f(g.To.Y)
	case GestureDblClick:
		return "dblclick:" + f(g.From.X) + "," + f(g.From.Y)
	}
	return g.Kind.String()
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
