package ggchart

// Margin is the space reserved around the plotting rectangle, in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Viewport describes the pixel geometry of one chart.
type Viewport struct {
	Width, Height float64
	Margin        Margin
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies inside the rectangle (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// PlotWidth returns the width of the plotting rectangle.
func (v Viewport) PlotWidth() float64 {
	return v.Width - v.Margin.Left - v.Margin.Right
}

// PlotHeight returns the height of the plotting rectangle.
func (v Viewport) PlotHeight() float64 {
	return v.Height - v.Margin.Top - v.Margin.Bottom
}

// PlotRect returns the plotting rectangle
// [Left, Width-Right] x [Top, Height-Bottom].
func (v Viewport) PlotRect() Rect {
	return Rect{
		MinX: v.Margin.Left,
		MinY: v.Margin.Top,
		MaxX: v.Width - v.Margin.Right,
		MaxY: v.Height - v.Margin.Bottom,
	}
}

// XRange returns the horizontal pixel range of the plot, left to right.
func (v Viewport) XRange() Range {
	return Range{From: v.Margin.Left, To: v.Width - v.Margin.Right}
}

// YRange returns the vertical pixel range of the plot, bottom to top, so
// that a domain's Min lands on the bottom edge.
func (v Viewport) YRange() Range {
	return Range{From: v.Height - v.Margin.Bottom, To: v.Margin.Top}
}

// Validate checks that the plotting rectangle has positive width and
// height. NaN dimensions fail validation.
func (v Viewport) Validate() error {
	if w := v.PlotWidth(); !(w > 0) {
		return &ConfigurationError{
			Field:  "plot width",
			Value:  w,
			Reason: "width minus left and right margins must be positive",
			Err:    ErrInvalidViewport,
		}
	}
	if h := v.PlotHeight(); !(h > 0) {
		return &ConfigurationError{
			Field:  "plot height",
			Value:  h,
			Reason: "height minus top and bottom margins must be positive",
			Err:    ErrInvalidViewport,
		}
	}
	return nil
}
