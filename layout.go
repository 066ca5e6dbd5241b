package chartgeom

import (
	"fmt"
	"math"
)

const (
	// BarRatio is the part of a category slot covered by its bars.
	BarRatio = 0.8
	// DoughnutRatio is the default inner radius of a doughnut relative to its
	// outer radius.
	DoughnutRatio = 0.5
)

// Layout gathers what every builder needs besides the series: the plot frame
// and the axis plans computed for the current render.
type Layout struct {
	Frame Rect
	// Value is the plan of the value axis (radius for radar charts).
	Value AxisPlan
	// Category is the plan of the category axis of funnel and waterfall charts.
	Category AxisPlan

	Marker     MarkerShape
	MarkerSize float64
	Doughnut   float64
}

func (y Layout) markerSize() float64 {
	if y.MarkerSize <= 0 {
		return DefaultSize
	}
	return y.MarkerSize
}

func (y Layout) doughnut() float64 {
	if y.Doughnut <= 0 || y.Doughnut >= 1 {
		return DoughnutRatio
	}
	return y.Doughnut
}

// vertical scales the value plan along the height of the frame.
func (y Layout) vertical() Scaler {
	return NewScaler(y.Value, NewRange(y.Frame.Bottom(), y.Frame.Y))
}

// horizontal scales the value plan along the width of the frame.
func (y Layout) horizontal() Scaler {
	return NewScaler(y.Value, NewRange(y.Frame.X, y.Frame.Right()))
}

// lineX is the abscissa of the i-th point of n for line and area styles. A
// single point series divides by one instead of zero.
func (y Layout) lineX(i, n int, inset float64) float64 {
	var (
		width = y.Frame.W - 2*inset
		div   = float64(n - 1)
	)
	if n <= 1 {
		div = 1
	}
	return y.Frame.X + inset + float64(i)*width/div
}

// slot returns the length of one of n categories along length.
func slot(length float64, n int) float64 {
	if n <= 0 {
		return length
	}
	return length / float64(n)
}

func (y Layout) center() Point {
	return y.Frame.Center()
}

func (y Layout) radius() float64 {
	return math.Min(y.Frame.W, y.Frame.H) / 2
}

func (y Layout) valid() error {
	if y.Frame.Empty() {
		return ErrViewport
	}
	return nil
}

func pointHit(pt Point) Rect {
	half := DefaultSize / 2
	return NewRect(pt.X-half, pt.Y-half, DefaultSize, DefaultSize).Expand(HitPadding)
}

func nameOf(s *Series) string {
	if s == nil {
		return ""
	}
	return s.Name
}

// checkSeries verifies that s can be drawn with style.
func checkSeries(style Style, s *Series) error {
	if s == nil || s.Len() == 0 {
		return ErrEmpty
	}
	shape, ok := s.Shape()
	if !ok {
		return fmt.Errorf("%w: series mixes value shapes", ErrStyleMismatch)
	}
	if !style.Accepts(shape) {
		return fmt.Errorf("%w: %s values with %s", ErrStyleMismatch, shape, style)
	}
	return nil
}

func checkFamily(style Style, families ...Family) error {
	f := style.Family()
	for _, x := range families {
		if f == x {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not a %s style", ErrStyleMismatch, style, families[0])
}
