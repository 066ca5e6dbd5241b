package chartgeom

import (
	"math"
)

// Shape tells which fields of a Value are populated.
type Shape int

const (
	ShapePlain Shape = iota
	ShapeOHLC
	ShapeHLC
)

func (s Shape) Financial() bool {
	return s == ShapeOHLC || s == ShapeHLC
}

func (s Shape) String() string {
	switch s {
	case ShapePlain:
		return "plain"
	case ShapeOHLC:
		return "ohlc"
	case ShapeHLC:
		return "hlc"
	default:
		return "unknown"
	}
}

// Value is one data point. Only the fields matching its Shape are meaningful.
type Value struct {
	Plain  float64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	Label   string
	Visible bool

	Shape Shape
}

func NumberValue(v float64) Value {
	return Value{
		Plain:   v,
		Visible: true,
	}
}

func LabelValue(label string, v float64) Value {
	x := NumberValue(v)
	x.Label = label
	return x
}

func BubbleValue(v, volume float64) Value {
	x := NumberValue(v)
	x.Volume = volume
	return x
}

func OHLCValue(open, high, low, close float64) Value {
	return Value{
		Open:    open,
		High:    high,
		Low:     low,
		Close:   close,
		Visible: true,
		Shape:   ShapeOHLC,
	}
}

func HLCValue(high, low, close float64) Value {
	return Value{
		High:    high,
		Low:     low,
		Close:   close,
		Visible: true,
		Shape:   ShapeHLC,
	}
}

func (v Value) Up() bool {
	return v.Close >= v.Open
}

func (v Value) valid() bool {
	switch v.Shape {
	case ShapePlain:
		return !math.IsNaN(v.Plain) && !math.IsInf(v.Plain, 0)
	case ShapeOHLC:
		return finite(v.Open, v.High, v.Low, v.Close)
	case ShapeHLC:
		return finite(v.High, v.Low, v.Close)
	default:
		return false
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Series struct {
	Name      string
	Index     int
	Color     string
	Secondary string
	Values    []Value
	Visible   bool

	// Hits and Points are written back by the engine after each render for the
	// interaction layer (hover, tooltips).
	Hits   []Rect
	Points []Point
}

func NewSeries(name string, index int, values ...Value) *Series {
	return &Series{
		Name:    name,
		Index:   index,
		Values:  values,
		Visible: true,
	}
}

func NumberSeries(name string, index int, values ...float64) *Series {
	s := NewSeries(name, index)
	for _, v := range values {
		s.Values = append(s.Values, NumberValue(v))
	}
	return s
}

func (s *Series) Len() int {
	return len(s.Values)
}

// Shape returns the shape shared by all values of the series. It returns false
// when the series mixes shapes or holds a value that is not a finite number.
func (s *Series) Shape() (Shape, bool) {
	if len(s.Values) == 0 {
		return ShapePlain, true
	}
	shape := s.Values[0].Shape
	for _, v := range s.Values {
		if v.Shape != shape || !v.valid() {
			return shape, false
		}
	}
	return shape, true
}

func (s *Series) Financial() bool {
	shape, _ := s.Shape()
	return shape.Financial()
}

func (s *Series) Plains() []float64 {
	vs := make([]float64, len(s.Values))
	for i := range s.Values {
		vs[i] = s.Values[i].Plain
	}
	return vs
}

func (s *Series) reset() {
	s.Hits = s.Hits[:0]
	s.Points = s.Points[:0]
}
