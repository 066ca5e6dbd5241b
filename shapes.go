package chartgeom

import (
	"fmt"
	"math"
	"strings"
)

var (
	// DefaultSize is the side, in pixels, of the markers stamped on points.
	DefaultSize float64 = 8
	// HitPadding expands marker bounds into the rectangle used for hit tests.
	HitPadding float64 = 3
)

const starInnerRatio = 0.4

type MarkerShape int

const (
	MarkerRect MarkerShape = iota
	MarkerCircle
	MarkerStar5
	MarkerStar6
	MarkerStar8
)

func ParseMarkerShape(str string) (MarkerShape, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "rect", "rectangle", "square":
		return MarkerRect, nil
	case "circle", "":
		return MarkerCircle, nil
	case "star", "star5":
		return MarkerStar5, nil
	case "star6":
		return MarkerStar6, nil
	case "star8":
		return MarkerStar8, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized marker shape", str)
	}
}

func (m MarkerShape) String() string {
	switch m {
	case MarkerRect:
		return "rect"
	case MarkerCircle:
		return "circle"
	case MarkerStar5:
		return "star5"
	case MarkerStar6:
		return "star6"
	case MarkerStar8:
		return "star8"
	default:
		return "unknown"
	}
}

func (m *MarkerShape) UnmarshalText(b []byte) error {
	x, err := ParseMarkerShape(string(b))
	if err == nil {
		*m = x
	}
	return err
}

func (m MarkerShape) branches() int {
	switch m {
	case MarkerStar5:
		return 5
	case MarkerStar6:
		return 6
	case MarkerStar8:
		return 8
	default:
		return 0
	}
}

type Marker struct {
	Shape  MarkerShape
	Center Point
	Size   float64
	Path   Path
	Hit    Rect
}

// NewMarker builds the shape of the given size centered on pos.
func NewMarker(shape MarkerShape, pos Point, size float64) Marker {
	if size <= 0 {
		size = DefaultSize
	}
	var (
		half = size / 2
		box  = NewRect(pos.X-half, pos.Y-half, size, size)
		mk   = Marker{
			Shape:  shape,
			Center: pos,
			Size:   size,
			Hit:    box.Expand(HitPadding),
		}
	)
	switch shape {
	case MarkerRect:
		mk.Path = getSquare(box)
	case MarkerCircle:
		mk.Path = getCircle(pos, half)
	case MarkerStar5, MarkerStar6, MarkerStar8:
		mk.Path = getStar(pos, half, shape.branches())
	default:
		panic(fmt.Sprintf("unsupported marker shape %d", int(shape)))
	}
	return mk
}

func getSquare(r Rect) Path {
	return Polygon([]Point{
		NewPoint(r.X, r.Y),
		NewPoint(r.Right(), r.Y),
		NewPoint(r.Right(), r.Bottom()),
		NewPoint(r.X, r.Bottom()),
	})
}

func getCircle(center Point, radius float64) Path {
	var (
		pat   Path
		left  = NewPoint(center.X-radius, center.Y)
		right = NewPoint(center.X+radius, center.Y)
	)
	pat.MoveTo(left)
	pat.ArcTo(right, radius, false, true)
	pat.ArcTo(left, radius, false, true)
	pat.Close()
	pat.Fill = true
	return pat
}

// getStar alternates outer and inner vertices, the first one pointing up.
func getStar(center Point, radius float64, branches int) Path {
	var (
		n   = branches * 2
		pts = make([]Point, n)
	)
	for i := 0; i < n; i++ {
		var (
			angle = math.Pi/2 + float64(i)*2*math.Pi/float64(n)
			r     = radius
		)
		if i%2 == 1 {
			r *= starInnerRatio
		}
		pts[i] = NewPoint(center.X+r*math.Cos(angle), center.Y-r*math.Sin(angle))
	}
	return Polygon(pts)
}

func stampMarkers(g *Geometry, shape MarkerShape, size float64, points []Point) {
	for _, pt := range points {
		mk := NewMarker(shape, pt, size)
		g.Markers = append(g.Markers, mk)
		g.Hits = append(g.Hits, mk.Hit)
	}
}
