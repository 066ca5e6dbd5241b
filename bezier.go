package chartgeom

// Smoothing blends the control points between the segment midpoints and the
// points themselves.
const Smoothing = 0.8

// Cubic is one cubic bezier segment.
type Cubic struct {
	From  Point
	Ctrl1 Point
	Ctrl2 Point
	To    Point
}

// Smooth computes the bezier segments of a curve passing through points. It
// returns false when less than 3 points are given; the caller draws a polyline
// then.
func Smooth(points []Point, closed bool) ([]Cubic, bool) {
	n := len(points)
	if n < 3 {
		return nil, false
	}
	at := func(i int) Point {
		if closed {
			return points[(i%n+n)%n]
		}
		if i < 0 {
			return points[0]
		}
		if i >= n {
			return points[n-1]
		}
		return points[i]
	}
	segments := n - 1
	if closed {
		segments = n
	}
	all := make([]Cubic, 0, segments)
	for i := 0; i < segments; i++ {
		var (
			p0 = at(i - 1)
			p1 = at(i)
			p2 = at(i + 1)
			p3 = at(i + 2)
		)
		c1, c2 := controls(p0, p1, p2, p3)
		if !closed {
			if i == 0 {
				c1 = p1
			}
			if i == segments-1 {
				c2 = p2
			}
		}
		all = append(all, Cubic{From: p1, Ctrl1: c1, Ctrl2: c2, To: p2})
	}
	return all, true
}

// controls returns the control points of the segment p1-p2 given its
// neighbours p0 and p3.
func controls(p0, p1, p2, p3 Point) (Point, Point) {
	var (
		m1 = midPoint(p0, p1)
		m2 = midPoint(p1, p2)
		m3 = midPoint(p2, p3)

		len1 = p0.Dist(p1)
		len2 = p1.Dist(p2)
		len3 = p2.Dist(p3)

		k1 = ratio(len1, len2)
		k2 = ratio(len2, len3)

		b1 = m1.Add(m2.Sub(m1).Mul(k1))
		b2 = m2.Add(m3.Sub(m2).Mul(k2))
	)
	c1 := b1.Add(m2.Sub(b1).Mul(Smoothing)).Add(p1).Sub(b1)
	c2 := b2.Add(m2.Sub(b2).Mul(Smoothing)).Add(p2).Sub(b2)
	return c1, c2
}

func ratio(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	return a / (a + b)
}

// SmoothPath returns the path through points, smoothed when possible.
func SmoothPath(points []Point, closed bool) Path {
	curves, ok := Smooth(points, closed)
	if !ok {
		if closed {
			return Polygon(points)
		}
		return Polyline(points)
	}
	var pat Path
	pat.MoveTo(curves[0].From)
	appendCurves(&pat, curves)
	if closed {
		pat.Close()
	}
	return pat
}

func appendCurves(pat *Path, curves []Cubic) {
	for _, c := range curves {
		pat.CubicTo(c.To, c.Ctrl1, c.Ctrl2)
	}
}
