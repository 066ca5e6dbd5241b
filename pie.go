package chartgeom

import (
	"math"
)

// startAngle is where the first sector begins: twelve o'clock.
const startAngle = 90.0

// BuildPie splits the visible values of s into sectors proportional to their
// absolute value, starting at twelve o'clock and running clockwise.
func BuildPie(style Style, lay Layout, s *Series) (Geometry, error) {
	if err := checkFamily(style, FamilyPie); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := checkSeries(style, s); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := lay.valid(); err != nil {
		return Geometry{}, noGeometry(style, s.Name, err)
	}
	var (
		visible []Value
		total   float64
	)
	for _, v := range s.Values {
		if !v.Visible {
			continue
		}
		visible = append(visible, v)
		total += math.Abs(v.Plain)
	}
	if len(visible) == 0 {
		return Geometry{}, noGeometry(style, s.Name, ErrEmpty)
	}
	if total == 0 {
		total = 1
	}
	var (
		geo    = newGeometry(style, s)
		center = lay.center()
		radius = lay.radius()
		inner  float64
		angle  = startAngle
	)
	if style == Doughnut {
		inner = radius * lay.doughnut()
	}
	for _, v := range visible {
		sec := Sector{
			Center: center,
			Radius: radius,
			Inner:  inner,
			Start:  angle,
			Sweep:  math.Abs(v.Plain) / total * fullcircle,
			Value:  v.Plain,
			Label:  v.Label,
		}
		if len(visible) == 1 {
			sec.Sweep = fullcircle
		}
		angle -= sec.Sweep
		geo.Sectors = append(geo.Sectors, sec)
		if sec.Sweep <= 0 {
			continue
		}
		geo.Paths = append(geo.Paths, sectorPath(sec))
		geo.Hits = append(geo.Hits, sectorBounds(sec))
		geo.Points = append(geo.Points, sectorAnchor(sec))
	}
	return geo, nil
}

// sectorPath draws the outline of a sector. A full sector is made of two half
// circles, the inner one running the other way to leave the hole of a doughnut.
func sectorPath(sec Sector) Path {
	var pat Path
	pat.Fill = true
	if sec.Full() {
		var (
			top = getPosFromAngle(sec.Center, sec.Start, sec.Radius)
			bot = getPosFromAngle(sec.Center, sec.Start+halfcircle, sec.Radius)
		)
		pat.MoveTo(top)
		pat.ArcTo(bot, sec.Radius, false, true)
		pat.ArcTo(top, sec.Radius, false, true)
		pat.Close()
		if sec.Inner > 0 {
			top = getPosFromAngle(sec.Center, sec.Start, sec.Inner)
			bot = getPosFromAngle(sec.Center, sec.Start+halfcircle, sec.Inner)
			pat.MoveTo(top)
			pat.ArcTo(bot, sec.Inner, false, false)
			pat.ArcTo(top, sec.Inner, false, false)
			pat.Close()
		}
		return pat
	}
	var (
		large = sec.Sweep > halfcircle
		from  = getPosFromAngle(sec.Center, sec.Start, sec.Radius)
		to    = getPosFromAngle(sec.Center, sec.End(), sec.Radius)
	)
	if sec.Inner <= 0 {
		pat.MoveTo(sec.Center)
		pat.LineTo(from)
		pat.ArcTo(to, sec.Radius, large, true)
		pat.Close()
		return pat
	}
	pat.MoveTo(from)
	pat.ArcTo(to, sec.Radius, large, true)
	pat.LineTo(getPosFromAngle(sec.Center, sec.End(), sec.Inner))
	pat.ArcTo(getPosFromAngle(sec.Center, sec.Start, sec.Inner), sec.Inner, large, false)
	pat.Close()
	return pat
}

// sectorBounds is the box around the arc ends and the extreme points of the
// circle covered by the sector.
func sectorBounds(sec Sector) Rect {
	points := []Point{
		getPosFromAngle(sec.Center, sec.Start, sec.Radius),
		getPosFromAngle(sec.Center, sec.End(), sec.Radius),
	}
	if sec.Inner > 0 {
		points = append(points,
			getPosFromAngle(sec.Center, sec.Start, sec.Inner),
			getPosFromAngle(sec.Center, sec.End(), sec.Inner),
		)
	} else {
		points = append(points, sec.Center)
	}
	for a := 0.0; a < fullcircle; a += 90 {
		if sec.covers(a) {
			points = append(points, getPosFromAngle(sec.Center, a, sec.Radius))
		}
	}
	var (
		x0, y0 = math.Inf(1), math.Inf(1)
		x1, y1 = math.Inf(-1), math.Inf(-1)
	)
	for _, pt := range points {
		x0, x1 = math.Min(x0, pt.X), math.Max(x1, pt.X)
		y0, y1 = math.Min(y0, pt.Y), math.Max(y1, pt.Y)
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// covers reports whether the angle lies within the clockwise sweep of the
// sector.
func (s Sector) covers(angle float64) bool {
	if s.Full() {
		return true
	}
	diff := math.Mod(s.Start-angle, fullcircle)
	if diff < 0 {
		diff += fullcircle
	}
	return diff <= s.Sweep
}

// sectorAnchor is the middle of the sector, where its label goes.
func sectorAnchor(sec Sector) Point {
	var (
		mid  = sec.Start - sec.Sweep/2
		dist = (sec.Radius + sec.Inner) / 2
	)
	if sec.Full() && sec.Inner == 0 {
		return sec.Center
	}
	return getPosFromAngle(sec.Center, mid, dist)
}
