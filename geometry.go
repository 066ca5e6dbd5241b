package chartgeom

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) Add(o Point) Point {
	return NewPoint(p.X+o.X, p.Y+o.Y)
}

func (p Point) Sub(o Point) Point {
	return NewPoint(p.X-o.X, p.Y-o.Y)
}

func (p Point) Mul(f float64) Point {
	return NewPoint(p.X*f, p.Y*f)
}

func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func midPoint(a, b Point) Point {
	return NewPoint((a.X+b.X)/2, (a.Y+b.Y)/2)
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

// RectFrom returns the rectangle spanning both points.
func RectFrom(a, b Point) Rect {
	return NewRect(a.X, a.Y, b.X-a.X, b.Y-a.Y)
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Center() Point {
	return NewPoint(r.X+r.W/2, r.Y+r.H/2)
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

func (r Rect) Expand(d float64) Rect {
	return Rect{
		X: r.X - d,
		Y: r.Y - d,
		W: r.W + 2*d,
		H: r.H + 2*d,
	}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

type Op int

const (
	OpMove Op = iota
	OpLine
	OpCubic
	OpArc
	OpClose
)

// Command is one path instruction. Ctrl1 and Ctrl2 are used by OpCubic;
// Radius, Large and Sweep by OpArc (Sweep set means clockwise on screen).
type Command struct {
	Op     Op
	Pos    Point
	Ctrl1  Point
	Ctrl2  Point
	Radius float64
	Large  bool
	Sweep  bool
}

type Path struct {
	Commands []Command
	Fill     bool
}

func (p *Path) MoveTo(pos Point) {
	p.Commands = append(p.Commands, Command{Op: OpMove, Pos: pos})
}

func (p *Path) LineTo(pos Point) {
	p.Commands = append(p.Commands, Command{Op: OpLine, Pos: pos})
}

func (p *Path) CubicTo(pos, ctrl1, ctrl2 Point) {
	p.Commands = append(p.Commands, Command{Op: OpCubic, Pos: pos, Ctrl1: ctrl1, Ctrl2: ctrl2})
}

func (p *Path) ArcTo(pos Point, radius float64, large, sweep bool) {
	p.Commands = append(p.Commands, Command{
		Op:     OpArc,
		Pos:    pos,
		Radius: radius,
		Large:  large,
		Sweep:  sweep,
	})
}

func (p *Path) Close() {
	p.Commands = append(p.Commands, Command{Op: OpClose})
}

func (p Path) Closed() bool {
	n := len(p.Commands)
	return n > 0 && p.Commands[n-1].Op == OpClose
}

func (p Path) Empty() bool {
	return len(p.Commands) == 0
}

// Polyline builds an open path through all points.
func Polyline(points []Point) Path {
	var pat Path
	for i, pt := range points {
		if i == 0 {
			pat.MoveTo(pt)
		} else {
			pat.LineTo(pt)
		}
	}
	return pat
}

func Polygon(points []Point) Path {
	pat := Polyline(points)
	if len(points) > 0 {
		pat.Close()
	}
	pat.Fill = true
	return pat
}

// Sector is an angular slice of a pie or doughnut. Angles are in degrees,
// counter clockwise from the positive x axis; the sector runs clockwise from
// Start over Sweep degrees.
type Sector struct {
	Center Point
	Radius float64
	Inner  float64
	Start  float64
	Sweep  float64
	Value  float64
	Label  string
}

func (s Sector) End() float64 {
	return s.Start - s.Sweep
}

func (s Sector) Full() bool {
	return s.Sweep >= fullcircle
}

// Tick is one OHLC/HLC mark.
type Tick struct {
	X     float64
	High  float64
	Low   float64
	Open  float64
	Close float64
	Width float64
	Up    bool
}

// Geometry is everything produced for one series in one pass. Which fields are
// filled depends on the family of the style.
type Geometry struct {
	Series string
	Index  int
	Style  Style
	Family Family
	Pass   Pass

	Paths   []Path
	Rects   []Rect
	Sectors []Sector
	Ticks   []Tick
	Markers []Marker
	// Totals holds the running totals of a waterfall after each bar.
	Totals []float64

	Hits   []Rect
	Points []Point
}

func newGeometry(style Style, s *Series) Geometry {
	g := Geometry{
		Style:  style,
		Family: style.Family(),
	}
	if s != nil {
		g.Series = s.Name
		g.Index = s.Index
	}
	return g
}

// Pass selects the subset of a stock series drawn in one pass.
type Pass int

const (
	PassAll Pass = iota
	PassUp
	PassDown
)

func (p Pass) String() string {
	switch p {
	case PassUp:
		return "up"
	case PassDown:
		return "down"
	default:
		return "all"
	}
}

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// getPosFromAngle returns the point at angle degrees (counter clockwise, y axis
// pointing down on screen) on the circle of the given radius.
func getPosFromAngle(center Point, angle, radius float64) Point {
	rad := angle * deg2rad
	return NewPoint(center.X+radius*math.Cos(rad), center.Y-radius*math.Sin(rad))
}
