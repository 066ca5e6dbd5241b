package chartgeom

import (
	"github.com/midbel/svg"
)

const currentColour = "currentColour"

// renderGeometry draws the geometry of one series. Colored stock charts draw
// their down pass with the secondary color.
func renderGeometry(geo Geometry, color, secondary string, palette Palette) svg.Element {
	if geo.Pass == PassDown {
		color = secondary
	}
	grp := getBaseGroup(color, geo.Family.String(), geo.Style.String())
	grp.Id = geo.Series

	switch geo.Family {
	case FamilyPie:
		for i, p := range geo.Paths {
			pat := getBasePath(true)
			pat.Fill = svg.NewFill(palette.Color(i))
			pat.Stroke = svg.NewStroke("white", 1)
			appendCommands(&pat, p)
			grp.Append(pat.AsElement())
		}
		return grp.AsElement()
	case FamilyColumn, FamilyFunnel, FamilyWaterfall:
		for i, r := range geo.Rects {
			var el svg.Rect
			el.Pos = svg.NewPos(r.X, r.Y)
			el.Dim = svg.NewDim(r.W, r.H)
			el.Fill = svg.NewFill(color)
			if geo.Family == FamilyWaterfall && i < len(geo.Totals) && declined(geo.Totals, i) {
				el.Fill = svg.NewFill(secondary)
			}
			grp.Append(el.AsElement())
		}
	case FamilyBubble:
		for _, p := range geo.Paths {
			pat := getBasePath(true)
			pat.Fill.Opacity = 0.7
			appendCommands(&pat, p)
			grp.Append(pat.AsElement())
		}
		return grp.AsElement()
	}
	for _, p := range geo.Paths {
		pat := getBasePath(p.Fill)
		appendCommands(&pat, p)
		grp.Append(pat.AsElement())
	}
	for _, m := range geo.Markers {
		pat := getBasePath(true)
		pat.Fill.Opacity = 1
		appendCommands(&pat, m.Path)
		grp.Append(pat.AsElement())
	}
	return grp.AsElement()
}

// declined reports a waterfall bar going down.
func declined(totals []float64, i int) bool {
	if i == 0 {
		return totals[0] < 0
	}
	return totals[i] < totals[i-1]
}

func appendCommands(pat *svg.Path, p Path) {
	for _, c := range p.Commands {
		pos := svg.NewPos(c.Pos.X, c.Pos.Y)
		switch c.Op {
		case OpMove:
			pat.AbsMoveTo(pos)
		case OpLine:
			pat.AbsLineTo(pos)
		case OpCubic:
			pat.AbsCubicCurve(pos, svg.NewPos(c.Ctrl1.X, c.Ctrl1.Y), svg.NewPos(c.Ctrl2.X, c.Ctrl2.Y))
		case OpArc:
			pat.AbsArcTo(pos, c.Radius, c.Radius, 0, c.Large, c.Sweep)
		case OpClose:
			pat.ClosePath()
		}
	}
}

func getBasePath(fill bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
