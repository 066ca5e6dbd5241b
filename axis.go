package chartgeom

import (
	"github.com/midbel/svg"
)

const FontSize = 12.0

func (c Chart) drawAxis(res Result) svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if res.Grid != nil {
		g.Append(drawRadarGrid(*res.Grid))
		for _, lb := range res.CategoryLabels {
			g.Append(labelText(lb, "middle").AsElement())
		}
		return g.AsElement()
	}
	if res.Style.Family() == FamilyPie || res.Style.Family() == FamilyFunnel {
		return g.AsElement()
	}
	var (
		frame = res.Frame
		sc    = NewScaler(res.Value, NewRange(frame.Bottom(), frame.Y))
	)
	if res.Style.Horizontal() {
		sc = NewScaler(res.Value, NewRange(frame.X, frame.Right()))
	}
	if c.WithGrid {
		for _, v := range sc.Values() {
			sk := svg.NewStroke("black", 1)
			sk.Opacity = 0.1
			if v == 0 {
				sk.Opacity = 0.6
			}
			g.Append(gridLine(res.Style.Horizontal(), sc.Scale(v), frame, sk).AsElement())
		}
	}
	g.Append(domainLine(res.ValueAxis, frame).AsElement())
	g.Append(domainLine(res.CategoryAxis, frame).AsElement())
	for _, lb := range res.ValueLabels {
		g.Append(labelText(lb, axisBaseline(res.ValueAxis)).AsElement())
	}
	for _, lb := range res.CategoryLabels {
		g.Append(labelText(lb, axisBaseline(res.CategoryAxis)).AsElement())
	}
	return g.AsElement()
}

// domainLine is the line running along the frame side of the axis.
func domainLine(orient Orientation, frame Rect) svg.Line {
	var (
		pos1 = svg.NewPos(frame.X, frame.Bottom())
		pos2 = svg.NewPos(frame.Right(), frame.Bottom())
	)
	switch orient {
	case OrientLeft:
		pos2 = svg.NewPos(frame.X, frame.Y)
	case OrientRight:
		pos1 = svg.NewPos(frame.Right(), frame.Y)
	case OrientTop:
		pos1 = svg.NewPos(frame.X, frame.Y)
		pos2 = svg.NewPos(frame.Right(), frame.Y)
	}
	d := svg.NewLine(pos1, pos2)
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

// gridLine crosses the frame at pos, vertically when the value axis is
// horizontal.
func gridLine(vertical bool, pos float64, frame Rect, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(frame.X, pos)
		pos2 = svg.NewPos(frame.Right(), pos)
	)
	if vertical {
		pos1 = svg.NewPos(pos, frame.Y)
		pos2 = svg.NewPos(pos, frame.Bottom())
	}
	li := svg.NewLine(pos1, pos2)
	li.Stroke = stroke
	return li
}

func axisBaseline(orient Orientation) string {
	if orient.Vertical() {
		return "middle"
	}
	switch orient {
	case OrientTop:
		return "auto"
	default:
		return "hanging"
	}
}

func labelText(lb Label, baseline string) svg.Text {
	text := svg.NewText(lb.Text)
	text.Pos = svg.NewPos(lb.Pos.X, lb.Pos.Y)
	text.Font = svg.NewFont(FontSize)
	text.Anchor = string(lb.Anchor)
	text.Baseline = baseline
	return text
}

func drawRadarGrid(grid RadarGrid) svg.Element {
	g := getBaseGroup("", "grid")
	for i, r := range grid.Rings {
		pat := getBasePath(false)
		pat.Stroke = svg.NewStroke("black", 1)
		pat.Stroke.Opacity = 0.2
		if i == grid.Zero {
			pat.Stroke.Opacity = 0.6
		}
		appendCommands(&pat, r)
		g.Append(pat.AsElement())
	}
	for _, s := range grid.Spokes {
		pat := getBasePath(false)
		pat.Stroke = svg.NewStroke("black", 1)
		pat.Stroke.Opacity = 0.2
		appendCommands(&pat, s)
		g.Append(pat.AsElement())
	}
	return g.AsElement()
}
