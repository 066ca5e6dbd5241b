package chartgeom

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

// Chart draws a computed Result as an SVG document.
type Chart struct {
	Title    string
	Palette  Palette
	WithGrid bool
}

func (c Chart) Render(w io.Writer, vp Viewport, res Result, series []*Series) {
	el := svg.NewSVG(svg.WithDimension(vp.Width, vp.Height))
	el.OmitProlog = true

	if c.Title != "" {
		el.Append(c.drawTitle(vp).AsElement())
	}
	el.Append(c.drawAxis(res))
	area := getArea()
	for _, geo := range res.Geometries {
		main, alt := c.colors(geo, series)
		area.Append(renderGeometry(geo, main, alt, c.palette()))
	}
	el.Append(area.AsElement())

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (c Chart) palette() Palette {
	if len(c.Palette) == 0 {
		return Category10
	}
	return c.Palette
}

func (c Chart) colors(geo Geometry, series []*Series) (string, string) {
	for _, s := range series {
		if s != nil && s.Index == geo.Index && s.Name == geo.Series {
			return SeriesColors(c.palette(), s)
		}
	}
	p := c.palette()
	return p.Color(geo.Index), p.Color(geo.Index + 1)
}

func (c Chart) drawTitle(vp Viewport) svg.Text {
	text := svg.NewText(c.Title)
	text.Pos = svg.NewPos(vp.Width/2, FontSize)
	text.Font = svg.NewFont(FontSize * 1.2)
	text.Anchor = "middle"
	text.Baseline = "middle"
	return text
}

func getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	return g
}
