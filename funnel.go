package chartgeom

import (
	"math"
)

// FunnelPadding is the gap left between two funnel bars.
const FunnelPadding = 4.0

// BuildFunnel draws one centered bar per category, its width proportional to
// the value relative to the largest one. Values that are not positive are
// left out.
func BuildFunnel(style Style, lay Layout, s *Series) (Geometry, error) {
	if err := checkFamily(style, FamilyFunnel); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := checkSeries(style, s); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := lay.valid(); err != nil {
		return Geometry{}, noGeometry(style, s.Name, err)
	}
	var top float64
	for _, v := range s.Values {
		top = math.Max(top, v.Plain)
	}
	if top <= 0 {
		return Geometry{}, noGeometry(style, s.Name, ErrEmpty)
	}
	var (
		geo    = newGeometry(style, s)
		step   = lay.Category.StepLength
		height = step - FunnelPadding
	)
	if step <= 0 {
		step = slot(lay.Frame.H, s.Len())
		height = step - FunnelPadding
	}
	if height <= 0 {
		height = step
	}
	for i, v := range s.Values {
		if v.Plain <= 0 {
			continue
		}
		var (
			width = v.Plain / top * lay.Frame.W
			x     = lay.Frame.X + (lay.Frame.W-width)/2
			y     = lay.Frame.Y + float64(i)*step + (step-height)/2
			rect  = NewRect(x, y, width, height)
		)
		geo.Rects = append(geo.Rects, rect)
		geo.Hits = append(geo.Hits, rect)
		geo.Points = append(geo.Points, rect.Center())
	}
	return geo, nil
}
