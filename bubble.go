package chartgeom

import (
	"math"
)

// BubbleRatio bounds the radius of the largest bubble to a share of its slot.
const BubbleRatio = 0.5

// BuildBubbles draws a circle per value, its area proportional to the volume
// relative to maxVolume, the largest volume of every series of the chart.
func BuildBubbles(style Style, lay Layout, s *Series, maxVolume float64) (Geometry, error) {
	if err := checkFamily(style, FamilyBubble); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := checkSeries(style, s); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := lay.valid(); err != nil {
		return Geometry{}, noGeometry(style, s.Name, err)
	}
	if maxVolume <= 0 {
		maxVolume = MaxVolume(s)
	}
	var (
		geo  = newGeometry(style, s)
		sy   = lay.vertical()
		step = slot(lay.Frame.W, s.Len())
		top  = math.Min(step, lay.Frame.H) * BubbleRatio
	)
	for i, v := range s.Values {
		var (
			center = NewPoint(lay.Frame.X+(float64(i)+0.5)*step, sy.Scale(v.Plain))
			radius float64
		)
		if maxVolume > 0 {
			radius = top * math.Sqrt(math.Abs(v.Volume)/maxVolume)
		}
		geo.Points = append(geo.Points, center)
		if radius <= 0 {
			geo.Hits = append(geo.Hits, pointHit(center))
			continue
		}
		geo.Paths = append(geo.Paths, getCircle(center, radius))
		geo.Hits = append(geo.Hits, NewRect(center.X-radius, center.Y-radius, 2*radius, 2*radius))
	}
	return geo, nil
}

// MaxVolume returns the largest absolute volume found in series.
func MaxVolume(series ...*Series) float64 {
	var top float64
	for _, s := range series {
		for _, v := range s.Values {
			top = math.Max(top, math.Abs(v.Volume))
		}
	}
	return top
}
