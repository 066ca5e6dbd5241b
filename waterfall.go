package chartgeom

// BuildWaterfall draws each value as a bar starting where the previous one
// ended. Thin connectors join the end of a bar to the start of the next one.
func BuildWaterfall(style Style, lay Layout, s *Series) (Geometry, error) {
	if err := checkFamily(style, FamilyWaterfall); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := checkSeries(style, s); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := lay.valid(); err != nil {
		return Geometry{}, noGeometry(style, s.Name, err)
	}
	var (
		geo   = newGeometry(style, s)
		sy    = lay.vertical()
		step  = lay.Category.StepLength
		base  float64
		width float64
	)
	if step <= 0 {
		step = slot(lay.Frame.W, s.Len())
	}
	width = step * BarRatio
	geo.Totals = runningTotals(s.Plains())
	for i, total := range geo.Totals {
		var (
			x    = lay.Frame.X + float64(i)*step + (step-width)/2
			rect = RectFrom(NewPoint(x, sy.Scale(base)), NewPoint(x+width, sy.Scale(total)))
		)
		geo.Rects = append(geo.Rects, rect)
		geo.Hits = append(geo.Hits, rect)
		geo.Points = append(geo.Points, NewPoint(x+width/2, sy.Scale(total)))
		if i > 0 {
			var (
				prev = geo.Rects[i-1]
				y    = sy.Scale(base)
			)
			geo.Paths = append(geo.Paths, Polyline([]Point{
				NewPoint(prev.Right(), y),
				NewPoint(x, y),
			}))
		}
		base = total
	}
	return geo, nil
}
