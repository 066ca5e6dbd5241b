package chartgeom

// radarAngle is the angle of the i-th of n spokes: the first one points up and
// the others follow counter clockwise.
func radarAngle(i, n int) float64 {
	if n <= 0 {
		return startAngle
	}
	return startAngle + float64(i)*fullcircle/float64(n)
}

// BuildRadar places the values of s on count spokes starting at twelve
// o'clock. The distance to the center is measured from the minimum of the
// value plan.
func BuildRadar(style Style, lay Layout, s *Series, count int) (Geometry, error) {
	if err := checkFamily(style, FamilyRadar); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := checkSeries(style, s); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := lay.valid(); err != nil {
		return Geometry{}, noGeometry(style, s.Name, err)
	}
	if count < s.Len() {
		count = s.Len()
	}
	var (
		geo    = newGeometry(style, s)
		center = lay.center()
		points = make([]Point, 0, s.Len())
	)
	for i, v := range s.Values {
		dist := (v.Plain - lay.Value.Min) * lay.Value.UnitsPerValue
		if dist < 0 {
			dist = 0
		}
		points = append(points, getPosFromAngle(center, radarAngle(i, count), dist))
	}
	pat := Polygon(points)
	pat.Fill = style.Filled()
	geo.Paths = append(geo.Paths, pat)
	geo.Points = points
	if style.Markers() {
		stampMarkers(&geo, lay.Marker, lay.markerSize(), points)
	} else {
		for _, pt := range points {
			geo.Hits = append(geo.Hits, pointHit(pt))
		}
	}
	return geo, nil
}

// RadarGrid is the background of a radar chart. Zero is the index in Rings of
// the ring sitting at the value 0, -1 when it is the center.
type RadarGrid struct {
	Rings  []Path
	Spokes []Path
	Ends   []Point
	Zero   int
}

// BuildRadarGrid returns one ring per grid line of the value plan, from the
// center outward, and the count spokes.
func BuildRadarGrid(lay Layout, count int) RadarGrid {
	grid := RadarGrid{
		Zero: lay.Value.ZeroLevel - 1,
	}
	if count <= 0 || lay.valid() != nil {
		return grid
	}
	center := lay.center()
	for j := 1; j <= lay.Value.Lines; j++ {
		var (
			dist = float64(j) * lay.Value.StepLength
			ring = make([]Point, count)
		)
		for i := range ring {
			ring[i] = getPosFromAngle(center, radarAngle(i, count), dist)
		}
		pat := Polygon(ring)
		pat.Fill = false
		grid.Rings = append(grid.Rings, pat)
	}
	outer := float64(lay.Value.Lines) * lay.Value.StepLength
	for i := 0; i < count; i++ {
		end := getPosFromAngle(center, radarAngle(i, count), outer)
		grid.Spokes = append(grid.Spokes, Polyline([]Point{center, end}))
		grid.Ends = append(grid.Ends, end)
	}
	return grid
}
