package chartgeom

import (
	"fmt"

	"github.com/midbel/slices"
)

// BuildLine computes the geometry of a series drawn with a line or area style
// without stacking.
func BuildLine(style Style, lay Layout, s *Series) (Geometry, error) {
	if err := checkFamily(style, FamilyLine); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if style.Stacking() != StackNone {
		return Geometry{}, noGeometry(style, nameOf(s), fmt.Errorf("%w: stacked style needs padded series", ErrStyleMismatch))
	}
	if err := checkSeries(style, s); err != nil {
		return Geometry{}, noGeometry(style, nameOf(s), err)
	}
	if err := lay.valid(); err != nil {
		return Geometry{}, noGeometry(style, s.Name, err)
	}
	var (
		geo    = newGeometry(style, s)
		sy     = lay.vertical()
		inset  = lineInset(style, lay)
		points = make([]Point, 0, s.Len())
	)
	for i, v := range s.Values {
		pt := NewPoint(lay.lineX(i, s.Len(), inset), sy.Scale(v.Plain))
		points = append(points, pt)
	}
	if style.Filled() {
		geo.Paths = append(geo.Paths, areaPath(points, sy.Zero(), style.Smooth()))
	} else if style.Smooth() {
		geo.Paths = append(geo.Paths, SmoothPath(points, false))
	} else {
		geo.Paths = append(geo.Paths, Polyline(points))
	}
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

// lineInset keeps the first and last markers inside the frame.
func lineInset(style Style, lay Layout) float64 {
	if style.Markers() {
		return lay.markerSize() / 2
	}
	return 0
}

// areaPath closes the curve through points against the horizontal baseline.
func areaPath(points []Point, baseline float64, smooth bool) Path {
	var (
		pat Path
		fst = slices.Fst(points)
		lst = slices.Lst(points)
	)
	pat.MoveTo(NewPoint(fst.X, baseline))
	pat.LineTo(fst)
	if curves, ok := Smooth(points, false); smooth && ok {
		appendCurves(&pat, curves)
	} else {
		for _, pt := range slices.Rest(points) {
			pat.LineTo(pt)
		}
	}
	pat.LineTo(NewPoint(lst.X, baseline))
	pat.Close()
	pat.Fill = true
	return pat
}

// bandPath closes the polyline top against the polyline bottom. Both must have
// the same number of points.
func bandPath(top, bottom []Point) Path {
	all := make([]Point, 0, len(top)+len(bottom))
	all = append(all, top...)
	all = append(all, slices.Reverse(append([]Point(nil), bottom...))...)
	return Polygon(all)
}
