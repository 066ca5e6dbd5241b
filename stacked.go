package chartgeom

import (
	"errors"
	"fmt"
)

// ErrStackOrder is returned when padded series are not stacked in ascending
// order.
var ErrStackOrder = errors.New("series stacked out of order")

// Stack carries what the series already drawn leave to the next one. It is
// never modified: builders return a new accumulator.
type Stack struct {
	// Count is the number of series stacked so far.
	Count int
	// Totals is the all sign sum of the values stacked at each index.
	Totals []float64
	// Positive and Negative are the same sign sums used by columns and bars.
	Positive []float64
	Negative []float64
}

// NewStack returns an empty accumulator for series of n points.
func NewStack(n int) *Stack {
	return &Stack{
		Totals:   make([]float64, n),
		Positive: make([]float64, n),
		Negative: make([]float64, n),
	}
}

func (s *Stack) next() *Stack {
	x := Stack{
		Count:    s.Count + 1,
		Totals:   append([]float64(nil), s.Totals...),
		Positive: append([]float64(nil), s.Positive...),
		Negative: append([]float64(nil), s.Negative...),
	}
	return &x
}

func (s *Stack) check(p Padded, k int) error {
	if s == nil || s.Count != k || len(s.Totals) != p.Len {
		return fmt.Errorf("%w: expected series %d", ErrStackOrder, k)
	}
	if k < 0 || k >= len(p.Series) {
		return fmt.Errorf("%w: series %d out of range", ErrStackOrder, k)
	}
	return nil
}

// BuildStacked computes the geometry of the k-th padded series for the stacked
// and full stacked line and area styles. Series must be given in ascending
// order, each call receiving the accumulator returned by the previous one.
func BuildStacked(style Style, lay Layout, p Padded, k int, acc *Stack) (Geometry, *Stack, error) {
	if err := checkFamily(style, FamilyLine); err != nil {
		return Geometry{}, acc, noGeometry(style, "", err)
	}
	if style.Stacking() == StackNone {
		return Geometry{}, acc, noGeometry(style, "", fmt.Errorf("%w: style is not stacked", ErrStyleMismatch))
	}
	if err := acc.check(p, k); err != nil {
		return Geometry{}, acc, err
	}
	s := p.Series[k]
	if err := checkSeries(style, s); err != nil {
		return Geometry{}, acc.next(), noGeometry(style, s.Name, err)
	}
	if err := lay.valid(); err != nil {
		return Geometry{}, acc.next(), noGeometry(style, s.Name, err)
	}
	var (
		geo    = newGeometry(style, s)
		sy     = lay.vertical()
		inset  = lineInset(style, lay)
		top    = make([]Point, p.Len)
		bottom = make([]Point, p.Len)
		totals = make([]float64, p.Len)
	)
	for i := 0; i < p.Len; i++ {
		var (
			x        = lay.lineX(i, p.Len, inset)
			from, to float64
		)
		if style.Stacking() == StackFull {
			pct, prev := p.Percent(k, i)
			from, to = prev, prev+pct
		} else {
			from = acc.Totals[i]
			to = from + p.value(k, i)
		}
		totals[i] = acc.Totals[i] + p.value(k, i)
		top[i] = NewPoint(x, sy.Scale(to))
		bottom[i] = NewPoint(x, sy.Scale(from))
	}
	if style.Filled() {
		geo.Paths = append(geo.Paths, bandPath(top, bottom))
	} else {
		geo.Paths = append(geo.Paths, Polyline(top))
	}
	geo.Points = top
	if style.Markers() {
		stampMarkers(&geo, lay.Marker, lay.markerSize(), top)
	} else {
		for _, pt := range top {
			geo.Hits = append(geo.Hits, pointHit(pt))
		}
	}
	next := acc.next()
	next.Totals = totals
	return geo, next, nil
}
