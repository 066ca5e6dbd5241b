package chartgeom

import (
	"fmt"
)

// Direction describes the quadrants of the plot area occupied by the data and
// therefore where the zero line sits.
type Direction int

const (
	// NorthEast: every value is >= 0, zero on the low end of the value axis.
	NorthEast Direction = iota
	// NorthWest: every value is <= 0, the value axis is mirrored.
	NorthWest
	// SouthEast: financial data below zero.
	SouthEast
	// NorthEastNorthWest: horizontal bars spanning both signs.
	NorthEastNorthWest
	// NorthEastSouthEast: vertical values spanning both signs.
	NorthEastSouthEast
)

func (d Direction) String() string {
	switch d {
	case NorthEast:
		return "north-east"
	case NorthWest:
		return "north-west"
	case SouthEast:
		return "south-east"
	case NorthEastNorthWest:
		return "north-east-north-west"
	case NorthEastSouthEast:
		return "north-east-south-east"
	default:
		return "unknown"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Positive reports whether values above zero are part of the plot.
func (d Direction) Positive() bool {
	return d != NorthWest && d != SouthEast
}

// Negative reports whether values below zero are part of the plot.
func (d Direction) Negative() bool {
	return d != NorthEast
}

type HighLow struct {
	High float64
	Low  float64
}

type signs struct {
	pos bool
	neg bool
}

func signsOf(values []float64) signs {
	var s signs
	for _, v := range values {
		if v > 0 {
			s.pos = true
		} else if v < 0 {
			s.neg = true
		}
	}
	return s
}

// GetDirection derives the direction of plain values drawn with style.
func GetDirection(style Style, values []float64) (Direction, error) {
	if style.Financial() {
		return NorthEast, fmt.Errorf("%w: %s expects high/low pairs", ErrStyleMismatch, style)
	}
	s := signsOf(values)
	switch style.Family() {
	case FamilyPie, FamilyFunnel:
		return NorthEast, nil
	case FamilyColumn:
		switch {
		case s.pos && s.neg:
			return NorthEastNorthWest, nil
		case s.neg:
			return NorthWest, nil
		default:
			return NorthEast, nil
		}
	default:
		switch {
		case s.pos && s.neg:
			return NorthEastSouthEast, nil
		case s.neg:
			return NorthWest, nil
		default:
			return NorthEast, nil
		}
	}
}

// GetFinancialDirection derives the direction of high/low pairs drawn with a
// stock style.
func GetFinancialDirection(style Style, pairs []HighLow) (Direction, error) {
	if !style.Financial() {
		return NorthEast, fmt.Errorf("%w: %s does not accept financial values", ErrStyleMismatch, style)
	}
	var s signs
	for _, p := range pairs {
		x := signsOf([]float64{p.High, p.Low})
		s.pos = s.pos || x.pos
		s.neg = s.neg || x.neg
	}
	switch {
	case s.pos && s.neg:
		return NorthEastSouthEast, nil
	case s.neg:
		return SouthEast, nil
	default:
		return NorthEast, nil
	}
}

// ResolveDirection flattens the visible series the way style needs and
// derives the direction of the whole render from them.
func ResolveDirection(style Style, series []*Series) (Direction, error) {
	if len(series) == 0 {
		return NorthEast, ErrEmpty
	}
	if style.Financial() {
		var pairs []HighLow
		for _, v := range series[0].Values {
			pairs = append(pairs, HighLow{High: v.High, Low: v.Low})
		}
		return GetFinancialDirection(style, pairs)
	}
	var values []float64
	switch style.Family() {
	case FamilyWaterfall:
		values = series[0].Plains()
	default:
		for _, s := range series {
			values = append(values, s.Plains()...)
		}
	}
	return GetDirection(style, values)
}

func runningTotals(values []float64) []float64 {
	var (
		all   = make([]float64, 0, len(values))
		total float64
	)
	for _, v := range values {
		total += v
		all = append(all, total)
	}
	return all
}
