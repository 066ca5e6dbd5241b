package chartgeom

import (
	"sort"
)

// Padded holds series aligned on the same number of points. Shorter series are
// completed with zero placeholders so index aligned sums are well defined.
type Padded struct {
	Series []*Series
	Len    int
}

// PadSeries copies the given series ordered by Index and pads their values to
// the length of the longest one. The input series are not modified.
func PadSeries(series []*Series) Padded {
	var p Padded
	for _, s := range series {
		if n := s.Len(); n > p.Len {
			p.Len = n
		}
	}
	for _, s := range series {
		x := *s
		x.Values = make([]Value, p.Len)
		copy(x.Values, s.Values)
		for i := s.Len(); i < p.Len; i++ {
			x.Values[i] = NumberValue(0)
		}
		p.Series = append(p.Series, &x)
	}
	sort.SliceStable(p.Series, func(i, j int) bool {
		return p.Series[i].Index < p.Series[j].Index
	})
	return p
}

func (p Padded) value(k, i int) float64 {
	return p.Series[k].Values[i].Plain
}

// AbsTotal is the sum of absolute values across all series at index i.
func (p Padded) AbsTotal(i int) float64 {
	var total float64
	for k := range p.Series {
		v := p.value(k, i)
		if v < 0 {
			v = -v
		}
		total += v
	}
	return total
}

// Preceding is the sum, at index i, of the values having the same sign as the
// value of series k and belonging to series ordered before k.
func (p Padded) Preceding(k, i int) float64 {
	var (
		sum float64
		pos = p.value(k, i) >= 0
	)
	for j := 0; j < k; j++ {
		v := p.value(j, i)
		if (v >= 0) == pos {
			sum += v
		}
	}
	return sum
}

// Total is the sum, at index i, of all values of the series ordered before k.
func (p Padded) Total(k, i int) float64 {
	var sum float64
	for j := 0; j < k; j++ {
		sum += p.value(j, i)
	}
	return sum
}

// Percent returns the share in percent of the value of series k at index i and
// the share of the same sign series preceding it. Both carry the sign of the
// value.
func (p Padded) Percent(k, i int) (float64, float64) {
	total := p.AbsTotal(i)
	if total == 0 {
		total = 1
	}
	var (
		v    = p.value(k, i)
		prev = p.Preceding(k, i)
	)
	return v * 100 / total, prev * 100 / total
}

// StackExtent returns the range reached by the stacked values. When sameSign is
// set, positive and negative values are stacked separately.
func (p Padded) StackExtent(sameSign bool) Extent {
	var e Extent
	for i := 0; i < p.Len; i++ {
		var pos, neg, all float64
		for k := range p.Series {
			v := p.value(k, i)
			all += v
			if v >= 0 {
				pos += v
			} else {
				neg += v
			}
			if !sameSign {
				e = e.Include(all)
			}
		}
		if sameSign {
			e = e.Include(pos).Include(neg)
		}
	}
	return e
}
