package chartgeom

// BuildColumns computes the rectangles of the k-th padded series for column
// and bar styles. Plain styles place the series side by side within each
// category slot, stacked styles pile them up: positive and negative values on
// their own side of the zero line.
func BuildColumns(style Style, lay Layout, p Padded, k int, acc *Stack) (Geometry, *Stack, error) {
	if err := checkFamily(style, FamilyColumn); err != nil {
		return Geometry{}, acc, noGeometry(style, "", err)
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
		geo  = newGeometry(style, s)
		next = acc.next()
		horz = style.Horizontal()
		sc   Scaler
		size float64
	)
	if horz {
		sc, size = lay.horizontal(), lay.Frame.H
	} else {
		sc, size = lay.vertical(), lay.Frame.W
	}
	var (
		width  = slot(size, p.Len)
		group  = width * BarRatio
		offset = (width - group) / 2
		thick  = group
	)
	if style.Stacking() == StackNone && len(p.Series) > 0 {
		thick = group / float64(len(p.Series))
	}
	for i := 0; i < p.Len; i++ {
		var (
			v        = p.value(k, i)
			from, to float64
			pos      = float64(i)*width + offset
		)
		switch style.Stacking() {
		case StackNone:
			from, to = 0, v
			pos += float64(k) * thick
		case StackNormal:
			if v >= 0 {
				from = acc.Positive[i]
				next.Positive[i] = from + v
			} else {
				from = acc.Negative[i]
				next.Negative[i] = from + v
			}
			to = from + v
		case StackFull:
			pct, prev := p.Percent(k, i)
			from, to = prev, prev+pct
		}
		next.Totals[i] += v

		var (
			rect Rect
			end  Point
		)
		if horz {
			y := lay.Frame.Y + pos
			rect = RectFrom(NewPoint(sc.Scale(from), y), NewPoint(sc.Scale(to), y+thick))
			end = NewPoint(sc.Scale(to), y+thick/2)
		} else {
			x := lay.Frame.X + pos
			rect = RectFrom(NewPoint(x, sc.Scale(from)), NewPoint(x+thick, sc.Scale(to)))
			end = NewPoint(x+thick/2, sc.Scale(to))
		}
		geo.Rects = append(geo.Rects, rect)
		geo.Hits = append(geo.Hits, rect)
		geo.Points = append(geo.Points, end)
	}
	return geo, next, nil
}
