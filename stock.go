package chartgeom

// TickRatio is the length of the open and close ticks relative to the
// category slot.
const TickRatio = 0.3

// BuildStock draws one vertical high-low segment per value with a close tick
// on its right and, for OHLC styles, an open tick on its left. With PassUp or
// PassDown only the rising or falling values are drawn.
func BuildStock(style Style, lay Layout, s *Series, pass Pass) (Geometry, error) {
	if err := checkFamily(style, FamilyStock); err != nil {
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
		step  = slot(lay.Frame.W, s.Len())
		width = step * TickRatio
		open  = style == OHLC || style == ColoredOHLC
		pat   Path
	)
	geo.Pass = pass
	for i, v := range s.Values {
		up := risen(s.Values, i, open)
		if (pass == PassUp && !up) || (pass == PassDown && up) {
			continue
		}
		var (
			x    = lay.Frame.X + (float64(i)+0.5)*step
			tick = Tick{
				X:     x,
				High:  sy.Scale(v.High),
				Low:   sy.Scale(v.Low),
				Open:  sy.Scale(v.Open),
				Close: sy.Scale(v.Close),
				Width: width,
				Up:    up,
			}
		)
		pat.MoveTo(NewPoint(x, tick.High))
		pat.LineTo(NewPoint(x, tick.Low))
		if open {
			pat.MoveTo(NewPoint(x-width, tick.Open))
			pat.LineTo(NewPoint(x, tick.Open))
		}
		pat.MoveTo(NewPoint(x, tick.Close))
		pat.LineTo(NewPoint(x+width, tick.Close))

		hit := RectFrom(NewPoint(x-width, tick.High), NewPoint(x+width, tick.Low))
		geo.Ticks = append(geo.Ticks, tick)
		geo.Hits = append(geo.Hits, hit)
		geo.Points = append(geo.Points, NewPoint(x, tick.Close))
	}
	if !pat.Empty() {
		geo.Paths = append(geo.Paths, pat)
	}
	return geo, nil
}

// risen tells whether the i-th value closes up. OHLC styles compare the close
// to the open, HLC styles to the previous close; the first HLC value counts as
// up.
func risen(values []Value, i int, open bool) bool {
	v := values[i]
	if open {
		return v.Up()
	}
	if i == 0 {
		return true
	}
	return v.Close >= values[i-1].Close
}
