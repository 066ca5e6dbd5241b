package chartgeom

// LabelGap is the space left between an axis and its labels.
const LabelGap = 4.0

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

func (p Padding) add(o Padding) Padding {
	return Padding{
		Top:    p.Top + o.Top,
		Right:  p.Right + o.Right,
		Bottom: p.Bottom + o.Bottom,
		Left:   p.Left + o.Left,
	}
}

type Viewport struct {
	Width  float64
	Height float64
}

// Frame returns the plot area left inside the viewport once the padding and
// the label boundaries are removed.
func (v Viewport) Frame(pad, bounds Padding) Rect {
	all := pad.add(bounds)
	return Rect{
		X: all.Left,
		Y: all.Top,
		W: v.Width - all.Horizontal(),
		H: v.Height - all.Vertical(),
	}
}

// boundaries reserves room around the plot area for the axis labels: one
// label height below the frame and the widest label of the vertical axis on
// its side, right when the flow is right to left.
func boundaries(style Style, valueWidth, categoryWidth, labelHeight float64, rtl bool) Padding {
	var b Padding
	switch style.Family() {
	case FamilyPie, FamilyRadar, FamilyFunnel:
		return b
	}
	side := valueWidth
	if style.Horizontal() {
		side = categoryWidth
	}
	b.Bottom = labelHeight + LabelGap
	if rtl {
		b.Right = side + LabelGap
	} else {
		b.Left = side + LabelGap
	}
	return b
}
