package chartgeom

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) String() string {
	switch o {
	case OrientTop:
		return "top"
	case OrientRight:
		return "right"
	case OrientBottom:
		return "bottom"
	case OrientLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Anchor tells which point of its text a label position refers to.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

type Label struct {
	Text   string
	Pos    Point
	Width  float64
	Anchor Anchor
}

// ValueLabels formats every grid value of the scaler plan and places it next
// to the frame side given by orient.
func ValueLabels(sc Scaler, orient Orientation, frame Rect, format NumberFormat, metrics FontMetrics) []Label {
	format = format.WithStep(sc.Plan.Step)
	var all []Label
	for _, v := range sc.Values() {
		str := format.Format(v)
		all = append(all, placeLabel(str, sc.Scale(v), orient, frame, metrics))
	}
	return all
}

// CategoryLabels places names at the given positions along the axis.
func CategoryLabels(names []string, positions []float64, orient Orientation, frame Rect, metrics FontMetrics) []Label {
	var all []Label
	for i, str := range names {
		if i >= len(positions) {
			break
		}
		all = append(all, placeLabel(str, positions[i], orient, frame, metrics))
	}
	return all
}

func placeLabel(str string, pos float64, orient Orientation, frame Rect, metrics FontMetrics) Label {
	lb := Label{
		Text:   str,
		Width:  metrics.Width(str),
		Anchor: AnchorMiddle,
	}
	switch orient {
	case OrientLeft:
		lb.Pos = NewPoint(frame.X-LabelGap, pos)
		lb.Anchor = AnchorEnd
	case OrientRight:
		lb.Pos = NewPoint(frame.Right()+LabelGap, pos)
		lb.Anchor = AnchorStart
	case OrientTop:
		lb.Pos = NewPoint(pos, frame.Y-LabelGap)
	default:
		lb.Pos = NewPoint(pos, frame.Bottom()+LabelGap)
	}
	return lb
}

// widest returns the width of the largest text.
func widest(metrics FontMetrics, texts ...string) float64 {
	var w float64
	for _, t := range texts {
		if x := metrics.Width(t); x > w {
			w = x
		}
	}
	return w
}
