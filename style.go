package chartgeom

import (
	"fmt"
	"strings"
)

type Family int

const (
	FamilyLine Family = iota
	FamilyColumn
	FamilyPie
	FamilyRadar
	FamilyFunnel
	FamilyWaterfall
	FamilyStock
	FamilyBubble
)

func (f Family) String() string {
	switch f {
	case FamilyLine:
		return "line"
	case FamilyColumn:
		return "column"
	case FamilyPie:
		return "pie"
	case FamilyRadar:
		return "radar"
	case FamilyFunnel:
		return "funnel"
	case FamilyWaterfall:
		return "waterfall"
	case FamilyStock:
		return "stock"
	case FamilyBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

type Stacking int

const (
	StackNone Stacking = iota
	StackNormal
	StackFull
)

type Style int

const (
	Lines Style = iota
	LinesWithMarkers
	SmoothLines
	SmoothLinesWithMarkers
	StackedLines
	StackedLinesWithMarkers
	FullStackedLines
	FullStackedLinesWithMarkers
	Area
	SmoothArea
	StackedArea
	FullStackedArea
	Columns
	StackedColumns
	FullStackedColumns
	Bars
	StackedBars
	FullStackedBars
	Pie
	Doughnut
	Radar
	RadarWithMarkers
	RadarArea
	Funnel
	Waterfall
	OHLC
	HLC
	ColoredOHLC
	ColoredHLC
	Bubbles

	styleCount
)

var styleNames = [...]string{
	Lines:                       "lines",
	LinesWithMarkers:            "lines-markers",
	SmoothLines:                 "smooth-lines",
	SmoothLinesWithMarkers:      "smooth-lines-markers",
	StackedLines:                "stacked-lines",
	StackedLinesWithMarkers:     "stacked-lines-markers",
	FullStackedLines:            "full-stacked-lines",
	FullStackedLinesWithMarkers: "full-stacked-lines-markers",
	Area:                        "area",
	SmoothArea:                  "smooth-area",
	StackedArea:                 "stacked-area",
	FullStackedArea:             "full-stacked-area",
	Columns:                     "columns",
	StackedColumns:              "stacked-columns",
	FullStackedColumns:          "full-stacked-columns",
	Bars:                        "bars",
	StackedBars:                 "stacked-bars",
	FullStackedBars:             "full-stacked-bars",
	Pie:                         "pie",
	Doughnut:                    "doughnut",
	Radar:                       "radar",
	RadarWithMarkers:            "radar-markers",
	RadarArea:                   "radar-area",
	Funnel:                      "funnel",
	Waterfall:                   "waterfall",
	OHLC:                        "ohlc",
	HLC:                         "hlc",
	ColoredOHLC:                 "colored-ohlc",
	ColoredHLC:                  "colored-hlc",
	Bubbles:                     "bubbles",
}

// Styles returns every supported style in declaration order.
func Styles() []Style {
	all := make([]Style, 0, styleCount)
	for s := Lines; s < styleCount; s++ {
		all = append(all, s)
	}
	return all
}

func ParseStyle(str string) (Style, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	for i, n := range styleNames {
		if n == str {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("%s: unrecognized chart style", str)
}

func (s Style) Valid() bool {
	return s >= Lines && s < styleCount
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("style(%d)", int(s))
	}
	return styleNames[s]
}

func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%d: unsupported chart style", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(b []byte) error {
	x, err := ParseStyle(string(b))
	if err == nil {
		*s = x
	}
	return err
}

func (s Style) Family() Family {
	switch s {
	case Lines, LinesWithMarkers, SmoothLines, SmoothLinesWithMarkers,
		StackedLines, StackedLinesWithMarkers, FullStackedLines, FullStackedLinesWithMarkers,
		Area, SmoothArea, StackedArea, FullStackedArea:
		return FamilyLine
	case Columns, StackedColumns, FullStackedColumns, Bars, StackedBars, FullStackedBars:
		return FamilyColumn
	case Pie, Doughnut:
		return FamilyPie
	case Radar, RadarWithMarkers, RadarArea:
		return FamilyRadar
	case Funnel:
		return FamilyFunnel
	case Waterfall:
		return FamilyWaterfall
	case OHLC, HLC, ColoredOHLC, ColoredHLC:
		return FamilyStock
	case Bubbles:
		return FamilyBubble
	default:
		panic(fmt.Sprintf("unsupported chart style %d", int(s)))
	}
}

func (s Style) Stacking() Stacking {
	switch s {
	case StackedLines, StackedLinesWithMarkers, StackedArea, StackedColumns, StackedBars:
		return StackNormal
	case FullStackedLines, FullStackedLinesWithMarkers, FullStackedArea, FullStackedColumns, FullStackedBars:
		return StackFull
	default:
		s.Family()
		return StackNone
	}
}

func (s Style) Smooth() bool {
	return s == SmoothLines || s == SmoothLinesWithMarkers || s == SmoothArea
}

func (s Style) Markers() bool {
	switch s {
	case LinesWithMarkers, SmoothLinesWithMarkers, StackedLinesWithMarkers,
		FullStackedLinesWithMarkers, RadarWithMarkers:
		return true
	default:
		return false
	}
}

func (s Style) Filled() bool {
	switch s {
	case Area, SmoothArea, StackedArea, FullStackedArea, RadarArea:
		return true
	default:
		return false
	}
}

// Horizontal reports styles whose value axis runs along the x axis.
func (s Style) Horizontal() bool {
	return s == Bars || s == StackedBars || s == FullStackedBars
}

// Single reports styles accepting exactly one series.
func (s Style) Single() bool {
	switch s.Family() {
	case FamilyPie, FamilyFunnel, FamilyWaterfall:
		return true
	default:
		return false
	}
}

func (s Style) Financial() bool {
	return s.Family() == FamilyStock
}

func (s Style) Colored() bool {
	return s == ColoredOHLC || s == ColoredHLC
}

// Accepts reports whether values of the given shape can be drawn with s.
func (s Style) Accepts(shape Shape) bool {
	switch s {
	case OHLC, ColoredOHLC:
		return shape == ShapeOHLC
	case HLC, ColoredHLC:
		return shape == ShapeHLC || shape == ShapeOHLC
	default:
		s.Family()
		return shape == ShapePlain
	}
}

// AutoAdjust tells which axes derive their plan from the data.
type AutoAdjust int

const (
	AdjustNone AutoAdjust = iota
	AdjustHorizontal
	AdjustVertical
	AdjustBoth
)

func ParseAutoAdjust(str string) (AutoAdjust, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "none":
		return AdjustNone, nil
	case "horizontal":
		return AdjustHorizontal, nil
	case "vertical":
		return AdjustVertical, nil
	case "both", "":
		return AdjustBoth, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized auto adjustment mode", str)
	}
}

func (a AutoAdjust) String() string {
	switch a {
	case AdjustNone:
		return "none"
	case AdjustHorizontal:
		return "horizontal"
	case AdjustVertical:
		return "vertical"
	case AdjustBoth:
		return "both"
	default:
		return "unknown"
	}
}

func (a AutoAdjust) Horizontal() bool {
	return a == AdjustHorizontal || a == AdjustBoth
}

func (a AutoAdjust) Vertical() bool {
	return a == AdjustVertical || a == AdjustBoth
}

func (a *AutoAdjust) UnmarshalText(b []byte) error {
	x, err := ParseAutoAdjust(string(b))
	if err == nil {
		*a = x
	}
	return err
}
