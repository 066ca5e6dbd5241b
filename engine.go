package chartgeom

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/midbel/chartgeom/logging"
)

// Request describes one render: the surface, the style and the data.
type Request struct {
	Viewport Viewport
	Padding  Padding
	Style    Style
	Series   []*Series

	// Adjust tells which value axis derives its plan from the data. An axis
	// left out of Adjust uses its Pinned bounds when they are set.
	Adjust     AutoAdjust
	Horizontal Pinned
	Vertical   Pinned
	Lines      int

	Format  NumberFormat
	Metrics FontMetrics
	RTL     bool

	Marker     MarkerShape
	MarkerSize float64
	Doughnut   float64
}

// Result holds everything computed for a render. Geometries are ordered by
// ascending series Index; colored stock styles give two geometries per
// series, the up pass before the down pass.
type Result struct {
	Style     Style
	Direction Direction
	Value     AxisPlan
	Category  AxisPlan
	Frame     Rect

	ValueAxis      Orientation
	CategoryAxis   Orientation
	ValueLabels    []Label
	CategoryLabels []Label
	Grid           *RadarGrid

	Geometries []Geometry
}

type Option func(*Engine)

func WithLogger(logger *bolt.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine turns series into geometry. It keeps no state between renders and
// only writes the hit caches of the series it is given.
type Engine struct {
	logger *bolt.Logger
}

func NewEngine(options ...Option) *Engine {
	e := Engine{
		logger: logging.Discard(),
	}
	for _, o := range options {
		o(&e)
	}
	return &e
}

// Render computes the axes, the plot frame and the geometry of every visible
// series. Errors wrapping ErrNoGeometry mean there is nothing to draw; series
// that can not be drawn on their own are skipped and logged.
func (e *Engine) Render(req Request) (Result, error) {
	var (
		style = req.Style
		res   = Result{
			Style: style,
		}
	)
	if !style.Valid() {
		panic("invalid chart style " + strconv.Itoa(int(style)))
	}
	series := sortSeries(req.Series)
	for _, s := range series {
		s.reset()
	}
	series = e.usableSeries(style, visibleSeries(series))
	if err := checkRequest(style, series); err != nil {
		e.reject(style, err)
		return res, err
	}
	dir, err := ResolveDirection(style, series)
	if err != nil {
		e.reject(style, err)
		return res, err
	}
	res.Direction = dir

	var (
		metrics = req.Metrics
		format  = req.Format
		lines   = req.Lines
	)
	if metrics == nil {
		metrics = DefaultMetrics()
	}
	if lines <= 0 {
		lines = DefaultLines
	}
	if style.Stacking() == StackFull {
		format.Percent = true
	}
	// Value labels only take room beside the value axis, never along it: the
	// plan is computed on the final value axis length.
	var (
		count       = pointCount(series)
		names       = categoryNames(series, count)
		labelHeight = metrics.Height()
		categories  = widest(metrics, names...)
		base        = req.Viewport.Frame(req.Padding, boundaries(style, 0, categories, labelHeight, req.RTL))
	)
	if base.Empty() {
		err := noGeometry(style, "", ErrViewport)
		e.reject(style, err)
		return res, err
	}

	plan, err := e.valuePlan(req, series, dir, valueLength(style, base), labelHeight, lines)
	if err != nil {
		if errors.Is(err, ErrNoGeometry) {
			err = noGeometry(style, "", err)
		}
		e.reject(style, err)
		return res, err
	}
	var texts []string
	for _, v := range plan.Values() {
		texts = append(texts, format.WithStep(plan.Step).Format(v))
	}
	res.Frame = req.Viewport.Frame(req.Padding, boundaries(style, widest(metrics, texts...), categories, labelHeight, req.RTL))
	if res.Frame.Empty() {
		err := noGeometry(style, "", ErrViewport)
		e.reject(style, err)
		return res, err
	}
	if style.Family() == FamilyRadar {
		res.Value = plan.finish(radarLength(res.Frame))
	} else if !planless(style) {
		res.Value = plan.finish(valueLength(style, res.Frame))
	}
	if res.Category, err = CountPlan(count, categoryLength(style, res.Frame)); err != nil {
		err = noGeometry(style, "", err)
		e.reject(style, err)
		return res, err
	}

	lay := Layout{
		Frame:      res.Frame,
		Value:      res.Value,
		Category:   res.Category,
		Marker:     req.Marker,
		MarkerSize: req.MarkerSize,
		Doughnut:   req.Doughnut,
	}
	e.placeLabels(&res, req, lay, format, metrics, names)

	if err := e.build(&res, lay, series); err != nil {
		return res, err
	}
	if len(res.Geometries) == 0 {
		err := noGeometry(style, "", ErrEmpty)
		e.reject(style, err)
		return res, err
	}
	logging.Apply(e.logger.Debug(),
		logging.Component("engine"),
		logging.Style(style.String()),
		logging.Direction(dir.String()),
		logging.Count("series", len(series)),
		logging.Count("geometries", len(res.Geometries)),
	).Msg("chart rendered")
	return res, nil
}

func (e *Engine) reject(style Style, err error) {
	logging.Apply(e.logger.Warn(), logging.Style(style.String()), logging.ErrorField(err)).Msg("chart not rendered")
}

func (e *Engine) skip(style Style, s *Series, err error) {
	logging.Apply(e.logger.Debug(),
		logging.Style(style.String()),
		logging.Series(s.Name),
		logging.ErrorField(err),
	).Msg("series skipped")
}

func (e *Engine) valuePlan(req Request, series []*Series, dir Direction, length, labelHeight float64, lines int) (AxisPlan, error) {
	style := req.Style
	if planless(style) {
		return AxisPlan{}, nil
	}
	if style.Stacking() == StackFull {
		return PercentPlan(dir, length)
	}
	var (
		pinned = req.Vertical
		auto   = req.Adjust.Vertical()
	)
	if style.Horizontal() {
		pinned, auto = req.Horizontal, req.Adjust.Horizontal()
	}
	if !auto && pinned != (Pinned{}) {
		return PinnedPlan(pinned, length)
	}
	extent := dataExtent(style, series).Orient(dir)
	if style.Family() == FamilyRadar {
		return RadarPlan(extent, length, labelHeight, lines)
	}
	return AutoScale(extent, AxisOptions{
		Length:      length,
		LabelHeight: labelHeight,
		Lines:       lines,
	})
}

func (e *Engine) placeLabels(res *Result, req Request, lay Layout, format NumberFormat, metrics FontMetrics, names []string) {
	style := req.Style
	switch style.Family() {
	case FamilyPie, FamilyFunnel:
		return
	case FamilyRadar:
		grid := BuildRadarGrid(lay, res.Category.Lines)
		res.Grid = &grid
		center := lay.center()
		for i, end := range grid.Ends {
			lb := Label{
				Text:   names[i],
				Pos:    end,
				Width:  metrics.Width(names[i]),
				Anchor: AnchorMiddle,
			}
			switch {
			case end.X < center.X-1:
				lb.Anchor = AnchorEnd
			case end.X > center.X+1:
				lb.Anchor = AnchorStart
			}
			res.CategoryLabels = append(res.CategoryLabels, lb)
		}
		return
	}
	var (
		side      = OrientLeft
		positions = categoryPositions(style, lay, len(names))
	)
	if req.RTL {
		side = OrientRight
	}
	if style.Horizontal() {
		res.ValueAxis, res.CategoryAxis = OrientBottom, side
		res.ValueLabels = ValueLabels(lay.horizontal(), OrientBottom, lay.Frame, format, metrics)
	} else {
		res.ValueAxis, res.CategoryAxis = side, OrientBottom
		res.ValueLabels = ValueLabels(lay.vertical(), side, lay.Frame, format, metrics)
	}
	res.CategoryLabels = CategoryLabels(names, positions, res.CategoryAxis, lay.Frame, metrics)
}

func (e *Engine) build(res *Result, lay Layout, series []*Series) error {
	style := res.Style
	add := func(orig *Series, geo Geometry, err error) {
		if err != nil {
			e.skip(style, orig, err)
			return
		}
		res.Geometries = append(res.Geometries, geo)
		orig.Hits = append(orig.Hits, geo.Hits...)
		orig.Points = append(orig.Points, geo.Points...)
	}
	switch style.Family() {
	case FamilyLine, FamilyColumn:
		if style.Family() == FamilyLine && style.Stacking() == StackNone {
			for _, s := range series {
				geo, err := BuildLine(style, lay, s)
				add(s, geo, err)
			}
			return nil
		}
		var (
			pad = PadSeries(series)
			acc = NewStack(pad.Len)
		)
		for k := range pad.Series {
			var (
				geo Geometry
				err error
			)
			if style.Family() == FamilyLine {
				geo, acc, err = BuildStacked(style, lay, pad, k, acc)
			} else {
				geo, acc, err = BuildColumns(style, lay, pad, k, acc)
			}
			if errors.Is(err, ErrStackOrder) {
				return err
			}
			add(series[k], geo, err)
		}
	case FamilyPie:
		geo, err := BuildPie(style, lay, series[0])
		add(series[0], geo, err)
	case FamilyFunnel:
		geo, err := BuildFunnel(style, lay, series[0])
		add(series[0], geo, err)
	case FamilyWaterfall:
		geo, err := BuildWaterfall(style, lay, series[0])
		add(series[0], geo, err)
	case FamilyRadar:
		for _, s := range series {
			geo, err := BuildRadar(style, lay, s, res.Category.Lines)
			add(s, geo, err)
		}
	case FamilyStock:
		passes := []Pass{PassAll}
		if style.Colored() {
			passes = []Pass{PassUp, PassDown}
		}
		for _, s := range series {
			for _, p := range passes {
				geo, err := BuildStock(style, lay, s, p)
				add(s, geo, err)
			}
		}
	case FamilyBubble:
		top := MaxVolume(series...)
		for _, s := range series {
			geo, err := BuildBubbles(style, lay, s, top)
			add(s, geo, err)
		}
	}
	return nil
}

// checkRequest rejects combinations that can not give any geometry.
func checkRequest(style Style, series []*Series) error {
	if len(series) == 0 {
		return noGeometry(style, "", ErrEmpty)
	}
	if style.Single() && len(series) > 1 {
		return noGeometry(style, "", ErrSingleSeries)
	}
	var plain, financial int
	for _, s := range series {
		if s.Financial() {
			financial++
		} else {
			plain++
		}
	}
	if plain > 0 && financial > 0 {
		return noGeometry(style, "", ErrMixedFamilies)
	}
	if (financial > 0) != style.Financial() {
		return noGeometry(style, "", ErrStyleMismatch)
	}
	return nil
}

func sortSeries(series []*Series) []*Series {
	var all []*Series
	for _, s := range series {
		if s != nil {
			all = append(all, s)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Index < all[j].Index
	})
	return all
}

// usableSeries drops the series holding values that can not be scaled: non
// finite numbers or mixed shapes.
func (e *Engine) usableSeries(style Style, series []*Series) []*Series {
	var all []*Series
	for _, s := range series {
		if _, ok := s.Shape(); !ok {
			e.skip(style, s, noGeometry(style, s.Name, ErrInvalidValue))
			continue
		}
		all = append(all, s)
	}
	return all
}

func visibleSeries(series []*Series) []*Series {
	var all []*Series
	for _, s := range series {
		if s.Visible {
			all = append(all, s)
		}
	}
	return all
}

// planless reports styles without a value axis.
func planless(style Style) bool {
	f := style.Family()
	return f == FamilyPie || f == FamilyFunnel
}

func valueLength(style Style, frame Rect) float64 {
	if style.Family() == FamilyRadar {
		return radarLength(frame)
	}
	if style.Horizontal() {
		return frame.W
	}
	return frame.H
}

func radarLength(frame Rect) float64 {
	return math.Min(frame.W, frame.H) / 2
}

func categoryLength(style Style, frame Rect) float64 {
	if style.Horizontal() || style.Family() == FamilyFunnel {
		return frame.H
	}
	return frame.W
}

func dataExtent(style Style, series []*Series) Extent {
	switch {
	case style.Family() == FamilyWaterfall:
		return ExtentOf(runningTotals(series[0].Plains())...)
	case style.Financial():
		var all []float64
		for _, s := range series {
			for _, v := range s.Values {
				all = append(all, v.High, v.Low)
			}
		}
		return ExtentOf(all...)
	case style.Stacking() == StackNormal:
		return PadSeries(series).StackExtent(style.Family() == FamilyColumn)
	default:
		var all []float64
		for _, s := range series {
			all = append(all, s.Plains()...)
		}
		return ExtentOf(all...)
	}
}

func pointCount(series []*Series) int {
	var n int
	for _, s := range series {
		if s.Len() > n {
			n = s.Len()
		}
	}
	return n
}

// categoryNames takes the labels of the first series that has one for each
// index, the position counted from 1 otherwise.
func categoryNames(series []*Series, count int) []string {
	names := make([]string, count)
	for i := range names {
		for _, s := range series {
			if i < s.Len() && s.Values[i].Label != "" {
				names[i] = s.Values[i].Label
				break
			}
		}
		if names[i] == "" {
			names[i] = strconv.Itoa(i + 1)
		}
	}
	return names
}

func categoryPositions(style Style, lay Layout, n int) []float64 {
	all := make([]float64, n)
	for i := range all {
		switch {
		case style.Family() == FamilyLine:
			all[i] = lay.lineX(i, n, lineInset(style, lay))
		case style.Horizontal():
			all[i] = lay.Frame.Y + (float64(i)+0.5)*slot(lay.Frame.H, n)
		default:
			all[i] = lay.Frame.X + (float64(i)+0.5)*slot(lay.Frame.W, n)
		}
	}
	return all
}
