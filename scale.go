package chartgeom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/scale"
)

const (
	DefaultLines = 10
	PercentLines = 10
	// LabelSpacing is the minimum distance between two grid lines expressed in
	// label heights.
	LabelSpacing = 1.5
)

var niceMultipliers = [...]float64{1, 2, 2.5, 5}

type Extent struct {
	Min float64
	Max float64
}

// ExtentOf returns the range of the finite values.
func ExtentOf(values ...float64) Extent {
	var (
		e   Extent
		set bool
	)
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if !set || v < e.Min {
			e.Min = v
		}
		if !set || v > e.Max {
			e.Max = v
		}
		set = true
	}
	return e
}

func (e Extent) Include(v float64) Extent {
	if v < e.Min {
		e.Min = v
	}
	if v > e.Max {
		e.Max = v
	}
	return e
}

func (e Extent) Len() float64 {
	return e.Max - e.Min
}

// Orient pins the zero end of the extent according to the direction.
func (e Extent) Orient(d Direction) Extent {
	e = e.Include(0)
	if !d.Negative() {
		e.Min = 0
	}
	if !d.Positive() {
		e.Max = 0
	}
	if e.Min == e.Max {
		if d.Positive() {
			e.Max = e.Min + 1
		} else {
			e.Min = e.Max - 1
		}
	}
	return e
}

type AxisOptions struct {
	Length      float64
	LabelHeight float64
	Lines       int
}

type Pinned struct {
	Min   float64
	Max   float64
	Lines int
}

func (p Pinned) Valid() error {
	if p.Lines <= 0 {
		return fmt.Errorf("%w: %d lines", ErrInvalidPin, p.Lines)
	}
	if p.Max <= p.Min {
		return fmt.Errorf("%w: max %g <= min %g", ErrInvalidPin, p.Max, p.Min)
	}
	return nil
}

// AxisPlan is the resolved description of one axis.
type AxisPlan struct {
	Max           float64
	Min           float64
	Lines         int
	Step          float64
	StepLength    float64
	UnitsPerValue float64
	// ZeroLevel is the index, counted from Min, of the grid line at value 0.
	ZeroLevel int
}

func (p AxisPlan) Values() []float64 {
	all := make([]float64, 0, p.Lines+1)
	for i := 0; i <= p.Lines; i++ {
		all = append(all, p.Min+float64(i)*p.Step)
	}
	return all
}

func (p AxisPlan) Len() float64 {
	return p.Max - p.Min
}

func (p AxisPlan) finish(length float64) AxisPlan {
	if p.Lines > 0 {
		p.StepLength = length / float64(p.Lines)
	}
	if n := p.Len(); n > 0 {
		p.UnitsPerValue = length / n
	}
	return p
}

// AutoScale computes a plan covering e whose step is a nice number and whose
// grid lines stay at least LabelSpacing label heights apart.
func AutoScale(e Extent, opts AxisOptions) (AxisPlan, error) {
	if opts.Length <= 0 || math.IsNaN(opts.Length) {
		return AxisPlan{}, ErrViewport
	}
	if opts.Lines <= 0 {
		opts.Lines = DefaultLines
	}
	if !finite(e.Min, e.Max) {
		return AxisPlan{}, fmt.Errorf("%w: [%g, %g]", ErrExtent, e.Min, e.Max)
	}
	if e.Min > e.Max {
		e.Min, e.Max = e.Max, e.Min
	}
	if e.Min == e.Max {
		e = e.Include(0)
		if e.Min == e.Max {
			e.Max = 1
		}
	}
	if n := e.Len(); n < minExtent || n > maxExtent || math.Max(math.Abs(e.Min), math.Abs(e.Max))/n > maxOffset {
		return AxisPlan{}, fmt.Errorf("%w: [%g, %g]", ErrExtent, e.Min, e.Max)
	}
	var (
		ticks = tickRange{Extent: e}
		guess = 4 * int(math.Floor(math.Log10(e.Len()/float64(opts.Lines))))
		opt   = scale.TickOptions{
			Max:      opts.Lines + 1,
			MinLevel: guess - levelSpan,
			MaxLevel: guess + levelSpan,
		}
	)
	level, ok := opt.FindLevel(ticks, guess)
	if !ok {
		opt.Max = 3
		level, ok = opt.FindLevel(ticks, guess)
	}
	if !ok {
		return AxisPlan{}, fmt.Errorf("%w: no step fits [%g, %g]", ErrViewport, e.Min, e.Max)
	}
	for !ticks.spaced(level, opts) {
		next, ok := ticks.coarser(level)
		if !ok {
			break
		}
		level = next
	}
	var (
		step   = niceStep(level)
		lo, hi = niceBounds(e, step)
		plan   = AxisPlan{
			Min:   float64(lo) * step,
			Max:   float64(hi) * step,
			Lines: hi - lo,
			Step:  step,
		}
	)
	if lo < 0 {
		plan.ZeroLevel = -lo
	}
	return plan.finish(opts.Length), nil
}

// PercentPlan is the fixed axis of full stacked styles.
func PercentPlan(d Direction, length float64) (AxisPlan, error) {
	if length <= 0 {
		return AxisPlan{}, ErrViewport
	}
	plan := AxisPlan{
		Min:   0,
		Max:   100,
		Lines: PercentLines,
	}
	switch {
	case d.Positive() && d.Negative():
		plan.Min = -100
	case d.Negative():
		plan.Min, plan.Max = -100, 0
	}
	plan.Step = plan.Len() / float64(plan.Lines)
	plan.ZeroLevel = int(math.Round(-plan.Min / plan.Step))
	return plan.finish(length), nil
}

// CountPlan is the axis of waterfall and funnel charts: one line per point.
func CountPlan(count int, length float64) (AxisPlan, error) {
	if count <= 0 {
		return AxisPlan{}, ErrEmpty
	}
	if length <= 0 {
		return AxisPlan{}, ErrViewport
	}
	plan := AxisPlan{
		Max:   float64(count),
		Lines: count,
		Step:  1,
	}
	return plan.finish(length), nil
}

// RadarPlan scales values along a radius. ZeroLevel gives the ring where the
// value 0 sits when the data holds negative values.
func RadarPlan(e Extent, radius, labelHeight float64, lines int) (AxisPlan, error) {
	return AutoScale(e, AxisOptions{
		Length:      radius,
		LabelHeight: labelHeight,
		Lines:       lines,
	})
}

// PinnedPlan builds a plan from configured bounds, deriving only the step and
// the pixel scale.
func PinnedPlan(p Pinned, length float64) (AxisPlan, error) {
	if err := p.Valid(); err != nil {
		return AxisPlan{}, err
	}
	if length <= 0 {
		return AxisPlan{}, ErrViewport
	}
	plan := AxisPlan{
		Min:   p.Min,
		Max:   p.Max,
		Lines: p.Lines,
		Step:  (p.Max - p.Min) / float64(p.Lines),
	}
	if p.Min < 0 && p.Max >= 0 {
		plan.ZeroLevel = int(math.Round(-p.Min / plan.Step))
	}
	return plan.finish(length), nil
}

// niceStep maps a level onto 1, 2, 2.5, 5 x 10^n; four levels per decade.
func niceStep(level int) float64 {
	var (
		exp = floorDiv(level, 4)
		mul = niceMultipliers[level-exp*4]
	)
	if exp < 0 {
		return mul / math.Pow10(-exp)
	}
	return mul * math.Pow10(exp)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

const (
	maxTicks = 1 << 20
	// levelSpan bounds the level search to ten decades around the guess.
	levelSpan = 40

	minExtent = 1e-200
	maxExtent = 1e200
	// maxOffset bounds how far from zero an extent can sit relative to its
	// length.
	maxOffset = 1e12
)

// tickRange lists the multiples of the nice step of a level covering an
// extent.
type tickRange struct {
	Extent
}

func (t tickRange) CountTicks(level int) int {
	lo, hi := niceBounds(t.Extent, niceStep(level))
	return hi - lo + 1
}

func (t tickRange) TicksAtLevel(level int) interface{} {
	step := niceStep(level)
	lo, hi := niceBounds(t.Extent, step)
	all := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		all = append(all, float64(i)*step)
	}
	return all
}

// coarser returns the first level within a decade above level that gives
// fewer ticks.
func (t tickRange) coarser(level int) (int, bool) {
	n := t.CountTicks(level)
	for i := level + 1; i <= level+4; i++ {
		if t.CountTicks(i) < n {
			return i, true
		}
	}
	return level, false
}

// spaced reports whether the lines of the level leave room for a label
// between them.
func (t tickRange) spaced(level int, opts AxisOptions) bool {
	n := t.CountTicks(level)
	if n < 2 || opts.LabelHeight <= 0 {
		return true
	}
	return opts.Length/float64(n-1) >= opts.LabelHeight*LabelSpacing
}

func niceBounds(e Extent, step float64) (int, int) {
	const eps = 1e-9
	var (
		lo = math.Floor(e.Min/step + eps)
		hi = math.Ceil(e.Max/step - eps)
	)
	if hi-lo > maxTicks {
		return 0, maxTicks
	}
	if hi == lo {
		hi++
	}
	return int(lo), int(hi)
}

func decimals(step float64) int {
	if step == 0 || step == math.Trunc(step) {
		return 0
	}
	str := strconv.FormatFloat(math.Abs(step), 'f', -1, 64)
	x := strings.IndexByte(str, '.')
	if x < 0 {
		return 0
	}
	if n := len(str) - x - 1; n < 10 {
		return n
	}
	return 10
}
