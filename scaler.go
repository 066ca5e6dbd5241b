package chartgeom

// Range is a pixel interval. F maps to the plan minimum and T to the plan
// maximum; vertical axes use F > T since pixels grow downward.
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	if r.T > r.F {
		return r.T
	}
	return r.F
}

func (r Range) Min() float64 {
	if r.T < r.F {
		return r.T
	}
	return r.F
}

// Scaler maps values of an axis plan onto a pixel range.
type Scaler struct {
	Range
	Plan AxisPlan
}

func NewScaler(plan AxisPlan, rg Range) Scaler {
	return Scaler{
		Range: rg,
		Plan:  plan,
	}
}

func (s Scaler) Scale(v float64) float64 {
	return s.F + (v-s.Plan.Min)*s.Space()
}

// Space is the signed number of pixels for one unit of value.
func (s Scaler) Space() float64 {
	diff := s.Plan.Max - s.Plan.Min
	if diff == 0 {
		return 0
	}
	return s.Len() / diff
}

// Zero returns the pixel position of the value 0 clamped to the range.
func (s Scaler) Zero() float64 {
	z := s.Scale(0)
	if z < s.Range.Min() {
		return s.Range.Min()
	}
	if z > s.Range.Max() {
		return s.Range.Max()
	}
	return z
}

func (s Scaler) Values() []float64 {
	return s.Plan.Values()
}
