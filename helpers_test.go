package chartgeom

import (
	"math"
)

const tolerance = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func approxPoint(a, b Point) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func approxRect(a, b Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.W, b.W) && approx(a.H, b.H)
}

// isNice reports steps of the form 1, 2, 2.5 or 5 times a power of ten.
func isNice(step float64) bool {
	if step <= 0 {
		return false
	}
	mant := step / math.Pow10(int(math.Floor(math.Log10(step))))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if math.Abs(mant-m) < 1e-6 {
			return true
		}
	}
	return false
}

func testPlan(min, max float64, lines int, length float64) AxisPlan {
	plan := AxisPlan{
		Min:   min,
		Max:   max,
		Lines: lines,
		Step:  (max - min) / float64(lines),
	}
	if min < 0 {
		plan.ZeroLevel = int(math.Round(-min / plan.Step))
	}
	return plan.finish(length)
}

func testLayout(frame Rect, plan AxisPlan) Layout {
	return Layout{
		Frame: frame,
		Value: plan,
	}
}
