package chartgeom

import (
	"errors"
	"testing"
)

func TestBuildStock(t *testing.T) {
	t.Parallel()

	var (
		lay = testLayout(NewRect(0, 0, 100, 100), testPlan(0, 10, 10, 100))
		s   = NewSeries("stock", 0,
			OHLCValue(1, 3, 0, 2),
			OHLCValue(2, 3, 0, 1),
		)
	)
	tests := []struct {
		pass  Pass
		ticks int
	}{
		{PassAll, 2},
		{PassUp, 1},
		{PassDown, 1},
	}
	for _, tt := range tests {
		geo, err := BuildStock(ColoredOHLC, lay, s, tt.pass)
		if err != nil {
			t.Fatalf("BuildStock(%s) error = %v", tt.pass, err)
		}
		if len(geo.Ticks) != tt.ticks {
			t.Errorf("BuildStock(%s) = %d ticks, want %d", tt.pass, len(geo.Ticks), tt.ticks)
		}
		if geo.Pass != tt.pass {
			t.Errorf("Pass = %s, want %s", geo.Pass, tt.pass)
		}
		for _, tk := range geo.Ticks {
			if tt.pass == PassUp && !tk.Up || tt.pass == PassDown && tk.Up {
				t.Errorf("BuildStock(%s) keeps a tick with Up = %t", tt.pass, tk.Up)
			}
		}
	}

	geo, _ := BuildStock(OHLC, lay, NewSeries("one", 0, OHLCValue(1, 3, 0, 2)), PassAll)
	if got := len(geo.Paths[0].Commands); got != 6 {
		t.Errorf("OHLC commands = %d, want 6", got)
	}
	tk := geo.Ticks[0]
	if !approx(tk.X, 50) || !approx(tk.High, 70) || !approx(tk.Low, 100) || !approx(tk.Open, 90) || !approx(tk.Close, 80) {
		t.Errorf("Ticks[0] = %+v", tk)
	}
	if !approx(tk.Width, 30) {
		t.Errorf("Width = %g, want 30", tk.Width)
	}
}

func TestBuildStockHLC(t *testing.T) {
	t.Parallel()

	var (
		lay = testLayout(NewRect(0, 0, 100, 100), testPlan(0, 10, 10, 100))
		s   = NewSeries("stock", 0,
			HLCValue(3, 1, 2),
			HLCValue(3, 0, 1),
			HLCValue(4, 1, 3),
		)
	)
	geo, err := BuildStock(HLC, lay, s, PassAll)
	if err != nil {
		t.Fatalf("BuildStock() error = %v", err)
	}
	for i, up := range []bool{true, false, true} {
		if geo.Ticks[i].Up != up {
			t.Errorf("Ticks[%d].Up = %t, want %t", i, geo.Ticks[i].Up, up)
		}
	}
	if got := len(geo.Paths[0].Commands); got != 4*len(s.Values) {
		t.Errorf("HLC commands = %d, want %d", got, 4*len(s.Values))
	}
}

func TestBuildStockErrors(t *testing.T) {
	t.Parallel()

	lay := testLayout(NewRect(0, 0, 100, 100), testPlan(0, 10, 10, 100))
	tests := []struct {
		style Style
		s     *Series
	}{
		{Lines, NewSeries("ohlc", 0, OHLCValue(1, 2, 0, 1))},
		{OHLC, NewSeries("hlc", 0, HLCValue(2, 0, 1))},
		{HLC, NumberSeries("plain", 0, 1, 2)},
	}
	for _, tt := range tests {
		if _, err := BuildStock(tt.style, lay, tt.s, PassAll); !errors.Is(err, ErrStyleMismatch) {
			t.Errorf("BuildStock(%s, %s) error = %v, want %v", tt.style, tt.s.Name, err, ErrStyleMismatch)
		}
	}
}
