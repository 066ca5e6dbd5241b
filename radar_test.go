package chartgeom

import (
	"testing"
)

func TestBuildRadar(t *testing.T) {
	t.Parallel()

	lay := testLayout(NewRect(0, 0, 100, 100), testPlan(0, 10, 5, 50))
	geo, err := BuildRadar(Radar, lay, NumberSeries("radar", 0, 10, 10, 0, 5), 4)
	if err != nil {
		t.Fatalf("BuildRadar() error = %v", err)
	}
	want := []Point{
		NewPoint(50, 0),
		NewPoint(0, 50),
		NewPoint(50, 50),
		NewPoint(50, 75),
	}
	for i := range want {
		if !approxPoint(geo.Points[i], want[i]) {
			t.Errorf("Points[%d] = %v, want %v", i, geo.Points[i], want[i])
		}
	}
	pat := geo.Paths[0]
	if !pat.Closed() {
		t.Errorf("radar path not closed")
	}
	if pat.Fill {
		t.Errorf("radar path filled")
	}
	geo, _ = BuildRadar(RadarArea, lay, NumberSeries("radar", 0, 10, 10, 0, 5), 4)
	if !geo.Paths[0].Fill {
		t.Errorf("radar area path not filled")
	}
}

func TestBuildRadarMarkers(t *testing.T) {
	t.Parallel()

	lay := testLayout(NewRect(0, 0, 100, 100), testPlan(0, 10, 5, 50))
	geo, err := BuildRadar(RadarWithMarkers, lay, NumberSeries("radar", 0, 1, 2, 3), 0)
	if err != nil {
		t.Fatalf("BuildRadar() error = %v", err)
	}
	if len(geo.Markers) != 3 || len(geo.Hits) != 3 {
		t.Errorf("markers, hits = %d, %d, want 3 each", len(geo.Markers), len(geo.Hits))
	}
}

func TestBuildRadarGrid(t *testing.T) {
	t.Parallel()

	lay := testLayout(NewRect(0, 0, 100, 100), testPlan(0, 10, 5, 50))
	grid := BuildRadarGrid(lay, 4)
	if len(grid.Rings) != 5 {
		t.Errorf("Rings = %d, want 5", len(grid.Rings))
	}
	if len(grid.Spokes) != 4 || len(grid.Ends) != 4 {
		t.Errorf("spokes, ends = %d, %d, want 4 each", len(grid.Spokes), len(grid.Ends))
	}
	if grid.Zero != -1 {
		t.Errorf("Zero = %d, want -1", grid.Zero)
	}
	if !approxPoint(grid.Ends[0], NewPoint(50, 0)) {
		t.Errorf("Ends[0] = %v, want (50, 0)", grid.Ends[0])
	}
	first := grid.Rings[0].Commands[0].Pos
	if !approxPoint(first, NewPoint(50, 40)) {
		t.Errorf("inner ring starts at %v, want (50, 40)", first)
	}

	neg := testLayout(NewRect(0, 0, 100, 100), testPlan(-10, 10, 4, 50))
	if grid := BuildRadarGrid(neg, 4); grid.Zero != 1 {
		t.Errorf("Zero = %d, want 1", grid.Zero)
	}
	if grid := BuildRadarGrid(lay, 0); len(grid.Rings) != 0 {
		t.Errorf("Rings = %d without spokes, want 0", len(grid.Rings))
	}
}
