package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/chartgeom"
)

func TestRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		shape chartgeom.Shape
		check func(chartgeom.Value) bool
	}{
		{
			name:  "plain",
			input: "month,sales\njan,12.5\nfeb,14\n",
			shape: chartgeom.ShapePlain,
			check: func(v chartgeom.Value) bool { return v.Label == "jan" && v.Plain == 12.5 },
		},
		{
			name:  "bubble",
			input: "city,value,volume\nparis, 3, 40\n",
			shape: chartgeom.ShapePlain,
			check: func(v chartgeom.Value) bool { return v.Plain == 3 && v.Volume == 40 },
		},
		{
			name:  "hlc",
			input: "day,high,low,close\nmon,12,9,11\n",
			shape: chartgeom.ShapeHLC,
			check: func(v chartgeom.Value) bool { return v.High == 12 && v.Low == 9 && v.Close == 11 },
		},
		{
			name:  "ohlc",
			input: "day,open,high,low,close\nmon,10,12,9,11\n",
			shape: chartgeom.ShapeOHLC,
			check: func(v chartgeom.Value) bool { return v.Open == 10 && v.High == 12 && v.Close == 11 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if s.Len() == 0 {
				t.Fatalf("Read() returns no value")
			}
			shape, ok := s.Shape()
			if !ok || shape != tt.shape {
				t.Errorf("Shape() = %s, %t, want %s", shape, ok, tt.shape)
			}
			if v := s.Values[0]; !tt.check(v) {
				t.Errorf("Values[0] = %+v", v)
			}
			if !s.Visible {
				t.Errorf("series not visible")
			}
		})
	}
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"bad value", "month,sales\njan,12\nfeb,many\n", ErrValue},
		{"label only", "month\njan\n", ErrColumns},
		{"too many columns", "a,b,c,d,e,f\nx,1,2,3,4,5\n", ErrColumns},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("Read() error = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := Read(strings.NewReader("month,sales\njan,12\nfeb,many\n"))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Read() error = %v, want the line number", err)
	}
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()

	s, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	file := filepath.Join(dir, name)
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", file, err)
	}
	return file
}

func TestLoad(t *testing.T) {
	t.Parallel()

	var (
		dir   = t.TempDir()
		north = writeFile(t, dir, "north.csv", "q,v\nq1,1\nq2,2\n")
		south = writeFile(t, dir, "south.2024.csv", "q,v\nq1,3\n")
		west  = writeFile(t, dir, "west.csv", "q,v\nq1,5\n")
	)
	all, err := Load(context.Background(),
		Source{File: north},
		Source{File: south, Color: "red"},
		Source{File: west, Name: "far west", Hidden: true},
	)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Load() = %d series, want 3", len(all))
	}
	for i, name := range []string{"north", "south", "far west"} {
		if all[i].Name != name {
			t.Errorf("series %d = %s, want %s", i, all[i].Name, name)
		}
		if all[i].Index != i {
			t.Errorf("series %d has index %d", i, all[i].Index)
		}
	}
	if all[1].Color != "red" {
		t.Errorf("Color = %s, want red", all[1].Color)
	}
	if all[2].Visible {
		t.Errorf("hidden source gives a visible series")
	}
	if all[0].Len() != 2 {
		t.Errorf("Len() = %d, want 2", all[0].Len())
	}
}

func TestFilesMissing(t *testing.T) {
	t.Parallel()

	_, err := Files(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Files() error = %v, want %v", err, fs.ErrNotExist)
	}
}

func TestLoadCanceled(t *testing.T) {
	t.Parallel()

	file := writeFile(t, t.TempDir(), "data.csv", "q,v\nq1,1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Files(ctx, file); !errors.Is(err, context.Canceled) {
		t.Errorf("Files() error = %v, want %v", err, context.Canceled)
	}
}

func TestGetIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		want string
	}{
		{"sales.csv", "sales"},
		{"data/sales.2024.csv", "sales"},
		{"/tmp/plain", "plain"},
	}
	for _, tt := range tests {
		if got := getIdent(tt.file); got != tt.want {
			t.Errorf("getIdent(%s) = %s, want %s", tt.file, got, tt.want)
		}
	}
}
