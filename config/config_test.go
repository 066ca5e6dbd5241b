package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/chartgeom"
)

const sampleYAML = `
title: Sales
style: stacked-columns
width: 640
height: 480
padding:
  top: 10
  right: 10
  bottom: 20
  left: 30
lines: 8
adjust: none
vertical:
  min: 0
  max: 100
  lines: 5
format: "0.0"
locale: fr
marker: star
palette: tableau10
grid: true
series:
  - name: north
    file: north.csv
    color: "#ff0000"
  - file: /data/south.csv
    hidden: true
`

const sampleJSON = `{
  "title": "Prices",
  "style": "colored-ohlc",
  "series": [{"file": "prices.csv", "secondary": "blue"}]
}`

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader().LoadString(sampleYAML, FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Title != "Sales" || cfg.Style != "stacked-columns" {
		t.Errorf("Title, Style = %s, %s", cfg.Title, cfg.Style)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("dimension = %gx%g, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.Vertical == nil || cfg.Vertical.Max != 100 {
		t.Errorf("Vertical = %+v", cfg.Vertical)
	}
	if len(cfg.Series) != 2 || !cfg.Series[1].Hidden {
		t.Errorf("Series = %+v", cfg.Series)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", cfg.Log.Level)
	}
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader().LoadString(sampleJSON, FormatJSON)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Style != "colored-ohlc" {
		t.Errorf("Style = %s, want colored-ohlc", cfg.Style)
	}
	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("dimension = %gx%g, want defaults", cfg.Width, cfg.Height)
	}
	if cfg.Series[0].Secondary != "blue" {
		t.Errorf("Secondary = %s, want blue", cfg.Series[0].Secondary)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		format  Format
		want    error
	}{
		{"unknown style", "style: treemap", FormatYAML, ErrValidationFailed},
		{"bad adjust", "adjust: diagonal", FormatYAML, ErrValidationFailed},
		{"bad pin", "vertical: {min: 10, max: 0, lines: 5}", FormatYAML, ErrValidationFailed},
		{"series without file", "series: [{name: a}]", FormatYAML, ErrValidationFailed},
		{"bad doughnut", "doughnut: 1.5", FormatYAML, ErrValidationFailed},
		{"bad yaml", "style: [", FormatYAML, ErrInvalidFormat},
		{"bad json", "{", FormatJSON, ErrInvalidFormat},
		{"bad format", "style: lines", Format("toml"), ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader().LoadString(tt.content, tt.format)
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadString() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Style = "treemap"
	cfg.Marker = "hexagon"
	err := cfg.Validate()
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Validate() error = %v, want %v", err, ErrValidationFailed)
	}
	for _, want := range []string{"treemap", "hexagon"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error = %v, want a mention of %s", err, want)
		}
	}

	cfg, err = NewLoader(WithValidation(false)).LoadString("style: treemap", FormatYAML)
	if err != nil {
		t.Errorf("LoadString() without validation error = %v", err)
	}
	if cfg != nil && cfg.Style != "treemap" {
		t.Errorf("Style = %s, want treemap", cfg.Style)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "chart.yml")
	if err := os.WriteFile(file, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := NewLoader().LoadFile(file)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	sources := cfg.Sources()
	if len(sources) != 2 {
		t.Fatalf("Sources() = %d, want 2", len(sources))
	}
	if want := filepath.Join(dir, "north.csv"); sources[0].File != want {
		t.Errorf("Sources()[0].File = %s, want %s", sources[0].File, want)
	}
	if sources[1].File != "/data/south.csv" {
		t.Errorf("Sources()[1].File = %s, want /data/south.csv", sources[1].File)
	}
	if sources[0].Name != "north" || sources[0].Color != "#ff0000" || !sources[1].Hidden {
		t.Errorf("Sources() = %+v", sources)
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := NewLoader().LoadFile(filepath.Join(dir, "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want %v", err, ErrConfigNotFound)
	}
	toml := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(toml, []byte("style = 'lines'"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := NewLoader().LoadFile(toml); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("LoadFile(toml) error = %v, want %v", err, ErrUnsupportedFormat)
	}
	if _, err := NewLoader().LoadFile(dir); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("LoadFile(dir) error = %v, want %v", err, ErrInvalidFormat)
	}
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("CHARTGEOM_TEST_STYLE", "pie")

	cfg, err := NewLoader().LoadString("style: ${CHARTGEOM_TEST_STYLE}", FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Style != "pie" {
		t.Errorf("Style = %s, want pie", cfg.Style)
	}

	_, err = NewLoader(WithStrictEnv(true)).LoadString("title: $CHARTGEOM_TEST_UNSET", FormatYAML)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("LoadString() error = %v, want %v", err, ErrInvalidFormat)
	}

	cfg, err = NewLoader(WithEnvExpansion(false)).LoadString("title: $CHARTGEOM_TEST_STYLE", FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Title != "$CHARTGEOM_TEST_STYLE" {
		t.Errorf("Title = %s, want the raw reference", cfg.Title)
	}
}

func TestRequest(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader().LoadString(sampleYAML, FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	series := []*chartgeom.Series{chartgeom.NumberSeries("a", 0, 1, 2)}
	req, err := cfg.Request(series)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if req.Style != chartgeom.StackedColumns {
		t.Errorf("Style = %s, want %s", req.Style, chartgeom.StackedColumns)
	}
	if req.Adjust != chartgeom.AdjustNone {
		t.Errorf("Adjust = %s, want none", req.Adjust)
	}
	if want := (chartgeom.Pinned{Min: 0, Max: 100, Lines: 5}); req.Vertical != want {
		t.Errorf("Vertical = %+v, want %+v", req.Vertical, want)
	}
	if req.Horizontal != (chartgeom.Pinned{}) {
		t.Errorf("Horizontal = %+v, want unpinned", req.Horizontal)
	}
	if req.Padding.Left != 30 || req.Padding.Bottom != 20 {
		t.Errorf("Padding = %+v", req.Padding)
	}
	if req.Format.Decimals != 1 || req.Format.Format(1.5) != "1,5" {
		t.Errorf("Format = %+v", req.Format)
	}
	if req.Marker != chartgeom.MarkerStar5 {
		t.Errorf("Marker = %s, want %s", req.Marker, chartgeom.MarkerStar5)
	}
	if len(req.Series) != 1 || req.Lines != 8 {
		t.Errorf("Series, Lines = %d, %d", len(req.Series), req.Lines)
	}

	ch := cfg.Chart()
	if ch.Title != "Sales" || !ch.WithGrid || ch.Palette[0] != chartgeom.Tableau10[0] {
		t.Errorf("Chart() = %+v", ch)
	}
}

func TestRequestDefaults(t *testing.T) {
	t.Parallel()

	req, err := Default().Request(nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if req.Style != chartgeom.Lines || req.Adjust != chartgeom.AdjustBoth {
		t.Errorf("Style, Adjust = %s, %s", req.Style, req.Adjust)
	}
	if req.Padding.Top != DefaultPadding || req.Viewport.Width != DefaultWidth {
		t.Errorf("Padding, Viewport = %+v, %+v", req.Padding, req.Viewport)
	}
}
