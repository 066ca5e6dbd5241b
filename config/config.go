// Package config describes a chart in YAML or JSON and turns it into an engine
// request.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/midbel/chartgeom"
	"github.com/midbel/chartgeom/dataset"
)

var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidFormat     = errors.New("invalid config format")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrValidationFailed  = errors.New("config validation failed")
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultPadding = 40
)

type Padding struct {
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
	Left   float64 `yaml:"left" json:"left"`
}

// Axis pins the bounds of a value axis.
type Axis struct {
	Min   float64 `yaml:"min" json:"min"`
	Max   float64 `yaml:"max" json:"max"`
	Lines int     `yaml:"lines" json:"lines"`
}

type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type Series struct {
	Name      string `yaml:"name" json:"name"`
	File      string `yaml:"file" json:"file"`
	Color     string `yaml:"color" json:"color"`
	Secondary string `yaml:"secondary" json:"secondary"`
	Hidden    bool   `yaml:"hidden" json:"hidden"`
}

type Config struct {
	Title   string   `yaml:"title" json:"title"`
	Style   string   `yaml:"style" json:"style"`
	Width   float64  `yaml:"width" json:"width"`
	Height  float64  `yaml:"height" json:"height"`
	Padding *Padding `yaml:"padding" json:"padding"`

	Lines      int    `yaml:"lines" json:"lines"`
	Adjust     string `yaml:"adjust" json:"adjust"`
	Horizontal *Axis  `yaml:"horizontal" json:"horizontal"`
	Vertical   *Axis  `yaml:"vertical" json:"vertical"`

	Format string `yaml:"format" json:"format"`
	Locale string `yaml:"locale" json:"locale"`
	RTL    bool   `yaml:"rtl" json:"rtl"`

	Marker     string  `yaml:"marker" json:"marker"`
	MarkerSize float64 `yaml:"marker_size" json:"marker_size"`
	Doughnut   float64 `yaml:"doughnut" json:"doughnut"`
	Palette    string  `yaml:"palette" json:"palette"`
	Grid       bool    `yaml:"grid" json:"grid"`

	Log    Log      `yaml:"log" json:"log"`
	Series []Series `yaml:"series" json:"series"`

	// dir is the directory of the loaded file; series files are relative to it.
	dir string
}

func Default() *Config {
	return &Config{
		Style:  chartgeom.Lines.String(),
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Log: Log{
			Level:  "warn",
			Format: "console",
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Style == "" {
		c.Style = chartgeom.Lines.String()
	}
}

// Validate reports every problem found in the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := chartgeom.ParseStyle(c.Style); err != nil {
		errs = append(errs, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid dimension %gx%g", c.Width, c.Height))
	}
	if c.Lines < 0 {
		errs = append(errs, fmt.Errorf("negative number of lines %d", c.Lines))
	}
	if _, err := chartgeom.ParseAutoAdjust(c.Adjust); err != nil {
		errs = append(errs, err)
	}
	for name, a := range map[string]*Axis{"horizontal": c.Horizontal, "vertical": c.Vertical} {
		if a == nil {
			continue
		}
		if err := a.pinned().Valid(); err != nil {
			errs = append(errs, fmt.Errorf("%s axis: %w", name, err))
		}
	}
	if _, err := chartgeom.ParseFormat(c.Format, c.Locale); err != nil {
		errs = append(errs, err)
	}
	if _, err := chartgeom.ParseMarkerShape(c.Marker); err != nil {
		errs = append(errs, err)
	}
	if c.Doughnut < 0 || c.Doughnut >= 1 {
		errs = append(errs, fmt.Errorf("doughnut ratio %g out of [0, 1)", c.Doughnut))
	}
	for i, s := range c.Series {
		if s.File == "" {
			errs = append(errs, fmt.Errorf("series %d: missing file", i))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidationFailed, errors.Join(errs...))
}

func (a *Axis) pinned() chartgeom.Pinned {
	if a == nil {
		return chartgeom.Pinned{}
	}
	return chartgeom.Pinned{
		Min:   a.Min,
		Max:   a.Max,
		Lines: a.Lines,
	}
}

// Sources lists the series files, relative paths being resolved against the
// directory of the configuration file.
func (c *Config) Sources() []dataset.Source {
	var all []dataset.Source
	for _, s := range c.Series {
		file := s.File
		if c.dir != "" && !filepath.IsAbs(file) {
			file = filepath.Join(c.dir, file)
		}
		all = append(all, dataset.Source{
			File:      file,
			Name:      s.Name,
			Color:     s.Color,
			Secondary: s.Secondary,
			Hidden:    s.Hidden,
		})
	}
	return all
}

// Request builds the engine request drawing series.
func (c *Config) Request(series []*chartgeom.Series) (chartgeom.Request, error) {
	var req chartgeom.Request
	if err := c.Validate(); err != nil {
		return req, err
	}
	req.Style, _ = chartgeom.ParseStyle(c.Style)
	req.Adjust, _ = chartgeom.ParseAutoAdjust(c.Adjust)
	req.Format, _ = chartgeom.ParseFormat(c.Format, c.Locale)
	req.Marker, _ = chartgeom.ParseMarkerShape(c.Marker)

	req.Viewport = chartgeom.Viewport{
		Width:  c.Width,
		Height: c.Height,
	}
	req.Padding = chartgeom.Padding{
		Top:    DefaultPadding,
		Right:  DefaultPadding,
		Bottom: DefaultPadding,
		Left:   DefaultPadding,
	}
	if p := c.Padding; p != nil {
		req.Padding = chartgeom.Padding{
			Top:    p.Top,
			Right:  p.Right,
			Bottom: p.Bottom,
			Left:   p.Left,
		}
	}
	req.Horizontal = c.Horizontal.pinned()
	req.Vertical = c.Vertical.pinned()
	req.Lines = c.Lines
	req.RTL = c.RTL
	req.MarkerSize = c.MarkerSize
	req.Doughnut = c.Doughnut
	req.Series = series
	return req, nil
}

// Chart returns the surface adapter configured for this chart.
func (c *Config) Chart() chartgeom.Chart {
	return chartgeom.Chart{
		Title:    c.Title,
		Palette:  chartgeom.ParsePalette(c.Palette),
		WithGrid: c.Grid,
	}
}
