package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/midbel/chartgeom"
	"github.com/midbel/chartgeom/config"
	"github.com/midbel/chartgeom/dataset"
	"github.com/midbel/chartgeom/logging"
	"github.com/spf13/cobra"
)

var Version = "dev"

type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	// redirected is set when the outputs are not the ones of the process. The
	// logs then go to stderr instead of the default logger.
	redirected bool
}

func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	app.root = &cobra.Command{
		Use:   "chartgeom",
		Short: "Compute the layout and geometry of charts",
		Long: `chartgeom resolves the axes of a chart, its plot area and the geometry of
every series from CSV files, one series per file.

Values are read from the columns following the label:
  label,value
  label,value,volume
  label,high,low,close
  label,open,high,low,close`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	app.root.AddCommand(
		app.newVersionCmd(),
		app.newStylesCmd(),
		app.newPlanCmd(),
		app.newGeometryCmd(),
		app.newSvgCmd(),
	)
	return app
}

func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.redirected = true
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the application with the given arguments instead of
// the ones of the process.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "chartgeom version %s\n", Version)
		},
	}
}

func (a *App) newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the supported chart styles",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range chartgeom.Styles() {
				fmt.Fprintf(a.stdout, "%-28s %s\n", s, s.Family())
			}
		},
	}
}

// chartOptions are the flags shared by the commands rendering a chart.
type chartOptions struct {
	configPath string
	strict     bool

	style  string
	width  float64
	height float64
	lines  int
	adjust string
	format string
	locale string
	marker string
	rtl    bool

	logLevel  string
	logFormat string
}

func (o *chartOptions) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&o.configPath, "config", "c", "", "chart configuration file (yaml or json)")
	fs.BoolVar(&o.strict, "strict", false, "fail on undefined environment variables in the configuration")
	fs.StringVarP(&o.style, "style", "s", "", "chart style")
	fs.Float64Var(&o.width, "width", 0, "chart width")
	fs.Float64Var(&o.height, "height", 0, "chart height")
	fs.IntVar(&o.lines, "lines", 0, "target number of grid lines")
	fs.StringVar(&o.adjust, "adjust", "", "auto adjusted axes (none, horizontal, vertical, both)")
	fs.StringVar(&o.format, "format", "", "number format of the value labels")
	fs.StringVar(&o.locale, "locale", "", "language of the value labels")
	fs.StringVar(&o.marker, "marker", "", "marker shape")
	fs.BoolVar(&o.rtl, "rtl", false, "right to left flow")
	fs.StringVar(&o.logLevel, "log-level", "", "log level")
	fs.StringVar(&o.logFormat, "log-format", "", "log format (console or json)")
}

// load merges the configuration file, the flags and the files given as
// arguments.
func (o *chartOptions) load(cmd *cobra.Command, files []string) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loader := config.NewLoader(config.WithStrictEnv(o.strict), config.WithValidation(false))
		c, err := loader.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	fs := cmd.Flags()
	if fs.Changed("style") {
		cfg.Style = o.style
	}
	if fs.Changed("width") {
		cfg.Width = o.width
	}
	if fs.Changed("height") {
		cfg.Height = o.height
	}
	if fs.Changed("lines") {
		cfg.Lines = o.lines
	}
	if fs.Changed("adjust") {
		cfg.Adjust = o.adjust
	}
	if fs.Changed("format") {
		cfg.Format = o.format
	}
	if fs.Changed("locale") {
		cfg.Locale = o.locale
	}
	if fs.Changed("marker") {
		cfg.Marker = o.marker
	}
	if fs.Changed("rtl") {
		cfg.RTL = o.rtl
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	for _, f := range files {
		cfg.Series = append(cfg.Series, config.Series{File: f})
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Series) == 0 {
		return nil, fmt.Errorf("no series given")
	}
	return cfg, nil
}

func (a *App) render(ctx context.Context, cfg *config.Config) (chartgeom.Result, []*chartgeom.Series, error) {
	logger := a.logger(cfg)
	series, err := dataset.Load(ctx, cfg.Sources()...)
	if err != nil {
		return chartgeom.Result{}, nil, err
	}
	req, err := cfg.Request(series)
	if err != nil {
		return chartgeom.Result{}, nil, err
	}
	res, err := chartgeom.NewEngine(chartgeom.WithLogger(logger)).Render(req)
	return res, series, err
}

func (a *App) logger(cfg *config.Config) *bolt.Logger {
	lc := logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: a.stderr,
	}
	if a.redirected {
		return logging.New(lc)
	}
	logging.Init(lc)
	return logging.Get()
}

type planView struct {
	Style     chartgeom.Style     `json:"style"`
	Direction chartgeom.Direction `json:"direction"`
	Frame     chartgeom.Rect      `json:"frame"`
	Value     chartgeom.AxisPlan  `json:"value"`
	Category  chartgeom.AxisPlan  `json:"category"`
}

func (a *App) newPlanCmd() *cobra.Command {
	opts := &chartOptions{}
	cmd := &cobra.Command{
		Use:   "plan [file...]",
		Short: "Print the direction and the axis plans of a chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			res, _, err := a.render(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			view := planView{
				Style:     res.Style,
				Direction: res.Direction,
				Frame:     res.Frame,
				Value:     res.Value,
				Category:  res.Category,
			}
			return a.writeJSON(view)
		},
	}
	opts.register(cmd)
	return cmd
}

func (a *App) newGeometryCmd() *cobra.Command {
	opts := &chartOptions{}
	cmd := &cobra.Command{
		Use:   "geometry [file...]",
		Short: "Print the full geometry of a chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			res, _, err := a.render(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return a.writeJSON(res)
		},
	}
	opts.register(cmd)
	return cmd
}

func (a *App) newSvgCmd() *cobra.Command {
	var (
		opts = &chartOptions{}
		file string
	)
	cmd := &cobra.Command{
		Use:   "svg [file...]",
		Short: "Draw a chart as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd, args)
			if err != nil {
				return err
			}
			res, series, err := a.render(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			vp := chartgeom.Viewport{
				Width:  cfg.Width,
				Height: cfg.Height,
			}
			return a.renderChart(file, cfg.Chart(), vp, res, series)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "o", "", "output file")
	return cmd
}

func (a *App) renderChart(file string, ch chartgeom.Chart, vp chartgeom.Viewport, res chartgeom.Result, series []*chartgeom.Series) error {
	w := a.stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	ch.Render(w, vp, res, series)
	return nil
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
