package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/chartgeom/config"
	"github.com/midbel/chartgeom/logging"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), err
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()

	file := filepath.Join(dir, name)
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", file, err)
	}
	return file
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "chartgeom version "+Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestStylesCommand(t *testing.T) {
	t.Parallel()

	out, err := runApp(t, "styles")
	if err != nil {
		t.Fatalf("styles error = %v", err)
	}
	for _, want := range []string{"lines", "stacked-columns", "doughnut", "colored-ohlc", "bubbles"} {
		if !strings.Contains(out, want) {
			t.Errorf("styles output misses %s", want)
		}
	}
}

func TestPlanCommand(t *testing.T) {
	t.Parallel()

	file := writeCSV(t, t.TempDir(), "sales.csv", "month,sales\njan,1\nfeb,7\nmar,17\n")
	out, err := runApp(t, "plan", "--style", "columns", "--width", "640", file)
	if err != nil {
		t.Fatalf("plan error = %v", err)
	}
	var view struct {
		Style     string
		Direction string
		Value     struct {
			Min   float64
			Max   float64
			Lines int
		}
		Category struct {
			Lines int
		}
	}
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("plan output is not json: %v\n%s", err, out)
	}
	if view.Style != "columns" || view.Direction != "north-east" {
		t.Errorf("style, direction = %s, %s", view.Style, view.Direction)
	}
	if view.Value.Min != 0 || view.Value.Max < 17 || view.Value.Lines == 0 {
		t.Errorf("value plan = %+v", view.Value)
	}
	if view.Category.Lines != 3 {
		t.Errorf("category lines = %d, want 3", view.Category.Lines)
	}
}

func TestGeometryCommand(t *testing.T) {
	t.Parallel()

	file := writeCSV(t, t.TempDir(), "share.csv", "part,value\na,1\nb,3\n")
	out, err := runApp(t, "geometry", "-s", "pie", file)
	if err != nil {
		t.Fatalf("geometry error = %v", err)
	}
	if !strings.Contains(out, `"Sectors"`) {
		t.Errorf("geometry output misses the sectors: %s", out)
	}
}

func TestSvgCommand(t *testing.T) {
	t.Parallel()

	var (
		dir    = t.TempDir()
		file   = writeCSV(t, dir, "sales.csv", "month,sales\njan,1\nfeb,7\nmar,17\n")
		output = filepath.Join(dir, "sales.svg")
	)
	if _, err := runApp(t, "svg", "-s", "lines", "-o", output, file); err != nil {
		t.Fatalf("svg error = %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("svg output not written: %v", err)
	}
	if !bytes.Contains(data, []byte("svg")) {
		t.Errorf("output is not a svg document")
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCSV(t, dir, "north.csv", "q,v\nq1,1\nq2,2\n")
	writeCSV(t, dir, "south.csv", "q,v\nq1,3\nq2,-1\n")
	cfg := writeCSV(t, dir, "chart.yaml", "style: stacked-columns\nseries:\n  - file: north.csv\n  - file: south.csv\n")

	out, err := runApp(t, "plan", "-c", cfg)
	if err != nil {
		t.Fatalf("plan error = %v", err)
	}
	if !strings.Contains(out, `"north-east-north-west"`) {
		t.Errorf("plan output = %s", out)
	}
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	file := writeCSV(t, t.TempDir(), "sales.csv", "month,sales\njan,1\n")
	if _, err := runApp(t, "plan"); err == nil || !strings.Contains(err.Error(), "no series") {
		t.Errorf("plan without series error = %v", err)
	}
	if _, err := runApp(t, "plan", "-s", "treemap", file); !errors.Is(err, config.ErrValidationFailed) {
		t.Errorf("plan with unknown style error = %v, want %v", err, config.ErrValidationFailed)
	}
	if _, err := runApp(t, "plan", "-c", "missing.yaml"); !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("plan with missing config error = %v, want %v", err, config.ErrConfigNotFound)
	}
	if _, err := runApp(t, "plan", "missing.csv"); err == nil {
		t.Errorf("plan with missing file succeeds")
	}
}

func TestSkippedSeriesLogged(t *testing.T) {
	t.Parallel()

	var (
		dir  = t.TempDir()
		good = writeCSV(t, dir, "good.csv", "month,sales\njan,1\nfeb,7\n")
		bad  = writeCSV(t, dir, "bad.csv", "month,sales\njan,NaN\nfeb,2\n")
	)
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	args := []string{"plan", "--style", "lines", "--log-level", "debug", "--log-format", "json", good, bad}
	if err := app.ExecuteWithArgs(context.Background(), args); err != nil {
		t.Fatalf("plan error = %v", err)
	}
	logs := stderr.String()
	for _, want := range []string{"series skipped", `"series":"bad"`, `"component":"engine"`, `"direction":"north-east"`, `"geometries":1`} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs miss %s:\n%s", want, logs)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	if got := New().logger(cfg); got != logging.Get() {
		t.Errorf("logger() is not the default logger")
	}
	var stderr bytes.Buffer
	if got := New().WithOutput(io.Discard, &stderr).logger(cfg); got == logging.Get() {
		t.Errorf("logger() with redirected output is the default logger")
	}
}
