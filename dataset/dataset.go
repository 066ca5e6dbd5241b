// Package dataset reads chart series from CSV files.
//
// Each file holds one series. The first row is a header and the first column
// the category label; the number of remaining columns tells the shape of the
// values:
//
//	label,value
//	label,value,volume
//	label,high,low,close
//	label,open,high,low,close
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/midbel/chartgeom"
	"github.com/midbel/slices"
	"golang.org/x/sync/errgroup"
)

var (
	ErrColumns = errors.New("unsupported number of columns")
	ErrValue   = errors.New("invalid value")
)

// Source names a file to read and the properties of the series built from it.
type Source struct {
	File      string
	Name      string
	Color     string
	Secondary string
	Hidden    bool
}

// Load reads every source concurrently. The series come back in the order of
// the sources, their Index being their position.
func Load(ctx context.Context, sources ...Source) ([]*chartgeom.Series, error) {
	var (
		all     = make([]*chartgeom.Series, len(sources))
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := ReadFile(src.File)
			if err != nil {
				return err
			}
			s.Index = i
			if src.Name != "" {
				s.Name = src.Name
			}
			s.Color = src.Color
			s.Secondary = src.Secondary
			s.Visible = !src.Hidden
			all[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

// Files is a shortcut for Load with sources named after the files.
func Files(ctx context.Context, files ...string) ([]*chartgeom.Series, error) {
	var sources []Source
	for _, f := range files {
		sources = append(sources, Source{File: f})
	}
	return Load(ctx, sources...)
}

func ReadFile(file string) (*chartgeom.Series, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	s, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	s.Name = getIdent(file)
	return s, nil
}

// Read parses the CSV rows of one series.
func Read(r io.Reader) (*chartgeom.Series, error) {
	var (
		rs = csv.NewReader(r)
		s  = chartgeom.NewSeries("", 0)
	)
	rs.TrimLeadingSpace = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return nil, err
	}
	for line := 2; ; line++ {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		v, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s.Values = append(s.Values, v)
	}
	return s, nil
}

func parseRow(row []string) (chartgeom.Value, error) {
	var (
		label = slices.Fst(row)
		nums  = make([]float64, 0, len(row)-1)
	)
	for _, str := range slices.Rest(row) {
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return chartgeom.Value{}, fmt.Errorf("%w: %q", ErrValue, str)
		}
		nums = append(nums, f)
	}
	var v chartgeom.Value
	switch len(nums) {
	case 1:
		v = chartgeom.NumberValue(nums[0])
	case 2:
		v = chartgeom.BubbleValue(nums[0], nums[1])
	case 3:
		v = chartgeom.HLCValue(nums[0], nums[1], nums[2])
	case 4:
		v = chartgeom.OHLCValue(nums[0], nums[1], nums[2], nums[3])
	default:
		return v, fmt.Errorf("%w: %d", ErrColumns, len(row))
	}
	v.Label = label
	return v, nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
