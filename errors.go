package chartgeom

import (
	"errors"
	"fmt"
)

// ErrNoGeometry is the root of every "nothing to draw" outcome. Callers are
// expected to skip the series (or the whole chart) and keep rendering.
var ErrNoGeometry = errors.New("no geometry")

var (
	ErrMixedFamilies = fmt.Errorf("%w: plain and financial series mixed", ErrNoGeometry)
	ErrStyleMismatch = fmt.Errorf("%w: values do not match chart style", ErrNoGeometry)
	ErrEmpty         = fmt.Errorf("%w: no visible values", ErrNoGeometry)
	ErrSingleSeries  = fmt.Errorf("%w: style accepts a single series", ErrNoGeometry)
	ErrViewport      = fmt.Errorf("%w: viewport too small", ErrNoGeometry)
	ErrInvalidValue  = fmt.Errorf("%w: values not finite or of mixed shapes", ErrNoGeometry)
	ErrExtent        = fmt.Errorf("%w: value range can not be scaled", ErrNoGeometry)
)

// ErrInvalidPin reports an unusable pinned axis configuration.
var ErrInvalidPin = errors.New("invalid pinned axis")

type GeometryError struct {
	Style  Style
	Series string
	Err    error
}

func (e *GeometryError) Error() string {
	if e.Series == "" {
		return fmt.Sprintf("%s: %v", e.Style, e.Err)
	}
	return fmt.Sprintf("%s(%s): %v", e.Style, e.Series, e.Err)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

func noGeometry(style Style, series string, err error) error {
	return &GeometryError{
		Style:  style,
		Series: series,
		Err:    err,
	}
}
