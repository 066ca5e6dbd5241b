package chartgeom

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormat prints axis values. Decimals is a minimum: WithStep raises it so
// that two grid lines never print the same text.
type NumberFormat struct {
	Decimals int
	Percent  bool
	Lang     language.Tag
}

func DefaultFormat() NumberFormat {
	return NumberFormat{
		Lang: language.English,
	}
}

// ParseFormat reads a pattern like "0", "0.00", "#,##0.0" or "0%" and a BCP 47
// language tag. An empty tag selects English.
func ParseFormat(pattern, lang string) (NumberFormat, error) {
	f := DefaultFormat()
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return f, fmt.Errorf("%s: invalid language: %w", lang, err)
		}
		f.Lang = tag
	}
	pattern = strings.TrimSpace(pattern)
	if strings.HasSuffix(pattern, "%") {
		f.Percent = true
		pattern = strings.TrimSuffix(pattern, "%")
	}
	if pattern == "" {
		return f, nil
	}
	if strings.Trim(pattern, "#,0.") != "" {
		return f, fmt.Errorf("%s: unsupported number pattern", pattern)
	}
	if x := strings.IndexByte(pattern, '.'); x >= 0 {
		frac := pattern[x+1:]
		if strings.ContainsAny(frac, ".,#") {
			return f, fmt.Errorf("%s: unsupported number pattern", pattern)
		}
		f.Decimals = len(frac)
	}
	return f, nil
}

// WithStep returns a copy of f printing enough decimals for step.
func (f NumberFormat) WithStep(step float64) NumberFormat {
	if d := decimals(step); d > f.Decimals {
		f.Decimals = d
	}
	return f
}

func (f NumberFormat) Format(v float64) string {
	var (
		p   = message.NewPrinter(f.Lang)
		str = p.Sprint(number.Decimal(v, number.Scale(f.Decimals)))
	)
	if f.Percent {
		str += "%"
	}
	return str
}
