package types

import "github.com/arthur-debert/mediatidy/pkg/errors"

// FormatMode selects the folder layout used by classification
type FormatMode string

const (
	// FormatYear files media under <root>/<year>
	FormatYear FormatMode = "year"

	// FormatYearMonth files media under <root>/<year>/<Mon>
	FormatYearMonth FormatMode = "year-month"
)

// ParseFormatMode parses a --format value
func ParseFormatMode(s string) (FormatMode, error) {
	switch FormatMode(s) {
	case FormatYear, "":
		return FormatYear, nil
	case FormatYearMonth:
		return FormatYearMonth, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q (want %q or %q)", s, FormatYear, FormatYearMonth).
			WithDetail("format", s)
	}
}
