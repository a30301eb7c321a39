package classify

import (
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/mediatidy/pkg/types"
)

// DefaultUncategorized is the folder for files without a usable capture date
const DefaultUncategorized = "Uncategorized"

// MonthNames are the folder names used in year-month mode
var MonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// IsMonthName reports whether name is one of MonthNames
func IsMonthName(name string) bool {
	for _, m := range MonthNames {
		if name == m {
			return true
		}
	}
	return false
}

// Destination returns the folder a file with the given capture timestamp
// belongs in. categorized is false when it falls back to the uncategorized
// folder.
func Destination(timestamp string, mode types.FormatMode, root, uncategorized string) (dir string, categorized bool) {
	if uncategorized == "" {
		uncategorized = DefaultUncategorized
	}
	fallback := filepath.Join(root, uncategorized)

	year, ok := captureYear(timestamp)
	if !ok {
		return fallback, false
	}
	if mode != types.FormatYearMonth {
		return filepath.Join(root, year), true
	}

	month, ok := captureMonth(timestamp)
	if !ok {
		return fallback, false
	}
	return filepath.Join(root, year, MonthNames[month-1]), true
}

// captureYear reads the first four characters as a year
func captureYear(ts string) (string, bool) {
	if len(ts) < 4 || !digits(ts[:4]) || ts[:4] == "0000" {
		return "", false
	}
	return ts[:4], true
}

// captureMonth reads characters 6-7 ("YYYY:MM") as a month
func captureMonth(ts string) (int, bool) {
	if len(ts) < 7 || !digits(ts[5:7]) {
		return 0, false
	}
	m, err := strconv.Atoi(ts[5:7])
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

func digits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
