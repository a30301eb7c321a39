package classify

import (
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestDestination(t *testing.T) {
	tests := []struct {
		name            string
		timestamp       string
		mode            types.FormatMode
		wantDir         string
		wantCategorized bool
	}{
		{"year", "2023:01:15 10:20:30", types.FormatYear, "/lib/2023", true},
		{"year-month", "2023:01:15 10:20:30", types.FormatYearMonth, "/lib/2023/Jan", true},
		{"december", "1999:12:31 23:59:59", types.FormatYearMonth, "/lib/1999/Dec", true},
		{"no timestamp", "", types.FormatYear, "/lib/Uncategorized", false},
		{"zero year", "0000:00:00 00:00:00", types.FormatYear, "/lib/Uncategorized", false},
		{"zero year with month", "0000:05:01 00:00:00", types.FormatYearMonth, "/lib/Uncategorized", false},
		{"zero month never falls back to year", "2023:00:00 00:00:00", types.FormatYearMonth, "/lib/Uncategorized", false},
		{"zero month in year mode", "2023:00:00 00:00:00", types.FormatYear, "/lib/2023", true},
		{"month 13", "2023:13:01 00:00:00", types.FormatYearMonth, "/lib/Uncategorized", false},
		{"short timestamp", "202", types.FormatYear, "/lib/Uncategorized", false},
		{"year only in year-month mode", "2023", types.FormatYearMonth, "/lib/Uncategorized", false},
		{"non numeric year", "abcd:01:01", types.FormatYear, "/lib/Uncategorized", false},
		{"dashes", "2021-07-04T10:00:00", types.FormatYearMonth, "/lib/2021/Jul", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, categorized := Destination(tt.timestamp, tt.mode, "/lib", "")
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantCategorized, categorized)
		})
	}
}

func TestDestinationIsDeterministic(t *testing.T) {
	// Only year and month matter
	a, _ := Destination("2020:06:01 08:00:00", types.FormatYearMonth, "/lib", "")
	b, _ := Destination("2020:06:30 23:59:59", types.FormatYearMonth, "/lib", "")
	assert.Equal(t, a, b)
}

func TestDestinationCustomUncategorized(t *testing.T) {
	dir, categorized := Destination("", types.FormatYear, "/lib", "Undated")
	assert.Equal(t, "/lib/Undated", dir)
	assert.False(t, categorized)
}

func TestIsMonthName(t *testing.T) {
	assert.True(t, IsMonthName("Jan"))
	assert.True(t, IsMonthName("Dec"))
	assert.False(t, IsMonthName("jan"))
	assert.False(t, IsMonthName("January"))
}
