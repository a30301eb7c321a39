package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   int
		wantOK bool
	}{
		{"clock form", "0:00:35", 35, true},
		{"clock form hours", "1:02:03", 3723, true},
		{"clock form approx", "0:01:10 (approx)", 70, true},
		{"seconds form", "12.34 s", 12, true},
		{"seconds form rounds half to even down", "12.5 s", 12, true},
		{"seconds form rounds half to even up", "13.5 s", 14, true},
		{"seconds without space", "4.9s", 5, true},
		{"zero", "0 s", 0, true},
		{"two clock parts", "01:30", 0, false},
		{"fractional clock", "0:00:35.5", 0, false},
		{"words", "unknown", 0, false},
		{"empty", "", 0, false},
		{"garbage with s", "lots s", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDuration(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
