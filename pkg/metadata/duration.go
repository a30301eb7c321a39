package metadata

import (
	"math"
	"strconv"
	"strings"
)

// ParseDuration reads the two duration spellings exiftool prints:
// "H:MM:SS" for longer clips and "SS.ss s" for short ones. Fractional
// seconds are rounded half to even. Any other form yields ok == false.
func ParseDuration(s string) (seconds int, ok bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "(approx)"))
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return 0, false
		}
		var total int
		for i, unit := range []int{3600, 60, 1} {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || n < 0 {
				return 0, false
			}
			total += n * unit
		}
		return total, true
	}

	if strings.Contains(s, "s") {
		fields := strings.Fields(s)
		v, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "s"), 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(math.RoundToEven(v)), true
	}

	return 0, false
}
