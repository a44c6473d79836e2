package output

import (
	"math"
	"strconv"
	"strings"
)

// RoundFloat rounds a float to max 4 decimal places for deterministic
// JSON output.
func RoundFloat(f float64) float64 {
	const multiplier = 1e4
	return math.Round(f*multiplier) / multiplier
}

// FormatFloat formats a float with trailing zeros removed.
func FormatFloat(f float64) string {
	str := strconv.FormatFloat(RoundFloat(f), 'f', 4, 64)
	str = strings.TrimRight(str, "0")
	return strings.TrimRight(str, ".")
}
