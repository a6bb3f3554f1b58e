package utils

import (
	"math"
	"strconv"
	"strings"
)

// Round2 rounds a price to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPercent renders a percent change the way the dashboard shows it: an
// explicit sign, up to two decimals and at least one, and a trailing "%".
// For example "+5.0%", "-1.23%".
func FormatPercent(pct float64) string {
	s := strconv.FormatFloat(Round2(pct), 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}
