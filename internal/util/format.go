package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Round2 rounds a monetary amount to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds a rating to one decimal.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatViews renders a view count the way video platforms display it:
// "950", "12K", "1.2M".
func FormatViews(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return trimZero(float64(n)/1_000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func trimZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. Safe on multi-byte text.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return strings.TrimRight(string(runes[:max-1]), " ") + "…"
}
