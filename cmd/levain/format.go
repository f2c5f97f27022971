package main

import (
	"fmt"
	"math"
	"strconv"
)

// formatAmount prints three significant digits.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.3g", v)
}

func formatServings(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func formatHydration(h float64) string {
	return fmt.Sprintf("%.1f%%", h)
}
