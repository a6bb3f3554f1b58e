package utils

import (
	"math"

	"github.com/khushijain-9100/stock-market-analysis/models"
)

// RollingMean computes the trailing simple moving average of values over the
// given window. Positions without a full trailing window are NaN, so the
// result always has the same length as the input.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if window <= 0 || len(values) < window {
		return out
	}

	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// Closes extracts the close column from a bar series.
func Closes(bars []models.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
