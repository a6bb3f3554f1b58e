// Package analysis holds the price-forecast and trend-chart helpers. They
// operate on an already-fetched history series and are deliberately not wired
// into the web routes; callers use them as a standalone library.
package analysis

import (
	"errors"
	"math"

	"github.com/khushijain-9100/stock-market-analysis/models"
)

var (
	// ErrNoData means the input series was empty.
	ErrNoData = errors.New("no data available")
	// ErrInvalidData means at least one close price in the series is
	// undefined; training never proceeds on partial data.
	ErrInvalidData = errors.New("close column contains undefined values")
)

const forecastHorizon = 5

// TrainModel fits an ordinary least-squares line through the close prices,
// indexed by trading-day position, and extrapolates the next five days. The
// returned slice is ordered by increasing horizon.
func TrainModel(bars []models.Bar) ([]float64, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	for _, b := range bars {
		if math.IsNaN(b.Close) {
			return nil, ErrInvalidData
		}
	}

	n := float64(len(bars))
	var sumX, sumY, sumXY, sumXX float64
	for i, b := range bars {
		x := float64(i)
		sumX += x
		sumY += b.Close
		sumXY += x * b.Close
		sumXX += x * x
	}

	var slope float64
	if denom := n*sumXX - sumX*sumX; denom != 0 {
		slope = (n*sumXY - sumX*sumY) / denom
	}
	intercept := (sumY - slope*sumX) / n

	predictions := make([]float64, forecastHorizon)
	for i := range predictions {
		day := float64(len(bars) + i + 1)
		predictions[i] = intercept + slope*day
	}
	return predictions, nil
}
