package utils

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/khushijain-9100/stock-market-analysis/config"
	"github.com/khushijain-9100/stock-market-analysis/models"
)

func TestMain(m *testing.M) {
	config.LoadConfig()
	os.Exit(m.Run())
}

// mockFetcher returns canned history keyed by "symbol/period". Symbols with
// no entry come back empty, mirroring the provider's not-found signal.
type mockFetcher struct {
	data map[string][]models.Bar
	errs map[string]error
}

func (m *mockFetcher) FetchHistory(symbol, period string) ([]models.Bar, error) {
	key := fmt.Sprintf("%s/%s", symbol, period)
	if err, ok := m.errs[key]; ok {
		return nil, err
	}
	return m.data[key], nil
}

// generateBars builds a gently rising intraday series opening at open and
// closing at close.
func generateBars(n int, open, close float64) []models.Bar {
	bars := make([]models.Bar, n)
	start := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	for i := range bars {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		p := open + (close-open)*frac
		bars[i] = models.Bar{
			Time:   start.Add(time.Duration(i) * 5 * time.Minute),
			Open:   p,
			High:   p * 1.001,
			Low:    p * 0.999,
			Close:  p,
			Volume: 1000,
		}
	}
	bars[0].Open = open
	bars[n-1].Close = close
	return bars
}
