package utils

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/khushijain-9100/stock-market-analysis/config"
	"github.com/khushijain-9100/stock-market-analysis/models"
)

// ChartTimeframes are the dashboard chart labels in display order. Each label
// doubles as the fetch period; intraday labels render 5-minute candles.
var ChartTimeframes = []string{"5m", "1d", "5d", "1mo", "1y", "2y"}

var maLines = []struct {
	window int
	name   string
	color  drawing.Color
}{
	{20, "20-day MA", drawing.Color{G: 128, A: 255}},
	{50, "50-day MA", drawing.Color{R: 255, G: 165, A: 255}},
	{200, "200-day MA", drawing.Color{R: 255, A: 255}},
}

// GenerateStockGraphs renders one moving-average chart per timeframe and
// returns the written file path keyed by label. Timeframes without data are
// left out of the result, and a failed fetch or render for one timeframe does
// not stop the rest.
func GenerateStockGraphs(fetcher HistoryFetcher, symbol string) map[string]string {
	graphPaths := make(map[string]string)

	for _, label := range ChartTimeframes {
		bars, err := fetcher.FetchHistory(symbol, label)
		if err != nil {
			log.Printf("stock graphs: fetch %s %s failed: %v", symbol, label, err)
			continue
		}
		if len(bars) == 0 {
			continue
		}

		path := filepath.Join(config.AppConfig.ChartDir, fmt.Sprintf("%s_%s_graph.png", symbol, label))
		if err := renderGraph(bars, symbol, label, path); err != nil {
			log.Printf("stock graphs: render %s %s failed: %v", symbol, label, err)
			continue
		}
		graphPaths[label] = path
	}
	return graphPaths
}

func renderGraph(bars []models.Bar, symbol, label, path string) error {
	times := make([]time.Time, len(bars))
	for i, b := range bars {
		times[i] = b.Time
	}
	closes := Closes(bars)

	xs, ys := definedPoints(times, closes)
	if len(xs) < 2 {
		return fmt.Errorf("not enough points to chart %s %s", symbol, label)
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "Closing Price",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: drawing.Color{B: 255, A: 255}},
		},
	}
	for _, ma := range maLines {
		maXs, maYs := definedPoints(times, RollingMean(closes, ma.window))
		if len(maXs) < 2 {
			continue // no full window in this timeframe
		}
		series = append(series, chart.TimeSeries{
			Name:    ma.name,
			XValues: maXs,
			YValues: maYs,
			Style:   chart.Style{StrokeColor: ma.color},
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Price Trend (%s)", symbol, label),
		Width:  1000,
		Height: 500,
		XAxis:  chart.XAxis{Name: "Date"},
		YAxis:  chart.YAxis{Name: "Price (USD)"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// definedPoints drops positions whose value is undefined, e.g. moving-average
// slots before a full window.
func definedPoints(times []time.Time, values []float64) ([]time.Time, []float64) {
	xs := make([]time.Time, 0, len(values))
	ys := make([]float64, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, times[i])
		ys = append(ys, v)
	}
	return xs, ys
}
