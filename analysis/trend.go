package analysis

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/khushijain-9100/stock-market-analysis/models"
)

var (
	trendBackground = drawing.Color{R: 17, G: 17, B: 17, A: 255}
	trendLine       = drawing.Color{R: 99, G: 110, B: 250, A: 255}
)

// RenderTrend plots the close series against its index on a dark theme and
// returns the chart as a base64-encoded PNG. An empty series yields ErrNoData;
// rendering problems come back as an error instead of a panic.
func RenderTrend(bars []models.Bar) (string, error) {
	if len(bars) == 0 {
		return "", ErrNoData
	}

	xs := make([]float64, len(bars))
	ys := make([]float64, len(bars))
	for i, b := range bars {
		xs[i] = float64(i)
		ys[i] = b.Close
	}

	light := chart.Style{FontColor: drawing.ColorWhite}
	graph := chart.Chart{
		Title:      "Stock Price Trend",
		TitleStyle: light,
		Width:      1000,
		Height:     500,
		Background: chart.Style{FillColor: trendBackground, FontColor: drawing.ColorWhite},
		Canvas:     chart.Style{FillColor: trendBackground},
		XAxis:      chart.XAxis{Name: "Date", Style: light, NameStyle: light},
		YAxis:      chart.YAxis{Name: "Price", Style: light, NameStyle: light},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Stock Price",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: trendLine},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("render trend chart: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
