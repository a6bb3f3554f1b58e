package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/khushijain-9100/stock-market-analysis/models"
)

// HistoryFetcher retrieves OHLC history for a symbol over a named period.
// An empty series with a nil error is the not-found signal: the provider has
// no data for that symbol/period. Errors are reserved for transport and
// provider-side failures.
type HistoryFetcher interface {
	FetchHistory(symbol, period string) ([]models.Bar, error)
}

// intervalFor maps a lookback period to a candle interval: 5-minute candles
// for the intraday periods, daily candles for everything month-scale and up.
func intervalFor(period string) string {
	switch period {
	case "5m", "1d", "5d":
		return "5m"
	default:
		return "1d"
	}
}

// YahooClient fetches candles from the Yahoo Finance chart API.
type YahooClient struct {
	BaseURL string
	client  *resty.Client
}

// NewYahooClient creates a Yahoo Finance client against the given base URL.
func NewYahooClient(baseURL string) *YahooClient {
	return &YahooClient{
		BaseURL: baseURL,
		client: resty.New().
			SetTimeout(30*time.Second).
			SetHeader("User-Agent", "Mozilla/5.0"),
	}
}

// yahooChart is the response structure from the Yahoo Finance chart API.
// Price fields are pointers because the API reports gaps (holidays, halted
// sessions) as JSON nulls.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func deref(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// FetchHistory returns the OHLC series for symbol over the given period,
// ordered by timestamp ascending. Unknown symbols and unsupported ranges come
// back from Yahoo as a structured chart error; those map to an empty series.
func (y *YahooClient) FetchHistory(symbol, period string) ([]models.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		y.BaseURL, url.PathEscape(symbol), intervalFor(period), period)

	resp, err := y.client.R().Get(u)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}

	var chart yahooChart
	if err := json.Unmarshal(resp.Body(), &chart); err != nil {
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode(), resp.String())
		}
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}

	if chart.Chart.Error != nil {
		if resp.StatusCode() < http.StatusInternalServerError {
			// "no data found" / bad range: callers treat empty as not-found
			return []models.Bar{}, nil
		}
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return []models.Bar{}, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return []models.Bar{}, nil
	}
	quote := result.Indicators.Quote[0]
	bars := make([]models.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		if quote.Open[i] == nil && quote.High[i] == nil && quote.Low[i] == nil && quote.Close[i] == nil {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, models.Bar{
			Time:   time.Unix(ts, 0),
			Open:   deref(quote.Open[i]),
			High:   deref(quote.High[i]),
			Low:    deref(quote.Low[i]),
			Close:  deref(quote.Close[i]),
			Volume: deref(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
