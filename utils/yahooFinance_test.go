package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartPayload = `{
  "chart": {
    "result": [{
      "timestamp": [1756290600, 1756290900, 1756291200],
      "indicators": {
        "quote": [{
          "open":   [100.0, null, 102.0],
          "high":   [101.0, null, 103.5],
          "low":    [99.5,  null, 101.5],
          "close":  [100.5, null, 103.0],
          "volume": [12000, null, 15000]
        }]
      }
    }],
    "error": null
  }
}`

const notFoundPayload = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func TestFetchHistoryParsesBars(t *testing.T) {
	var gotInterval, gotRange string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotInterval = r.URL.Query().Get("interval")
		gotRange = r.URL.Query().Get("range")
		fmt.Fprint(w, chartPayload)
	}))
	defer srv.Close()

	bars, err := NewYahooClient(srv.URL).FetchHistory("AAPL", "1mo")
	require.NoError(t, err)

	assert.Equal(t, "1d", gotInterval)
	assert.Equal(t, "1mo", gotRange)

	// the all-null middle bar is dropped
	require.Len(t, bars, 2)
	assert.Equal(t, 100.5, bars[0].Close)
	assert.Equal(t, 103.0, bars[1].Close)
	assert.Equal(t, 102.0, bars[1].Open)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
}

func TestFetchHistoryNoDataIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, notFoundPayload)
	}))
	defer srv.Close()

	bars, err := NewYahooClient(srv.URL).FetchHistory("NOSUCH", "1d")
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestFetchHistoryServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "upstream exploded")
	}))
	defer srv.Close()

	_, err := NewYahooClient(srv.URL).FetchHistory("AAPL", "1d")
	assert.Error(t, err)
}

func TestIntervalFor(t *testing.T) {
	tests := []struct {
		period string
		want   string
	}{
		{"5m", "5m"},
		{"1d", "5m"},
		{"5d", "5m"},
		{"1mo", "1d"},
		{"6mo", "1d"},
		{"1y", "1d"},
		{"2y", "1d"},
	}
	for _, tt := range tests {
		if got := intervalFor(tt.period); got != tt.want {
			t.Errorf("intervalFor(%q) = %q, want %q", tt.period, got, tt.want)
		}
	}
}
