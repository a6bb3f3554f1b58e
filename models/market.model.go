package models

import "time"

// Bar represents a single candlestick bar, ordered by Time within a series.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Quote is one row of the live watchlist table. Change carries the formatted
// percent string the dashboard displays, e.g. "+5.0%".
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Change string  `json:"change"`
	Status string  `json:"status"`
}

// StockSummary describes the latest session of a looked-up symbol, rounded to
// two decimal places.
type StockSummary struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"currentPrice"`
	DayHigh      float64 `json:"dayHigh"`
	DayLow       float64 `json:"dayLow"`
}
