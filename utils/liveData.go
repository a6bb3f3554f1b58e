package utils

import (
	"log"
	"strings"

	"github.com/khushijain-9100/stock-market-analysis/config"
	"github.com/khushijain-9100/stock-market-analysis/models"
)

// USD-quoted crypto pairs carry this suffix; it marks them as 24/7 markets
// and is stripped from the display symbol.
const cryptoSuffix = "-USD"

// GetLiveData builds the watchlist quote table from fresh 1-day history, one
// entry per symbol in configured order. Symbols the provider has no data for
// are left out, and a fetch failure only drops that one symbol.
func GetLiveData(fetcher HistoryFetcher) []models.Quote {
	watchlist := config.AppConfig.Watchlist()
	quotes := make([]models.Quote, 0, len(watchlist))

	for _, symbol := range watchlist {
		bars, err := fetcher.FetchHistory(symbol, "1d")
		if err != nil {
			log.Printf("live data: fetch %s failed: %v", symbol, err)
			continue
		}
		if len(bars) == 0 {
			continue
		}

		open := bars[0].Open
		price := Round2(bars[len(bars)-1].Close)
		change := Round2(price - open)

		status := "Open"
		if strings.HasSuffix(symbol, cryptoSuffix) {
			status = "24/7"
		}

		quotes = append(quotes, models.Quote{
			Symbol: strings.TrimSuffix(symbol, cryptoSuffix),
			Price:  price,
			Change: FormatPercent(change / open * 100),
			Status: status,
		})
	}
	return quotes
}
