package marketController

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/khushijain-9100/stock-market-analysis/middleware"
	"github.com/khushijain-9100/stock-market-analysis/models"
	"github.com/khushijain-9100/stock-market-analysis/utils"
)

// Fetcher is the market-data source behind the handlers. main wires the
// Yahoo client; tests substitute a mock.
var Fetcher utils.HistoryFetcher

// Index serves the dashboard data. Every call carries the live watchlist; a
// POSTed symbol additionally produces a six-month summary and regenerated
// charts for that symbol.
func Index(c *fiber.Ctx) error {
	liveData := utils.GetLiveData(Fetcher)

	if c.Method() != fiber.MethodPost {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Live market data.", fiber.Map{
			"liveData": liveData,
		})
	}

	reqData := new(struct {
		Symbol string `json:"symbol" form:"symbol"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	symbol := strings.ToUpper(strings.TrimSpace(reqData.Symbol))
	if symbol == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Live market data.", fiber.Map{
			"liveData": liveData,
		})
	}

	bars, err := Fetcher.FetchHistory(symbol, "6mo")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false,
			fmt.Sprintf("Error fetching data for %s: %v", symbol, err),
			fiber.Map{"liveData": liveData})
	}
	if len(bars) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false,
			fmt.Sprintf("No data found for stock symbol: %s", symbol),
			fiber.Map{"liveData": liveData})
	}

	last := bars[len(bars)-1]
	stockData := models.StockSummary{
		Symbol:       symbol,
		CurrentPrice: utils.Round2(last.Close),
		DayHigh:      utils.Round2(last.High),
		DayLow:       utils.Round2(last.Low),
	}

	graphPaths := utils.GenerateStockGraphs(Fetcher, symbol)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stock summary generated.", fiber.Map{
		"stockData":  stockData,
		"graphPaths": graphPaths,
		"liveData":   liveData,
	})
}

// LiveData returns the watchlist snapshot as a bare JSON array. The dashboard
// polls this endpoint and rebuilds its table from the response directly.
func LiveData(c *fiber.Ctx) error {
	return c.JSON(utils.GetLiveData(Fetcher))
}
