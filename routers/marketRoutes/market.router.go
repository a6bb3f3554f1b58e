package marketRoutes

import (
	"github.com/gofiber/fiber/v2"

	marketControllers "github.com/khushijain-9100/stock-market-analysis/controllers/market"
	"github.com/khushijain-9100/stock-market-analysis/middleware"
)

func SetupMarketRoutes(app *fiber.App) {
	app.Get("/index", middleware.JWTMiddleware, marketControllers.Index)
	app.Post("/index", middleware.JWTMiddleware, marketControllers.Index)
	app.Get("/api/live-data", marketControllers.LiveData)
}
