package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/khushijain-9100/stock-market-analysis/config"
	marketController "github.com/khushijain-9100/stock-market-analysis/controllers/market"
	"github.com/khushijain-9100/stock-market-analysis/database"
	authRoutes "github.com/khushijain-9100/stock-market-analysis/routers/authRoutes"
	marketRoutes "github.com/khushijain-9100/stock-market-analysis/routers/marketRoutes"
	"github.com/khushijain-9100/stock-market-analysis/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Generated chart images land here; create once at startup
	if err := os.MkdirAll(config.AppConfig.ChartDir, 0o755); err != nil {
		log.Fatalf("Failed to create chart directory: %v", err)
	}

	marketController.Fetcher = utils.NewYahooClient(config.AppConfig.YahooBaseURL)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Landing page and generated chart images
	app.Static("/", "./public")
	app.Static("/static", config.AppConfig.ChartDir)

	authRoutes.SetupAuthRoutes(app)
	marketRoutes.SetupMarketRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
