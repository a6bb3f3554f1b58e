package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	ChartDir     string
	YahooBaseURL string

	// Watchlist shown on the dashboard and served by /api/live-data.
	// Read once at startup; the order here is the display order.
	StockSymbols  []string
	CryptoSymbols []string
	GoldSymbol    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "users.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "supersecretkey"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		ChartDir:     getEnv("CHART_DIR", "static"),
		YahooBaseURL: getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),

		StockSymbols:  []string{"AAPL", "MSFT", "GOOGL", "TSLA", "AMZN"},
		CryptoSymbols: []string{"BTC-USD", "ETH-USD"},
		GoldSymbol:    "GC=F",
	}

	if AppConfig.JWTKey == "supersecretkey" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// Watchlist returns every watched symbol in display order: equities first,
// then crypto pairs, then the gold future.
func (c *Config) Watchlist() []string {
	list := make([]string, 0, len(c.StockSymbols)+len(c.CryptoSymbols)+1)
	list = append(list, c.StockSymbols...)
	list = append(list, c.CryptoSymbols...)
	list = append(list, c.GoldSymbol)
	return list
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
