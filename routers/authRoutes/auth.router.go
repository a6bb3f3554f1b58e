package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "github.com/khushijain-9100/stock-market-analysis/controllers/auth"
	"github.com/khushijain-9100/stock-market-analysis/middleware"
	authValidators "github.com/khushijain-9100/stock-market-analysis/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", authValidators.Register(), authControllers.Register)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Get("/logout", middleware.JWTMiddleware, authControllers.Logout)
}
