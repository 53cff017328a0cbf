package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sasanaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global: recovery → logger → CORS → limiter
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
