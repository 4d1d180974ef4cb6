package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"newgate_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain. Auth and cache
// middlewares are attached per-route in the feature route files.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
