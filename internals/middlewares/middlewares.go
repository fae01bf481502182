package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"bancohoras_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra a pilha padrão na ordem certa:
// recovery primeiro, depois observabilidade, depois proteção.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
