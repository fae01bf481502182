package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	relatorioController "bancohoras_backend/internals/features/horas/relatorios/controller"
	"bancohoras_backend/internals/middlewares"
)

func RelatorioRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := relatorioController.NewRelatorioController(db)

	grupo := app.Group("/relatorios")
	grupo.Get("/dados", ctrl.Dados)
	// geração de planilha é cara → limiter próprio
	grupo.Get("/excel", middlewares.RelatorioRateLimiter(), ctrl.GerarExcel)
}
