package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resumoController "bancohoras_backend/internals/features/horas/resumos/controller"
)

func ResumoRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := resumoController.NewResumoController(db)

	grupo := app.Group("/resumos")
	grupo.Get("/", ctrl.GetResumos)
	grupo.Post("/gerar", ctrl.GerarDia)
	grupo.Post("/gerar-periodo", ctrl.GerarPeriodo)
}
