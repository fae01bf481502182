package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registroController "bancohoras_backend/internals/features/horas/registros/controller"
)

func RegistroRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := registroController.NewRegistroController(db)

	grupo := app.Group("/registros")
	grupo.Get("/", ctrl.GetRegistros)
	grupo.Post("/", ctrl.CreateRegistro)
	grupo.Put("/:id", ctrl.UpdateRegistro)
	grupo.Delete("/:id", ctrl.DeleteRegistro)
}
