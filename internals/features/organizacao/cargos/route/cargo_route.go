package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cargoController "bancohoras_backend/internals/features/organizacao/cargos/controller"
)

func CargoRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := cargoController.NewCargoController(db)

	grupo := app.Group("/cargos")
	grupo.Get("/", ctrl.GetCargos)
	grupo.Post("/", ctrl.CreateCargo)
	grupo.Put("/:id", ctrl.UpdateCargo)
	grupo.Delete("/:id", ctrl.DeleteCargo)
}
