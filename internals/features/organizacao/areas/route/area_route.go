package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	areaController "bancohoras_backend/internals/features/organizacao/areas/controller"
)

func AreaRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := areaController.NewAreaController(db)

	grupo := app.Group("/areas")
	grupo.Get("/", ctrl.GetAreas)
	grupo.Post("/", ctrl.CreateArea)
	grupo.Put("/:id", ctrl.UpdateArea)
	grupo.Delete("/:id", ctrl.DeleteArea)
}
