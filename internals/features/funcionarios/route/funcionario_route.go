package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	funcionarioController "bancohoras_backend/internals/features/funcionarios/controller"
)

func FuncionarioRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := funcionarioController.NewFuncionarioController(db)

	grupo := app.Group("/funcionarios")
	grupo.Get("/", ctrl.GetFuncionarios)
	grupo.Get("/:id", ctrl.GetFuncionario)
	grupo.Post("/", ctrl.CreateFuncionario)
	grupo.Put("/:id", ctrl.UpdateFuncionario)
	grupo.Delete("/:id", ctrl.DeleteFuncionario)
}
