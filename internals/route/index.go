package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	funcionarioRoute "bancohoras_backend/internals/features/funcionarios/route"
	registroRoute "bancohoras_backend/internals/features/horas/registros/route"
	relatorioRoute "bancohoras_backend/internals/features/horas/relatorios/route"
	resumoRoute "bancohoras_backend/internals/features/horas/resumos/route"
	areaRoute "bancohoras_backend/internals/features/organizacao/areas/route"
	cargoRoute "bancohoras_backend/internals/features/organizacao/cargos/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== ADMIN API =====================
	admin := app.Group("/api/a")

	log.Println("[INFO] Setting up AreaRoutes...")
	areaRoute.AreaRoutes(admin, db)

	log.Println("[INFO] Setting up CargoRoutes...")
	cargoRoute.CargoRoutes(admin, db)

	log.Println("[INFO] Setting up FuncionarioRoutes...")
	funcionarioRoute.FuncionarioRoutes(admin, db)

	log.Println("[INFO] Setting up RegistroRoutes...")
	registroRoute.RegistroRoutes(admin, db)

	log.Println("[INFO] Setting up RelatorioRoutes...")
	relatorioRoute.RelatorioRoutes(admin, db)

	log.Println("[INFO] Setting up ResumoRoutes...")
	resumoRoute.ResumoRoutes(admin, db)
}
