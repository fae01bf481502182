package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bancohoras_backend/internals/features/organizacao/cargos/dto"
	"bancohoras_backend/internals/features/organizacao/cargos/model"
	helper "bancohoras_backend/internals/helpers"
)

var validate = validator.New()

type CargoController struct {
	DB *gorm.DB
}

func NewCargoController(db *gorm.DB) *CargoController {
	return &CargoController{DB: db}
}

// GET /api/a/cargos?area_id=&todas=true
func (cc *CargoController) GetCargos(c *fiber.Ctx) error {
	q := cc.DB.Preload("Area").Order("nome")
	if c.Query("todas") != "true" {
		q = q.Where("ativo = ?", true)
	}
	if v := c.Query("area_id"); v != "" {
		q = q.Where("area_id = ?", v)
	}

	var cargos []model.CargoModel
	if err := q.Find(&cargos).Error; err != nil {
		log.Println("[ERROR] Falha ao listar cargos:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar cargos")
	}

	return helper.Success(c, "Cargos", fiber.Map{
		"total":  len(cargos),
		"cargos": cargos,
	})
}

// POST /api/a/cargos
func (cc *CargoController) CreateCargo(c *fiber.Ctx) error {
	var req dto.CreateCargoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cargo := req.ToModel()
	if err := cc.DB.Create(cargo).Error; err != nil {
		log.Println("[ERROR] Falha ao criar cargo:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar cargo")
	}

	log.Printf("[SUCCESS] Cargo criado: %s (id=%d)\n", cargo.Nome, cargo.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Cargo criado com sucesso", cargo)
}

// PUT /api/a/cargos/:id
func (cc *CargoController) UpdateCargo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var cargo model.CargoModel
	if err := cc.DB.First(&cargo, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Cargo não encontrado")
	}

	var req dto.UpdateCargoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(&cargo)
	if err := cc.DB.Save(&cargo).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar cargo:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar cargo")
	}

	return helper.Success(c, "Cargo atualizado com sucesso", cargo)
}

// DELETE /api/a/cargos/:id — soft delete
func (cc *CargoController) DeleteCargo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var cargo model.CargoModel
	if err := cc.DB.First(&cargo, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Cargo não encontrado")
	}

	cargo.Ativo = false
	if err := cc.DB.Save(&cargo).Error; err != nil {
		log.Println("[ERROR] Falha ao desativar cargo:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao desativar cargo")
	}

	return helper.Success(c, "Cargo desativado com sucesso", cargo)
}
