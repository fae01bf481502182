package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bancohoras_backend/internals/features/organizacao/areas/dto"
	"bancohoras_backend/internals/features/organizacao/areas/model"
	helper "bancohoras_backend/internals/helpers"
)

var validate = validator.New()

type AreaController struct {
	DB *gorm.DB
}

func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db}
}

// GET /api/a/areas?todas=true para incluir inativas
func (ac *AreaController) GetAreas(c *fiber.Ctx) error {
	q := ac.DB.Order("nome")
	if c.Query("todas") != "true" {
		q = q.Where("ativo = ?", true)
	}

	var areas []model.AreaAtuacaoModel
	if err := q.Find(&areas).Error; err != nil {
		log.Println("[ERROR] Falha ao listar áreas:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar áreas")
	}

	return helper.Success(c, "Áreas de atuação", fiber.Map{
		"total": len(areas),
		"areas": areas,
	})
}

// POST /api/a/areas
func (ac *AreaController) CreateArea(c *fiber.Ctx) error {
	var req dto.CreateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	area := req.ToModel()
	if err := ac.DB.Create(area).Error; err != nil {
		log.Println("[ERROR] Falha ao criar área:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar área")
	}

	log.Printf("[SUCCESS] Área criada: %s (id=%d)\n", area.Nome, area.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Área criada com sucesso", area)
}

// PUT /api/a/areas/:id
func (ac *AreaController) UpdateArea(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var area model.AreaAtuacaoModel
	if err := ac.DB.First(&area, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Área não encontrada")
	}

	var req dto.UpdateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(&area)
	if err := ac.DB.Save(&area).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar área:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar área")
	}

	return helper.Success(c, "Área atualizada com sucesso", area)
}

// DELETE /api/a/areas/:id — soft delete: ativo=false, histórico preservado
func (ac *AreaController) DeleteArea(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var area model.AreaAtuacaoModel
	if err := ac.DB.First(&area, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Área não encontrada")
	}

	area.Ativo = false
	if err := ac.DB.Save(&area).Error; err != nil {
		log.Println("[ERROR] Falha ao desativar área:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao desativar área")
	}

	return helper.Success(c, "Área desativada com sucesso", area)
}
