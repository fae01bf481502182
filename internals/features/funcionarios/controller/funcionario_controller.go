package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bancohoras_backend/internals/features/funcionarios/dto"
	"bancohoras_backend/internals/features/funcionarios/model"
	helper "bancohoras_backend/internals/helpers"
)

var validate = validator.New()

type FuncionarioController struct {
	DB *gorm.DB
}

func NewFuncionarioController(db *gorm.DB) *FuncionarioController {
	return &FuncionarioController{DB: db}
}

// GET /api/a/funcionarios?q=&todas=true&page=&per_page=
func (fc *FuncionarioController) GetFuncionarios(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := fc.DB.Model(&model.FuncionarioModel{}).
		Preload("Cargo").
		Preload("Cargo.Area").
		Preload("Area")
	if c.Query("todas") != "true" {
		q = q.Where("ativo = ?", true)
	}
	if busca := c.Query("q"); busca != "" {
		q = q.Where("nome ILIKE ?", "%"+busca+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Falha ao contar funcionários:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar funcionários")
	}

	var funcionarios []model.FuncionarioModel
	if err := q.Order("nome").Offset(paging.Offset).Limit(paging.Limit).Find(&funcionarios).Error; err != nil {
		log.Println("[ERROR] Falha ao listar funcionários:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar funcionários")
	}

	return helper.Success(c, "Funcionários", fiber.Map{
		"funcionarios": funcionarios,
		"pagination":   helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(funcionarios)),
	})
}

// GET /api/a/funcionarios/:id
func (fc *FuncionarioController) GetFuncionario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var funcionario model.FuncionarioModel
	if err := fc.DB.Preload("Cargo").Preload("Cargo.Area").Preload("Area").
		First(&funcionario, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Funcionário não encontrado")
	}

	return helper.Success(c, "Funcionário", funcionario)
}

// POST /api/a/funcionarios
func (fc *FuncionarioController) CreateFuncionario(c *fiber.Ctx) error {
	var req dto.CreateFuncionarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	funcionario := req.ToModel()
	if err := fc.DB.Create(funcionario).Error; err != nil {
		log.Println("[ERROR] Falha ao criar funcionário:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar funcionário")
	}

	log.Printf("[SUCCESS] Funcionário criado: %s (id=%d)\n", funcionario.Nome, funcionario.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Funcionário criado com sucesso", funcionario)
}

// PUT /api/a/funcionarios/:id
func (fc *FuncionarioController) UpdateFuncionario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var funcionario model.FuncionarioModel
	if err := fc.DB.First(&funcionario, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Funcionário não encontrado")
	}

	var req dto.UpdateFuncionarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(&funcionario)
	if err := fc.DB.Save(&funcionario).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar funcionário:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar funcionário")
	}

	return helper.Success(c, "Funcionário atualizado com sucesso", funcionario)
}

// DELETE /api/a/funcionarios/:id — soft delete: preserva o histórico de horas
func (fc *FuncionarioController) DeleteFuncionario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var funcionario model.FuncionarioModel
	if err := fc.DB.First(&funcionario, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Funcionário não encontrado")
	}

	funcionario.Ativo = false
	if err := fc.DB.Save(&funcionario).Error; err != nil {
		log.Println("[ERROR] Falha ao desativar funcionário:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao desativar funcionário")
	}

	return helper.Success(c, "Funcionário desativado com sucesso", funcionario)
}
