package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
	"bancohoras_backend/internals/features/horas/registros/dto"
	"bancohoras_backend/internals/features/horas/registros/model"
	helper "bancohoras_backend/internals/helpers"
)

var validate = validator.New()

type RegistroController struct {
	DB *gorm.DB
}

func NewRegistroController(db *gorm.DB) *RegistroController {
	return &RegistroController{DB: db}
}

// GET /api/a/registros?funcionario_id=&data_inicio=&data_fim=&page=&per_page=
func (rc *RegistroController) GetRegistros(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := rc.DB.Model(&model.RegistroHoraModel{}).
		Preload("Funcionario").
		Preload("Funcionario.Cargo").
		Preload("Funcionario.Area")

	if v := c.Query("funcionario_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "funcionario_id inválido")
		}
		q = q.Where("funcionario_id = ?", uint(id))
	}
	if v := c.Query("data_inicio"); v != "" {
		data, err := helper.ParseData(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("data >= ?", data)
	}
	if v := c.Query("data_fim"); v != "" {
		data, err := helper.ParseData(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("data <= ?", data)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Falha ao contar registros:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar registros")
	}

	var registros []model.RegistroHoraModel
	if err := q.Order("data DESC, funcionario_id").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&registros).Error; err != nil {
		log.Println("[ERROR] Falha ao listar registros:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar registros")
	}

	return helper.Success(c, "Registros de horas", fiber.Map{
		"registros":  registros,
		"pagination": helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(registros)),
	})
}

// POST /api/a/registros — lançamento de horas (0 < horas <= 24 por registro)
func (rc *RegistroController) CreateRegistro(c *fiber.Ctx) error {
	var req dto.CreateRegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// só funcionário ativo recebe lançamento novo
	var funcionario funcModel.FuncionarioModel
	if err := rc.DB.Where("id = ? AND ativo = ?", req.FuncionarioID, true).
		First(&funcionario).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Funcionário inexistente ou inativo")
	}

	registro, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := rc.DB.Create(registro).Error; err != nil {
		log.Println("[ERROR] Falha ao criar registro:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar registro")
	}

	log.Printf("[SUCCESS] Registro criado: funcionário=%d data=%s horas=%.2f\n",
		registro.FuncionarioID, registro.Data.Format(helper.FormatoDataISO), registro.Horas)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registro criado com sucesso", registro)
}

// PUT /api/a/registros/:id — correção de lançamento
func (rc *RegistroController) UpdateRegistro(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var registro model.RegistroHoraModel
	if err := rc.DB.First(&registro, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Registro não encontrado")
	}

	var req dto.UpdateRegistroRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := req.ApplyToModel(&registro); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := rc.DB.Save(&registro).Error; err != nil {
		log.Println("[ERROR] Falha ao atualizar registro:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar registro")
	}

	return helper.Success(c, "Registro atualizado com sucesso", registro)
}

// DELETE /api/a/registros/:id — remoção real; registro é fato corrigível
func (rc *RegistroController) DeleteRegistro(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID inválido")
	}

	var registro model.RegistroHoraModel
	if err := rc.DB.First(&registro, id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Registro não encontrado")
	}

	if err := rc.DB.Delete(&registro).Error; err != nil {
		log.Println("[ERROR] Falha ao remover registro:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao remover registro")
	}

	return helper.Success(c, "Registro removido com sucesso", fiber.Map{"id": id})
}
