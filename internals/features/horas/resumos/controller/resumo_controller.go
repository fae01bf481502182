package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bancohoras_backend/internals/features/horas/resumos/dto"
	resumoModel "bancohoras_backend/internals/features/horas/resumos/model"
	"bancohoras_backend/internals/features/horas/resumos/service"
	helper "bancohoras_backend/internals/helpers"
)

var validate = validator.New()

type ResumoController struct {
	DB      *gorm.DB
	Service *service.ResumoService
}

func NewResumoController(db *gorm.DB) *ResumoController {
	return &ResumoController{
		DB:      db,
		Service: service.NewResumoService(service.NewGormStore(db)),
	}
}

// GET /api/a/resumos?funcionario_id=&data_inicio=&data_fim=
func (rc *ResumoController) GetResumos(c *fiber.Ctx) error {
	q := rc.DB.Preload("Funcionario").Preload("Funcionario.Cargo").Preload("Funcionario.Area")

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

	var resumos []resumoModel.ResumoDiarioModel
	if err := q.Order("data DESC, funcionario_id").Limit(200).Find(&resumos).Error; err != nil {
		log.Println("[ERROR] Falha ao listar resumos:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar resumos")
	}

	return helper.Success(c, "Resumos diários", fiber.Map{
		"total":   len(resumos),
		"resumos": resumos,
	})
}

// POST /api/a/resumos/gerar — recalcula um dia
func (rc *ResumoController) GerarDia(c *fiber.Ctx) error {
	var req dto.GerarResumoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	data, err := helper.ParseData(req.Data)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	criados, err := rc.Service.GerarResumoDia(c.UserContext(), data)
	if err != nil {
		log.Println("[ERROR] Falha ao gerar resumo do dia:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar resumo diário")
	}

	log.Printf("[SUCCESS] Resumo de %s gerado, %d criados\n", data.Format(helper.FormatoDataBR), criados)
	return helper.Success(c, "Resumo gerado com sucesso", fiber.Map{
		"data":            data.Format(helper.FormatoDataISO),
		"resumos_criados": criados,
	})
}

// POST /api/a/resumos/gerar-periodo — recalcula um intervalo fechado
func (rc *ResumoController) GerarPeriodo(c *fiber.Ctx) error {
	var req dto.GerarResumosPeriodoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	inicio, err := helper.ParseData(req.DataInicio)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	fim := inicio
	if req.DataFim != "" {
		fim, err = helper.ParseData(req.DataFim)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if fim.Before(inicio) {
		return helper.Error(c, fiber.StatusBadRequest, "data_fim anterior a data_inicio")
	}

	criados, err := rc.Service.GerarResumosPeriodo(c.UserContext(), inicio, fim)
	if err != nil {
		log.Println("[ERROR] Falha ao gerar resumos do período:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar resumos do período")
	}

	return helper.Success(c, "Resumos gerados com sucesso", fiber.Map{
		"data_inicio":     inicio.Format(helper.FormatoDataISO),
		"data_fim":        fim.Format(helper.FormatoDataISO),
		"resumos_criados": criados,
	})
}
