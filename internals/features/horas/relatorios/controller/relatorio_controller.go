package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bancohoras_backend/internals/features/horas/relatorios/dto"
	"bancohoras_backend/internals/features/horas/relatorios/service"
	helper "bancohoras_backend/internals/helpers"
)

type RelatorioController struct {
	Service *service.RelatorioService
}

func NewRelatorioController(db *gorm.DB) *RelatorioController {
	return &RelatorioController{
		Service: service.NewRelatorioService(service.NewGormStore(db)),
	}
}

// periodoFromQuery monta o período a partir da query string e aplica o
// default (mês/ano corrente) uma única vez, antes da validação.
func periodoFromQuery(c *fiber.Ctx) (dto.Periodo, error) {
	p := dto.Periodo{
		Tipo: dto.TipoRelatorio(c.Query("tipo", string(dto.TipoMensal))),
	}

	if v := c.Query("mes"); v != "" {
		mes, err := strconv.Atoi(v)
		if err != nil {
			return p, err
		}
		p.Mes = mes
	}
	if v := c.Query("ano"); v != "" {
		ano, err := strconv.Atoi(v)
		if err != nil {
			return p, err
		}
		p.Ano = ano
	}
	if v := c.Query("funcionario_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return p, err
		}
		fid := uint(id)
		p.FuncionarioID = &fid
	}

	p.Normalizar(time.Now())
	if err := p.Validar(); err != nil {
		return p, err
	}
	return p, nil
}

// GET /api/a/relatorios/excel?tipo=mensal&mes=3&ano=2024&funcionario_id=5
func (rc *RelatorioController) GerarExcel(c *fiber.Ctx) error {
	p, err := periodoFromQuery(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	arquivo, nome, err := rc.Service.GerarExcel(c.UserContext(), p)
	if err != nil {
		log.Println("[ERROR] Falha ao gerar relatório:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao gerar relatório")
	}

	log.Printf("[SUCCESS] Relatório %s gerado (%d bytes)\n", p.Tipo, len(arquivo))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(arquivo)
}

// GET /api/a/relatorios/dados — mesmo agregado do Excel, em JSON
func (rc *RelatorioController) Dados(c *fiber.Ctx) error {
	p, err := periodoFromQuery(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := c.UserContext()
	var payload interface{}
	switch p.Tipo {
	case dto.TipoMensal:
		payload, err = rc.Service.DadosMensais(ctx, p.Mes, p.Ano, p.FuncionarioID)
	case dto.TipoAnual:
		payload, err = rc.Service.DadosAnuais(ctx, p.Ano, p.FuncionarioID)
	case dto.TipoDiario:
		payload, err = rc.Service.DadosDiarios(ctx, p.Mes, p.Ano, p.FuncionarioID)
	}
	if err != nil {
		log.Println("[ERROR] Falha ao agregar dados do relatório:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao agregar dados")
	}

	return helper.Success(c, "Dados do relatório", fiber.Map{
		"tipo":    p.Tipo,
		"periodo": p.Rotulo(),
		"dados":   payload,
	})
}
