package dto

import (
	"fmt"
	"time"
)

type TipoRelatorio string

const (
	TipoDiario TipoRelatorio = "diario"
	TipoMensal TipoRelatorio = "mensal"
	TipoAnual  TipoRelatorio = "anual"
)

// Periodo é o especificador de período de um relatório.
// Mes/Ano zerados significam "use o período corrente" — a substituição
// acontece uma única vez, em Normalizar, antes de qualquer consulta.
type Periodo struct {
	Tipo          TipoRelatorio
	Mes           int
	Ano           int
	FuncionarioID *uint
}

func (p *Periodo) Normalizar(agora time.Time) {
	if p.Mes == 0 {
		p.Mes = int(agora.Month())
	}
	if p.Ano == 0 {
		p.Ano = agora.Year()
	}
}

// Validar rejeita períodos inválidos antes de tocar no banco.
func (p *Periodo) Validar() error {
	switch p.Tipo {
	case TipoDiario, TipoMensal, TipoAnual:
	default:
		return fmt.Errorf("tipo de relatório inválido: %q (use diario, mensal ou anual)", p.Tipo)
	}
	if p.Mes < 1 || p.Mes > 12 {
		return fmt.Errorf("mês inválido: %d", p.Mes)
	}
	if p.Ano < 1900 || p.Ano > 9999 {
		return fmt.Errorf("ano inválido: %d", p.Ano)
	}
	return nil
}

// Rotulo é o texto de período que vai no título da planilha.
func (p *Periodo) Rotulo() string {
	if p.Tipo == TipoAnual {
		return fmt.Sprintf("%d", p.Ano)
	}
	return fmt.Sprintf("%02d/%d", p.Mes, p.Ano)
}

/* =======================================================
   Saída do agregador
   ======================================================= */

// TotalFuncionario é uma linha do agregado mensal: total do funcionário
// no período, já anotado com área e cargo atuais.
type TotalFuncionario struct {
	FuncionarioID uint    `json:"funcionario_id"`
	Area          string  `json:"area"`
	Cargo         string  `json:"cargo"`
	Nome          string  `json:"nome"`
	TotalHoras    float64 `json:"total_horas"`
}

// MesTotais acumula um mês do agregado anual.
type MesTotais struct {
	Horas     float64 `json:"horas"`
	Registros int     `json:"registros"`
}

// TotalAnual é uma linha do agregado anual: totais por mês (índices 1..12)
// mais o total do ano.
type TotalAnual struct {
	FuncionarioID uint          `json:"funcionario_id"`
	Area          string        `json:"area"`
	Cargo         string        `json:"cargo"`
	Nome          string        `json:"nome"`
	Meses         [13]MesTotais `json:"meses"`
	TotalHoras    float64       `json:"total_horas"`
}

// RegistroDetalhado é uma linha do relatório diário: um registro bruto
// anotado com área/cargo/nome do funcionário.
type RegistroDetalhado struct {
	FuncionarioID uint      `json:"funcionario_id"`
	Area          string    `json:"area"`
	Cargo         string    `json:"cargo"`
	Nome          string    `json:"nome"`
	Data          time.Time `json:"data"`
	Horas         float64   `json:"horas"`
}
