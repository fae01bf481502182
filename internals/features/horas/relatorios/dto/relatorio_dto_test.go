package dto

import (
	"testing"
	"time"
)

func TestPeriodoNormalizarPreencheSoOQueFalta(t *testing.T) {
	agora := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)

	p := Periodo{Tipo: TipoMensal}
	p.Normalizar(agora)
	if p.Mes != 7 || p.Ano != 2024 {
		t.Errorf("normalizado = %d/%d, esperado 7/2024", p.Mes, p.Ano)
	}

	p = Periodo{Tipo: TipoMensal, Mes: 3, Ano: 2023}
	p.Normalizar(agora)
	if p.Mes != 3 || p.Ano != 2023 {
		t.Errorf("período explícito não pode mudar: %d/%d", p.Mes, p.Ano)
	}
}

func TestPeriodoValidar(t *testing.T) {
	casos := []struct {
		nome    string
		periodo Periodo
		valido  bool
	}{
		{"mensal ok", Periodo{Tipo: TipoMensal, Mes: 3, Ano: 2024}, true},
		{"anual ok", Periodo{Tipo: TipoAnual, Mes: 1, Ano: 2024}, true},
		{"tipo desconhecido", Periodo{Tipo: "semanal", Mes: 3, Ano: 2024}, false},
		{"mês zero", Periodo{Tipo: TipoMensal, Mes: 0, Ano: 2024}, false},
		{"mês treze", Periodo{Tipo: TipoMensal, Mes: 13, Ano: 2024}, false},
		{"ano fora da faixa", Periodo{Tipo: TipoMensal, Mes: 3, Ano: 189}, false},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			err := c.periodo.Validar()
			if c.valido && err != nil {
				t.Errorf("Validar() = %v, esperado nil", err)
			}
			if !c.valido && err == nil {
				t.Error("Validar() = nil, esperado erro")
			}
		})
	}
}

func TestPeriodoRotulo(t *testing.T) {
	p := Periodo{Tipo: TipoMensal, Mes: 3, Ano: 2024}
	if got := p.Rotulo(); got != "03/2024" {
		t.Errorf("Rotulo() = %q", got)
	}
	p = Periodo{Tipo: TipoAnual, Mes: 1, Ano: 2024}
	if got := p.Rotulo(); got != "2024" {
		t.Errorf("Rotulo() = %q", got)
	}
}
