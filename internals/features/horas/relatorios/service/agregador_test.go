package service

import (
	"context"
	"errors"
	"testing"
	"time"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
	registroModel "bancohoras_backend/internals/features/horas/registros/model"
	areaModel "bancohoras_backend/internals/features/organizacao/areas/model"
	cargoModel "bancohoras_backend/internals/features/organizacao/cargos/model"
)

// fakeStore implementa Store em memória, espelhando a semântica das
// consultas do gormStore (intervalo fechado + filtro opcional).
type fakeStore struct {
	registros    []registroModel.RegistroHoraModel
	funcionarios map[uint]funcModel.FuncionarioModel
	err          error

	// capturado para inspecionar como o agregador consultou
	ultimoInicio time.Time
	ultimoFim    time.Time
	ultimoFiltro *uint
}

func (s *fakeStore) RegistrosPorPeriodo(_ context.Context, inicio, fim time.Time, funcionarioID *uint) ([]registroModel.RegistroHoraModel, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.ultimoInicio, s.ultimoFim, s.ultimoFiltro = inicio, fim, funcionarioID

	var out []registroModel.RegistroHoraModel
	for _, r := range s.registros {
		if r.Data.Before(inicio) || r.Data.After(fim) {
			continue
		}
		if funcionarioID != nil && r.FuncionarioID != *funcionarioID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore) FuncionariosPorIDs(_ context.Context, ids []uint) (map[uint]funcModel.FuncionarioModel, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[uint]funcModel.FuncionarioModel, len(ids))
	for _, id := range ids {
		if f, ok := s.funcionarios[id]; ok {
			out[id] = f
		}
	}
	return out, nil
}

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func funcionario(id uint, nome, cargo, area string) funcModel.FuncionarioModel {
	f := funcModel.FuncionarioModel{ID: id, Nome: nome, Ativo: true}
	if cargo != "" {
		c := &cargoModel.CargoModel{Nome: cargo}
		if area != "" {
			c.Area = &areaModel.AreaAtuacaoModel{Nome: area}
		}
		f.Cargo = c
	}
	return f
}

func registro(funcionarioID uint, data time.Time, horas float64) registroModel.RegistroHoraModel {
	return registroModel.RegistroHoraModel{FuncionarioID: funcionarioID, Data: data, Horas: horas}
}

func TestJanelaMes(t *testing.T) {
	tests := []struct {
		nome     string
		mes, ano int
		inicio   time.Time
		fim      time.Time
	}{
		{"mes comum", 3, 2024, dia(2024, time.March, 1), dia(2024, time.March, 31)},
		{"fevereiro bissexto", 2, 2024, dia(2024, time.February, 1), dia(2024, time.February, 29)},
		{"fevereiro comum", 2, 2023, dia(2023, time.February, 1), dia(2023, time.February, 28)},
		{"dezembro vira o ano", 12, 2024, dia(2024, time.December, 1), dia(2024, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			inicio, fim := JanelaMes(tt.mes, tt.ano)
			if !inicio.Equal(tt.inicio) {
				t.Errorf("inicio = %v, esperado %v", inicio, tt.inicio)
			}
			if !fim.Equal(tt.fim) {
				t.Errorf("fim = %v, esperado %v", fim, tt.fim)
			}
		})
	}
}

func TestDadosMensais(t *testing.T) {
	store := &fakeStore{
		registros: []registroModel.RegistroHoraModel{
			registro(1, dia(2024, time.March, 1), 2.5),
			registro(1, dia(2024, time.March, 15), 1.0),
			registro(2, dia(2024, time.March, 10), 8.0),
			registro(2, dia(2024, time.April, 1), 4.0), // fora do mês
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: funcionario(1, "Ana", "Analista", "Financeiro"),
			2: funcionario(2, "Bruno", "Dev", "TI"),
		},
	}
	svc := NewRelatorioService(store)

	linhas, err := svc.DadosMensais(context.Background(), 3, 2024, nil)
	if err != nil {
		t.Fatalf("DadosMensais: %v", err)
	}
	if len(linhas) != 2 {
		t.Fatalf("len(linhas) = %d, esperado 2", len(linhas))
	}

	porID := map[uint]float64{}
	for _, l := range linhas {
		porID[l.FuncionarioID] = l.TotalHoras
	}
	if porID[1] != 3.5 {
		t.Errorf("total de Ana = %v, esperado 3.5", porID[1])
	}
	if porID[2] != 8.0 {
		t.Errorf("total de Bruno = %v, esperado 8.0", porID[2])
	}

	for _, l := range linhas {
		if l.FuncionarioID == 1 {
			if l.Area != "Financeiro" || l.Cargo != "Analista" || l.Nome != "Ana" {
				t.Errorf("anotação de Ana = %+v", l)
			}
		}
	}
}

func TestDadosMensaisFronteiraBissexto(t *testing.T) {
	store := &fakeStore{
		registros: []registroModel.RegistroHoraModel{
			registro(1, dia(2024, time.February, 29), 6.0), // último dia de fev bissexto
			registro(1, dia(2024, time.March, 1), 2.0),     // não entra
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: funcionario(1, "Ana", "Analista", "Financeiro"),
		},
	}
	svc := NewRelatorioService(store)

	linhas, err := svc.DadosMensais(context.Background(), 2, 2024, nil)
	if err != nil {
		t.Fatalf("DadosMensais: %v", err)
	}
	if len(linhas) != 1 || linhas[0].TotalHoras != 6.0 {
		t.Fatalf("linhas = %+v, esperado só 29/02 com 6.0", linhas)
	}
}

func TestDadosMensaisFuncionarioSemHorasNaoAparece(t *testing.T) {
	store := &fakeStore{
		registros: []registroModel.RegistroHoraModel{
			registro(1, dia(2024, time.March, 5), 4.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: funcionario(1, "Ana", "Analista", "Financeiro"),
			2: funcionario(2, "Bruno", "Dev", "TI"), // zero registros no mês
		},
	}
	svc := NewRelatorioService(store)

	linhas, err := svc.DadosMensais(context.Background(), 3, 2024, nil)
	if err != nil {
		t.Fatalf("DadosMensais: %v", err)
	}
	for _, l := range linhas {
		if l.FuncionarioID == 2 {
			t.Fatalf("funcionário sem horas apareceu no resultado: %+v", l)
		}
	}
	if len(linhas) != 1 {
		t.Fatalf("len(linhas) = %d, esperado 1", len(linhas))
	}
}

func TestDadosMensaisFiltroEntraNaConsulta(t *testing.T) {
	store := &fakeStore{
		registros: []registroModel.RegistroHoraModel{
			registro(1, dia(2024, time.March, 5), 4.0),
			registro(2, dia(2024, time.March, 5), 2.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: funcionario(1, "Ana", "Analista", "Financeiro"),
			2: funcionario(2, "Bruno", "Dev", "TI"),
		},
	}
	svc := NewRelatorioService(store)

	alvo := uint(2)
	linhas, err := svc.DadosMensais(context.Background(), 3, 2024, &alvo)
	if err != nil {
		t.Fatalf("DadosMensais: %v", err)
	}
	if store.ultimoFiltro == nil || *store.ultimoFiltro != alvo {
		t.Errorf("filtro não chegou na consulta: %v", store.ultimoFiltro)
	}
	if len(linhas) != 1 || linhas[0].FuncionarioID != 2 {
		t.Fatalf("linhas = %+v, esperado só o funcionário 2", linhas)
	}
}

func TestDadosAnuais(t *testing.T) {
	store := &fakeStore{
		registros: []registroModel.RegistroHoraModel{
			registro(1, dia(2024, time.January, 10), 5.0),
			registro(1, dia(2024, time.July, 20), 3.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: funcionario(1, "Ana", "Analista", "Financeiro"),
		},
	}
	svc := NewRelatorioService(store)

	linhas, err := svc.DadosAnuais(context.Background(), 2024, nil)
	if err != nil {
		t.Fatalf("DadosAnuais: %v", err)
	}
	if len(linhas) != 1 {
		t.Fatalf("len(linhas) = %d, esperado 1", len(linhas))
	}

	l := linhas[0]
	if l.TotalHoras != 8.0 {
		t.Errorf("total anual = %v, esperado 8.0", l.TotalHoras)
	}
	if l.Meses[1].Horas != 5.0 || l.Meses[1].Registros != 1 {
		t.Errorf("janeiro = %+v, esperado 5.0/1", l.Meses[1])
	}
	if l.Meses[7].Horas != 3.0 || l.Meses[7].Registros != 1 {
		t.Errorf("julho = %+v, esperado 3.0/1", l.Meses[7])
	}
	for mes := 1; mes <= 12; mes++ {
		if mes == 1 || mes == 7 {
			continue
		}
		if l.Meses[mes].Horas != 0 {
			t.Errorf("mês %d = %v, esperado 0", mes, l.Meses[mes].Horas)
		}
	}

	// janela consultada é o ano fechado
	if !store.ultimoInicio.Equal(dia(2024, time.January, 1)) || !store.ultimoFim.Equal(dia(2024, time.December, 31)) {
		t.Errorf("janela anual = [%v, %v]", store.ultimoInicio, store.ultimoFim)
	}
}

func TestDadosDiariosUmaLinhaPorRegistro(t *testing.T) {
	store := &fakeStore{
		registros: []registroModel.RegistroHoraModel{
			registro(1, dia(2024, time.March, 1), 2.0),
			registro(1, dia(2024, time.March, 2), 3.0),
			registro(1, dia(2024, time.March, 2), 1.5), // mesmo dia, outro lançamento
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: funcionario(1, "Ana", "Analista", "Financeiro"),
		},
	}
	svc := NewRelatorioService(store)

	linhas, err := svc.DadosDiarios(context.Background(), 3, 2024, nil)
	if err != nil {
		t.Fatalf("DadosDiarios: %v", err)
	}
	if len(linhas) != 3 {
		t.Fatalf("len(linhas) = %d, esperado 3 (uma por registro)", len(linhas))
	}
	for _, l := range linhas {
		if l.Area != "Financeiro" || l.Cargo != "Analista" || l.Nome != "Ana" {
			t.Errorf("anotação errada: %+v", l)
		}
	}
}

func TestFalhaDoStorePropaga(t *testing.T) {
	falha := errors.New("conexão recusada")
	svc := NewRelatorioService(&fakeStore{err: falha})

	if _, err := svc.DadosMensais(context.Background(), 3, 2024, nil); !errors.Is(err, falha) {
		t.Errorf("DadosMensais err = %v, esperado %v", err, falha)
	}
	if _, err := svc.DadosAnuais(context.Background(), 2024, nil); !errors.Is(err, falha) {
		t.Errorf("DadosAnuais err = %v, esperado %v", err, falha)
	}
	if _, err := svc.DadosDiarios(context.Background(), 3, 2024, nil); !errors.Is(err, falha) {
		t.Errorf("DadosDiarios err = %v, esperado %v", err, falha)
	}
}

func TestFuncionarioSemCadastroViraNA(t *testing.T) {
	store := &fakeStore{
		registros: []registroModel.RegistroHoraModel{
			registro(9, dia(2024, time.March, 5), 4.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{}, // linha órfã
	}
	svc := NewRelatorioService(store)

	linhas, err := svc.DadosMensais(context.Background(), 3, 2024, nil)
	if err != nil {
		t.Fatalf("DadosMensais: %v", err)
	}
	if len(linhas) != 1 {
		t.Fatalf("len(linhas) = %d, esperado 1", len(linhas))
	}
	if linhas[0].Area != "N/A" || linhas[0].Cargo != "N/A" {
		t.Errorf("área/cargo = %q/%q, esperado N/A", linhas[0].Area, linhas[0].Cargo)
	}
}
