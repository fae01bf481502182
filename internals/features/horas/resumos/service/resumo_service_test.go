package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
	registroModel "bancohoras_backend/internals/features/horas/registros/model"
	resumoModel "bancohoras_backend/internals/features/horas/resumos/model"
)

type fakeResumoStore struct {
	registros    []registroModel.RegistroHoraModel
	funcionarios map[uint]funcModel.FuncionarioModel
	resumos      map[string]*resumoModel.ResumoDiarioModel

	errBusca error
	salvos   int
}

func chaveResumo(funcionarioID uint, data time.Time) string {
	return fmt.Sprintf("%d|%s", funcionarioID, data.Format("2006-01-02"))
}

func (f *fakeResumoStore) RegistrosDoDia(_ context.Context, data time.Time) ([]registroModel.RegistroHoraModel, error) {
	var out []registroModel.RegistroHoraModel
	for _, r := range f.registros {
		if r.Data.Year() == data.Year() && r.Data.YearDay() == data.YearDay() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResumoStore) FuncionariosPorIDs(_ context.Context, ids []uint) (map[uint]funcModel.FuncionarioModel, error) {
	out := make(map[uint]funcModel.FuncionarioModel, len(ids))
	for _, id := range ids {
		if fu, ok := f.funcionarios[id]; ok {
			out[id] = fu
		}
	}
	return out, nil
}

func (f *fakeResumoStore) BuscarResumo(_ context.Context, funcionarioID uint, data time.Time) (*resumoModel.ResumoDiarioModel, error) {
	if f.errBusca != nil {
		return nil, f.errBusca
	}
	return f.resumos[chaveResumo(funcionarioID, data)], nil
}

func (f *fakeResumoStore) SalvarResumo(_ context.Context, resumo *resumoModel.ResumoDiarioModel) error {
	if f.resumos == nil {
		f.resumos = make(map[string]*resumoModel.ResumoDiarioModel)
	}
	copia := *resumo
	f.resumos[chaveResumo(resumo.FuncionarioID, resumo.Data)] = &copia
	f.salvos++
	return nil
}

func diaUTC(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func registroEm(funcionarioID uint, data time.Time, horas float64) registroModel.RegistroHoraModel {
	return registroModel.RegistroHoraModel{FuncionarioID: funcionarioID, Data: data, Horas: horas}
}

func TestGerarResumoDiaCriaUmPorFuncionario(t *testing.T) {
	d := diaUTC(2024, time.March, 1)
	cargoID, areaID := uint(7), uint(3)
	store := &fakeResumoStore{
		registros: []registroModel.RegistroHoraModel{
			registroEm(1, d, 2.5),
			registroEm(1, d, 1.0),
			registroEm(2, d, 4.0),
			registroEm(3, diaUTC(2024, time.March, 2), 8.0), // outro dia, fora do resumo
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: {ID: 1, Nome: "Ana", CargoID: &cargoID, AreaID: &areaID},
			2: {ID: 2, Nome: "Bruno"},
		},
	}
	svc := NewResumoService(store)

	criados, err := svc.GerarResumoDia(context.Background(), d)
	if err != nil {
		t.Fatalf("GerarResumoDia: %v", err)
	}
	if criados != 2 {
		t.Errorf("criados = %d, esperado 2", criados)
	}

	r1 := store.resumos[chaveResumo(1, d)]
	if r1 == nil {
		t.Fatal("resumo do funcionário 1 não foi gravado")
	}
	if r1.TotalHoras != 3.5 || r1.TotalRegistros != 2 {
		t.Errorf("funcionário 1: horas=%v registros=%d, esperado 3.5/2", r1.TotalHoras, r1.TotalRegistros)
	}
	if r1.CargoID == nil || *r1.CargoID != cargoID {
		t.Errorf("cargo_id desnormalizado = %v, esperado %d", r1.CargoID, cargoID)
	}
	if r1.AreaID == nil || *r1.AreaID != areaID {
		t.Errorf("area_id desnormalizado = %v, esperado %d", r1.AreaID, areaID)
	}

	r2 := store.resumos[chaveResumo(2, d)]
	if r2 == nil || r2.TotalHoras != 4.0 || r2.TotalRegistros != 1 {
		t.Errorf("funcionário 2: resumo = %+v, esperado 4.0/1", r2)
	}

	if store.resumos[chaveResumo(3, d)] != nil {
		t.Error("funcionário sem registro no dia não deveria ganhar resumo")
	}
}

func TestGerarResumoDiaIdempotente(t *testing.T) {
	d := diaUTC(2024, time.March, 1)
	store := &fakeResumoStore{
		registros: []registroModel.RegistroHoraModel{
			registroEm(1, d, 2.5),
			registroEm(1, d, 1.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{1: {ID: 1, Nome: "Ana"}},
	}
	svc := NewResumoService(store)

	if criados, err := svc.GerarResumoDia(context.Background(), d); err != nil || criados != 1 {
		t.Fatalf("primeira execução: criados=%d err=%v", criados, err)
	}

	criados, err := svc.GerarResumoDia(context.Background(), d)
	if err != nil {
		t.Fatalf("segunda execução: %v", err)
	}
	if criados != 0 {
		t.Errorf("segunda execução criou %d, esperado 0", criados)
	}
	if len(store.resumos) != 1 {
		t.Errorf("resumos na base = %d, esperado 1", len(store.resumos))
	}

	r := store.resumos[chaveResumo(1, d)]
	if r.TotalHoras != 3.5 || r.TotalRegistros != 2 {
		t.Errorf("valores mudaram na regeração: %+v", r)
	}
}

func TestGerarResumoDiaRecalculaAposCorrecao(t *testing.T) {
	d := diaUTC(2024, time.March, 1)
	store := &fakeResumoStore{
		registros: []registroModel.RegistroHoraModel{
			registroEm(1, d, 2.5),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{1: {ID: 1, Nome: "Ana"}},
	}
	svc := NewResumoService(store)

	if _, err := svc.GerarResumoDia(context.Background(), d); err != nil {
		t.Fatalf("primeira execução: %v", err)
	}

	// registro corrigido depois da materialização
	store.registros[0].Horas = 6.0
	criados, err := svc.GerarResumoDia(context.Background(), d)
	if err != nil {
		t.Fatalf("segunda execução: %v", err)
	}
	if criados != 0 {
		t.Errorf("recálculo não deveria criar resumo novo, criou %d", criados)
	}

	r := store.resumos[chaveResumo(1, d)]
	if r.TotalHoras != 6.0 {
		t.Errorf("total após correção = %v, esperado 6.0", r.TotalHoras)
	}
}

func TestGerarResumoDiaTruncaHorario(t *testing.T) {
	meioDia := time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)
	store := &fakeResumoStore{
		registros: []registroModel.RegistroHoraModel{
			registroEm(1, diaUTC(2024, time.March, 1), 2.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{1: {ID: 1, Nome: "Ana"}},
	}
	svc := NewResumoService(store)

	if criados, err := svc.GerarResumoDia(context.Background(), meioDia); err != nil || criados != 1 {
		t.Fatalf("criados=%d err=%v", criados, err)
	}

	r := store.resumos[chaveResumo(1, diaUTC(2024, time.March, 1))]
	if r == nil {
		t.Fatal("resumo deveria estar chaveado pela data truncada")
	}
	if !r.Data.Equal(diaUTC(2024, time.March, 1)) {
		t.Errorf("data do resumo = %v, esperado meia-noite", r.Data)
	}
}

func TestGerarResumosPeriodoSomaDias(t *testing.T) {
	store := &fakeResumoStore{
		registros: []registroModel.RegistroHoraModel{
			registroEm(1, diaUTC(2024, time.March, 1), 2.0),
			registroEm(1, diaUTC(2024, time.March, 3), 3.0),
			registroEm(2, diaUTC(2024, time.March, 3), 1.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{
			1: {ID: 1, Nome: "Ana"},
			2: {ID: 2, Nome: "Bruno"},
		},
	}
	svc := NewResumoService(store)

	criados, err := svc.GerarResumosPeriodo(context.Background(), diaUTC(2024, time.March, 1), diaUTC(2024, time.March, 3))
	if err != nil {
		t.Fatalf("GerarResumosPeriodo: %v", err)
	}
	// dia 1: um resumo; dia 2: nenhum registro; dia 3: dois resumos
	if criados != 3 {
		t.Errorf("criados = %d, esperado 3", criados)
	}
	if len(store.resumos) != 3 {
		t.Errorf("resumos na base = %d, esperado 3", len(store.resumos))
	}
}

func TestGerarResumoDiaPropagaErro(t *testing.T) {
	falha := errors.New("banco fora do ar")
	d := diaUTC(2024, time.March, 1)
	store := &fakeResumoStore{
		registros: []registroModel.RegistroHoraModel{
			registroEm(1, d, 2.0),
		},
		funcionarios: map[uint]funcModel.FuncionarioModel{1: {ID: 1, Nome: "Ana"}},
		errBusca:     falha,
	}
	svc := NewResumoService(store)

	if _, err := svc.GerarResumoDia(context.Background(), d); !errors.Is(err, falha) {
		t.Fatalf("err = %v, esperado %v", err, falha)
	}
	if store.salvos != 0 {
		t.Errorf("nada deveria ter sido gravado, salvos = %d", store.salvos)
	}
}
