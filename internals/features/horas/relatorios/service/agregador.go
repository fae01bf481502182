package service

import (
	"context"
	"sort"
	"time"

	registroModel "bancohoras_backend/internals/features/horas/registros/model"
	"bancohoras_backend/internals/features/horas/relatorios/dto"
)

// RelatorioService agrega registros de horas por período e materializa o
// resultado em planilha (ver planilha.go). Todo estado é local à chamada.
type RelatorioService struct {
	Store Store
}

func NewRelatorioService(store Store) *RelatorioService {
	return &RelatorioService{Store: store}
}

// JanelaMes devolve o intervalo fechado [primeiro dia, último dia] do mês.
// O último dia é o primeiro dia do mês seguinte menos um dia, o que cobre
// a virada dezembro→janeiro sem caso especial.
func JanelaMes(mes, ano int) (time.Time, time.Time) {
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return inicio, fim
}

// JanelaAno devolve [1º de janeiro, 31 de dezembro] do ano.
func JanelaAno(ano int) (time.Time, time.Time) {
	return time.Date(ano, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(ano, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// DadosMensais soma as horas de cada funcionário dentro do mês.
// A acumulação usa os valores crus; arredondamento só na apresentação.
// Funcionários sem horas no período não aparecem no resultado.
func (s *RelatorioService) DadosMensais(ctx context.Context, mes, ano int, funcionarioID *uint) ([]dto.TotalFuncionario, error) {
	inicio, fim := JanelaMes(mes, ano)
	registros, err := s.Store.RegistrosPorPeriodo(ctx, inicio, fim, funcionarioID)
	if err != nil {
		return nil, err
	}

	totais := make(map[uint]float64)
	for _, r := range registros {
		totais[r.FuncionarioID] += r.Horas
	}

	funcionarios, err := s.Store.FuncionariosPorIDs(ctx, chavesOrdenadas(totais))
	if err != nil {
		return nil, err
	}

	linhas := make([]dto.TotalFuncionario, 0, len(totais))
	for _, id := range chavesOrdenadas(totais) {
		total := totais[id]
		if total == 0 {
			continue // sem atividade no período
		}
		f := funcionarios[id]
		linhas = append(linhas, dto.TotalFuncionario{
			FuncionarioID: id,
			Area:          f.NomeArea(),
			Cargo:         f.NomeCargo(),
			Nome:          f.Nome,
			TotalHoras:    total,
		})
	}
	return linhas, nil
}

// DadosAnuais soma as horas de cada funcionário por mês do ano (1..12)
// e também o total anual. Funcionários sem horas no ano ficam de fora.
func (s *RelatorioService) DadosAnuais(ctx context.Context, ano int, funcionarioID *uint) ([]dto.TotalAnual, error) {
	inicio, fim := JanelaAno(ano)
	registros, err := s.Store.RegistrosPorPeriodo(ctx, inicio, fim, funcionarioID)
	if err != nil {
		return nil, err
	}

	acumulado := make(map[uint]*dto.TotalAnual)
	for _, r := range registros {
		linha, ok := acumulado[r.FuncionarioID]
		if !ok {
			linha = &dto.TotalAnual{FuncionarioID: r.FuncionarioID}
			acumulado[r.FuncionarioID] = linha
		}
		mes := int(r.Data.Month())
		linha.Meses[mes].Horas += r.Horas
		linha.Meses[mes].Registros++
		linha.TotalHoras += r.Horas
	}

	ids := make([]uint, 0, len(acumulado))
	for id := range acumulado {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	funcionarios, err := s.Store.FuncionariosPorIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	linhas := make([]dto.TotalAnual, 0, len(ids))
	for _, id := range ids {
		linha := acumulado[id]
		if linha.TotalHoras == 0 {
			continue
		}
		f := funcionarios[id]
		linha.Area = f.NomeArea()
		linha.Cargo = f.NomeCargo()
		linha.Nome = f.Nome
		linhas = append(linhas, *linha)
	}
	return linhas, nil
}

// DadosDiarios lista os registros brutos do mês, um item por lançamento,
// anotados com área/cargo/nome atuais do funcionário.
func (s *RelatorioService) DadosDiarios(ctx context.Context, mes, ano int, funcionarioID *uint) ([]dto.RegistroDetalhado, error) {
	inicio, fim := JanelaMes(mes, ano)
	registros, err := s.Store.RegistrosPorPeriodo(ctx, inicio, fim, funcionarioID)
	if err != nil {
		return nil, err
	}

	funcionarios, err := s.Store.FuncionariosPorIDs(ctx, idsDosRegistros(registros))
	if err != nil {
		return nil, err
	}

	linhas := make([]dto.RegistroDetalhado, 0, len(registros))
	for _, r := range registros {
		f := funcionarios[r.FuncionarioID]
		linhas = append(linhas, dto.RegistroDetalhado{
			FuncionarioID: r.FuncionarioID,
			Area:          f.NomeArea(),
			Cargo:         f.NomeCargo(),
			Nome:          f.Nome,
			Data:          r.Data,
			Horas:         r.Horas,
		})
	}
	return linhas, nil
}

func chavesOrdenadas(m map[uint]float64) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func idsDosRegistros(registros []registroModel.RegistroHoraModel) []uint {
	visto := make(map[uint]bool, len(registros))
	ids := make([]uint, 0, len(registros))
	for _, r := range registros {
		if !visto[r.FuncionarioID] {
			visto[r.FuncionarioID] = true
			ids = append(ids, r.FuncionarioID)
		}
	}
	return ids
}
