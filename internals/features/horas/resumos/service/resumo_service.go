package service

import (
	"context"
	"sort"
	"time"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
	registroModel "bancohoras_backend/internals/features/horas/registros/model"
	resumoModel "bancohoras_backend/internals/features/horas/resumos/model"
	helper "bancohoras_backend/internals/helpers"
)

// Store é a visão do materializador sobre o banco, injetada para permitir
// testes com uma implementação em memória.
type Store interface {
	RegistrosDoDia(ctx context.Context, data time.Time) ([]registroModel.RegistroHoraModel, error)
	FuncionariosPorIDs(ctx context.Context, ids []uint) (map[uint]funcModel.FuncionarioModel, error)

	// BuscarResumo devolve o resumo de (funcionário, data) ou nil se não
	// existe. A unicidade é garantida por consulta-antes-de-gravar, nunca
	// por capturar violação de constraint.
	BuscarResumo(ctx context.Context, funcionarioID uint, data time.Time) (*resumoModel.ResumoDiarioModel, error)

	// SalvarResumo grava a linha inteira em um passo (create ou update).
	SalvarResumo(ctx context.Context, resumo *resumoModel.ResumoDiarioModel) error
}

// ResumoService materializa resumos_diarios a partir dos registros crus.
// A tabela é cache derivado: regerar para o mesmo dia é idempotente.
type ResumoService struct {
	Store Store
}

func NewResumoService(store Store) *ResumoService {
	return &ResumoService{Store: store}
}

// GerarResumoDia recalcula o resumo de todos os funcionários com registros
// na data. Devolve quantos resumos novos foram criados (updates não contam).
// Funcionário sem registro no dia fica intocado — resumo ausente equivale
// a zero para quem consome.
func (s *ResumoService) GerarResumoDia(ctx context.Context, data time.Time) (int, error) {
	data = helper.TruncarDia(data)

	registros, err := s.Store.RegistrosDoDia(ctx, data)
	if err != nil {
		return 0, err
	}

	type acumulado struct {
		totalHoras     float64
		totalRegistros int
	}
	porFuncionario := make(map[uint]*acumulado)
	for _, r := range registros {
		acc, ok := porFuncionario[r.FuncionarioID]
		if !ok {
			acc = &acumulado{}
			porFuncionario[r.FuncionarioID] = acc
		}
		acc.totalHoras += r.Horas
		acc.totalRegistros++
	}

	ids := make([]uint, 0, len(porFuncionario))
	for id := range porFuncionario {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	funcionarios, err := s.Store.FuncionariosPorIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	criados := 0
	for _, id := range ids {
		acc := porFuncionario[id]

		resumo, err := s.Store.BuscarResumo(ctx, id, data)
		if err != nil {
			return criados, err
		}
		if resumo == nil {
			resumo = &resumoModel.ResumoDiarioModel{
				FuncionarioID: id,
				Data:          data,
			}
			criados++
		}

		// todos os campos mudam juntos; o Save é um passo lógico único
		f := funcionarios[id]
		resumo.TotalHoras = acc.totalHoras
		resumo.TotalRegistros = acc.totalRegistros
		resumo.CargoID = f.CargoID
		resumo.AreaID = f.AreaID
		resumo.AtualizadoEm = time.Now().UTC()

		if err := s.Store.SalvarResumo(ctx, resumo); err != nil {
			return criados, err
		}
	}

	return criados, nil
}

// GerarResumosPeriodo aplica GerarResumoDia dia a dia no intervalo fechado
// [inicio, fim] e devolve o total de resumos criados.
func (s *ResumoService) GerarResumosPeriodo(ctx context.Context, inicio, fim time.Time) (int, error) {
	inicio = helper.TruncarDia(inicio)
	fim = helper.TruncarDia(fim)

	criados := 0
	for dia := inicio; !dia.After(fim); dia = dia.AddDate(0, 0, 1) {
		n, err := s.GerarResumoDia(ctx, dia)
		criados += n
		if err != nil {
			return criados, err
		}
	}
	return criados, nil
}
