package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
	registroModel "bancohoras_backend/internals/features/horas/registros/model"
)

// Store é a visão do agregador sobre o banco. Injetado para que os testes
// rodem com uma implementação em memória, sem Postgres.
type Store interface {
	// RegistrosPorPeriodo retorna os registros com data em [inicio, fim],
	// opcionalmente restritos a um funcionário. O filtro entra na consulta,
	// não no resultado.
	RegistrosPorPeriodo(ctx context.Context, inicio, fim time.Time, funcionarioID *uint) ([]registroModel.RegistroHoraModel, error)

	// FuncionariosPorIDs resolve funcionários (com cargo e área já
	// carregados) em um único lookup, evitando consulta por linha.
	FuncionariosPorIDs(ctx context.Context, ids []uint) (map[uint]funcModel.FuncionarioModel, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) RegistrosPorPeriodo(ctx context.Context, inicio, fim time.Time, funcionarioID *uint) ([]registroModel.RegistroHoraModel, error) {
	q := s.db.WithContext(ctx).
		Where("data >= ? AND data <= ?", inicio, fim)
	if funcionarioID != nil {
		q = q.Where("funcionario_id = ?", *funcionarioID)
	}

	var registros []registroModel.RegistroHoraModel
	if err := q.Order("funcionario_id, data").Find(&registros).Error; err != nil {
		return nil, err
	}
	return registros, nil
}

func (s *gormStore) FuncionariosPorIDs(ctx context.Context, ids []uint) (map[uint]funcModel.FuncionarioModel, error) {
	out := make(map[uint]funcModel.FuncionarioModel, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var funcionarios []funcModel.FuncionarioModel
	if err := s.db.WithContext(ctx).
		Preload("Cargo").
		Preload("Cargo.Area").
		Preload("Area").
		Where("id IN ?", ids).
		Find(&funcionarios).Error; err != nil {
		return nil, err
	}

	for _, f := range funcionarios {
		out[f.ID] = f
	}
	return out, nil
}
