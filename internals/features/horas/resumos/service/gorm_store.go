package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
	registroModel "bancohoras_backend/internals/features/horas/registros/model"
	resumoModel "bancohoras_backend/internals/features/horas/resumos/model"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) RegistrosDoDia(ctx context.Context, data time.Time) ([]registroModel.RegistroHoraModel, error) {
	var registros []registroModel.RegistroHoraModel
	if err := s.db.WithContext(ctx).
		Where("data = ?", data).
		Order("funcionario_id").
		Find(&registros).Error; err != nil {
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
		Where("id IN ?", ids).
		Find(&funcionarios).Error; err != nil {
		return nil, err
	}
	for _, f := range funcionarios {
		out[f.ID] = f
	}
	return out, nil
}

func (s *gormStore) BuscarResumo(ctx context.Context, funcionarioID uint, data time.Time) (*resumoModel.ResumoDiarioModel, error) {
	var resumo resumoModel.ResumoDiarioModel
	err := s.db.WithContext(ctx).
		Where("funcionario_id = ? AND data = ?", funcionarioID, data).
		First(&resumo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resumo, nil
}

func (s *gormStore) SalvarResumo(ctx context.Context, resumo *resumoModel.ResumoDiarioModel) error {
	// Save grava todos os campos de uma vez: insert quando ID zero,
	// update completo quando a linha já existe.
	return s.db.WithContext(ctx).Save(resumo).Error
}
