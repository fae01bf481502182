package dto

import (
	"strings"
	"time"

	registroModel "bancohoras_backend/internals/features/horas/registros/model"
	helper "bancohoras_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateRegistroRequest — lançamento de horas de um dia.
// A regra 0 < horas <= 24 vale por registro, não por dia: o mesmo
// funcionário pode ter vários registros na mesma data.
type CreateRegistroRequest struct {
	FuncionarioID uint    `json:"funcionario_id" validate:"required,gt=0"`
	Data          string  `json:"data" validate:"required"`
	Horas         float64 `json:"horas" validate:"required,gt=0,lte=24"`
	Observacoes   string  `json:"observacoes" validate:"omitempty,max=2000"`
}

func (r *CreateRegistroRequest) Normalize() {
	r.Data = strings.TrimSpace(r.Data)
	r.Observacoes = strings.TrimSpace(r.Observacoes)
}

// ToModel converte para o model; falha se a data não for YYYY-MM-DD.
func (r *CreateRegistroRequest) ToModel() (*registroModel.RegistroHoraModel, error) {
	data, err := helper.ParseData(r.Data)
	if err != nil {
		return nil, err
	}
	return &registroModel.RegistroHoraModel{
		FuncionarioID: r.FuncionarioID,
		Data:          data,
		Horas:         r.Horas,
		Observacoes:   r.Observacoes,
	}, nil
}

// UpdateRegistroRequest — correção de um lançamento existente
type UpdateRegistroRequest struct {
	Data        *string  `json:"data,omitempty"`
	Horas       *float64 `json:"horas,omitempty" validate:"omitempty,gt=0,lte=24"`
	Observacoes *string  `json:"observacoes,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateRegistroRequest) Normalize() {
	if r.Data != nil {
		v := strings.TrimSpace(*r.Data)
		r.Data = &v
	}
	if r.Observacoes != nil {
		v := strings.TrimSpace(*r.Observacoes)
		r.Observacoes = &v
	}
}

func (r *UpdateRegistroRequest) ApplyToModel(m *registroModel.RegistroHoraModel) error {
	if r.Data != nil {
		data, err := helper.ParseData(*r.Data)
		if err != nil {
			return err
		}
		m.Data = data
	}
	if r.Horas != nil {
		m.Horas = *r.Horas
	}
	if r.Observacoes != nil {
		m.Observacoes = *r.Observacoes
	}
	m.UpdatedAt = time.Now().UTC()
	return nil
}
