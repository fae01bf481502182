package dto

import (
	"strings"

	cargoModel "bancohoras_backend/internals/features/organizacao/cargos/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateCargoRequest struct {
	Nome        string   `json:"nome" validate:"required,min=2,max=100"`
	AreaID      *uint    `json:"area_id,omitempty"`
	SalarioBase *float64 `json:"salario_base,omitempty" validate:"omitempty,gte=0"`
}

func (r *CreateCargoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
}

func (r *CreateCargoRequest) ToModel() *cargoModel.CargoModel {
	return &cargoModel.CargoModel{
		Nome:        r.Nome,
		AreaID:      r.AreaID,
		SalarioBase: r.SalarioBase,
		Ativo:       true,
	}
}

// UpdateCargoRequest — update parcial
type UpdateCargoRequest struct {
	Nome        *string  `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	AreaID      *uint    `json:"area_id,omitempty"`
	SalarioBase *float64 `json:"salario_base,omitempty" validate:"omitempty,gte=0"`
	Ativo       *bool    `json:"ativo,omitempty"`
}

func (r *UpdateCargoRequest) Normalize() {
	if r.Nome != nil {
		v := strings.TrimSpace(*r.Nome)
		r.Nome = &v
	}
}

func (r *UpdateCargoRequest) ApplyToModel(m *cargoModel.CargoModel) {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	if r.AreaID != nil {
		m.AreaID = r.AreaID
	}
	if r.SalarioBase != nil {
		m.SalarioBase = r.SalarioBase
	}
	if r.Ativo != nil {
		m.Ativo = *r.Ativo
	}
}
