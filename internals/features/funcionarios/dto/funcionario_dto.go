package dto

import (
	"strings"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateFuncionarioRequest struct {
	Nome    string `json:"nome" validate:"required,min=2,max=100"`
	CargoID *uint  `json:"cargo_id,omitempty"`
	AreaID  *uint  `json:"area_id,omitempty"`
}

func (r *CreateFuncionarioRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
}

func (r *CreateFuncionarioRequest) ToModel() *funcModel.FuncionarioModel {
	return &funcModel.FuncionarioModel{
		Nome:    r.Nome,
		CargoID: r.CargoID,
		AreaID:  r.AreaID,
		Ativo:   true,
	}
}

// UpdateFuncionarioRequest — update parcial
type UpdateFuncionarioRequest struct {
	Nome    *string `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	CargoID *uint   `json:"cargo_id,omitempty"`
	AreaID  *uint   `json:"area_id,omitempty"`
	Ativo   *bool   `json:"ativo,omitempty"`
}

func (r *UpdateFuncionarioRequest) Normalize() {
	if r.Nome != nil {
		v := strings.TrimSpace(*r.Nome)
		r.Nome = &v
	}
}

func (r *UpdateFuncionarioRequest) ApplyToModel(m *funcModel.FuncionarioModel) {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	if r.CargoID != nil {
		m.CargoID = r.CargoID
	}
	if r.AreaID != nil {
		m.AreaID = r.AreaID
	}
	if r.Ativo != nil {
		m.Ativo = *r.Ativo
	}
}
