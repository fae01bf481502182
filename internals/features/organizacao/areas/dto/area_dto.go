package dto

import (
	"strings"

	areaModel "bancohoras_backend/internals/features/organizacao/areas/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateAreaRequest struct {
	Nome      string `json:"nome" validate:"required,min=2,max=100"`
	Descricao string `json:"descricao" validate:"omitempty,max=2000"`
}

func (r *CreateAreaRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Descricao = strings.TrimSpace(r.Descricao)
}

func (r *CreateAreaRequest) ToModel() *areaModel.AreaAtuacaoModel {
	return &areaModel.AreaAtuacaoModel{
		Nome:      r.Nome,
		Descricao: r.Descricao,
		Ativo:     true,
	}
}

// UpdateAreaRequest — update parcial (ponteiros distinguem omitido de vazio)
type UpdateAreaRequest struct {
	Nome      *string `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	Descricao *string `json:"descricao,omitempty" validate:"omitempty,max=2000"`
	Ativo     *bool   `json:"ativo,omitempty"`
}

func (r *UpdateAreaRequest) Normalize() {
	if r.Nome != nil {
		v := strings.TrimSpace(*r.Nome)
		r.Nome = &v
	}
	if r.Descricao != nil {
		v := strings.TrimSpace(*r.Descricao)
		r.Descricao = &v
	}
}

func (r *UpdateAreaRequest) ApplyToModel(m *areaModel.AreaAtuacaoModel) {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	if r.Descricao != nil {
		m.Descricao = *r.Descricao
	}
	if r.Ativo != nil {
		m.Ativo = *r.Ativo
	}
}
