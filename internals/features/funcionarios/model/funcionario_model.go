package model

import (
	"time"

	areaModel "bancohoras_backend/internals/features/organizacao/areas/model"
	cargoModel "bancohoras_backend/internals/features/organizacao/cargos/model"
)

// FuncionarioModel representa a tabela funcionarios.
// Desativação é soft: o flag `ativo` vira false e o histórico de horas fica.
type FuncionarioModel struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Nome        string                      `gorm:"size:100;not null" json:"nome"`
	CargoID     *uint                       `gorm:"index" json:"cargo_id,omitempty"`
	AreaID      *uint                       `gorm:"index" json:"area_id,omitempty"`
	Ativo       bool                        `gorm:"not null;default:true" json:"ativo"`
	DataCriacao time.Time                   `gorm:"autoCreateTime" json:"data_criacao"`
	Cargo       *cargoModel.CargoModel      `gorm:"foreignKey:CargoID" json:"cargo,omitempty"`
	Area        *areaModel.AreaAtuacaoModel `gorm:"foreignKey:AreaID" json:"area,omitempty"`
}

func (FuncionarioModel) TableName() string {
	return "funcionarios"
}

// NomeArea resolve o nome da área para exibição: primeiro a área direta,
// depois a área do cargo, senão "N/A".
func (f *FuncionarioModel) NomeArea() string {
	if f.Area != nil {
		return f.Area.Nome
	}
	if f.Cargo != nil && f.Cargo.Area != nil {
		return f.Cargo.Area.Nome
	}
	return "N/A"
}

// NomeCargo resolve o nome do cargo para exibição, senão "N/A".
func (f *FuncionarioModel) NomeCargo() string {
	if f.Cargo != nil {
		return f.Cargo.Nome
	}
	return "N/A"
}
