package model

import (
	"time"

	areaModel "bancohoras_backend/internals/features/organizacao/areas/model"
)

// CargoModel representa a tabela cargos
type CargoModel struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Nome        string                      `gorm:"size:100;not null" json:"nome"`
	AreaID      *uint                       `gorm:"index" json:"area_id,omitempty"`
	SalarioBase *float64                    `json:"salario_base,omitempty"`
	Ativo       bool                        `gorm:"not null;default:true" json:"ativo"`
	DataCriacao time.Time                   `gorm:"autoCreateTime" json:"data_criacao"`
	Area        *areaModel.AreaAtuacaoModel `gorm:"foreignKey:AreaID" json:"area,omitempty"`
}

func (CargoModel) TableName() string {
	return "cargos"
}
