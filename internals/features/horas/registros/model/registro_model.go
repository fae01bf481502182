package model

import (
	"time"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
)

// RegistroHoraModel representa a tabela registros_horas.
// Um funcionário pode ter vários registros no mesmo dia.
type RegistroHoraModel struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	FuncionarioID uint                        `gorm:"not null;index:idx_funcionario_data,priority:1" json:"funcionario_id"`
	Data          time.Time                   `gorm:"type:date;not null;index:idx_funcionario_data,priority:2" json:"data"`
	Horas         float64                     `gorm:"not null" json:"horas"`
	Observacoes   string                      `gorm:"type:text" json:"observacoes"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
	Funcionario   *funcModel.FuncionarioModel `gorm:"foreignKey:FuncionarioID" json:"funcionario,omitempty"`
}

func (RegistroHoraModel) TableName() string {
	return "registros_horas"
}
