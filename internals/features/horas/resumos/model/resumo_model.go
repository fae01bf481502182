package model

import (
	"time"

	funcModel "bancohoras_backend/internals/features/funcionarios/model"
)

// ResumoDiarioModel representa a tabela resumos_diarios: uma linha por
// (funcionário, data) com os totais consolidados do dia.
//
// É dado derivado — pode ser reconstruído a qualquer momento a partir de
// registros_horas e nunca deve ser tratado como fonte de verdade.
type ResumoDiarioModel struct {
	ID             uint                        `gorm:"primaryKey" json:"id"`
	FuncionarioID  uint                        `gorm:"not null;uniqueIndex:unique_funcionario_data,priority:1;index:idx_data_funcionario,priority:2" json:"funcionario_id"`
	CargoID        *uint                       `json:"cargo_id,omitempty"`
	AreaID         *uint                       `json:"area_id,omitempty"`
	Data           time.Time                   `gorm:"type:date;not null;uniqueIndex:unique_funcionario_data,priority:2;index:idx_data_funcionario,priority:1" json:"data"`
	TotalHoras     float64                     `gorm:"not null;default:0" json:"total_horas"`
	TotalRegistros int                         `gorm:"not null;default:0" json:"total_registros"`
	ProcessadoEm   time.Time                   `gorm:"autoCreateTime" json:"processado_em"`
	AtualizadoEm   time.Time                   `gorm:"autoUpdateTime" json:"atualizado_em"`
	Funcionario    *funcModel.FuncionarioModel `gorm:"foreignKey:FuncionarioID" json:"funcionario,omitempty"`
}

func (ResumoDiarioModel) TableName() string {
	return "resumos_diarios"
}
