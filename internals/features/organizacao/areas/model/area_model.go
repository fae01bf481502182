package model

import "time"

// AreaAtuacaoModel representa a tabela areas_atuacao
type AreaAtuacaoModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nome        string    `gorm:"size:100;unique;not null" json:"nome"`
	Descricao   string    `gorm:"type:text" json:"descricao"`
	Ativo       bool      `gorm:"not null;default:true" json:"ativo"`
	DataCriacao time.Time `gorm:"autoCreateTime" json:"data_criacao"`
}

func (AreaAtuacaoModel) TableName() string {
	return "areas_atuacao"
}
