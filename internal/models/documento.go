package models

import "time"

// Documento is a rendered proposal kept for later download or comparison.
type Documento struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ClienteID   uint    `gorm:"not null;index" json:"clienteId"`
	Cliente     Cliente `gorm:"foreignKey:ClienteID" json:"-"`
	OpcaoNome   string  `json:"opcaoNome"` // nome da opção, ou "Combinado"
	NomeArquivo string  `gorm:"not null" json:"nomeArquivo"`

	// Snapshot dos totais no momento da geração
	TotalM2       float64 `json:"totalM2"`
	Subtotal      float64 `json:"subtotal"`
	DescontoGeral float64 `json:"descontoGeral"`
	TotalFinal    float64 `json:"totalFinal"`

	Status string `gorm:"not null;default:'pending'" json:"status"` // pending, approved, revised
	PDF    []byte `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
