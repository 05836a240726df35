package models

import "time"

// Filme is a catalog product: a window film priced per square meter.
type Filme struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nome      string  `gorm:"not null;uniqueIndex" json:"nome"`
	Preco     float64 `gorm:"not null" json:"preco"` // R$ por m²
	MaoDeObra float64 `json:"maoDeObra"`             // R$ por m², usado quando Preco é zero

	// Garantias (zero = não informada)
	GarantiaFabricante int `json:"garantiaFabricante"` // anos
	GarantiaMaoDeObra  int `json:"garantiaMaoDeObra"`  // dias

	// Dados técnicos (zero = não informado)
	UV        float64 `json:"uv"`        // % proteção UV
	IR        float64 `json:"ir"`        // % rejeição infravermelho
	VTL       float64 `json:"vtl"`       // % transmissão de luz visível
	TSER      float64 `json:"tser"`      // % rejeição total de energia solar
	Espessura float64 `json:"espessura"` // micra

	CamposCustom map[string]string `gorm:"serializer:json" json:"camposCustom,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
