package models

import "time"

// Discount kinds shared by measurements and options.
const (
	DescontoPercentual = "percentage"
	DescontoFixo       = "fixed"
)

// Opcao is one independently priced variant of a proposal ("Opção 1", "Opção 2").
// Each option carries its own measurements and one general discount applied
// after the per-item discounts.
type Opcao struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ClienteID uint     `gorm:"not null;index" json:"clienteId"`
	Cliente   Cliente  `gorm:"foreignKey:ClienteID" json:"-"`
	Nome      string   `gorm:"not null" json:"nome"`
	Medidas   []Medida `gorm:"foreignKey:OpcaoID" json:"medidas"`

	DescontoGeralValor float64 `json:"descontoGeralValor"`
	DescontoGeralTipo  string  `json:"descontoGeralTipo"` // percentage | fixed

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Medida is a single measured surface inside an option.
type Medida struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OpcaoID    uint    `gorm:"not null;index" json:"opcaoId"`
	Ambiente   string  `json:"ambiente"`
	Largura    float64 `gorm:"not null" json:"largura"` // metros
	Altura     float64 `gorm:"not null" json:"altura"`  // metros
	Quantidade int     `gorm:"not null;default:1" json:"quantidade"`
	Pelicula   string  `gorm:"not null" json:"pelicula"` // nome do filme no catálogo

	DescontoValor float64 `json:"descontoValor"`
	DescontoTipo  string  `json:"descontoTipo"` // percentage | fixed

	Observacao string `json:"observacao"`
}
