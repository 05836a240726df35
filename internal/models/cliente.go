package models

import "time"

// Cliente entity
type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"not null;index" json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	CpfCnpj  string `gorm:"index" json:"cpfCnpj"`
	// Endereço estruturado (padrão brasileiro)
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `gorm:"size:2" json:"uf"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
