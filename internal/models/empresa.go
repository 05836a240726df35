package models

import "time"

// Payment method kinds accepted in Empresa.MetodosPagamento.
const (
	PagamentoPix               = "pix"
	PagamentoBoleto            = "boleto"
	PagamentoParceladoSemJuros = "parcelado_sem_juros"
	PagamentoParceladoComJuros = "parcelado_com_juros"
	PagamentoAdiantamento      = "adiantamento"
	PagamentoObservacao        = "observacao"
)

// MetodoPagamento is one configured payment method. Stored as JSON inside
// Empresa; only the fields relevant to each Tipo are filled.
type MetodoPagamento struct {
	Tipo               string  `json:"tipo"`
	Ativo              bool    `json:"ativo"`
	ParcelasMax        int     `json:"parcelas_max,omitempty"`
	Juros              float64 `json:"juros,omitempty"`       // % ao mês
	Porcentagem        float64 `json:"porcentagem,omitempty"` // % de adiantamento
	Texto              string  `json:"texto,omitempty"`
	ChavePix           string  `json:"chave_pix,omitempty"`
	TipoChavePix       string  `json:"tipo_chave_pix,omitempty"` // cpf | cnpj | telefone | email | aleatoria
	NomeResponsavelPix string  `json:"nome_responsavel_pix,omitempty"`
}

// Empresa holds the company profile printed on every proposal.
type Empresa struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	NomeFantasia string `gorm:"not null" json:"nomeFantasia"` // nome da empresa no documento
	Responsavel  string `gorm:"not null" json:"responsavel"`  // quem prepara/assina a proposta
	Telefone     string `json:"telefone"`
	Email        string `json:"email"`
	Site         string `json:"site"`
	Endereco     string `json:"endereco"`
	CpfCnpj      string `json:"cpfCnpj"`

	// Cores da marca em hex (#RRGGBB); o renderizador aplica padrões quando inválidas.
	CorPrimaria   string `gorm:"size:7" json:"corPrimaria"`
	CorSecundaria string `gorm:"size:7" json:"corSecundaria"`

	Logo       []byte `json:"-"` // PNG/JPEG
	Assinatura []byte `json:"-"` // PNG/JPEG

	MetodosPagamento []MetodoPagamento `gorm:"serializer:json" json:"metodosPagamento"`

	ValidadeDias   int    `gorm:"default:60" json:"validadeDias"`
	PrazoPagamento string `json:"prazoPagamento"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
