// Package pdf renders commercial proposals ("orçamentos") as A4 PDF
// documents: cover page, per-option line-item tables and totals, warranty
// and technical sections, payment conditions and signature block.
package pdf

import "time"

// DiscountType discriminates the two discount encodings.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// DiscountData is a tagged discount value. Percentage values are 0..100,
// fixed values are absolute R$ amounts.
type DiscountData struct {
	Type  DiscountType
	Value float64
}

// ItemData is a single measured surface of an option.
type ItemData struct {
	Ambiente   string
	Largura    float64 // metros
	Altura     float64 // metros
	Quantidade int
	Filme      string // catalog name; unknown names price at zero
	Discount   *DiscountData
}

// FilmData carries the catalog fields the renderer reads: pricing, warranty
// and technical attributes. Zero values mean "not informed".
type FilmData struct {
	Nome               string
	Preco              float64 // R$/m²
	MaoDeObra          float64 // R$/m², fallback when Preco is zero
	GarantiaFabricante int     // anos
	GarantiaMaoDeObra  int     // dias
	UV                 float64
	IR                 float64
	VTL                float64
	TSER               float64
	Espessura          float64
	CamposCustom       map[string]string
}

// TotalsData is computed upstream; the renderer trusts these figures.
// A zero Subtotal alongside a nonzero Final is treated as absent and
// reconstructed from Final plus both discount totals.
type TotalsData struct {
	TotalM2         float64
	Subtotal        float64
	ItemDiscounts   float64
	GeneralDiscount float64
	Final           float64
}

// OptionData is one independently priced proposal variant.
type OptionData struct {
	Nome            string
	Itens           []ItemData
	GeneralDiscount DiscountData
	Totals          TotalsData
}

// PaymentMethodData mirrors the company payment-method configuration.
type PaymentMethodData struct {
	Tipo               string
	Ativo              bool
	ParcelasMax        int
	Juros              float64
	Porcentagem        float64
	Texto              string
	ChavePix           string
	TipoChavePix       string
	NomeResponsavelPix string
}

// ClientData identifies the proposal recipient.
type ClientData struct {
	ID         uint
	Nome       string
	Telefone   string
	CEP        string
	Logradouro string
	Numero     string
	Bairro     string
	Cidade     string
	UF         string
}

// CompanyData identifies the issuer, its branding and commercial terms.
type CompanyData struct {
	NomeFantasia   string
	Responsavel    string
	Telefone       string
	Email          string
	Site           string
	Endereco       string
	CpfCnpj        string
	CorPrimaria    string // hex
	CorSecundaria  string // hex
	Logo           []byte
	Assinatura     []byte
	Metodos        []PaymentMethodData
	ValidadeDias   int // default 60 when zero
	PrazoPagamento string
}

// ProposalData is the full input of one render call. A render is a single
// synchronous pass; the data is never mutated.
type ProposalData struct {
	Client  ClientData
	Company CompanyData
	Options []OptionData
	Catalog []FilmData

	// IncludeCover draws the bespoke first page. Combined marks a document
	// assembling several saved options for side-by-side comparison; their
	// totals are alternatives and are never summed.
	IncludeCover bool
	Combined     bool

	// IssuedAt stamps the cover date and the proposal identifier.
	// The zero value means time.Now().
	IssuedAt time.Time
}
