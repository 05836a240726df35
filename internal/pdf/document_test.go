package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalID(t *testing.T) {
	issued := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	id := ProposalID(issued, 7)
	assert.Equal(t, "ORC-202608-7", id)
	assert.Equal(t, id, ProposalID(issued, 7), "identifier is reproducible")
	assert.Equal(t, "ORC-202601-00", ProposalID(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), 0))
}

func TestEffectiveSubtotal(t *testing.T) {
	// Trusted when present.
	assert.Equal(t, 150.0, effectiveSubtotal(TotalsData{Subtotal: 150, Final: 135, GeneralDiscount: 15}))
	// Reconstructed from final plus both discount totals when absent.
	assert.Equal(t, 150.0, effectiveSubtotal(TotalsData{Final: 135, GeneralDiscount: 10, ItemDiscounts: 5}))
	assert.Equal(t, 0.0, effectiveSubtotal(TotalsData{}))
}

func scenarioData() ProposalData {
	return ProposalData{
		Client: ClientData{
			ID:         7,
			Nome:       "Maria Souza",
			Telefone:   "(41) 99999-0000",
			Logradouro: "Rua das Flores",
			Numero:     "100",
			Bairro:     "Centro",
			Cidade:     "Curitiba",
			UF:         "PR",
			CEP:        "80000-000",
		},
		Company: CompanyData{
			NomeFantasia:  "Peliflex Insulfilm",
			Responsavel:   "Carlos Lima",
			Telefone:      "(41) 3333-0000",
			Email:         "contato@peliflex.com.br",
			Site:          "peliflex.com.br",
			Endereco:      "Av. Sete de Setembro, 2000, Curitiba - PR",
			CpfCnpj:       "12.345.678/0001-90",
			CorPrimaria:   "#0052FF",
			CorSecundaria: "#2D3748",
			Metodos: []PaymentMethodData{
				{Tipo: "pix", Ativo: true, ChavePix: "12.345.678/0001-90", TipoChavePix: "cnpj"},
				{Tipo: "parcelado_sem_juros", Ativo: true, ParcelasMax: 3},
			},
		},
		Options: []OptionData{{
			Nome: "Opção 1",
			Itens: []ItemData{
				{Ambiente: "Sala", Largura: 2, Altura: 1.5, Quantidade: 1, Filme: "Película G5"},
			},
			GeneralDiscount: DiscountData{Type: DiscountPercentage, Value: 10},
			Totals: TotalsData{
				TotalM2:         3,
				Subtotal:        150,
				GeneralDiscount: 15,
				Final:           135,
			},
		}},
		Catalog: []FilmData{
			{Nome: "Película G5", Preco: 50, GarantiaFabricante: 5, GarantiaMaoDeObra: 90, UV: 99},
		},
		IncludeCover: true,
		IssuedAt:     time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestProposalPDFSingleOption(t *testing.T) {
	raw, err := ProposalPDF(scenarioData())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
	assert.Greater(t, len(raw), 1000)
}

func TestRenderPagination(t *testing.T) {
	r := newRenderer(scenarioData())
	r.run()
	require.NoError(t, r.ctx.Doc.Error())
	assert.GreaterOrEqual(t, r.ctx.Page, 2, "cover page plus at least one content page")
	assert.Equal(t, r.ctx.Page, r.ctx.Doc.PageNo())
	assert.LessOrEqual(t, r.ctx.Y, r.ctx.PageH-bottomReserve,
		"cursor never rests inside the bottom reserve")
}

func TestProposalPDFCombinedNeverSums(t *testing.T) {
	data := scenarioData()
	second := data.Options[0]
	second.Nome = "Opção 2"
	second.Itens = []ItemData{
		{Ambiente: "Escritório", Largura: 3, Altura: 2, Quantidade: 2, Filme: "Película G5"},
	}
	second.Totals = TotalsData{TotalM2: 12, Subtotal: 600, Final: 600}
	data.Options = append(data.Options, second)
	data.Combined = true

	r := newRenderer(data)
	r.run()
	require.NoError(t, r.ctx.Doc.Error())
	assert.GreaterOrEqual(t, r.ctx.Page, 3, "combined options are separated by a page break")

	// Payment figures follow the first option's total only.
	lines := paymentLines(data.Options[0].Totals.Final, data.Company.Metodos)
	assert.Contains(t, lines[0], "R$ 135,00")
}

func TestProposalPDFAccentedAddress(t *testing.T) {
	data := scenarioData()
	data.Client.Logradouro = "Avenida São João"
	data.Client.Cidade = "São Paulo"
	data.Client.UF = "SP"
	raw, err := ProposalPDF(data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestProposalPDFWithoutCover(t *testing.T) {
	data := scenarioData()
	data.IncludeCover = false
	r := newRenderer(data)
	r.run()
	require.NoError(t, r.ctx.Doc.Error())
	assert.GreaterOrEqual(t, r.ctx.Page, 1)
}

func TestProposalPDFSkipsBrokenImages(t *testing.T) {
	data := scenarioData()
	data.Company.Logo = []byte("definitely not an image")
	data.Company.Assinatura = []byte{0x89, 0x50}
	raw, err := ProposalPDF(data)
	require.NoError(t, err, "undecodable images never abort the render")
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestUniqueFilmsFirstAppearanceAcrossOptions(t *testing.T) {
	data := scenarioData()
	data.Catalog = append(data.Catalog, FilmData{Nome: "Película G20", Preco: 40})
	second := OptionData{
		Nome: "Opção 2",
		Itens: []ItemData{
			{Filme: "Película G20", Largura: 1, Altura: 1, Quantidade: 1},
			{Filme: "Película G5", Largura: 1, Altura: 1, Quantidade: 1},
		},
	}
	data.Options = append(data.Options, second)

	r := newRenderer(data)
	films := r.uniqueFilms()
	require.Len(t, films, 2)
	assert.Equal(t, "Película G5", films[0].Nome)
	assert.Equal(t, "Película G20", films[1].Nome)
}
