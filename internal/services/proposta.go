package services

import (
	"github.com/peliflex/orcamentos/internal/models"
)

// PropostaService encapsulates proposal pricing logic. The PDF renderer
// trusts these figures; they are computed once per option here.
type PropostaService struct{}

func NewPropostaService() *PropostaService { return &PropostaService{} }

// Totals is the self-contained pricing summary of one option. Totals of
// different options are never aggregated.
type Totals struct {
	TotalM2         float64
	Subtotal        float64
	ItemDiscounts   float64
	GeneralDiscount float64
	Final           float64
}

// ComputeTotals prices an option against the film catalog. Per-item
// discounts are capped at the line amount; the general discount applies to
// the post-item-discount price and the final total never goes negative.
func (s *PropostaService) ComputeTotals(opt *models.Opcao, catalog []models.Filme) Totals {
	byName := make(map[string]*models.Filme, len(catalog))
	for i := range catalog {
		byName[catalog[i].Nome] = &catalog[i]
	}

	var t Totals
	for _, m := range opt.Medidas {
		area := m.Largura * m.Altura * float64(m.Quantidade)
		t.TotalM2 += area

		var unit float64
		if f := byName[m.Pelicula]; f != nil {
			switch {
			case f.Preco > 0:
				unit = f.Preco
			case f.MaoDeObra > 0:
				unit = f.MaoDeObra
			}
		}
		base := unit * area
		t.Subtotal += base

		var discount float64
		if m.DescontoValor > 0 {
			switch m.DescontoTipo {
			case models.DescontoPercentual:
				discount = base * m.DescontoValor / 100
			case models.DescontoFixo:
				discount = m.DescontoValor
			}
		}
		if discount > base {
			discount = base
		}
		t.ItemDiscounts += discount
	}

	afterItems := t.Subtotal - t.ItemDiscounts
	if opt.DescontoGeralValor > 0 {
		switch opt.DescontoGeralTipo {
		case models.DescontoPercentual:
			t.GeneralDiscount = afterItems * opt.DescontoGeralValor / 100
		case models.DescontoFixo:
			t.GeneralDiscount = min(opt.DescontoGeralValor, afterItems)
		}
	}
	t.Final = afterItems - t.GeneralDiscount
	if t.Final < 0 {
		t.Final = 0
	}
	return t
}
