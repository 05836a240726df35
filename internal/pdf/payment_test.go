package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallmentFlat(t *testing.T) {
	assert.Equal(t, 400.0, InstallmentFlat(1200, 3))
	assert.Equal(t, 0.0, InstallmentFlat(1200, 0))
}

func TestInstallmentWithInterest(t *testing.T) {
	// 1000 × (0.02·1.02²)/(1.02²−1) ≈ 515.05
	assert.InDelta(t, 515.05, InstallmentWithInterest(1000, 2, 2), 0.005)
	assert.Equal(t, 0.0, InstallmentWithInterest(1000, 0, 2))
	assert.Equal(t, 0.0, InstallmentWithInterest(1000, 2, 0))
}

func TestAdvanceAmount(t *testing.T) {
	assert.Equal(t, 300.0, AdvanceAmount(1000, 30))
	assert.Equal(t, 0.0, AdvanceAmount(1000, 0))
}

func TestPaymentLines(t *testing.T) {
	methods := []PaymentMethodData{
		{Tipo: "pix", Ativo: true, ChavePix: "11999990000", TipoChavePix: "telefone", NomeResponsavelPix: "João Silva"},
		{Tipo: "boleto", Ativo: true},
		{Tipo: "parcelado_sem_juros", Ativo: true, ParcelasMax: 3},
		{Tipo: "parcelado_com_juros", Ativo: false, ParcelasMax: 10, Juros: 2},
		{Tipo: "adiantamento", Ativo: true, Porcentagem: 50},
		{Tipo: "observacao", Ativo: true, Texto: ""},
	}
	lines := paymentLines(1200, methods)
	assert.Equal(t, []string{
		"• Pix: R$ 1.200,00",
		"  Chave: 11999990000 (Telefone)",
		"  Nome: João Silva",
		"• Boleto Bancário: R$ 1.200,00",
		"• Parcelado s/ Juros: 3x de R$ 400,00",
		"• Adiantamento (50%): R$ 600,00",
	}, lines)
}

func TestPaymentLinesWithInterest(t *testing.T) {
	lines := paymentLines(1000, []PaymentMethodData{
		{Tipo: "parcelado_com_juros", Ativo: true, ParcelasMax: 2, Juros: 2},
	})
	assert.Equal(t, []string{"• Parcelado c/ Juros: 2x de R$ 515,05 (Taxa de 2%)"}, lines)
}

func TestConditionLines(t *testing.T) {
	lines := conditionLines(CompanyData{PrazoPagamento: "50% na assinatura"})
	assert.Equal(t, []string{
		"Prazo de Pagamento: 50% na assinatura",
		"Prazo de Instalação: A ser definido em comum acordo.",
		"Validade da Proposta: 60 dias a partir da data de emissão.",
		"Observações: Quaisquer alterações no projeto podem resultar em ajustes no orçamento.",
	}, lines)

	lines = conditionLines(CompanyData{ValidadeDias: 30})
	assert.Len(t, lines, 3)
	assert.Equal(t, "Validade da Proposta: 30 dias a partir da data de emissão.", lines[1])
}
