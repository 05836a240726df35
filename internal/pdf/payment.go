package pdf

import (
	"fmt"
	"math"
	"strconv"
)

// InstallmentFlat is the no-interest installment amount: total divided by
// the installment count, zero when the count is not configured.
func InstallmentFlat(total float64, installments int) float64 {
	if installments == 0 {
		return 0
	}
	return total / float64(installments)
}

// InstallmentWithInterest is the amortized installment for a monthly rate
// given in percent: total × (i(1+i)^n) / ((1+i)^n − 1). Missing count or
// rate yields zero.
func InstallmentWithInterest(total float64, installments int, rate float64) float64 {
	if installments == 0 || rate == 0 {
		return 0
	}
	i := rate / 100
	pow := math.Pow(1+i, float64(installments))
	return total * (i * pow) / (pow - 1)
}

// AdvanceAmount is the up-front payment: total × percentage/100, zero when
// the percentage is not configured.
func AdvanceAmount(total, percentage float64) float64 {
	if percentage == 0 {
		return 0
	}
	return total * percentage / 100
}

var pixKeyLabels = map[string]string{
	"cpf":       "CPF",
	"cnpj":      "CNPJ",
	"telefone":  "Telefone",
	"email":     "Email",
	"aleatoria": "Chave Aleatória",
}

// paymentLines expands the active payment methods into printable lines
// against the given total.
func paymentLines(total float64, methods []PaymentMethodData) []string {
	var lines []string
	for _, m := range methods {
		if !m.Ativo {
			continue
		}
		switch m.Tipo {
		case "pix":
			lines = append(lines, "• Pix: "+formatBRL(total))
			if m.ChavePix != "" {
				line := "  Chave: " + m.ChavePix
				if label := pixKeyLabels[m.TipoChavePix]; label != "" {
					line += " (" + label + ")"
				}
				lines = append(lines, line)
			}
			if m.NomeResponsavelPix != "" {
				lines = append(lines, "  Nome: "+m.NomeResponsavelPix)
			}
		case "boleto":
			lines = append(lines, "• Boleto Bancário: "+formatBRL(total))
		case "parcelado_sem_juros":
			v := InstallmentFlat(total, m.ParcelasMax)
			lines = append(lines, fmt.Sprintf("• Parcelado s/ Juros: %dx de %s", m.ParcelasMax, formatBRL(v)))
		case "parcelado_com_juros":
			v := InstallmentWithInterest(total, m.ParcelasMax, m.Juros)
			lines = append(lines, fmt.Sprintf("• Parcelado c/ Juros: %dx de %s (Taxa de %s%%)",
				m.ParcelasMax, formatBRL(v), formatDimension(m.Juros)))
		case "adiantamento":
			v := AdvanceAmount(total, m.Porcentagem)
			lines = append(lines, fmt.Sprintf("• Adiantamento (%s%%): %s", formatDimension(m.Porcentagem), formatBRL(v)))
		case "observacao":
			if m.Texto != "" {
				lines = append(lines, "• Observação: "+m.Texto)
			}
		}
	}
	return lines
}

// conditionLines builds the business-conditions text block.
func conditionLines(c CompanyData) []string {
	validity := c.ValidadeDias
	if validity == 0 {
		validity = 60
	}
	var lines []string
	if c.PrazoPagamento != "" {
		lines = append(lines, "Prazo de Pagamento: "+c.PrazoPagamento)
	}
	lines = append(lines,
		"Prazo de Instalação: A ser definido em comum acordo.",
		"Validade da Proposta: "+strconv.Itoa(validity)+" dias a partir da data de emissão.",
		"Observações: Quaisquer alterações no projeto podem resultar em ajustes no orçamento.",
	)
	return lines
}

// paymentSection renders payment methods and conditions. The whole section
// is height-estimated first so it never starts right before a page break.
// Combined documents compute figures against the first option's total: the
// client picks one option, so the first acts as the reference price.
func (r *renderer) paymentSection() {
	ctx := r.ctx
	total := 0.0
	if len(r.data.Options) > 0 {
		total = r.data.Options[0].Totals.Final
	}
	payments := paymentLines(total, r.data.Company.Metodos)
	conditions := conditionLines(r.data.Company)

	const (
		titleHeight          = 25.0
		spacingAfterPayments = 7.0
	)
	estimated := titleHeight + float64(len(payments))*lineHeight +
		spacingAfterPayments + float64(len(conditions))*lineHeight
	if ctx.WouldOverflow(estimated) {
		ctx.AdvancePage()
	}

	r.sectionTitle("Condições de Pagamento e Informações")
	for _, line := range payments {
		ctx.Text(margin, ctx.Y, line)
		ctx.Y += lineHeight
	}
	ctx.Y += spacingAfterPayments

	ctx.Doc.SetFont("Helvetica", "", 9)
	ctx.setTextColor(textoSuave)
	for _, line := range conditions {
		ctx.Text(margin, ctx.Y, line)
		ctx.Y += lineHeight
	}
	ctx.bodyFont()
}
