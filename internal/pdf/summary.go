package pdf

// effectiveSubtotal returns the option subtotal, reconstructing it from the
// final total plus both discount totals when the upstream value is absent.
func effectiveSubtotal(t TotalsData) float64 {
	if t.Subtotal == 0 && t.Final > 0 {
		return t.Final + t.ItemDiscounts + t.GeneralDiscount
	}
	return t.Subtotal
}

// optionSummary renders the totals block of one option. Each option shows
// only its own figures; combined documents never aggregate across options.
func (r *renderer) optionSummary(opt OptionData) {
	ctx := r.ctx
	doc := ctx.Doc
	ctx.EnsureRoom(50)

	doc.SetFont("Helvetica", "B", 12)
	ctx.setTextColor(ctx.Theme.Secondary)
	ctx.Text(margin, ctx.Y, "Total da Opção: "+opt.Nome)
	ctx.Y += 10

	right := ctx.PageW - margin
	y := ctx.Y
	doc.SetFont("Helvetica", "", 10)
	ctx.setTextColor(corpoTexto)
	ctx.Text(margin, y, "Subtotal:")
	ctx.TextRight(right, y, formatBRL(effectiveSubtotal(opt.Totals)))

	ctx.Text(margin, y+7, "Descontos nos Itens:")
	ctx.TextRight(right, y+7, "- "+formatBRL(opt.Totals.ItemDiscounts))

	ctx.Text(margin, y+14, "Desconto Geral:")
	ctx.TextRight(right, y+14, "- "+formatBRL(opt.Totals.GeneralDiscount))

	ctx.setDrawColor(ctx.Theme.Primary)
	doc.SetLineWidth(0.2)
	doc.Line(margin, y+18, right, y+18)

	doc.SetFont("Helvetica", "B", 12)
	ctx.setTextColor(ctx.Theme.Primary)
	ctx.Text(margin, y+25, "Valor Total:")
	ctx.TextRight(right, y+25, formatBRL(opt.Totals.Final))

	ctx.Y = y + 40
	ctx.bodyFont()
}
