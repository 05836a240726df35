package pdf

// signatureBlock places the signature near the bottom of the last page, or
// near the top of a fresh page when the current one has no room. Skipped
// entirely when no usable signature image exists.
func (r *renderer) signatureBlock() {
	if r.signature == nil {
		return
	}
	ctx := r.ctx
	doc := ctx.Doc
	const (
		blockHeight = 35.0
		imageHeight = 15.0
	)

	if ctx.WouldOverflow(blockHeight) {
		ctx.AdvancePage()
		ctx.Y = ctx.PageH - 80
	} else {
		ctx.Y = max(ctx.Y+20, ctx.PageH-100)
	}

	w, h := r.signature.fitHeight(imageHeight)
	r.signature.draw(doc, ctx.PageW/2-w/2, ctx.Y, w, h)

	lineY := ctx.Y + imageHeight + 2
	ctx.setDrawColor(corpoTexto)
	doc.SetLineWidth(0.2)
	doc.Line(ctx.PageW/2-40, lineY, ctx.PageW/2+40, lineY)

	doc.SetFont("Helvetica", "", 10)
	ctx.setTextColor(corpoTexto)
	ctx.TextCenter(ctx.PageW/2, lineY+5, r.data.Company.Responsavel)

	doc.SetFont("Helvetica", "", 8)
	ctx.setTextColor(textoSuave)
	ctx.TextCenter(ctx.PageW/2, lineY+10, r.data.Company.CpfCnpj)

	ctx.Y = lineY + 12
	ctx.bodyFont()
}
