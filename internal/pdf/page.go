package pdf

// pageChrome draws the repeating header and footer of content pages.
// The cover page has its own layout and never receives chrome.
type pageChrome struct {
	company CompanyData
	logo    *imageAsset
}

var corDivisor = RGB{221, 221, 221} // #dddddd

// Draw paints header and footer on the current page.
func (p *pageChrome) Draw(ctx *RenderContext) {
	p.header(ctx)
	p.footer(ctx)
}

func (p *pageChrome) header(ctx *RenderContext) {
	doc := ctx.Doc
	const startY = 12.0

	logoBottom := startY + 8
	if p.logo != nil {
		w, h := p.logo.fitHeight(8)
		p.logo.draw(doc, margin, startY, w, h)
		doc.SetFont("Helvetica", "B", 10)
		ctx.setTextColor(corpoTexto)
		ctx.Text(margin+w+4, startY+h/2+2, p.company.Responsavel)
		logoBottom = startY + h
	} else {
		doc.SetFont("Helvetica", "B", 10)
		ctx.setTextColor(corpoTexto)
		ctx.Text(margin, startY+4, p.company.Responsavel)
	}

	doc.SetFont("Helvetica", "", 8)
	right := ctx.PageW - margin
	ctx.TextRight(right, startY+1, "Tel: "+orNA(p.company.Telefone))
	ctx.TextRight(right, startY+5, "Email: "+orNA(p.company.Email))
	ctx.TextRight(right, startY+9, "Site: "+orNA(p.company.Site))

	lineY := max(logoBottom, startY+12) + 2
	ctx.setDrawColor(ctx.Theme.Primary)
	doc.SetLineWidth(0.5)
	doc.Line(margin, lineY, ctx.PageW-margin, lineY)
}

func (p *pageChrome) footer(ctx *RenderContext) {
	doc := ctx.Doc
	footerY := ctx.PageH - 15

	ctx.setDrawColor(corDivisor)
	doc.SetLineWidth(0.2)
	doc.Line(margin, footerY, ctx.PageW-margin, footerY)

	ctx.setTextColor(corpoTexto)
	doc.SetFont("Helvetica", "", 8)
	ctx.Text(margin, footerY+7, p.company.NomeFantasia)
	ctx.TextRight(ctx.PageW-margin, footerY+7, ptBR.Sprintf("Página %d", ctx.Page))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
