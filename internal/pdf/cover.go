package pdf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

// ProposalID derives the deterministic cover identifier from the issue date
// and client id: "ORC-{year}{MM}-{id}", with "00" for unsaved clients.
func ProposalID(issuedAt time.Time, clientID uint) string {
	id := "00"
	if clientID != 0 {
		id = strconv.FormatUint(uint64(clientID), 10)
	}
	return fmt.Sprintf("ORC-%d%02d-%s", issuedAt.Year(), int(issuedAt.Month()), id)
}

// cover draws the bespoke first page: diagonal banner in the theme colors,
// logo and company contacts on top, date and proposal identifier, the large
// title block and the "Preparado para/por" columns.
func (r *renderer) cover() {
	ctx := r.ctx
	doc := ctx.Doc
	doc.AddPage()
	ctx.Page++

	textoEscuro := RGB{50, 50, 50}

	// Banner: secondary polygon below, primary overlay on top.
	ctx.setFillColor(ctx.Theme.Secondary)
	doc.Polygon([]fpdf.PointType{
		{X: 0, Y: 0},
		{X: ctx.PageW, Y: 0},
		{X: ctx.PageW, Y: 60},
		{X: 0, Y: 100},
	}, "F")
	ctx.setFillColor(ctx.Theme.Primary)
	doc.Polygon([]fpdf.PointType{
		{X: 0, Y: 0},
		{X: ctx.PageW - 60, Y: 0},
		{X: 0, Y: 90},
	}, "F")

	if r.logo != nil {
		w, h := r.logo.fit(68, 25.5)
		r.logo.draw(doc, margin, margin, w, h)
	}
	ctx.setTextColor(textoClaro)
	doc.SetFont("Helvetica", "B", 12)
	ctx.Text(margin, margin+30, r.data.Company.NomeFantasia)
	doc.SetFont("Helvetica", "", 9)
	ctx.Text(margin, margin+35, r.data.Company.Telefone)
	ctx.Text(margin, margin+39, r.data.Company.Email)

	right := ctx.PageW - margin
	doc.SetFont("Helvetica", "", 9)
	ctx.setTextColor(textoEscuro)
	ctx.TextRight(right, margin+5, "Data: "+r.data.IssuedAt.Format("02/01/2006"))
	ctx.TextRight(right, margin+10, "Orçamento Nº: "+ProposalID(r.data.IssuedAt, r.data.Client.ID))

	y := ctx.PageH/2 + 30
	doc.SetFont("Helvetica", "", 14)
	ctx.TextRight(right, y, "PROPOSTA DE ORÇAMENTO")
	y += 20
	doc.SetFont("Helvetica", "B", 48)
	ctx.setTextColor(ctx.Theme.Primary)
	ctx.TextRight(right, y, "ORÇAMENTO")

	lineY := ctx.PageH - 80
	ctx.setDrawColor(ctx.Theme.Primary)
	doc.SetLineWidth(1)
	doc.Line(margin, lineY, ctx.PageW-margin, lineY)

	colRight := ctx.PageW/2 + 10
	y = lineY + 10
	doc.SetFont("Helvetica", "B", 10)
	ctx.setTextColor(textoEscuro)
	ctx.Text(margin, y, "Preparado para:")
	ctx.Text(colRight, y, "Preparado por:")

	y += 7
	doc.SetFont("Helvetica", "", 10)
	ctx.Text(margin, y, r.data.Client.Nome)
	ctx.Text(colRight, y, r.data.Company.Responsavel)
	y += 5
	ctx.Text(margin, y, r.data.Client.Telefone)
	ctx.Text(colRight, y, r.data.Company.NomeFantasia)
	y += 5
	// The client address wraps inside its column; the company address is
	// assumed short and stays on one line.
	colWidth := ctx.PageW/2 - margin - 10
	for _, line := range wrapText(ctx, formatAddress(r.data.Client), colWidth) {
		doc.Text(margin, y, line)
		y += 5
	}
	ctx.Text(colRight, lineY+27, r.data.Company.Endereco)
}

// wrapText splits s into lines that each fit the given width under the
// current font. Splitting happens on the raw UTF-8 string; SplitText indexes
// rune values into the core-font width table, so it must never see cp1252
// bytes. The returned lines are translated for drawing with Doc.Text directly.
func wrapText(ctx *RenderContext, s string, width float64) []string {
	if s == "" {
		return nil
	}
	lines := ctx.Doc.SplitText(s, width)
	for i, line := range lines {
		lines[i] = ctx.Tr(line)
	}
	return lines
}
