package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// ProposalPDF renders the whole document and returns its bytes. Layout
// failures abort the render and surface here once; unusable images are
// skipped and never fail the document.
func ProposalPDF(data ProposalData) ([]byte, error) {
	r := newRenderer(data)
	r.run()
	var buf bytes.Buffer
	if err := r.ctx.Doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("gerar proposta: %w", err)
	}
	return buf.Bytes(), nil
}

// renderer owns one render pass: the context, the resolved catalog and the
// decoded image assets.
type renderer struct {
	ctx     *RenderContext
	data    ProposalData
	catalog map[string]*FilmData
	chrome  *pageChrome

	logo      *imageAsset
	signature *imageAsset
}

func newRenderer(data ProposalData) *renderer {
	if data.IssuedAt.IsZero() {
		data.IssuedAt = time.Now()
	}
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Proposta de Orçamento", true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(margin, margin, margin)

	ctx := newRenderContext(doc, resolveTheme(data.Company))

	catalog := make(map[string]*FilmData, len(data.Catalog))
	for i := range data.Catalog {
		catalog[data.Catalog[i].Nome] = &data.Catalog[i]
	}

	r := &renderer{
		ctx:       ctx,
		data:      data,
		catalog:   catalog,
		logo:      registerImage(doc, "logo", data.Company.Logo),
		signature: registerImage(doc, "assinatura", data.Company.Assinatura),
	}
	r.chrome = &pageChrome{company: data.Company, logo: r.logo}
	ctx.OnNewPage = r.chrome.Draw
	return r
}

// film resolves a catalog entry by name; nil for unknown names.
func (r *renderer) film(name string) *FilmData {
	return r.catalog[name]
}

// run drives the full pipeline: cover, per-option tables and totals,
// warranty and technical sections, payment conditions and signature.
func (r *renderer) run() {
	ctx := r.ctx
	// Helvetica must be active before any text metric is taken.
	ctx.bodyFont()

	if r.data.IncludeCover {
		r.cover()
	}
	ctx.AdvancePage()
	r.sectionTitle("Orçamento Detalhado")

	multi := len(r.data.Options) > 1
	for i, opt := range r.data.Options {
		r.optionTable(opt, multi)
		r.optionSummary(opt)
		if r.data.Combined && i < len(r.data.Options)-1 {
			ctx.AdvancePage()
			r.sectionTitle("Orçamento Detalhado (continuação)")
		}
	}
	if r.data.Combined && multi {
		r.disclaimer()
	}

	films := r.uniqueFilms()
	r.warranties(films)
	r.technicalSpecs(films)
	r.paymentSection()
	r.signatureBlock()
}

// sectionTitle draws the themed divider and heading that opens a section,
// breaking the page first when too close to the bottom.
func (r *renderer) sectionTitle(title string) {
	ctx := r.ctx
	ctx.EnsureRoom(15)
	ctx.setDrawColor(ctx.Theme.Secondary)
	ctx.Doc.SetLineWidth(0.5)
	ctx.Doc.Line(margin, ctx.Y, ctx.PageW-margin, ctx.Y)
	ctx.Y += 10
	ctx.setTextColor(ctx.Theme.Secondary)
	ctx.Doc.SetFont("Helvetica", "B", 14)
	ctx.Text(margin, ctx.Y, title)
	ctx.Y += 15
	ctx.bodyFont()
}

// disclaimer states that the options of a combined document are mutually
// exclusive alternatives. Their totals are deliberately never summed.
func (r *renderer) disclaimer() {
	ctx := r.ctx
	text := "As opções apresentadas neste documento são alternativas independentes. " +
		"Os valores totais não são cumulativos: considere apenas o valor da opção escolhida."
	ctx.Doc.SetFont("Helvetica", "I", 9)
	ctx.setTextColor(textoSuave)
	lines := wrapText(ctx, text, ctx.PageW-2*margin)
	ctx.EnsureRoom(float64(len(lines))*5 + 8)
	for _, line := range lines {
		ctx.Doc.Text(margin, ctx.Y, line)
		ctx.Y += 5
	}
	ctx.Y += 8
	ctx.bodyFont()
}
