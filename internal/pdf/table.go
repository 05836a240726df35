package pdf

import "strconv"

// Column layout of the line-item table, widths in mm (sums to the full
// content width of 180).
var tableCols = []struct {
	title string
	width float64
	align string
}{
	{"Item", 10, "C"},
	{"Ambiente", 38, "L"},
	{"Dimensões", 24, "C"},
	{"Qtd", 10, "C"},
	{"M²", 16, "R"},
	{"Preço Unit.", 28, "R"},
	{"Desconto", 24, "R"},
	{"Preço Final", 30, "R"},
}

const tableRowH = 6.0

// tableRow is one computed line of the table.
type tableRow struct {
	index           int
	ambiente        string
	dims            string
	quantidade      int
	area            float64
	base            float64
	discountAmount  float64
	discountDisplay string
	final           float64
}

// buildRow computes one row. Unknown films price at zero; discounts never
// drive the final price below zero.
func buildRow(index int, item ItemData, film *FilmData) tableRow {
	area := item.Largura * item.Altura * float64(item.Quantidade)
	var unit float64
	if film != nil {
		switch {
		case film.Preco > 0:
			unit = film.Preco
		case film.MaoDeObra > 0:
			unit = film.MaoDeObra
		}
	}
	base := unit * area

	var discount float64
	display := "-"
	if d := item.Discount; d != nil && d.Value > 0 {
		switch d.Type {
		case DiscountPercentage:
			discount = base * d.Value / 100
			display = formatNumber(d.Value) + "%"
		case DiscountFixed:
			discount = d.Value
			display = formatBRL(d.Value)
		}
	}
	final := base - discount
	if final < 0 {
		final = 0
	}
	return tableRow{
		index:           index,
		ambiente:        item.Ambiente,
		dims:            formatDimension(item.Largura) + "x" + formatDimension(item.Altura),
		quantidade:      item.Quantidade,
		area:            area,
		base:            base,
		discountAmount:  discount,
		discountDisplay: display,
		final:           final,
	}
}

// groupByFilm splits the items by film name, keeping the order of first
// occurrence.
func groupByFilm(items []ItemData) (names []string, groups map[string][]ItemData) {
	groups = make(map[string][]ItemData)
	for _, it := range items {
		if _, seen := groups[it.Filme]; !seen {
			names = append(names, it.Filme)
		}
		groups[it.Filme] = append(groups[it.Filme], it)
	}
	return names, groups
}

// optionTable renders the grouped line-item tables of one option.
// multi selects the "{Option} - {Film}" subtitle used when the document
// carries more than one option.
func (r *renderer) optionTable(opt OptionData, multi bool) {
	ctx := r.ctx
	names, groups := groupByFilm(opt.Itens)
	for _, name := range names {
		ctx.EnsureRoom(35)

		subtitle := name
		if multi {
			subtitle = opt.Nome + " - " + name
		}
		ctx.Doc.SetFont("Helvetica", "B", 12)
		ctx.setTextColor(ctx.Theme.Secondary)
		ctx.Text(margin, ctx.Y, subtitle)
		ctx.Y += 8

		r.tableHeader()
		film := r.film(name)
		for i, item := range groups[name] {
			if ctx.WouldOverflow(tableRowH) {
				ctx.AdvancePage()
				r.tableHeader()
			}
			r.tableRowDraw(buildRow(i+1, item, film))
		}
		ctx.Y += 10
	}
	ctx.bodyFont()
}

func (r *renderer) tableHeader() {
	ctx := r.ctx
	doc := ctx.Doc
	doc.SetFont("Helvetica", "B", 8)
	ctx.setFillColor(ctx.Theme.Primary)
	ctx.setTextColor(textoClaro)
	ctx.setDrawColor(corDivisor)
	doc.SetLineWidth(0.2)
	doc.SetXY(margin, ctx.Y)
	for _, col := range tableCols {
		doc.CellFormat(col.width, tableRowH, ctx.Tr(col.title), "1", 0, "C", true, 0, "")
	}
	ctx.Y += tableRowH
}

func (r *renderer) tableRowDraw(row tableRow) {
	ctx := r.ctx
	doc := ctx.Doc
	doc.SetFont("Helvetica", "", 8)
	ctx.setTextColor(corpoTexto)
	doc.SetXY(margin, ctx.Y)
	cells := []string{
		strconv.Itoa(row.index),
		row.ambiente,
		row.dims,
		strconv.Itoa(row.quantidade),
		formatNumber(row.area),
		formatBRL(row.base),
		row.discountDisplay,
		formatBRL(row.final),
	}
	for i, col := range tableCols {
		doc.CellFormat(col.width, tableRowH, ctx.Tr(cells[i]), "1", 0, col.align, false, 0, "")
	}
	ctx.Y += tableRowH
}
