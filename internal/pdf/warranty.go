package pdf

import (
	"sort"
	"strconv"
)

// uniqueFilms resolves the films referenced by any option's items, in order
// of first appearance across the whole document.
func (r *renderer) uniqueFilms() []*FilmData {
	seen := make(map[string]bool)
	var films []*FilmData
	for _, opt := range r.data.Options {
		for _, item := range opt.Itens {
			if seen[item.Filme] {
				continue
			}
			seen[item.Filme] = true
			if f := r.film(item.Filme); f != nil {
				films = append(films, f)
			}
		}
	}
	return films
}

// warranties lists manufacturer and labor warranty per film that has either.
func (r *renderer) warranties(films []*FilmData) {
	ctx := r.ctx
	r.sectionTitle("Garantias")
	for _, f := range films {
		if f.GarantiaFabricante == 0 && f.GarantiaMaoDeObra == 0 {
			continue
		}
		ctx.EnsureRoom(22)
		ctx.Doc.SetFont("Helvetica", "B", 10)
		ctx.Text(margin, ctx.Y, f.Nome)
		ctx.Y += 6
		ctx.Doc.SetFont("Helvetica", "", 10)
		ctx.Text(margin, ctx.Y, "  - Garantia Fabricante: "+orNAInt(f.GarantiaFabricante)+" anos")
		ctx.Y += 6
		ctx.Text(margin, ctx.Y, "  - Garantia Mão de Obra: "+orNAInt(f.GarantiaMaoDeObra)+" dias")
		ctx.Y += 8
	}
}

type techLine struct {
	label string
	value string
}

// techLines builds the printable technical attributes of a film: the five
// standard fields when positive, then any custom pairs in key order.
func techLines(f *FilmData) []techLine {
	standard := []struct {
		label string
		value float64
		unit  string
	}{
		{"Proteção UV", f.UV, "%"},
		{"Rejeição de Infravermelho (IR)", f.IR, "%"},
		{"Transmissão de Luz Visível (VTL)", f.VTL, "%"},
		{"Rejeição Total de Energia Solar (TSER)", f.TSER, "%"},
		{"Espessura", f.Espessura, "mc"},
	}
	var lines []techLine
	for _, s := range standard {
		if s.value > 0 {
			lines = append(lines, techLine{s.label, formatDimension(s.value) + s.unit})
		}
	}
	keys := make([]string, 0, len(f.CamposCustom))
	for k := range f.CamposCustom {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, techLine{k, f.CamposCustom[k]})
	}
	return lines
}

// technicalSpecs lists the technical data of every film that has any.
func (r *renderer) technicalSpecs(films []*FilmData) {
	ctx := r.ctx
	var withData []*FilmData
	for _, f := range films {
		if len(techLines(f)) > 0 {
			withData = append(withData, f)
		}
	}
	if len(withData) == 0 {
		return
	}
	r.sectionTitle("Especificações Técnicas")
	for _, f := range withData {
		lines := techLines(f)
		ctx.EnsureRoom(12 + float64(len(lines))*5)

		ctx.Doc.SetFont("Helvetica", "B", 11)
		ctx.setTextColor(ctx.Theme.Secondary)
		ctx.Text(margin, ctx.Y, f.Nome)
		ctx.Y += 6

		ctx.Doc.SetFont("Helvetica", "", 9)
		ctx.setTextColor(corpoTexto)
		for _, l := range lines {
			ctx.Text(margin, ctx.Y, "  • "+l.label+": "+l.value)
			ctx.Y += 5
		}
		ctx.Y += 5
	}
	ctx.bodyFont()
}

func orNAInt(v int) string {
	if v == 0 {
		return "N/A"
	}
	return strconv.Itoa(v)
}
