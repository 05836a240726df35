package pdf

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RGB is a resolved theme color.
type RGB struct {
	R, G, B int
}

// Theme colors applied when the configured hex strings do not parse.
const (
	DefaultPrimaryHex   = "#0052FF"
	DefaultSecondaryHex = "#2D3748"
)

var (
	corpoTexto = RGB{33, 37, 41}    // body text
	textoClaro = RGB{255, 255, 255} // on banner
	textoSuave = RGB{100, 100, 100} // muted conditions text
)

// Theme is the pair of brand colors resolved for one render pass.
type Theme struct {
	Primary   RGB
	Secondary RGB
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatNumber renders v with pt-BR separators and exactly two decimals
// ("1.234,50"), matching the rest of the document.
func formatNumber(v float64) string {
	return ptBR.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// formatBRL renders a currency amount ("R$ 1.234,50").
func formatBRL(v float64) string {
	return "R$ " + formatNumber(v)
}

// formatDimension renders a measurement component the way it was typed:
// no trailing zeros, comma decimal separator.
func formatDimension(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', -1, 64), ".", ",")
}

// HexToRGB parses "#RRGGBB" (the leading # optional). It never panics; the
// second return reports whether the input was a valid color.
func HexToRGB(hex string) (RGB, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}, true
}

// hexOrDefault resolves a configured color with a total fallback.
func hexOrDefault(hex, fallback string) RGB {
	if c, ok := HexToRGB(hex); ok {
		return c
	}
	c, _ := HexToRGB(fallback)
	return c
}

// resolveTheme builds the document theme from the company colors.
func resolveTheme(c CompanyData) Theme {
	return Theme{
		Primary:   hexOrDefault(c.CorPrimaria, DefaultPrimaryHex),
		Secondary: hexOrDefault(c.CorSecundaria, DefaultSecondaryHex),
	}
}

// formatAddress joins the structured client address into one comma-separated
// line, skipping empty parts: "Rua X, 12, Centro, Cidade - UF, 00000-000".
func formatAddress(c ClientData) string {
	street := c.Logradouro
	if c.Logradouro != "" && c.Numero != "" {
		street = c.Logradouro + ", " + c.Numero
	}
	city := c.Cidade
	if c.Cidade != "" && c.UF != "" {
		city = c.Cidade + " - " + c.UF
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{street, c.Bairro, city, c.CEP} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
