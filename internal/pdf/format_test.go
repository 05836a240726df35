package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "150,00", formatNumber(150))
	assert.Equal(t, "1.234,50", formatNumber(1234.5))
	assert.Equal(t, "0,00", formatNumber(0))
	assert.Equal(t, "1.000.000,99", formatNumber(1000000.99))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 135,00", formatBRL(135))
	assert.Equal(t, "R$ 1.234,56", formatBRL(1234.56))
}

func TestFormatDimension(t *testing.T) {
	assert.Equal(t, "2", formatDimension(2))
	assert.Equal(t, "2,5", formatDimension(2.5))
	assert.Equal(t, "0,85", formatDimension(0.85))
}

func TestHexToRGB(t *testing.T) {
	c, ok := HexToRGB("#0052FF")
	assert.True(t, ok)
	assert.Equal(t, RGB{0, 82, 255}, c)

	c, ok = HexToRGB("2d3748")
	assert.True(t, ok)
	assert.Equal(t, RGB{45, 55, 72}, c)

	for _, bad := range []string{"", "#fff", "#zzzzzz", "#12345", "not a color"} {
		_, ok := HexToRGB(bad)
		assert.False(t, ok, "input %q", bad)
	}
}

func TestResolveThemeFallsBackOnInvalidColors(t *testing.T) {
	theme := resolveTheme(CompanyData{CorPrimaria: "oops", CorSecundaria: ""})
	want, _ := HexToRGB(DefaultPrimaryHex)
	assert.Equal(t, want, theme.Primary)
	want, _ = HexToRGB(DefaultSecondaryHex)
	assert.Equal(t, want, theme.Secondary)

	theme = resolveTheme(CompanyData{CorPrimaria: "#112233", CorSecundaria: "#445566"})
	assert.Equal(t, RGB{17, 34, 51}, theme.Primary)
	assert.Equal(t, RGB{68, 85, 102}, theme.Secondary)
}

func TestFormatAddress(t *testing.T) {
	c := ClientData{
		Logradouro: "Rua das Laranjeiras",
		Numero:     "120",
		Bairro:     "Centro",
		Cidade:     "Curitiba",
		UF:         "PR",
		CEP:        "80000-000",
	}
	assert.Equal(t, "Rua das Laranjeiras, 120, Centro, Curitiba - PR, 80000-000", formatAddress(c))

	// Partial data skips empty parts and conditional joins.
	assert.Equal(t, "Rua A, Centro", formatAddress(ClientData{Logradouro: "Rua A", Bairro: "Centro"}))
	assert.Equal(t, "Curitiba", formatAddress(ClientData{Cidade: "Curitiba"}))
	assert.Equal(t, "", formatAddress(ClientData{}))
}
