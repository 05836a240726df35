package pdf

import "github.com/go-pdf/fpdf"

// Page geometry in millimeters. A4 portrait, 15mm side margins. The bottom
// reserve leaves room for the footer; content pages start below the header.
const (
	margin        = 15.0
	bottomReserve = 25.0
	contentTop    = 35.0
	lineHeight    = 7.0
)

// RenderContext is the mutable layout state threaded through one render
// pass: the output document, the vertical cursor, the 1-based page counter
// and the resolved theme. A context is owned by exactly one render call and
// is never shared.
type RenderContext struct {
	Doc   *fpdf.Fpdf
	Tr    func(string) string // UTF-8 → cp1252 for the core fonts
	Y     float64
	Page  int
	PageW float64
	PageH float64
	Theme Theme

	// OnNewPage redraws the page chrome (header/footer) after AdvancePage
	// adds a page, before content continues.
	OnNewPage func(*RenderContext)
}

// newRenderContext wires a context over a fresh A4 document.
func newRenderContext(doc *fpdf.Fpdf, theme Theme) *RenderContext {
	w, h := doc.GetPageSize()
	return &RenderContext{
		Doc:   doc,
		Tr:    doc.UnicodeTranslatorFromDescriptor(""),
		PageW: w,
		PageH: h,
		Theme: theme,
	}
}

// WouldOverflow reports whether drawing a block of the given height at the
// cursor would cross into the bottom reserve.
func (c *RenderContext) WouldOverflow(height float64) bool {
	return c.Y+height > c.PageH-bottomReserve
}

// EnsureRoom advances to a new page when the block would not fit.
func (c *RenderContext) EnsureRoom(height float64) {
	if c.WouldOverflow(height) {
		c.AdvancePage()
	}
}

// AdvancePage starts a new content page: increments the page counter,
// redraws the chrome and resets the cursor to the content top.
func (c *RenderContext) AdvancePage() {
	c.Doc.AddPage()
	c.Page++
	c.Y = contentTop
	if c.OnNewPage != nil {
		c.OnNewPage(c)
	}
}

// Text draws s with its left edge at x.
func (c *RenderContext) Text(x, y float64, s string) {
	c.Doc.Text(x, y, c.Tr(s))
}

// TextRight draws s with its right edge at x.
func (c *RenderContext) TextRight(x, y float64, s string) {
	t := c.Tr(s)
	c.Doc.Text(x-c.Doc.GetStringWidth(t), y, t)
}

// TextCenter draws s centered on x.
func (c *RenderContext) TextCenter(x, y float64, s string) {
	t := c.Tr(s)
	c.Doc.Text(x-c.Doc.GetStringWidth(t)/2, y, t)
}

func (c *RenderContext) setTextColor(col RGB) { c.Doc.SetTextColor(col.R, col.G, col.B) }
func (c *RenderContext) setDrawColor(col RGB) { c.Doc.SetDrawColor(col.R, col.G, col.B) }
func (c *RenderContext) setFillColor(col RGB) { c.Doc.SetFillColor(col.R, col.G, col.B) }

// bodyFont resets to the default content style after a styled block.
func (c *RenderContext) bodyFont() {
	c.Doc.SetFont("Helvetica", "", 10)
	c.setTextColor(corpoTexto)
}
