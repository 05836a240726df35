package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/peliflex/orcamentos/internal/httpx"
	"github.com/peliflex/orcamentos/internal/models"
	"github.com/peliflex/orcamentos/internal/pdf"
	"github.com/peliflex/orcamentos/internal/services"
)

type PropostaHandler struct {
	DB  *gorm.DB
	Svc *services.PropostaService
}

func NewPropostaHandler(db *gorm.DB, svc *services.PropostaService) *PropostaHandler {
	return &PropostaHandler{DB: db, Svc: svc}
}

// Generate: POST /clients/{id}/proposal
// Body: {"option_ids":[...],"combined":bool}; empty option_ids selects all
// of the client's saved options. The rendered PDF is stored as a Documento
// and streamed back as an attachment.
func (h *PropostaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	clienteID, ok := clientFromPath(w, r, h.DB)
	if !ok {
		return
	}

	var req struct {
		OptionIDs []uint `json:"option_ids"`
		Combined  bool   `json:"combined"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := httpx.Decode(r, &req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return
		}
	}

	var cliente models.Cliente
	if err := h.DB.First(&cliente, clienteID).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_client", nil)
		return
	}
	var empresa models.Empresa
	if err := h.DB.First(&empresa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusBadRequest, "company_not_configured", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_company", nil)
		return
	}

	dbq := h.DB.Where("cliente_id = ?", clienteID)
	if len(req.OptionIDs) > 0 {
		dbq = dbq.Where("id IN ?", req.OptionIDs)
	}
	var opcoes []models.Opcao
	if err := dbq.Preload("Medidas").Order("id asc").Find(&opcoes).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_options", nil)
		return
	}
	if len(opcoes) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "no_options", nil)
		return
	}
	var filmes []models.Filme
	if err := h.DB.Find(&filmes).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_films", nil)
		return
	}

	data := pdf.ProposalData{
		Client:       toClientData(cliente),
		Company:      toCompanyData(empresa),
		Catalog:      toCatalogData(filmes),
		IncludeCover: true,
		Combined:     req.Combined && len(opcoes) > 1,
	}
	var first services.Totals
	for i := range opcoes {
		totals := h.Svc.ComputeTotals(&opcoes[i], filmes)
		if i == 0 {
			first = totals
		}
		data.Options = append(data.Options, toOptionData(&opcoes[i], totals))
	}

	raw, err := pdf.ProposalPDF(data)
	if err != nil {
		log.Printf("proposal render failed cliente=%d: %v", clienteID, err)
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}

	opcaoNome := opcoes[0].Nome
	if data.Combined {
		opcaoNome = "Combinado"
	}
	docModel := models.Documento{
		ClienteID:     clienteID,
		OpcaoNome:     opcaoNome,
		NomeArquivo:   "proposta-" + uuid.NewString() + ".pdf",
		TotalM2:       first.TotalM2,
		Subtotal:      first.Subtotal,
		DescontoGeral: first.GeneralDiscount,
		TotalFinal:    first.Final,
		PDF:           raw,
	}
	if err := h.DB.Create(&docModel).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_document", nil)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+docModel.NomeArquivo+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func toClientData(c models.Cliente) pdf.ClientData {
	return pdf.ClientData{
		ID:         c.ID,
		Nome:       c.Nome,
		Telefone:   c.Telefone,
		CEP:        c.CEP,
		Logradouro: c.Logradouro,
		Numero:     c.Numero,
		Bairro:     c.Bairro,
		Cidade:     c.Cidade,
		UF:         c.UF,
	}
}

func toCompanyData(e models.Empresa) pdf.CompanyData {
	metodos := make([]pdf.PaymentMethodData, 0, len(e.MetodosPagamento))
	for _, m := range e.MetodosPagamento {
		metodos = append(metodos, pdf.PaymentMethodData{
			Tipo:               m.Tipo,
			Ativo:              m.Ativo,
			ParcelasMax:        m.ParcelasMax,
			Juros:              m.Juros,
			Porcentagem:        m.Porcentagem,
			Texto:              m.Texto,
			ChavePix:           m.ChavePix,
			TipoChavePix:       m.TipoChavePix,
			NomeResponsavelPix: m.NomeResponsavelPix,
		})
	}
	return pdf.CompanyData{
		NomeFantasia:   e.NomeFantasia,
		Responsavel:    e.Responsavel,
		Telefone:       e.Telefone,
		Email:          e.Email,
		Site:           e.Site,
		Endereco:       e.Endereco,
		CpfCnpj:        e.CpfCnpj,
		CorPrimaria:    e.CorPrimaria,
		CorSecundaria:  e.CorSecundaria,
		Logo:           e.Logo,
		Assinatura:     e.Assinatura,
		Metodos:        metodos,
		ValidadeDias:   e.ValidadeDias,
		PrazoPagamento: e.PrazoPagamento,
	}
}

func toCatalogData(filmes []models.Filme) []pdf.FilmData {
	catalog := make([]pdf.FilmData, 0, len(filmes))
	for _, f := range filmes {
		catalog = append(catalog, pdf.FilmData{
			Nome:               f.Nome,
			Preco:              f.Preco,
			MaoDeObra:          f.MaoDeObra,
			GarantiaFabricante: f.GarantiaFabricante,
			GarantiaMaoDeObra:  f.GarantiaMaoDeObra,
			UV:                 f.UV,
			IR:                 f.IR,
			VTL:                f.VTL,
			TSER:               f.TSER,
			Espessura:          f.Espessura,
			CamposCustom:       f.CamposCustom,
		})
	}
	return catalog
}

func toOptionData(opt *models.Opcao, totals services.Totals) pdf.OptionData {
	itens := make([]pdf.ItemData, 0, len(opt.Medidas))
	for _, m := range opt.Medidas {
		item := pdf.ItemData{
			Ambiente:   m.Ambiente,
			Largura:    m.Largura,
			Altura:     m.Altura,
			Quantidade: m.Quantidade,
			Filme:      m.Pelicula,
		}
		if m.DescontoValor > 0 && m.DescontoTipo != "" {
			item.Discount = &pdf.DiscountData{
				Type:  pdf.DiscountType(m.DescontoTipo),
				Value: m.DescontoValor,
			}
		}
		itens = append(itens, item)
	}
	return pdf.OptionData{
		Nome:  opt.Nome,
		Itens: itens,
		GeneralDiscount: pdf.DiscountData{
			Type:  pdf.DiscountType(opt.DescontoGeralTipo),
			Value: opt.DescontoGeralValor,
		},
		Totals: pdf.TotalsData{
			TotalM2:         totals.TotalM2,
			Subtotal:        totals.Subtotal,
			ItemDiscounts:   totals.ItemDiscounts,
			GeneralDiscount: totals.GeneralDiscount,
			Final:           totals.Final,
		},
	}
}
