package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/peliflex/orcamentos/internal/httpx"
	"github.com/peliflex/orcamentos/internal/models"
)

type DocumentoHandler struct {
	DB *gorm.DB
}

func NewDocumentoHandler(db *gorm.DB) *DocumentoHandler { return &DocumentoHandler{DB: db} }

// List: GET /clients/{id}/documents — metadata only, no blobs.
func (h *DocumentoHandler) List(w http.ResponseWriter, r *http.Request) {
	clienteID, ok := clientFromPath(w, r, h.DB)
	if !ok {
		return
	}
	var docs []models.Documento
	if err := h.DB.
		Select("id", "cliente_id", "opcao_nome", "nome_arquivo", "total_m2", "subtotal", "desconto_geral", "total_final", "status", "created_at", "updated_at").
		Where("cliente_id = ?", clienteID).
		Order("id desc").Find(&docs).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_documents", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": docs, "total": len(docs)})
}

// GetPDF: GET /documents/{id}/pdf — streams the stored blob.
func (h *DocumentoHandler) GetPDF(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var doc models.Documento
	if err := h.DB.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_document", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.NomeArquivo+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.PDF)
}
