package handlers

import (
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/peliflex/orcamentos/internal/httpx"
	"github.com/peliflex/orcamentos/internal/models"
)

type FilmeHandler struct {
	DB *gorm.DB
}

func NewFilmeHandler(db *gorm.DB) *FilmeHandler { return &FilmeHandler{DB: db} }

// List: GET /films
func (h *FilmeHandler) List(w http.ResponseWriter, r *http.Request) {
	dbq := h.DB.Model(&models.Filme{})
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		like := "%" + strings.ToLower(likeSafeRegex.ReplaceAllString(q, "")) + "%"
		dbq = dbq.Where("lower(nome) LIKE ?", like)
	}
	var filmes []models.Filme
	if err := dbq.Order("nome asc").Find(&filmes).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_films", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": filmes, "total": len(filmes)})
}

// Create: POST /films
func (h *FilmeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f models.Filme
	if err := httpx.Decode(r, &f); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	f.ID = 0
	if strings.TrimSpace(f.Nome) == "" {
		httpx.JSONError(w, http.StatusBadRequest, "nome_required", nil)
		return
	}
	if f.Preco < 0 || f.MaoDeObra < 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_price", nil)
		return
	}
	if err := h.DB.Create(&f).Error; err != nil {
		httpx.JSONError(w, http.StatusConflict, "failed_to_create_film", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, f)
}
