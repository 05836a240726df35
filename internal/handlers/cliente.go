package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/peliflex/orcamentos/internal/httpx"
	"github.com/peliflex/orcamentos/internal/models"
)

type ClienteHandler struct {
	DB *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler { return &ClienteHandler{DB: db} }

var likeSafeRegex = regexp.MustCompile(`[^a-zA-Z0-9 \-_@.]`)

// List: GET /clients?q=&limit=&page=
func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			offset = (n - 1) * limit
		}
	}
	dbq := h.DB.Model(&models.Cliente{})
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		like := "%" + strings.ToLower(likeSafeRegex.ReplaceAllString(q, "")) + "%"
		dbq = dbq.Where("lower(nome) LIKE ? OR lower(telefone) LIKE ?", like, like)
	}
	var total int64
	dbq.Count(&total)
	var clientes []models.Cliente
	if err := dbq.Order("id desc").Limit(limit).Offset(offset).Find(&clientes).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_clients", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": clientes, "total": total, "limit": limit, "offset": offset})
}

// Create: POST /clients
func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Cliente
	if err := httpx.Decode(r, &c); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c.ID = 0
	if strings.TrimSpace(c.Nome) == "" {
		httpx.JSONError(w, http.StatusBadRequest, "nome_required", nil)
		return
	}
	if err := h.DB.Create(&c).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_client", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

// Get: GET /clients/{id}
func (h *ClienteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var c models.Cliente
	if err := h.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_client", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}
