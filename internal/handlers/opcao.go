package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/peliflex/orcamentos/internal/httpx"
	"github.com/peliflex/orcamentos/internal/models"
)

type OpcaoHandler struct {
	DB *gorm.DB
}

func NewOpcaoHandler(db *gorm.DB) *OpcaoHandler { return &OpcaoHandler{DB: db} }

// List: GET /clients/{id}/options
func (h *OpcaoHandler) List(w http.ResponseWriter, r *http.Request) {
	clienteID, ok := clientFromPath(w, r, h.DB)
	if !ok {
		return
	}
	var opcoes []models.Opcao
	if err := h.DB.Where("cliente_id = ?", clienteID).
		Preload("Medidas").Order("id asc").Find(&opcoes).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_options", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": opcoes, "total": len(opcoes)})
}

// Create: POST /clients/{id}/options
func (h *OpcaoHandler) Create(w http.ResponseWriter, r *http.Request) {
	clienteID, ok := clientFromPath(w, r, h.DB)
	if !ok {
		return
	}
	var opt models.Opcao
	if err := httpx.Decode(r, &opt); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	opt.ID = 0
	opt.ClienteID = clienteID
	if strings.TrimSpace(opt.Nome) == "" {
		opt.Nome = "Opção 1"
	}
	for i := range opt.Medidas {
		m := &opt.Medidas[i]
		m.ID = 0
		if m.Quantidade <= 0 {
			m.Quantidade = 1
		}
		if m.Largura <= 0 || m.Altura <= 0 || strings.TrimSpace(m.Pelicula) == "" {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_measurement", map[string]any{"index": i})
			return
		}
	}
	if err := h.DB.Create(&opt).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_option", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, opt)
}

// clientFromPath validates the {id} path segment and confirms the client
// exists. Writes the error response itself when it does not.
func clientFromPath(w http.ResponseWriter, r *http.Request, db *gorm.DB) (uint, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	var c models.Cliente
	if err := db.Select("id").First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "client_not_found", nil)
			return 0, false
		}
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_client", nil)
		return 0, false
	}
	return c.ID, true
}
