package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/peliflex/orcamentos/internal/models"
)

func seedCliente(t *testing.T, db *gorm.DB) models.Cliente {
	t.Helper()
	c := models.Cliente{Nome: "Maria Souza", Telefone: "(41) 99999-0000", Cidade: "Curitiba", UF: "PR"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed cliente: %v", err)
	}
	return c
}

func TestOpcaoCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	cliente := seedCliente(t, db)
	h := NewOpcaoHandler(db)

	body := `{"nome":"Opção 1","medidas":[{"ambiente":"Sala","largura":2,"altura":1.5,"pelicula":"Película G5"}],"descontoGeralValor":10,"descontoGeralTipo":"percentage"}`
	req := httptest.NewRequest(http.MethodPost, "/clients/1/options", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", fmt.Sprint(cliente.ID))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created models.Opcao
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ClienteID != cliente.ID {
		t.Fatalf("option not bound to client: %+v", created)
	}
	if len(created.Medidas) != 1 || created.Medidas[0].Quantidade != 1 {
		t.Fatalf("expected single measurement with default quantity 1, got %+v", created.Medidas)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/clients/1/options", nil)
	listReq.SetPathValue("id", fmt.Sprint(cliente.ID))
	listW := httptest.NewRecorder()
	h.List(listW, listReq)
	if listW.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", listW.Code)
	}
	var listed struct {
		Items []models.Opcao `json:"items"`
		Total int            `json:"total"`
	}
	if err := json.Unmarshal(listW.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if listed.Total != 1 || len(listed.Items[0].Medidas) != 1 {
		t.Fatalf("expected preloaded measurements, got %+v", listed)
	}
}

func TestOpcaoCreateRejectsInvalidMeasurement(t *testing.T) {
	db := setupTestDB(t)
	cliente := seedCliente(t, db)
	h := NewOpcaoHandler(db)

	body := `{"nome":"Opção 1","medidas":[{"ambiente":"Sala","largura":0,"altura":1.5,"pelicula":"Película G5"}]}`
	req := httptest.NewRequest(http.MethodPost, "/clients/1/options", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", fmt.Sprint(cliente.ID))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
}

func TestOpcaoCreateUnknownClient(t *testing.T) {
	db := setupTestDB(t)
	h := NewOpcaoHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/clients/42/options", strings.NewReader(`{"nome":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
