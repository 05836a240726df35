package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/peliflex/orcamentos/internal/models"
)

func TestFilmeCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	h := NewFilmeHandler(db)

	body := `{"nome":"Película G5","preco":50,"garantiaFabricante":5,"garantiaMaoDeObra":90,"uv":99}`
	req := httptest.NewRequest(http.MethodPost, "/films", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/films?q=g5", nil)
	listW := httptest.NewRecorder()
	h.List(listW, listReq)
	if listW.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", listW.Code)
	}
	var listed struct {
		Items []models.Filme `json:"items"`
		Total int            `json:"total"`
	}
	if err := json.Unmarshal(listW.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if listed.Total != 1 || listed.Items[0].Preco != 50 {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestFilmeCreateRejectsNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	h := NewFilmeHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/films", strings.NewReader(`{"nome":"X","preco":-1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestFilmeCreateDuplicateNameConflicts(t *testing.T) {
	db := setupTestDB(t)
	h := NewFilmeHandler(db)

	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/films", strings.NewReader(`{"nome":"Película G5","preco":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.Create(w, req)
		if w.Code != want {
			t.Fatalf("attempt %d: expected %d got %d body=%s", i, want, w.Code, w.Body.String())
		}
	}
}
