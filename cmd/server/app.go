package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/peliflex/orcamentos/internal/handlers"
	"github.com/peliflex/orcamentos/internal/services"
)

// NewApp wires the API routes over one DB connection.
func NewApp(dbConn *gorm.DB) http.Handler {
	clientes := handlers.NewClienteHandler(dbConn)
	filmes := handlers.NewFilmeHandler(dbConn)
	opcoes := handlers.NewOpcaoHandler(dbConn)
	propostas := handlers.NewPropostaHandler(dbConn, services.NewPropostaService())
	documentos := handlers.NewDocumentoHandler(dbConn)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /clients", clientes.List)
	mux.HandleFunc("POST /clients", clientes.Create)
	mux.HandleFunc("GET /clients/{id}", clientes.Get)

	mux.HandleFunc("GET /films", filmes.List)
	mux.HandleFunc("POST /films", filmes.Create)

	mux.HandleFunc("GET /clients/{id}/options", opcoes.List)
	mux.HandleFunc("POST /clients/{id}/options", opcoes.Create)

	mux.HandleFunc("POST /clients/{id}/proposal", propostas.Generate)

	mux.HandleFunc("GET /clients/{id}/documents", documentos.List)
	mux.HandleFunc("GET /documents/{id}/pdf", documentos.GetPDF)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
