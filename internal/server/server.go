// Package server exposes the fintrack HTTP API.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/fintrack-dev/fintrack/internal/importer"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// maxUploadBytes bounds multipart import uploads.
const maxUploadBytes = 32 << 20

// Server wires the HTTP API over the store and import service.
type Server struct {
	store    *store.Store
	importer *importer.Service
	log      zerolog.Logger
	router   *mux.Router
}

// New creates a Server and registers its routes.
func New(st *store.Store, imp *importer.Service, log zerolog.Logger) *Server {
	s := &Server{
		store:    st,
		importer: imp,
		log:      log,
		router:   mux.NewRouter(),
	}
	s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.Use(s.logRequests, requireUser)

	api.HandleFunc("/accounts", s.handleCreateAccount).Methods(http.MethodPost)
	api.HandleFunc("/accounts", s.handleListAccounts).Methods(http.MethodGet)

	api.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.handleCreateCategory).Methods(http.MethodPost)

	api.HandleFunc("/imports", s.handleImport).Methods(http.MethodPost)
	api.HandleFunc("/imports/{id}", s.handleGetImport).Methods(http.MethodGet)

	api.HandleFunc("/transactions", s.handleListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/summary/{month}", s.handleSummary).Methods(http.MethodGet)

	api.HandleFunc("/budgets", s.handleSetBudget).Methods(http.MethodPost)
	api.HandleFunc("/budgets", s.handleListBudgets).Methods(http.MethodGet)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}
