package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"

	"github.com/fintrack-dev/fintrack/internal/importer"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/summary"
)

var monthRE = regexp.MustCompile(`^\d{4}-\d{2}$`)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string            `json:"name"`
		Type model.AccountType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Account name is required")
		return
	}
	if !req.Type.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid account type")
		return
	}

	account, err := s.store.Accounts.Create(r.Context(), model.Account{
		UserID: userID(r),
		Name:   req.Name,
		Type:   req.Type,
	})
	if err != nil {
		s.serverError(w, err, "creating account")
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.store.Accounts.List(r.Context(), userID(r))
	if err != nil {
		s.serverError(w, err, "listing accounts")
		return
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	respondJSON(w, http.StatusOK, accounts)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.Categories.ListEffective(r.Context(), userID(r))
	if err != nil {
		s.serverError(w, err, "listing categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	respondJSON(w, http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string   `json:"name"`
		Keywords []string `json:"keywords"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Category name is required")
		return
	}

	category, err := s.store.Categories.Create(r.Context(), model.Category{
		UserID:   userID(r),
		Name:     req.Name,
		Keywords: req.Keywords,
	})
	if err != nil {
		s.serverError(w, err, "creating category")
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	accountID := r.FormValue("accountId")
	if accountID == "" {
		respondError(w, http.StatusBadRequest, "missing accountId")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	result, err := s.importer.ImportCSV(r.Context(), userID(r), accountID, header.Filename, file)
	if err != nil {
		var verr *importer.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Message)
			return
		}
		s.serverError(w, err, "running import")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetImport(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.Jobs.Find(r.Context(), userID(r), mux.Vars(r)["id"])
	if err != nil {
		s.serverError(w, err, "finding import job")
		return
	}
	if job == nil {
		respondError(w, http.StatusNotFound, "Import job not found")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month := q.Get("month")
	if month != "" && !monthRE.MatchString(month) {
		respondError(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}
	txns, err := s.store.Transactions.List(r.Context(), userID(r), q.Get("accountId"), month)
	if err != nil {
		s.serverError(w, err, "listing transactions")
		return
	}
	if txns == nil {
		txns = []model.Transaction{}
	}
	respondJSON(w, http.StatusOK, txns)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	month := mux.Vars(r)["month"]
	if !monthRE.MatchString(month) {
		respondError(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}
	uid := userID(r)

	txns, err := s.store.Transactions.List(r.Context(), uid, "", month)
	if err != nil {
		s.serverError(w, err, "listing transactions")
		return
	}
	categories, err := s.store.Categories.ListEffective(r.Context(), uid)
	if err != nil {
		s.serverError(w, err, "listing categories")
		return
	}
	budgets, err := s.store.Budgets.ListMonth(r.Context(), uid, month)
	if err != nil {
		s.serverError(w, err, "listing budgets")
		return
	}
	respondJSON(w, http.StatusOK, summary.Build(month, txns, categories, budgets))
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID string `json:"categoryId"`
		Month      string `json:"month"`
		Amount     string `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.CategoryID == "" || req.Amount == "" {
		respondError(w, http.StatusBadRequest, "categoryId and amount are required")
		return
	}
	if !monthRE.MatchString(req.Month) {
		respondError(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}

	budget, err := s.store.Budgets.Set(r.Context(), model.Budget{
		UserID:     userID(r),
		CategoryID: req.CategoryID,
		Month:      req.Month,
		Amount:     req.Amount,
	})
	if err != nil {
		s.serverError(w, err, "setting budget")
		return
	}
	respondJSON(w, http.StatusOK, budget)
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if !monthRE.MatchString(month) {
		respondError(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}
	budgets, err := s.store.Budgets.ListMonth(r.Context(), userID(r), month)
	if err != nil {
		s.serverError(w, err, "listing budgets")
		return
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}
	respondJSON(w, http.StatusOK, budgets)
}

func (s *Server) serverError(w http.ResponseWriter, err error, msg string) {
	s.log.Error().Err(err).Msg(msg)
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
