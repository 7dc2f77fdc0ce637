package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/ayune/ayune-backend/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AccountHandler serves the admin CRUD over accounts. These endpoints
// perform no validation beyond JSON decoding.
type AccountHandler struct {
	accountRepo repository.AccountRepository
}

func NewAccountHandler(accountRepo repository.AccountRepository) *AccountHandler {
	return &AccountHandler{accountRepo: accountRepo}
}

type AccountUpsertRequest struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Gender        string     `json:"gender"`
	Birthdate     string     `json:"birthdate"`
	Coins         int        `json:"coins"`
	SkinTypeID    *uuid.UUID `json:"skinTypeId"`
	SkinConcernID *uuid.UUID `json:"skinConcernId"`
}

func (req *AccountUpsertRequest) toDomain() *domain.Account {
	return &domain.Account{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Gender:        domain.NormalizeGender(req.Gender),
		Birthdate:     req.Birthdate,
		Coins:         req.Coins,
		SkinTypeID:    req.SkinTypeID,
		SkinConcernID: req.SkinConcernID,
	}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountRepo.List(r.Context())
	if err != nil {
		log.Printf("ERROR [account.List]: %v", err)
		http.Error(w, "Failed to get accounts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(accounts)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AccountUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account := req.toDomain()
	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()

	if err := h.accountRepo.Create(r.Context(), account); err != nil {
		log.Printf("ERROR [account.Create]: %v", err)
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid account ID", http.StatusBadRequest)
		return
	}

	var req AccountUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account := req.toDomain()
	account.ID = id
	account.UpdatedAt = time.Now()

	if err := h.accountRepo.Update(r.Context(), account); err != nil {
		log.Printf("ERROR [account.Update] accountID=%s: %v", id, err)
		http.Error(w, "Failed to update account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid account ID", http.StatusBadRequest)
		return
	}

	if err := h.accountRepo.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [account.Delete] accountID=%s: %v", id, err)
		http.Error(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
