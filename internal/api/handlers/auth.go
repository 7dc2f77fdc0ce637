package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ayune/ayune-backend/internal/api/middleware"
	"github.com/ayune/ayune-backend/internal/domain"
	"github.com/ayune/ayune-backend/internal/service"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Secret        string `json:"secret" validate:"required"`
	ConfirmSecret string `json:"confirmSecret" validate:"required"`
	Gender        string `json:"gender" validate:"required"`
	Birthdate     string `json:"birthdate" validate:"required"`
}

type LoginRequest struct {
	Email  string `json:"email" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

type SignupResponse struct {
	ID string `json:"id"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// AccountResponse is the public projection of an account. Credential
// material never appears here.
type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	Birthdate string `json:"birthdate"`
	Coins     int    `json:"coins"`
}

func newAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		Gender:    string(account.Gender),
		Birthdate: account.Birthdate,
		Coins:     account.Coins,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "All fields are required", http.StatusBadRequest)
		return
	}

	id, err := h.authService.Signup(r.Context(), service.SignupInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Secret:        req.Secret,
		ConfirmSecret: req.ConfirmSecret,
		Gender:        req.Gender,
		Birthdate:     req.Birthdate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			http.Error(w, "Passwords do not match", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [auth.Signup]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SignupResponse{ID: id.String()})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:  req.Email,
		Secret: req.Secret,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		log.Printf("ERROR [auth.Login]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := LoginResponse{
		Token:   result.Token,
		Account: newAccountResponse(result.Account),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.GetAccountID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	account, err := h.authService.GetAccountByID(r.Context(), accountID)
	if err != nil {
		http.Error(w, "Account not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newAccountResponse(account))
}
