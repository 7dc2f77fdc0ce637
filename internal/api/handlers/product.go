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

type ProductHandler struct {
	productRepo repository.ProductRepository
}

func NewProductHandler(productRepo repository.ProductRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo}
}

type ProductUpsertRequest struct {
	Name          string     `json:"name"`
	BrandID       *uuid.UUID `json:"brandId"`
	CategoryID    *uuid.UUID `json:"categoryId"`
	Price         int        `json:"price"`
	SkinTypeID    *uuid.UUID `json:"skinTypeId"`
	SkinConcernID *uuid.UUID `json:"skinConcernId"`
	Description   string     `json:"description"`
	Composition   string     `json:"composition"`
	Usage         string     `json:"usage"`
	Rating        float64    `json:"rating"`
	ShopeeLink    string     `json:"shopeeLink"`
	TokopediaLink string     `json:"tokopediaLink"`
}

func (req *ProductUpsertRequest) toDomain() *domain.Product {
	return &domain.Product{
		Name:          req.Name,
		BrandID:       req.BrandID,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		SkinTypeID:    req.SkinTypeID,
		SkinConcernID: req.SkinConcernID,
		Description:   req.Description,
		Composition:   req.Composition,
		Usage:         req.Usage,
		Rating:        req.Rating,
		ShopeeLink:    req.ShopeeLink,
		TokopediaLink: req.TokopediaLink,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.List(r.Context())
	if err != nil {
		log.Printf("ERROR [product.List]: %v", err)
		http.Error(w, "Failed to get products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product := req.toDomain()
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("ERROR [product.Create]: %v", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product := req.toDomain()
	product.ID = id
	product.UpdatedAt = time.Now()

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("ERROR [product.Update] productID=%s: %v", id, err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [product.Delete] productID=%s: %v", id, err)
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
