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
	"gorm.io/datatypes"
)

type DoctorHandler struct {
	doctorRepo repository.DoctorRepository
}

func NewDoctorHandler(doctorRepo repository.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{doctorRepo: doctorRepo}
}

type DoctorUpsertRequest struct {
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Specialty   string          `json:"specialty"`
	History     string          `json:"history"`
	Schedule    json.RawMessage `json:"schedule"`
	Price       int             `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
	Rating      float64         `json:"rating"`
}

func (req *DoctorUpsertRequest) toDomain() *domain.Doctor {
	schedule := req.Schedule
	if len(schedule) == 0 {
		schedule = json.RawMessage("[]")
	}
	return &domain.Doctor{
		Name:        req.Name,
		Image:       req.Image,
		Specialty:   req.Specialty,
		History:     req.History,
		Schedule:    datatypes.JSON(schedule),
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
		Rating:      req.Rating,
	}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorRepo.List(r.Context())
	if err != nil {
		log.Printf("ERROR [doctor.List]: %v", err)
		http.Error(w, "Failed to get doctors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doctors)
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req DoctorUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doctor := req.toDomain()
	doctor.ID = uuid.New()
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()

	if err := h.doctorRepo.Create(r.Context(), doctor); err != nil {
		log.Printf("ERROR [doctor.Create]: %v", err)
		http.Error(w, "Failed to create doctor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(doctor)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid doctor ID", http.StatusBadRequest)
		return
	}

	var req DoctorUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doctor := req.toDomain()
	doctor.ID = id
	doctor.UpdatedAt = time.Now()

	if err := h.doctorRepo.Update(r.Context(), doctor); err != nil {
		log.Printf("ERROR [doctor.Update] doctorID=%s: %v", id, err)
		http.Error(w, "Failed to update doctor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid doctor ID", http.StatusBadRequest)
		return
	}

	if err := h.doctorRepo.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [doctor.Delete] doctorID=%s: %v", id, err)
		http.Error(w, "Failed to delete doctor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
