package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/pawhaven/internal/auth"
	"github.com/pawhaven/pawhaven/internal/handler/dto"
	"github.com/pawhaven/pawhaven/internal/service"
)

// AdoptionHandler handles adoption request endpoints.
type AdoptionHandler struct {
	svc    *service.AdoptionService
	logger *slog.Logger
}

// NewAdoptionHandler creates a new AdoptionHandler.
func NewAdoptionHandler(svc *service.AdoptionService, logger *slog.Logger) *AdoptionHandler {
	return &AdoptionHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/adoptions.
// Availability is checked but not consumed here; the unit is decremented
// only at completion.
func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdoptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Dog not available for adoption")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	dog, adoption, err := h.svc.CreateAdoption(r.Context(), service.CreateAdoptionInput{
		UserID:   userID,
		DogID:    req.DogID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingDetails) {
			writeFailure(w, http.StatusBadRequest, "All fields are required")
			return
		}
		if errors.Is(err, service.ErrDogUnavailable) {
			writeFailure(w, http.StatusBadRequest, "Dog not available for adoption")
			return
		}
		h.logger.Error("adoption request failed", "dog_id", req.DogID, "error", err)
		writeFailure(w, http.StatusInternalServerError, "Adoption request failed")
		return
	}

	h.logger.Info("adoption_created",
		"adoption_id", adoption.ID,
		"user_id", userID,
		"dog_id", dog.ID,
	)

	writeJSON(w, http.StatusOK, dto.CreateAdoptionResponse{
		Success: true,
		DogName: dog.Name,
		Price:   dog.Price,
	})
}

// Complete handles POST /api/adoptions/{dogId}/complete.
func (h *AdoptionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	dogID := chi.URLParam(r, "dogId")
	userID := auth.UserIDFromContext(r.Context())

	if err := h.svc.CompleteAdoption(r.Context(), userID, dogID); err != nil {
		if errors.Is(err, service.ErrNoPendingAdoption) {
			writeFailure(w, http.StatusBadRequest, "No pending adoption found")
			return
		}
		h.logger.Error("adoption completion failed", "dog_id", dogID, "user_id", userID, "error", err)
		writeFailure(w, http.StatusInternalServerError, "Failed to complete adoption")
		return
	}

	h.logger.Info("adoption_completed", "user_id", userID, "dog_id", dogID)

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
