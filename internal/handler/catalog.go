package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/pawhaven/internal/handler/dto"
	"github.com/pawhaven/pawhaven/internal/service"
)

// CatalogHandler handles dog browsing and statistics endpoints.
type CatalogHandler struct {
	svc    *service.CatalogService
	logger *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/dogs. Only dogs with adoptable units appear;
// no ordering is guaranteed.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.svc.ListAvailableDogs(r.Context())
	if err != nil {
		h.logger.Error("failed to list dogs", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching dogs")
		return
	}

	writeJSON(w, http.StatusOK, dogs)
}

// Get handles GET /api/dogs/{id}. A sold-out dog is still viewable.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dog, err := h.svc.GetDog(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDogNotFound) {
			writeMessage(w, http.StatusNotFound, "Dog not found")
			return
		}
		h.logger.Error("failed to get dog", "dog_id", id, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching dog")
		return
	}

	writeJSON(w, http.StatusOK, dog)
}

// Stats handles GET /api/stats.
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Error fetching statistics")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStatsResponse(stats))
}
