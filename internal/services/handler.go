package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ramanDeveloper23/visage-site-api/internal/api/respond"
	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

// Handler handles HTTP requests for the services catalog
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new services handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// ListServicesResponse is the payload for listing services
type ListServicesResponse struct {
	Services []*Service `json:"services"`
	Count    int        `json:"count"`
	Offset   int        `json:"offset"`
	Limit    int        `json:"limit"`
}

// List handles GET /api/services requests from the carousel widget.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := ListServicesFilter{
		Limit:  50,
		Offset: 0,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 && v <= 100 {
			filter.Limit = v
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
			filter.Offset = v
		}
	}

	list, err := h.repo.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Could not load services.")
		return
	}

	respond.Success(w, ListServicesResponse{
		Services: list,
		Count:    len(list),
		Offset:   filter.Offset,
		Limit:    filter.Limit,
	})
}

// AdminRoutes returns a chi router with the catalog management routes.
func (h *Handler) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}

// Create handles POST /api/admin/services requests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	svc, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrMissingTitle) {
			http.Error(w, `{"error": "title is required"}`, http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create service", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("service created", "id", svc.ID, "title", svc.Title)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(svc)
}

// Get handles GET /api/admin/services/{id} requests
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	svc, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			http.Error(w, `{"error": "service not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get service", "error", err, "id", id)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(svc)
}

// Update handles PUT /api/admin/services/{id} requests
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	svc, err := h.repo.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			http.Error(w, `{"error": "service not found"}`, http.StatusNotFound)
		case errors.Is(err, ErrMissingTitle):
			http.Error(w, `{"error": "title is required"}`, http.StatusBadRequest)
		default:
			h.logger.Error("failed to update service", "error", err, "id", id)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}

	h.logger.Info("service updated", "id", svc.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(svc)
}

// Delete handles DELETE /api/admin/services/{id} requests
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			http.Error(w, `{"error": "service not found"}`, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete service", "error", err, "id", id)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("service deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
