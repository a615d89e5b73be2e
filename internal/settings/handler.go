package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ramanDeveloper23/visage-site-api/internal/scheduling"
	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

// Handler provides the admin HTTP endpoints for site settings.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates a settings HTTP handler.
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Routes returns a chi router with the settings admin routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/chatbot", h.GetChatbot)
	r.Put("/chatbot", h.UpdateChatbot)
	r.Get("/booking", h.GetBooking)
	r.Put("/booking", h.UpdateBooking)
	return r
}

// GetChatbot returns the chatbot widget settings.
// GET /api/admin/settings/chatbot
func (h *Handler) GetChatbot(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.GetChatbot(r.Context())
	if err != nil {
		h.logger.Error("failed to get chatbot settings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, cfg)
}

// UpdateChatbotRequest is the request body for updating chatbot settings.
// Pointers support partial updates.
type UpdateChatbotRequest struct {
	Enabled        *bool             `json:"enabled,omitempty"`
	ShowOnHomepage *bool             `json:"show_on_homepage,omitempty"`
	AssistantName  string            `json:"assistant_name,omitempty"`
	WelcomeMessage string            `json:"welcome_message,omitempty"`
	ServiceURLs    map[string]string `json:"service_urls,omitempty"`
}

// UpdateChatbot creates or updates the chatbot widget settings.
// PUT /api/admin/settings/chatbot
func (h *Handler) UpdateChatbot(w http.ResponseWriter, r *http.Request) {
	var req UpdateChatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	cfg, err := h.store.GetChatbot(r.Context())
	if err != nil {
		h.logger.Error("failed to get chatbot settings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	if req.Enabled != nil {
		cfg.Enabled = *req.Enabled
	}
	if req.ShowOnHomepage != nil {
		cfg.ShowOnHomepage = *req.ShowOnHomepage
	}
	if req.AssistantName != "" {
		cfg.AssistantName = req.AssistantName
	}
	if req.WelcomeMessage != "" {
		cfg.WelcomeMessage = req.WelcomeMessage
	}
	if req.ServiceURLs != nil {
		if cfg.ServiceURLs == nil {
			cfg.ServiceURLs = map[string]string{}
		}
		for key, url := range req.ServiceURLs {
			cfg.ServiceURLs[key] = url
		}
	}

	if err := h.store.SetChatbot(r.Context(), cfg); err != nil {
		h.logger.Error("failed to save chatbot settings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("chatbot settings updated")
	writeJSON(w, cfg)
}

// GetBooking returns the booking section settings with the API token redacted.
// GET /api/admin/settings/booking
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.GetBooking(r.Context())
	if err != nil {
		h.logger.Error("failed to get booking settings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	out := *cfg
	if out.APIToken != "" {
		out.APIToken = "***"
	}
	writeJSON(w, &out)
}

// UpdateBookingRequest is the request body for updating booking settings.
type UpdateBookingRequest struct {
	SchedulerURL   *string `json:"scheduler_url,omitempty"`
	APIToken       *string `json:"api_token,omitempty"`
	ShowOnHomepage *bool   `json:"show_on_homepage,omitempty"`
	Title          string  `json:"title,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// UpdateBooking creates or updates the booking section settings. The
// scheduler URL is normalized the same way the widget normalizes it.
// PUT /api/admin/settings/booking
func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	cfg, err := h.store.GetBooking(r.Context())
	if err != nil {
		h.logger.Error("failed to get booking settings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	if req.SchedulerURL != nil {
		cfg.SchedulerURL = scheduling.NormalizeSchedulerURL(*req.SchedulerURL)
	}
	if req.APIToken != nil {
		cfg.APIToken = *req.APIToken
	}
	if req.ShowOnHomepage != nil {
		cfg.ShowOnHomepage = *req.ShowOnHomepage
	}
	if req.Title != "" {
		cfg.Title = req.Title
	}
	if req.Description != "" {
		cfg.Description = req.Description
	}

	if err := h.store.SetBooking(r.Context(), cfg); err != nil {
		h.logger.Error("failed to save booking settings", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	h.logger.Info("booking settings updated", "scheduler_url", cfg.SchedulerURL)

	out := *cfg
	if out.APIToken != "" {
		out.APIToken = "***"
	}
	writeJSON(w, &out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
