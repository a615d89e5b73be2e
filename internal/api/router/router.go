package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ramanDeveloper23/visage-site-api/internal/dialogue"
	httpmiddleware "github.com/ramanDeveloper23/visage-site-api/internal/http/middleware"
	"github.com/ramanDeveloper23/visage-site-api/internal/scheduling"
	"github.com/ramanDeveloper23/visage-site-api/internal/services"
	"github.com/ramanDeveloper23/visage-site-api/internal/settings"
	"github.com/ramanDeveloper23/visage-site-api/internal/widget"
	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger          *logging.Logger
	WidgetHandler   *widget.Handler
	DialogueHandler *dialogue.Handler
	BookingHandler  *scheduling.Handler
	ServicesHandler *services.Handler
	SettingsHandler *settings.Handler

	AdminAuthSecret    string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	RateLimitPerSec    float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints used by the embedded widgets.
	r.Group(func(public chi.Router) {
		if cfg.RateLimitPerSec > 0 {
			public.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))
		}

		public.Get("/health", healthCheck)

		if cfg.WidgetHandler != nil {
			public.Get("/api/widget/bootstrap", cfg.WidgetHandler.Bootstrap)
		}
		if cfg.DialogueHandler != nil {
			public.Route("/api/chatbot", func(r chi.Router) {
				r.Post("/response", cfg.DialogueHandler.Respond)
				r.Post("/message", cfg.DialogueHandler.Message)
			})
		}
		if cfg.BookingHandler != nil {
			public.Route("/api/booking", func(r chi.Router) {
				r.Post("/availability", cfg.BookingHandler.Availability)
				r.Post("/time-slots", cfg.BookingHandler.TimeSlots)
			})
		}
		if cfg.ServicesHandler != nil {
			public.Get("/api/services", cfg.ServicesHandler.List)
		}
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Admin routes (protected by JWT)
	if cfg.AdminAuthSecret != "" {
		r.Route("/api/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			if cfg.SettingsHandler != nil {
				admin.Mount("/settings", cfg.SettingsHandler.Routes())
			}
			if cfg.ServicesHandler != nil {
				admin.Mount("/services", cfg.ServicesHandler.AdminRoutes())
			}
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
