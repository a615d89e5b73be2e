package scheduling

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ramanDeveloper23/visage-site-api/internal/api/respond"
	"github.com/ramanDeveloper23/visage-site-api/internal/observability/metrics"
	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

// NonceAction is the anti-forgery scope for booking widget requests.
const NonceAction = "booking"

// NonceVerifier checks a widget anti-forgery token before any core logic runs.
type NonceVerifier interface {
	Verify(action, sessionID, token string) bool
}

// Handler serves the booking widget endpoints.
type Handler struct {
	nonces  NonceVerifier
	metrics *metrics.WidgetMetrics
	logger  *logging.Logger
	now     func() time.Time
}

// NewHandler creates a booking handler. nowFn defaults to time.Now.
func NewHandler(nonces NonceVerifier, m *metrics.WidgetMetrics, logger *logging.Logger, nowFn func() time.Time) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Handler{
		nonces:  nonces,
		metrics: m,
		logger:  logger,
		now:     nowFn,
	}
}

type availabilityRequest struct {
	SchedulerURL string `json:"scheduler_url"`
	EventSlug    string `json:"event_slug"`
	SessionID    string `json:"session_id"`
	Nonce        string `json:"nonce"`
}

// Availability handles POST /api/booking/availability: the two-week calendar
// window with per-date availability.
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	start := h.now()

	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if !h.nonces.Verify(NonceAction, req.SessionID, req.Nonce) {
		h.metrics.ObserveBooking("availability", "forbidden")
		respond.Error(w, http.StatusForbidden, "Security check failed.")
		return
	}

	if req.SchedulerURL == "" {
		h.metrics.ObserveBooking("availability", "invalid")
		respond.Error(w, http.StatusBadRequest, "Scheduler URL is required.")
		return
	}

	window := BuildWindow(h.now())

	h.metrics.ObserveBooking("availability", "ok")
	h.metrics.ObserveBookingLatency("availability", h.now().Sub(start).Seconds())
	respond.Success(w, window)
}

type timeSlotsRequest struct {
	SchedulerURL string `json:"scheduler_url"`
	EventSlug    string `json:"event_slug"`
	Date         string `json:"date"`
	SessionID    string `json:"session_id"`
	Nonce        string `json:"nonce"`
}

type timeSlotsResponse struct {
	TimeSlots []string `json:"time_slots"`
	Date      string   `json:"date"`
}

// TimeSlots handles POST /api/booking/time-slots: the fixed slot list for a
// selected date.
func (h *Handler) TimeSlots(w http.ResponseWriter, r *http.Request) {
	start := h.now()

	var req timeSlotsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if !h.nonces.Verify(NonceAction, req.SessionID, req.Nonce) {
		h.metrics.ObserveBooking("time_slots", "forbidden")
		respond.Error(w, http.StatusForbidden, "Security check failed.")
		return
	}

	if req.SchedulerURL == "" || req.Date == "" {
		h.metrics.ObserveBooking("time_slots", "invalid")
		respond.Error(w, http.StatusBadRequest, "Scheduler URL and date are required.")
		return
	}

	if _, err := time.Parse(DateFormat, req.Date); err != nil {
		h.metrics.ObserveBooking("time_slots", "invalid")
		respond.Error(w, http.StatusBadRequest, "Date must be in YYYY-MM-DD form.")
		return
	}

	h.metrics.ObserveBooking("time_slots", "ok")
	h.metrics.ObserveBookingLatency("time_slots", h.now().Sub(start).Seconds())
	respond.Success(w, timeSlotsResponse{
		TimeSlots: TimeSlots(req.Date),
		Date:      req.Date,
	})
}
