// Package widget serves the bootstrap payload the embedded widgets fetch
// before their first interaction: a session id, per-action nonces, and the
// admin-configured copy both widgets render.
package widget

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/ramanDeveloper23/visage-site-api/internal/api/respond"
	"github.com/ramanDeveloper23/visage-site-api/internal/dialogue"
	"github.com/ramanDeveloper23/visage-site-api/internal/scheduling"
	"github.com/ramanDeveloper23/visage-site-api/internal/settings"
	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

// NonceIssuer mints anti-forgery tokens for a widget action and session.
type NonceIssuer interface {
	Issue(action, sessionID string) string
}

// Handler serves GET /api/widget/bootstrap.
type Handler struct {
	graph    *dialogue.Graph
	resolve  dialogue.ServiceURLResolver
	nonces   NonceIssuer
	settings *settings.Store
	logger   *logging.Logger
}

// NewHandler creates the bootstrap handler.
func NewHandler(graph *dialogue.Graph, resolve dialogue.ServiceURLResolver, nonces NonceIssuer, store *settings.Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		graph:    graph,
		resolve:  resolve,
		nonces:   nonces,
		settings: store,
		logger:   logger,
	}
}

type chatbotBootstrap struct {
	Enabled        bool                 `json:"enabled"`
	ShowOnHomepage bool                 `json:"show_on_homepage"`
	AssistantName  string               `json:"assistant_name"`
	WelcomeMessage string               `json:"welcome_message"`
	Greeting       dialogue.NodePayload `json:"greeting"`
	Nonce          string               `json:"nonce"`
}

type bookingBootstrap struct {
	SchedulerURL   string `json:"scheduler_url"`
	EventSlug      string `json:"event_slug"`
	ShowOnHomepage bool   `json:"show_on_homepage"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Nonce          string `json:"nonce"`
}

type bootstrapResponse struct {
	SessionID string           `json:"session_id"`
	Chatbot   chatbotBootstrap `json:"chatbot"`
	Booking   bookingBootstrap `json:"booking"`
}

// Bootstrap handles GET /api/widget/bootstrap requests.
func (h *Handler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := uuid.NewString()

	chatbotCfg, err := h.settings.GetChatbot(ctx)
	if err != nil {
		h.logger.Error("bootstrap: chatbot settings", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Could not load widget configuration.")
		return
	}
	bookingCfg, err := h.settings.GetBooking(ctx)
	if err != nil {
		h.logger.Error("bootstrap: booking settings", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Could not load widget configuration.")
		return
	}

	greeting, err := h.graph.Resolve(dialogue.NodeGreeting)
	if err != nil {
		h.logger.Error("bootstrap: greeting node missing", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Could not load widget configuration.")
		return
	}

	schedulerURL := scheduling.NormalizeSchedulerURL(bookingCfg.SchedulerURL)

	resp := bootstrapResponse{
		SessionID: sessionID,
		Chatbot: chatbotBootstrap{
			Enabled:        chatbotCfg.Enabled,
			ShowOnHomepage: chatbotCfg.ShowOnHomepage,
			AssistantName:  chatbotCfg.AssistantName,
			WelcomeMessage: chatbotCfg.WelcomeMessage,
			Greeting:       greeting.Payload(ctx, h.resolve),
			Nonce:          h.nonces.Issue(dialogue.NonceAction, sessionID),
		},
		Booking: bookingBootstrap{
			SchedulerURL:   schedulerURL,
			EventSlug:      scheduling.ExtractEventSlug(schedulerURL),
			ShowOnHomepage: bookingCfg.ShowOnHomepage,
			Title:          bookingCfg.Title,
			Description:    bookingCfg.Description,
			Nonce:          h.nonces.Issue(scheduling.NonceAction, sessionID),
		},
	}

	h.logger.Debug("widget bootstrap issued", "session_id", sessionID)
	respond.Success(w, resp)
}
