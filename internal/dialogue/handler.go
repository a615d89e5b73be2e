package dialogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ramanDeveloper23/visage-site-api/internal/api/respond"
	"github.com/ramanDeveloper23/visage-site-api/internal/observability/metrics"
	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

// NonceAction is the anti-forgery scope for chatbot requests.
const NonceAction = "chatbot"

// NonceVerifier checks a widget anti-forgery token before any core logic runs.
type NonceVerifier interface {
	Verify(action, sessionID, token string) bool
}

// Handler serves the chatbot widget endpoints.
type Handler struct {
	graph   *Graph
	resolve ServiceURLResolver
	nonces  NonceVerifier
	metrics *metrics.WidgetMetrics
	logger  *logging.Logger
}

// NewHandler creates a chatbot handler.
func NewHandler(graph *Graph, resolve ServiceURLResolver, nonces NonceVerifier, m *metrics.WidgetMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		graph:   graph,
		resolve: resolve,
		nonces:  nonces,
		metrics: m,
		logger:  logger,
	}
}

type respondRequest struct {
	QuestionID string `json:"question_id"`
	SessionID  string `json:"session_id"`
	Nonce      string `json:"nonce"`
}

// Respond handles POST /api/chatbot/response: one option-click turn.
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if !h.nonces.Verify(NonceAction, req.SessionID, req.Nonce) {
		respond.Error(w, http.StatusForbidden, "Security check failed.")
		return
	}

	if req.QuestionID == "" {
		respond.Error(w, http.StatusBadRequest, "Question id is required.")
		return
	}

	node, err := h.graph.Resolve(NodeID(req.QuestionID))
	if err != nil {
		if errors.Is(err, ErrNodeNotFound) {
			h.metrics.ObserveChatTurn("resolve", "not_found")
			respond.Error(w, http.StatusNotFound, "Response not found.")
			return
		}
		h.logger.Error("chatbot: resolve failed", "question_id", req.QuestionID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	h.metrics.ObserveChatTurn("resolve", "ok")
	respond.Success(w, node.Payload(r.Context(), h.resolve))
}

type messageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Nonce     string `json:"nonce"`
}

// messageResponse wraps a node payload with the id the classifier matched,
// or carries the generic fallback reply when nothing matched.
type messageResponse struct {
	NodePayload
	Matched string `json:"matched,omitempty"`
}

// Message handles POST /api/chatbot/message: one free-text turn. The
// classifier either lands on a node or the widget gets the generic reply
// plus the entry options again.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if !h.nonces.Verify(NonceAction, req.SessionID, req.Nonce) {
		respond.Error(w, http.StatusForbidden, "Security check failed.")
		return
	}

	if req.Message == "" {
		respond.Error(w, http.StatusBadRequest, "Message is required.")
		return
	}

	id, ok := Classify(req.Message)
	if !ok {
		h.metrics.ObserveClassify("none")
		greeting, err := h.graph.Resolve(NodeGreeting)
		if err != nil {
			h.logger.Error("chatbot: greeting missing", "error", err)
			respond.Error(w, http.StatusInternalServerError, "Something went wrong.")
			return
		}
		payload := greeting.Payload(r.Context(), h.resolve)
		payload.Message = fmt.Sprintf(
			"I understand you're interested in %s. Let me help you find the right option. Please select from the options below or ask about our bridal makeup or learn makeup services.",
			req.Message,
		)
		respond.Success(w, messageResponse{NodePayload: payload})
		return
	}

	h.metrics.ObserveClassify(string(id))
	node, err := h.graph.Resolve(id)
	if err != nil {
		h.logger.Error("chatbot: classified id missing from graph", "id", id, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Something went wrong.")
		return
	}

	respond.Success(w, messageResponse{
		NodePayload: node.Payload(r.Context(), h.resolve),
		Matched:     string(id),
	})
}
