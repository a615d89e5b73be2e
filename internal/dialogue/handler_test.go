package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ramanDeveloper23/visage-site-api/pkg/logging"
)

type stubNonces struct {
	ok bool
}

func (s stubNonces) Verify(action, sessionID, token string) bool { return s.ok }

func testResolver(ctx context.Context, key string) string {
	return "https://visagestudio.example.com/" + strings.ReplaceAll(key, "_", "-")
}

func newTestHandler(noncesOK bool) *Handler {
	return NewHandler(DefaultGraph(), testResolver, stubNonces{ok: noncesOK}, nil, logging.Default())
}

type envelopeBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) (*httptest.ResponseRecorder, envelopeBody) {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	handler(w, req)

	var env envelopeBody
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return w, env
}

func TestRespond_KnownNode(t *testing.T) {
	h := newTestHandler(true)

	w, env := postJSON(t, h.Respond, "/api/chatbot/response", respondRequest{
		QuestionID: "greeting",
		SessionID:  "sess-1",
		Nonce:      "tok",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !env.Success {
		t.Fatal("expected success envelope")
	}

	var payload NodePayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(payload.Options))
	}
	if payload.Redirect != "" {
		t.Errorf("greeting should not redirect, got %q", payload.Redirect)
	}
}

func TestRespond_RedirectNode(t *testing.T) {
	h := newTestHandler(true)

	_, env := postJSON(t, h.Respond, "/api/chatbot/response", respondRequest{
		QuestionID: "view_bridal",
		SessionID:  "sess-1",
		Nonce:      "tok",
	})

	var payload NodePayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Options) != 0 {
		t.Errorf("expected no options, got %d", len(payload.Options))
	}
	if payload.Redirect != "https://visagestudio.example.com/bridal-makeup" {
		t.Errorf("unexpected redirect %q", payload.Redirect)
	}
}

func TestRespond_UnknownNode(t *testing.T) {
	h := newTestHandler(true)

	w, env := postJSON(t, h.Respond, "/api/chatbot/response", respondRequest{
		QuestionID: "nope",
		SessionID:  "sess-1",
		Nonce:      "tok",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if env.Success {
		t.Fatal("expected error envelope")
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(env.Data, &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Message != "Response not found." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestRespond_BadNonce(t *testing.T) {
	h := newTestHandler(false)

	w, env := postJSON(t, h.Respond, "/api/chatbot/response", respondRequest{
		QuestionID: "greeting",
		SessionID:  "sess-1",
		Nonce:      "stale",
	})

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if env.Success {
		t.Fatal("expected error envelope")
	}
}

func TestRespond_MissingQuestionID(t *testing.T) {
	h := newTestHandler(true)

	w, _ := postJSON(t, h.Respond, "/api/chatbot/response", respondRequest{
		SessionID: "sess-1",
		Nonce:     "tok",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMessage_Classified(t *testing.T) {
	h := newTestHandler(true)

	_, env := postJSON(t, h.Message, "/api/chatbot/message", messageRequest{
		Message:   "I want to learn bridal makeup techniques",
		SessionID: "sess-1",
		Nonce:     "tok",
	})

	var payload messageResponse
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Matched != string(NodeBridalLearn) {
		t.Errorf("expected bridal_learning match, got %q", payload.Matched)
	}
	if payload.Message == "" {
		t.Error("expected node message")
	}
}

func TestMessage_NoMatchFallsBackToGreetingOptions(t *testing.T) {
	h := newTestHandler(true)

	_, env := postJSON(t, h.Message, "/api/chatbot/message", messageRequest{
		Message:   "hello there",
		SessionID: "sess-1",
		Nonce:     "tok",
	})

	var payload messageResponse
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Matched != "" {
		t.Errorf("expected no match, got %q", payload.Matched)
	}
	if len(payload.Options) != 4 {
		t.Errorf("expected greeting options to be re-displayed, got %d", len(payload.Options))
	}
	if !strings.Contains(payload.Message, "hello there") {
		t.Errorf("generic reply should echo the input, got %q", payload.Message)
	}
}

func TestMessage_Empty(t *testing.T) {
	h := newTestHandler(true)

	w, _ := postJSON(t, h.Message, "/api/chatbot/message", messageRequest{
		SessionID: "sess-1",
		Nonce:     "tok",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
