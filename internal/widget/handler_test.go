package widget

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ramanDeveloper23/visage-site-api/internal/dialogue"
	"github.com/ramanDeveloper23/visage-site-api/internal/settings"
)

type stubNonces struct{}

func (stubNonces) Issue(action, sessionID string) string {
	return "nonce-" + action
}

func testResolver(ctx context.Context, key string) string {
	return "https://visage.example.com/" + key
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T) (*Handler, *settings.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := settings.NewStore(client)
	return NewHandler(dialogue.DefaultGraph(), testResolver, stubNonces{}, store, nil), store
}

func TestBootstrapDefaults(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/widget/bootstrap", nil)
	rec := httptest.NewRecorder()
	h.Bootstrap(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success {
		t.Fatal("success = false")
	}

	var resp bootstrapResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("expected a session id")
	}
	if resp.Chatbot.Nonce != "nonce-chatbot" {
		t.Errorf("chatbot nonce = %q", resp.Chatbot.Nonce)
	}
	if resp.Booking.Nonce != "nonce-booking" {
		t.Errorf("booking nonce = %q", resp.Booking.Nonce)
	}
	if resp.Chatbot.AssistantName != "Visage Assistant" {
		t.Errorf("assistant name = %q", resp.Chatbot.AssistantName)
	}
	if len(resp.Chatbot.Greeting.Options) == 0 {
		t.Error("expected greeting options")
	}
	if resp.Booking.Title == "" {
		t.Error("expected booking title")
	}
}

func TestBootstrapUniqueSessions(t *testing.T) {
	h, _ := newTestHandler(t)

	sessionID := func() string {
		req := httptest.NewRequest(http.MethodGet, "/api/widget/bootstrap", nil)
		rec := httptest.NewRecorder()
		h.Bootstrap(rec, req)

		var env envelope
		if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		var resp bootstrapResponse
		if err := json.Unmarshal(env.Data, &resp); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		return resp.SessionID
	}

	if sessionID() == sessionID() {
		t.Error("expected distinct session ids per bootstrap")
	}
}

func TestBootstrapSchedulerURL(t *testing.T) {
	h, store := newTestHandler(t)
	ctx := context.Background()

	cfg, err := store.GetBooking(ctx)
	if err != nil {
		t.Fatalf("GetBooking() error = %v", err)
	}
	cfg.SchedulerURL = "calendly.com/visage/masterclass"
	if err := store.SetBooking(ctx, cfg); err != nil {
		t.Fatalf("SetBooking() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/widget/bootstrap", nil)
	rec := httptest.NewRecorder()
	h.Bootstrap(rec, req)

	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var resp bootstrapResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if resp.Booking.SchedulerURL != "https://calendly.com/visage/masterclass" {
		t.Errorf("scheduler url = %q", resp.Booking.SchedulerURL)
	}
	if resp.Booking.EventSlug != "masterclass" {
		t.Errorf("event slug = %q", resp.Booking.EventSlug)
	}
}
