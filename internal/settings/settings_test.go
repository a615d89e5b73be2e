package settings

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client)
}

func TestGetChatbotDefaults(t *testing.T) {
	store := newTestStore(t)

	cfg, err := store.GetChatbot(context.Background())
	if err != nil {
		t.Fatalf("GetChatbot() error = %v", err)
	}
	if !cfg.Enabled {
		t.Error("expected chatbot enabled by default")
	}
	if cfg.AssistantName != "Visage Assistant" {
		t.Errorf("AssistantName = %q", cfg.AssistantName)
	}
	if cfg.WelcomeMessage == "" {
		t.Error("expected a default welcome message")
	}
}

func TestChatbotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := &ChatbotSettings{
		Enabled:        true,
		ShowOnHomepage: true,
		AssistantName:  "Maya",
		WelcomeMessage: "Hi there!",
		ServiceURLs:    map[string]string{"bridal_makeup": "https://example.com/bridal"},
	}
	if err := store.SetChatbot(ctx, in); err != nil {
		t.Fatalf("SetChatbot() error = %v", err)
	}

	out, err := store.GetChatbot(ctx)
	if err != nil {
		t.Fatalf("GetChatbot() error = %v", err)
	}
	if out.AssistantName != "Maya" {
		t.Errorf("AssistantName = %q, want Maya", out.AssistantName)
	}
	if !out.ShowOnHomepage {
		t.Error("ShowOnHomepage should survive the round trip")
	}
	if out.ServiceURLs["bridal_makeup"] != "https://example.com/bridal" {
		t.Errorf("ServiceURLs = %v", out.ServiceURLs)
	}
}

func TestGetBookingDefaults(t *testing.T) {
	store := newTestStore(t)

	cfg, err := store.GetBooking(context.Background())
	if err != nil {
		t.Fatalf("GetBooking() error = %v", err)
	}
	if cfg.SchedulerURL != "" {
		t.Errorf("SchedulerURL = %q, want empty", cfg.SchedulerURL)
	}
	if cfg.Title != "Pick Your Slot Instantly" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if !cfg.ShowOnHomepage {
		t.Error("expected booking section shown on homepage by default")
	}
}

func TestBookingRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := &BookingSettings{
		SchedulerURL:   "https://calendly.com/visage/masterclass",
		APIToken:       "secret-token",
		ShowOnHomepage: false,
		Title:          "Book Now",
		Description:    "Pick a slot.",
	}
	if err := store.SetBooking(ctx, in); err != nil {
		t.Fatalf("SetBooking() error = %v", err)
	}

	out, err := store.GetBooking(ctx)
	if err != nil {
		t.Fatalf("GetBooking() error = %v", err)
	}
	if out.SchedulerURL != in.SchedulerURL {
		t.Errorf("SchedulerURL = %q, want %q", out.SchedulerURL, in.SchedulerURL)
	}
	if out.APIToken != "secret-token" {
		t.Errorf("APIToken = %q", out.APIToken)
	}
	if out.ShowOnHomepage {
		t.Error("ShowOnHomepage should be false after save")
	}
}

func TestURLResolverPrecedence(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	resolver := NewURLResolver(store, "https://visage.example.com", nil)

	// No settings saved: well-known page path under the home URL.
	if got := resolver.Resolve(ctx, "bridal_makeup"); got != "https://visage.example.com/bridal-makeup" {
		t.Errorf("Resolve(bridal_makeup) = %q", got)
	}
	if got := resolver.Resolve(ctx, "learn_makeup"); got != "https://visage.example.com/learn-makeup" {
		t.Errorf("Resolve(learn_makeup) = %q", got)
	}

	// Unknown keys fall back to the homepage.
	if got := resolver.Resolve(ctx, "nails"); got != "https://visage.example.com/" {
		t.Errorf("Resolve(nails) = %q", got)
	}

	// An explicit admin URL wins over the page lookup.
	cfg, err := store.GetChatbot(ctx)
	if err != nil {
		t.Fatalf("GetChatbot() error = %v", err)
	}
	cfg.ServiceURLs = map[string]string{"bridal_makeup": "https://pages.example.com/weddings"}
	if err := store.SetChatbot(ctx, cfg); err != nil {
		t.Fatalf("SetChatbot() error = %v", err)
	}
	if got := resolver.Resolve(ctx, "bridal_makeup"); got != "https://pages.example.com/weddings" {
		t.Errorf("Resolve(bridal_makeup) = %q after override", got)
	}
}

func TestURLResolverNilStore(t *testing.T) {
	resolver := NewURLResolver(nil, "https://visage.example.com/", nil)
	if got := resolver.Resolve(context.Background(), "learn_makeup"); got != "https://visage.example.com/learn-makeup" {
		t.Errorf("Resolve(learn_makeup) = %q", got)
	}
}
