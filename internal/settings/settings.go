// Package settings persists the site's widget configuration: the chatbot
// options and the booking section options the admins edit. Values are read
// at request time; the widgets only ever consume resolved strings.
package settings

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ChatbotSettings configures the chatbot widget.
type ChatbotSettings struct {
	Enabled        bool   `json:"enabled"`
	ShowOnHomepage bool   `json:"show_on_homepage"`
	AssistantName  string `json:"assistant_name"`
	WelcomeMessage string `json:"welcome_message"`
	// ServiceURLs overrides the resolved page URL per service key
	// (e.g. "bridal_makeup"). Empty values fall back to the slug lookup.
	ServiceURLs map[string]string `json:"service_urls,omitempty"`
}

// BookingSettings configures the booking section.
type BookingSettings struct {
	SchedulerURL   string `json:"scheduler_url"`
	APIToken       string `json:"api_token,omitempty"`
	ShowOnHomepage bool   `json:"show_on_homepage"`
	Title          string `json:"title"`
	Description    string `json:"description"`
}

// DefaultChatbotSettings returns the chatbot defaults used until the admin saves.
func DefaultChatbotSettings() *ChatbotSettings {
	return &ChatbotSettings{
		Enabled:        true,
		ShowOnHomepage: false,
		AssistantName:  "Visage Assistant",
		WelcomeMessage: "Hello! I'm here to help you with our makeup services.",
		ServiceURLs:    map[string]string{},
	}
}

// DefaultBookingSettings returns the booking-section defaults.
func DefaultBookingSettings() *BookingSettings {
	return &BookingSettings{
		SchedulerURL:   "",
		ShowOnHomepage: true,
		Title:          "Pick Your Slot Instantly",
		Description:    "Book your masterclass or one-to-one session with real-time availability. Flexible scheduling to fit your lifestyle.",
	}
}

// Store provides persistence for site settings.
type Store struct {
	redis *redis.Client
}

// NewStore creates a settings store.
func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

const (
	chatbotKey = "site:settings:chatbot"
	bookingKey = "site:settings:booking"
)

// GetChatbot retrieves chatbot settings, returning defaults if unset.
func (s *Store) GetChatbot(ctx context.Context) (*ChatbotSettings, error) {
	data, err := s.redis.Get(ctx, chatbotKey).Bytes()
	if err == redis.Nil {
		return DefaultChatbotSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: get chatbot: %w", err)
	}

	var cfg ChatbotSettings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("settings: unmarshal chatbot: %w", err)
	}
	return &cfg, nil
}

// SetChatbot saves chatbot settings.
func (s *Store) SetChatbot(ctx context.Context, cfg *ChatbotSettings) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("settings: marshal chatbot: %w", err)
	}
	if err := s.redis.Set(ctx, chatbotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("settings: set chatbot: %w", err)
	}
	return nil
}

// GetBooking retrieves booking settings, returning defaults if unset.
func (s *Store) GetBooking(ctx context.Context) (*BookingSettings, error) {
	data, err := s.redis.Get(ctx, bookingKey).Bytes()
	if err == redis.Nil {
		return DefaultBookingSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("settings: get booking: %w", err)
	}

	var cfg BookingSettings
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("settings: unmarshal booking: %w", err)
	}
	return &cfg, nil
}

// SetBooking saves booking settings.
func (s *Store) SetBooking(ctx context.Context, cfg *BookingSettings) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("settings: marshal booking: %w", err)
	}
	if err := s.redis.Set(ctx, bookingKey, data, 0).Err(); err != nil {
		return fmt.Errorf("settings: set booking: %w", err)
	}
	return nil
}
