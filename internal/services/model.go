package services

import (
	"strings"
	"time"
)

// Service is one entry in the services carousel.
type Service struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Icon       string    `json:"icon"`
	SortOrder  *int      `json:"sort_order,omitempty"`
	ButtonText string    `json:"button_text"`
	ButtonURL  string    `json:"button_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateServiceRequest is the request body for creating a service.
type CreateServiceRequest struct {
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Icon       string `json:"icon"`
	SortOrder  *int   `json:"sort_order,omitempty"`
	ButtonText string `json:"button_text"`
	ButtonURL  string `json:"button_url"`
}

// Validate validates the create service request.
func (r *CreateServiceRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	return nil
}

// UpdateServiceRequest is the request body for updating a service.
// Pointer fields distinguish "leave unchanged" from "clear".
type UpdateServiceRequest struct {
	Title      *string `json:"title,omitempty"`
	Excerpt    *string `json:"excerpt,omitempty"`
	Icon       *string `json:"icon,omitempty"`
	SortOrder  *int    `json:"sort_order,omitempty"`
	ButtonText *string `json:"button_text,omitempty"`
	ButtonURL  *string `json:"button_url,omitempty"`
}

// Apply merges the update into an existing service.
func (r *UpdateServiceRequest) Apply(svc *Service) {
	if r.Title != nil {
		svc.Title = *r.Title
	}
	if r.Excerpt != nil {
		svc.Excerpt = *r.Excerpt
	}
	if r.Icon != nil {
		svc.Icon = *r.Icon
	}
	if r.SortOrder != nil {
		svc.SortOrder = r.SortOrder
	}
	if r.ButtonText != nil {
		svc.ButtonText = *r.ButtonText
	}
	if r.ButtonURL != nil {
		svc.ButtonURL = *r.ButtonURL
	}
}

// ListServicesFilter bounds a catalog listing.
type ListServicesFilter struct {
	Limit  int
	Offset int
}
