package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for service catalog storage
type Repository interface {
	Create(ctx context.Context, req *CreateServiceRequest) (*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, filter ListServicesFilter) ([]*Service, error)
	Update(ctx context.Context, id string, req *UpdateServiceRequest) (*Service, error)
	Delete(ctx context.Context, id string) error
}

// InMemoryRepository keeps the catalog in memory. Used when no database is
// configured, e.g. local development and tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	services map[string]*Service
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		services: make(map[string]*Service),
	}
}

// Create adds a service to the catalog
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateServiceRequest) (*Service, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	svc := &Service{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Icon:       req.Icon,
		SortOrder:  req.SortOrder,
		ButtonText: req.ButtonText,
		ButtonURL:  req.ButtonURL,
		CreatedAt:  time.Now().UTC(),
	}

	r.mu.Lock()
	r.services[svc.ID] = svc
	r.mu.Unlock()

	return svc, nil
}

// GetByID retrieves a service by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}

	return svc, nil
}

// List returns services ordered by sort order, unordered entries last by
// creation time.
func (r *InMemoryRepository) List(ctx context.Context, filter ListServicesFilter) ([]*Service, error) {
	r.mu.RLock()
	all := make([]*Service, 0, len(r.services))
	for _, svc := range r.services {
		all = append(all, svc)
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		switch {
		case a.SortOrder != nil && b.SortOrder != nil:
			if *a.SortOrder != *b.SortOrder {
				return *a.SortOrder < *b.SortOrder
			}
		case a.SortOrder != nil:
			return true
		case b.SortOrder != nil:
			return false
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	if filter.Offset >= len(all) {
		return []*Service{}, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	return all, nil
}

// Update merges the request into an existing service
func (r *InMemoryRepository) Update(ctx context.Context, id string, req *UpdateServiceRequest) (*Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}

	req.Apply(svc)
	if svc.Title == "" {
		return nil, ErrMissingTitle
	}
	return svc, nil
}

// Delete removes a service
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}
