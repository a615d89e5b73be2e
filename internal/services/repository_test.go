package services

import (
	"context"
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestInMemoryCreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	svc, err := repo.Create(ctx, &CreateServiceRequest{
		Title:      "Bridal Makeup",
		Excerpt:    "Look flawless on your big day.",
		Icon:       "fa-ring",
		SortOrder:  intPtr(1),
		ButtonText: "Learn More",
		ButtonURL:  "https://example.com/bridal-makeup",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if svc.ID == "" {
		t.Error("expected a generated ID")
	}
	if svc.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := repo.GetByID(ctx, svc.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "Bridal Makeup" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestInMemoryCreateRequiresTitle(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Create(context.Background(), &CreateServiceRequest{Title: "   "})
	if !errors.Is(err, ErrMissingTitle) {
		t.Errorf("Create() error = %v, want ErrMissingTitle", err)
	}
}

func TestInMemoryGetNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("GetByID() error = %v, want ErrServiceNotFound", err)
	}
}

func TestInMemoryListOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	// Unordered entries sort after ordered ones.
	unordered, _ := repo.Create(ctx, &CreateServiceRequest{Title: "Party Makeup"})
	second, _ := repo.Create(ctx, &CreateServiceRequest{Title: "Learn Makeup", SortOrder: intPtr(2)})
	first, _ := repo.Create(ctx, &CreateServiceRequest{Title: "Bridal Makeup", SortOrder: intPtr(1)})

	list, err := repo.List(ctx, ListServicesFilter{Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID || list[2].ID != unordered.ID {
		t.Errorf("order = %q, %q, %q", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestInMemoryListPagination(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		if _, err := repo.Create(ctx, &CreateServiceRequest{Title: "Service", SortOrder: intPtr(i)}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	page, err := repo.List(ctx, ListServicesFilter{Limit: 2, Offset: 3})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(page) != 2 {
		t.Errorf("len = %d, want 2", len(page))
	}

	empty, err := repo.List(ctx, ListServicesFilter{Limit: 2, Offset: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("len = %d, want 0 past the end", len(empty))
	}
}

func TestInMemoryUpdate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	svc, _ := repo.Create(ctx, &CreateServiceRequest{Title: "Bridal Makeup", Excerpt: "old"})

	updated, err := repo.Update(ctx, svc.ID, &UpdateServiceRequest{Excerpt: strPtr("new")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Excerpt != "new" {
		t.Errorf("Excerpt = %q, want new", updated.Excerpt)
	}
	if updated.Title != "Bridal Makeup" {
		t.Errorf("Title = %q, should be unchanged", updated.Title)
	}

	if _, err := repo.Update(ctx, "missing", &UpdateServiceRequest{}); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrServiceNotFound", err)
	}
}

func TestInMemoryDelete(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	svc, _ := repo.Create(ctx, &CreateServiceRequest{Title: "Bridal Makeup"})

	if err := repo.Delete(ctx, svc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.GetByID(ctx, svc.ID); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrServiceNotFound", err)
	}
	if err := repo.Delete(ctx, svc.ID); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrServiceNotFound", err)
	}
}
