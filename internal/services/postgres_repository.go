package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repository uses.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores the service catalog in the relational database.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("services: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateServiceRequest) (*Service, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO services (id, title, excerpt, icon, sort_order, button_text, button_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		id,
		req.Title,
		req.Excerpt,
		req.Icon,
		req.SortOrder,
		req.ButtonText,
		req.ButtonURL,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("services: insert failed: %w", err)
	}

	return &Service{
		ID:         id.String(),
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Icon:       req.Icon,
		SortOrder:  req.SortOrder,
		ButtonText: req.ButtonText,
		ButtonURL:  req.ButtonURL,
		CreatedAt:  createdAt,
	}, nil
}

// GetByID fetches a single service.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	query := `
		SELECT id, title, excerpt, icon, sort_order, button_text, button_url, created_at
		FROM services
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	var svc Service
	if err := row.Scan(
		&svc.ID,
		&svc.Title,
		&svc.Excerpt,
		&svc.Icon,
		&svc.SortOrder,
		&svc.ButtonText,
		&svc.ButtonURL,
		&svc.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("services: select failed: %w", err)
	}
	return &svc, nil
}

// List returns services in carousel order.
func (r *PostgresRepository) List(ctx context.Context, filter ListServicesFilter) ([]*Service, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, title, excerpt, icon, sort_order, button_text, button_url, created_at
		FROM services
		ORDER BY sort_order ASC NULLS LAST, created_at ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("services: list failed: %w", err)
	}
	defer rows.Close()

	out := []*Service{}
	for rows.Next() {
		var svc Service
		if err := rows.Scan(
			&svc.ID,
			&svc.Title,
			&svc.Excerpt,
			&svc.Icon,
			&svc.SortOrder,
			&svc.ButtonText,
			&svc.ButtonURL,
			&svc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("services: scan failed: %w", err)
		}
		out = append(out, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("services: rows failed: %w", err)
	}
	return out, nil
}

// Update rewrites the mutable columns of a service.
func (r *PostgresRepository) Update(ctx context.Context, id string, req *UpdateServiceRequest) (*Service, error) {
	svc, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(svc)
	if svc.Title == "" {
		return nil, ErrMissingTitle
	}

	query := `
		UPDATE services
		SET title = $2, excerpt = $3, icon = $4, sort_order = $5, button_text = $6, button_url = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		id,
		svc.Title,
		svc.Excerpt,
		svc.Icon,
		svc.SortOrder,
		svc.ButtonText,
		svc.ButtonURL,
	)
	if err != nil {
		return nil, fmt.Errorf("services: update failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// Delete removes a service.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("services: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}
