package client

import (
	"context"

	domain "caseboard/internal/domain/client"
)

// Store persists Client state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Client, error)
	Save(ctx context.Context, value domain.Client) error
	List(ctx context.Context) ([]domain.Client, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Client, error)
	SearchByName(ctx context.Context, query string, limit int) ([]domain.Client, error)
}
