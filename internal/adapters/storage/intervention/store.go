package intervention

import (
	"context"

	domain "caseboard/internal/domain/intervention"
)

// Store persists Intervention state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Intervention, error)
	Save(ctx context.Context, value domain.Intervention) error
	ListByClientID(ctx context.Context, clientID string) ([]domain.Intervention, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Intervention, error)
}
