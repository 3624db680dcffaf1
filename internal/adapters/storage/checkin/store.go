package checkin

import (
	"context"

	domain "caseboard/internal/domain/checkin"
)

// Store persists CheckIn state.
type Store interface {
	Save(ctx context.Context, value domain.CheckIn) error
	ListByClientID(ctx context.Context, clientID string) ([]domain.CheckIn, error)
	ListByDay(ctx context.Context, day string) ([]domain.CheckIn, error)
	ExistsForClientOnDay(ctx context.Context, clientID, day string) (bool, error)
}
