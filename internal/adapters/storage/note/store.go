package note

import (
	"context"

	domain "caseboard/internal/domain/note"
)

// Store persists Note state.
type Store interface {
	Save(ctx context.Context, value domain.Note) error
	ListByClientID(ctx context.Context, clientID string) ([]domain.Note, error)
}
