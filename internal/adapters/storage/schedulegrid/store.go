package schedulegrid

import (
	"context"

	domain "caseboard/internal/domain/schedulegrid"
)

// Store persists the flat override-record list the schedule grid is rebuilt
// from on every load.
type Store interface {
	ListRecords(ctx context.Context) ([]domain.Record, error)
	ReplaceAll(ctx context.Context, records []domain.Record) error
}
