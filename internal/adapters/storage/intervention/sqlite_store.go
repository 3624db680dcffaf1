package intervention

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"caseboard/internal/adapters/storage"
	domain "caseboard/internal/domain/intervention"
)

const interventionColumns = "id, client_id, kind, status, scheduled_for, notes, created_by, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new InterventionStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Intervention by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Intervention, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+interventionColumns+" FROM intervention WHERE id = ?", id)
	entity, err := scanIntervention(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Intervention{}, fmt.Errorf("intervention not found: %w", err)
	}
	return entity, err
}

// Save persists an Intervention to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Intervention) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO intervention (`+interventionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET kind=excluded.kind, status=excluded.status,
		 scheduled_for=excluded.scheduled_for, notes=excluded.notes`,
		entity.ID, entity.ClientID, entity.Kind, entity.Status,
		entity.ScheduledFor.Format(time.RFC3339), entity.Notes, entity.CreatedBy,
		entity.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// ListByClientID retrieves a client's interventions, soonest first.
// PRE: clientID is non-empty
// POST: Returns matching interventions
func (s *SQLiteStore) ListByClientID(ctx context.Context, clientID string) ([]domain.Intervention, error) {
	return s.queryInterventions(ctx,
		"SELECT "+interventionColumns+" FROM intervention WHERE client_id = ? ORDER BY scheduled_for",
		clientID)
}

// ListByStatus retrieves interventions in a given status, soonest first.
// PRE: status is a valid intervention status
// POST: Returns matching interventions
func (s *SQLiteStore) ListByStatus(ctx context.Context, status string) ([]domain.Intervention, error) {
	return s.queryInterventions(ctx,
		"SELECT "+interventionColumns+" FROM intervention WHERE status = ? ORDER BY scheduled_for",
		status)
}

func (s *SQLiteStore) queryInterventions(ctx context.Context, query string, args ...any) ([]domain.Intervention, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Intervention
	for rows.Next() {
		entity, err := scanIntervention(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanIntervention(scan func(dest ...any) error) (domain.Intervention, error) {
	var entity domain.Intervention
	var scheduledFor, createdAt string
	if err := scan(&entity.ID, &entity.ClientID, &entity.Kind, &entity.Status,
		&scheduledFor, &entity.Notes, &entity.CreatedBy, &createdAt); err != nil {
		return domain.Intervention{}, err
	}
	var err error
	if entity.ScheduledFor, err = time.Parse(time.RFC3339, scheduledFor); err != nil {
		return domain.Intervention{}, fmt.Errorf("invalid scheduled_for %q: %w", scheduledFor, err)
	}
	if entity.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return domain.Intervention{}, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	return entity, nil
}
