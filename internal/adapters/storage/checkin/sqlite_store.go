package checkin

import (
	"context"
	"fmt"
	"time"

	"caseboard/internal/adapters/storage"
	domain "caseboard/internal/domain/checkin"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new CheckInStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a CheckIn to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.CheckIn) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO check_in (id, client_id, mood, note, recorded_by, checked_in_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET mood=excluded.mood, note=excluded.note,
		 recorded_by=excluded.recorded_by, checked_in_at=excluded.checked_in_at`,
		entity.ID, entity.ClientID, entity.Mood, entity.Note, entity.RecordedBy,
		entity.CheckedInAt.Format(time.RFC3339),
	)
	return err
}

// ListByClientID retrieves a client's check-ins, newest first.
// PRE: clientID is non-empty
// POST: Returns matching check-ins
func (s *SQLiteStore) ListByClientID(ctx context.Context, clientID string) ([]domain.CheckIn, error) {
	return s.queryCheckIns(ctx,
		"SELECT id, client_id, mood, note, recorded_by, checked_in_at FROM check_in WHERE client_id = ? ORDER BY checked_in_at DESC",
		clientID)
}

// ListByDay retrieves all check-ins on a calendar day (YYYY-MM-DD).
// PRE: day is in YYYY-MM-DD form
// POST: Returns matching check-ins ordered by time
func (s *SQLiteStore) ListByDay(ctx context.Context, day string) ([]domain.CheckIn, error) {
	return s.queryCheckIns(ctx,
		"SELECT id, client_id, mood, note, recorded_by, checked_in_at FROM check_in WHERE checked_in_at LIKE ? ORDER BY checked_in_at",
		day+"%")
}

// ExistsForClientOnDay reports whether the client already checked in on the
// given calendar day.
// PRE: clientID is non-empty; day is in YYYY-MM-DD form
// POST: Returns true if a check-in exists
func (s *SQLiteStore) ExistsForClientOnDay(ctx context.Context, clientID, day string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM check_in WHERE client_id = ? AND checked_in_at LIKE ?",
		clientID, day+"%").Scan(&count)
	return count > 0, err
}

func (s *SQLiteStore) queryCheckIns(ctx context.Context, query string, args ...any) ([]domain.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.CheckIn
	for rows.Next() {
		var entity domain.CheckIn
		var checkedInAt string
		if err := rows.Scan(&entity.ID, &entity.ClientID, &entity.Mood, &entity.Note, &entity.RecordedBy, &checkedInAt); err != nil {
			return nil, err
		}
		entity.CheckedInAt, err = time.Parse(time.RFC3339, checkedInAt)
		if err != nil {
			return nil, fmt.Errorf("invalid checked_in_at %q: %w", checkedInAt, err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
