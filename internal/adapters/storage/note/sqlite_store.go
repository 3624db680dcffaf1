package note

import (
	"context"
	"fmt"
	"time"

	"caseboard/internal/adapters/storage"
	domain "caseboard/internal/domain/note"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new NoteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Note to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Note) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO progress_note (id, client_id, author, body, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET author=excluded.author, body=excluded.body`,
		entity.ID, entity.ClientID, entity.Author, entity.Body,
		entity.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// ListByClientID retrieves a client's progress notes, newest first.
// PRE: clientID is non-empty
// POST: Returns matching notes
func (s *SQLiteStore) ListByClientID(ctx context.Context, clientID string) ([]domain.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, client_id, author, body, created_at FROM progress_note WHERE client_id = ? ORDER BY created_at DESC",
		clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Note
	for rows.Next() {
		var entity domain.Note
		var createdAt string
		if err := rows.Scan(&entity.ID, &entity.ClientID, &entity.Author, &entity.Body, &createdAt); err != nil {
			return nil, err
		}
		if entity.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
