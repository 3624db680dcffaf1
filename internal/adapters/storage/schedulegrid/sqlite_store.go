package schedulegrid

import (
	"context"
	"fmt"

	"caseboard/internal/adapters/storage"
	domain "caseboard/internal/domain/schedulegrid"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new schedule override store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// ListRecords retrieves every stored override record in row-major order.
// PRE: none
// POST: Returns all records, possibly empty
func (s *SQLiteStore) ListRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT time_label, day_label, text, column_index, span_width FROM schedule_override ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.TimeLabel, &rec.DayLabel, &rec.Text, &rec.ColumnIndex, &rec.SpanWidth); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ReplaceAll atomically swaps the stored record set for the given one.
// Two sessions saving concurrently resolve last-writer-wins: whichever
// transaction commits second owns the table.
// PRE: records were produced by a grid export
// POST: The table holds exactly the given records, or is untouched on error
func (s *SQLiteStore) ReplaceAll(ctx context.Context, records []domain.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM schedule_override"); err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}
	for _, rec := range records {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schedule_override (time_label, day_label, text, column_index, span_width) VALUES (?, ?, ?, ?, ?)",
			rec.TimeLabel, rec.DayLabel, rec.Text, rec.ColumnIndex, rec.SpanWidth,
		); err != nil {
			return fmt.Errorf("insert override %s/%s: %w", rec.TimeLabel, rec.DayLabel, err)
		}
	}
	return tx.Commit()
}
