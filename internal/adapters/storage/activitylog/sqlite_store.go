package activitylog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"caseboard/internal/adapters/storage"
	domain "caseboard/internal/domain/activitylog"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ActivityLogStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists an Entry to the database. Entries are append-only.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, actor, action, details, target, ip_address, occurred_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entity.ID, entity.Actor, entity.Action, entity.Details, entity.Target,
		entity.IPAddress, entity.OccurredAt.Format(time.RFC3339),
	)
	return err
}

// List retrieves entries matching the filter, newest first.
// PRE: filter limit/offset are non-negative
// POST: Returns matching entries
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]domain.Entry, error) {
	where, args := buildWhere(filter)
	query := "SELECT id, actor, action, details, target, ip_address, occurred_at FROM activity_log" +
		where + " ORDER BY occurred_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		var entity domain.Entry
		var occurredAt string
		if err := rows.Scan(&entity.ID, &entity.Actor, &entity.Action, &entity.Details,
			&entity.Target, &entity.IPAddress, &occurredAt); err != nil {
			return nil, err
		}
		if entity.OccurredAt, err = time.Parse(time.RFC3339, occurredAt); err != nil {
			return nil, fmt.Errorf("invalid occurred_at %q: %w", occurredAt, err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of entries matching the filter.
// PRE: none
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter Filter) (int, error) {
	where, args := buildWhere(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM activity_log"+where, args...).Scan(&count)
	return count, err
}

func buildWhere(filter Filter) (string, []any) {
	var clauses []string
	var args []any
	if filter.Actor != "" {
		clauses = append(clauses, "actor = ?")
		args = append(args, filter.Actor)
	}
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, filter.Action)
	}
	if filter.Day != "" {
		clauses = append(clauses, "occurred_at LIKE ?")
		args = append(args, filter.Day+"%")
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
