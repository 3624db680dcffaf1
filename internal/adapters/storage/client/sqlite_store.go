package client

import (
	"context"
	"database/sql"
	"fmt"

	"caseboard/internal/adapters/storage"
	domain "caseboard/internal/domain/client"
)

const clientColumns = "id, name, email, phone, address, guardian, status, flag_reason, admitted_at, updated_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ClientStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Client by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Client, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+clientColumns+" FROM client WHERE id = ?", id)
	entity, err := scanClient(row)
	if err == sql.ErrNoRows {
		return domain.Client{}, fmt.Errorf("client not found: %w", err)
	}
	return entity, err
}

// Save persists a Client to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Client) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO client (`+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, email=excluded.email,
		 phone=excluded.phone, address=excluded.address, guardian=excluded.guardian,
		 status=excluded.status, flag_reason=excluded.flag_reason,
		 admitted_at=excluded.admitted_at, updated_at=excluded.updated_at`,
		entity.ID, entity.Name, entity.Email, entity.Phone, entity.Address,
		entity.Guardian, entity.Status, entity.FlagReason, entity.AdmittedAt, entity.UpdatedAt,
	)
	return err
}

// List retrieves all Clients.
// PRE: none
// POST: Returns all clients ordered by name
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Client, error) {
	return s.queryClients(ctx, "SELECT "+clientColumns+" FROM client ORDER BY name")
}

// ListByStatus retrieves Clients with a given residency status.
// PRE: status is a valid residency status
// POST: Returns matching clients ordered by name
func (s *SQLiteStore) ListByStatus(ctx context.Context, status string) ([]domain.Client, error) {
	return s.queryClients(ctx, "SELECT "+clientColumns+" FROM client WHERE status = ? ORDER BY name", status)
}

// SearchByName retrieves Clients whose name contains the query.
// PRE: query is non-empty; limit > 0
// POST: Returns up to limit matches ordered by name
func (s *SQLiteStore) SearchByName(ctx context.Context, query string, limit int) ([]domain.Client, error) {
	return s.queryClients(ctx,
		"SELECT "+clientColumns+" FROM client WHERE name LIKE ? COLLATE NOCASE ORDER BY name LIMIT ?",
		"%"+query+"%", limit)
}

func (s *SQLiteStore) queryClients(ctx context.Context, query string, args ...any) ([]domain.Client, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Client
	for rows.Next() {
		entity, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var entity domain.Client
	err := row.Scan(&entity.ID, &entity.Name, &entity.Email, &entity.Phone,
		&entity.Address, &entity.Guardian, &entity.Status, &entity.FlagReason,
		&entity.AdmittedAt, &entity.UpdatedAt)
	return entity, err
}
