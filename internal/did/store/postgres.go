package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/models"
)

// PostgresStore persists identifier mirrors in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed identifier store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, record *models.IdentifierRecord) error {
	if record == nil {
		return fmt.Errorf("identifier record is required")
	}
	query := `
		INSERT INTO dids (token, address, did, cid, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (token) DO UPDATE
		SET address = EXCLUDED.address, did = EXCLUDED.did, cid = EXCLUDED.cid
	`
	_, err := s.db.ExecContext(ctx, query,
		record.Token, record.Address, record.DID, record.CID, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("save identifier record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByToken(ctx context.Context, token string) (*models.IdentifierRecord, error) {
	query := `
		SELECT token, address, did, cid, created_at
		FROM dids
		WHERE token = $1
	`
	var rec models.IdentifierRecord
	err := s.db.QueryRowContext(ctx, query, token).
		Scan(&rec.Token, &rec.Address, &rec.DID, &rec.CID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find identifier record: %w", err)
	}
	return &rec, nil
}

func (s *PostgresStore) ListByAddress(ctx context.Context, address string) ([]*models.IdentifierRecord, error) {
	query := `
		SELECT token, address, did, cid, created_at
		FROM dids
		WHERE address = $1
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("list identifier records: %w", err)
	}
	defer rows.Close()

	var out []*models.IdentifierRecord
	for rows.Next() {
		var rec models.IdentifierRecord
		if err := rows.Scan(&rec.Token, &rec.Address, &rec.DID, &rec.CID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan identifier record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteByToken(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM dids WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete identifier record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete identifier record: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
