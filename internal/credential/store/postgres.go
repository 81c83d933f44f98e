package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
)

// PostgresStore persists credential mirrors and requests in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed credential store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SaveCredential(ctx context.Context, record *models.CredentialRecord) error {
	if record == nil {
		return fmt.Errorf("credential record is required")
	}
	query := `
		INSERT INTO credentials (token, holder_address, vp_token, cid, encrypted_cid, revocation_end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (token) DO UPDATE
		SET holder_address = EXCLUDED.holder_address,
		    vp_token = EXCLUDED.vp_token,
		    cid = EXCLUDED.cid,
		    encrypted_cid = EXCLUDED.encrypted_cid
	`
	_, err := s.db.ExecContext(ctx, query,
		record.Token, record.HolderAddress, record.PresentationToken,
		record.CID, record.EncryptedCID, record.RevocationEndTime, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("save credential record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByToken(ctx context.Context, token string) (*models.CredentialRecord, error) {
	query := `
		SELECT token, holder_address, vp_token, cid, encrypted_cid, revocation_end_time, created_at
		FROM credentials
		WHERE token = $1
	`
	rec, err := scanCredential(s.db.QueryRowContext(ctx, query, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find credential record: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) FindByCID(ctx context.Context, cid string) ([]*models.CredentialRecord, error) {
	query := `
		SELECT token, holder_address, vp_token, cid, encrypted_cid, revocation_end_time, created_at
		FROM credentials
		WHERE cid = $1
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, cid)
	if err != nil {
		return nil, fmt.Errorf("find credential records by cid: %w", err)
	}
	defer rows.Close()

	var out []*models.CredentialRecord
	for rows.Next() {
		rec, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credential record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SetRevocationEndTime(ctx context.Context, encryptedCID string, end time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE credentials SET revocation_end_time = $1 WHERE encrypted_cid = $2`,
		end, encryptedCID)
	if err != nil {
		return 0, fmt.Errorf("set revocation end time: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("set revocation end time: %w", err)
	}
	return int(affected), nil
}

func (s *PostgresStore) SubmitRequest(ctx context.Context, request *models.VCRequest) error {
	if request == nil {
		return fmt.Errorf("credential request is required")
	}
	query := `
		INSERT INTO vc_requests (id, type, user_id, full_name, birth_date, national_id, holder_did, jws, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		request.ID, request.Type, request.UserID, request.FullName,
		request.BirthDate, request.NationalID, request.HolderDID, request.JWS, request.CreatedAt)
	if err != nil {
		return fmt.Errorf("submit credential request: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListRequests(ctx context.Context) ([]*models.VCRequest, error) {
	return s.listRequests(ctx,
		`SELECT id, type, user_id, full_name, birth_date, national_id, holder_did, jws, created_at
		 FROM vc_requests ORDER BY created_at`)
}

func (s *PostgresStore) ListRequestsByUser(ctx context.Context, userID string) ([]*models.VCRequest, error) {
	return s.listRequests(ctx,
		`SELECT id, type, user_id, full_name, birth_date, national_id, holder_did, jws, created_at
		 FROM vc_requests WHERE user_id = $1 ORDER BY created_at`, userID)
}

func (s *PostgresStore) listRequests(ctx context.Context, query string, args ...any) ([]*models.VCRequest, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credential requests: %w", err)
	}
	defer rows.Close()

	var out []*models.VCRequest
	for rows.Next() {
		var req models.VCRequest
		if err := rows.Scan(&req.ID, &req.Type, &req.UserID, &req.FullName,
			&req.BirthDate, &req.NationalID, &req.HolderDID, &req.JWS, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credential request: %w", err)
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (*models.CredentialRecord, error) {
	var rec models.CredentialRecord
	var end sql.NullTime
	err := row.Scan(&rec.Token, &rec.HolderAddress, &rec.PresentationToken,
		&rec.CID, &rec.EncryptedCID, &end, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if end.Valid {
		rec.RevocationEndTime = &end.Time
	}
	return &rec, nil
}
