package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/models"
)

// PostgresStore persists FHIR mirror records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed FHIR store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SavePatient(ctx context.Context, record *models.PatientRecord) error {
	if record == nil {
		return fmt.Errorf("patient record is required")
	}
	query := `
		INSERT INTO fhir_patients (id, holder_address, patient_id, cid, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.HolderAddress, record.PatientID, record.CID, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("save patient record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindPatient(ctx context.Context, patientID string) (*models.PatientRecord, error) {
	query := `
		SELECT id, holder_address, patient_id, cid, created_at
		FROM fhir_patients
		WHERE patient_id = $1
		ORDER BY created_at
		LIMIT 1
	`
	var rec models.PatientRecord
	err := s.db.QueryRowContext(ctx, query, patientID).Scan(
		&rec.ID, &rec.HolderAddress, &rec.PatientID, &rec.CID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find patient record: %w", err)
	}
	return &rec, nil
}

func (s *PostgresStore) ListPatients(ctx context.Context) ([]*models.PatientRecord, error) {
	query := `
		SELECT id, holder_address, patient_id, cid, created_at
		FROM fhir_patients
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list patient records: %w", err)
	}
	defer rows.Close()

	var out []*models.PatientRecord
	for rows.Next() {
		var rec models.PatientRecord
		if err := rows.Scan(&rec.ID, &rec.HolderAddress, &rec.PatientID, &rec.CID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan patient record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SaveMedicationRequest(ctx context.Context, record *models.MedicationRequestRecord) error {
	if record == nil {
		return fmt.Errorf("medication request record is required")
	}
	query := `
		INSERT INTO fhir_medication_requests (id, request_id, cid, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, record.ID, record.RequestID, record.CID, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("save medication request record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindMedicationRequest(ctx context.Context, requestID string) (*models.MedicationRequestRecord, error) {
	query := `
		SELECT id, request_id, cid, created_at
		FROM fhir_medication_requests
		WHERE request_id = $1
		ORDER BY created_at
		LIMIT 1
	`
	var rec models.MedicationRequestRecord
	err := s.db.QueryRowContext(ctx, query, requestID).Scan(
		&rec.ID, &rec.RequestID, &rec.CID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find medication request record: %w", err)
	}
	return &rec, nil
}

func (s *PostgresStore) ListMedicationRequests(ctx context.Context) ([]*models.MedicationRequestRecord, error) {
	query := `
		SELECT id, request_id, cid, created_at
		FROM fhir_medication_requests
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list medication request records: %w", err)
	}
	defer rows.Close()

	var out []*models.MedicationRequestRecord
	for rows.Next() {
		var rec models.MedicationRequestRecord
		if err := rows.Scan(&rec.ID, &rec.RequestID, &rec.CID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan medication request record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) SaveMedicationDispense(ctx context.Context, record *models.MedicationDispenseRecord) error {
	if record == nil {
		return fmt.Errorf("medication dispense record is required")
	}
	query := `
		INSERT INTO fhir_medication_dispenses (id, dispense_id, cid, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, record.ID, record.DispenseID, record.CID, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("save medication dispense record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindMedicationDispense(ctx context.Context, dispenseID string) (*models.MedicationDispenseRecord, error) {
	query := `
		SELECT id, dispense_id, cid, created_at
		FROM fhir_medication_dispenses
		WHERE dispense_id = $1
		ORDER BY created_at
		LIMIT 1
	`
	var rec models.MedicationDispenseRecord
	err := s.db.QueryRowContext(ctx, query, dispenseID).Scan(
		&rec.ID, &rec.DispenseID, &rec.CID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find medication dispense record: %w", err)
	}
	return &rec, nil
}

func (s *PostgresStore) ListMedicationDispenses(ctx context.Context) ([]*models.MedicationDispenseRecord, error) {
	query := `
		SELECT id, dispense_id, cid, created_at
		FROM fhir_medication_dispenses
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list medication dispense records: %w", err)
	}
	defer rows.Close()

	var out []*models.MedicationDispenseRecord
	for rows.Next() {
		var rec models.MedicationDispenseRecord
		if err := rows.Scan(&rec.ID, &rec.DispenseID, &rec.CID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan medication dispense record: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
