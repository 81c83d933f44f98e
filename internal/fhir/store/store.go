// Package store persists FHIR resource mirror records on the side-database.
package store

import (
	"context"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/models"
)

// Store is the FHIR side-database surface. Lookups by resource identifier
// return the first matching mirror row.
type Store interface {
	SavePatient(ctx context.Context, record *models.PatientRecord) error
	FindPatient(ctx context.Context, patientID string) (*models.PatientRecord, error)
	ListPatients(ctx context.Context) ([]*models.PatientRecord, error)

	SaveMedicationRequest(ctx context.Context, record *models.MedicationRequestRecord) error
	FindMedicationRequest(ctx context.Context, requestID string) (*models.MedicationRequestRecord, error)
	ListMedicationRequests(ctx context.Context) ([]*models.MedicationRequestRecord, error)

	SaveMedicationDispense(ctx context.Context, record *models.MedicationDispenseRecord) error
	FindMedicationDispense(ctx context.Context, dispenseID string) (*models.MedicationDispenseRecord, error)
	ListMedicationDispenses(ctx context.Context) ([]*models.MedicationDispenseRecord, error)
}
