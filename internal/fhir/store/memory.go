package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/models"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// ErrNotFound is returned when a resource record cannot be located.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "fhir resource record not found")

// InMemoryStore keeps FHIR mirror records in memory for tests and local runs.
type InMemoryStore struct {
	mu        sync.RWMutex
	patients  map[string]*models.PatientRecord
	requests  map[string]*models.MedicationRequestRecord
	dispenses map[string]*models.MedicationDispenseRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		patients:  make(map[string]*models.PatientRecord),
		requests:  make(map[string]*models.MedicationRequestRecord),
		dispenses: make(map[string]*models.MedicationDispenseRecord),
	}
}

func (s *InMemoryStore) SavePatient(_ context.Context, record *models.PatientRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *record
	s.patients[record.ID] = &clone
	return nil
}

func (s *InMemoryStore) FindPatient(_ context.Context, patientID string) (*models.PatientRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.patients {
		if rec.PatientID == patientID {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) ListPatients(_ context.Context) ([]*models.PatientRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PatientRecord, 0, len(s.patients))
	for _, rec := range s.patients {
		clone := *rec
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) SaveMedicationRequest(_ context.Context, record *models.MedicationRequestRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *record
	s.requests[record.ID] = &clone
	return nil
}

func (s *InMemoryStore) FindMedicationRequest(_ context.Context, requestID string) (*models.MedicationRequestRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.requests {
		if rec.RequestID == requestID {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) ListMedicationRequests(_ context.Context) ([]*models.MedicationRequestRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.MedicationRequestRecord, 0, len(s.requests))
	for _, rec := range s.requests {
		clone := *rec
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemoryStore) SaveMedicationDispense(_ context.Context, record *models.MedicationDispenseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *record
	s.dispenses[record.ID] = &clone
	return nil
}

func (s *InMemoryStore) FindMedicationDispense(_ context.Context, dispenseID string) (*models.MedicationDispenseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.dispenses {
		if rec.DispenseID == dispenseID {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) ListMedicationDispenses(_ context.Context) ([]*models.MedicationDispenseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.MedicationDispenseRecord, 0, len(s.dispenses))
	for _, rec := range s.dispenses {
		clone := *rec
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
