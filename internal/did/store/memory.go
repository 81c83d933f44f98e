package store

import (
	"context"
	"sync"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/models"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// ErrNotFound is returned when a record cannot be located.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "identifier record not found")

// InMemoryStore keeps identifier mirrors in memory for tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*models.IdentifierRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*models.IdentifierRecord)}
}

func (s *InMemoryStore) Save(_ context.Context, record *models.IdentifierRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *record
	s.records[record.Token] = &clone
	return nil
}

func (s *InMemoryStore) FindByToken(_ context.Context, token string) (*models.IdentifierRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.records[token]; ok {
		clone := *rec
		return &clone, nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) ListByAddress(_ context.Context, address string) ([]*models.IdentifierRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.IdentifierRecord
	for _, rec := range s.records {
		if rec.Address == address {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *InMemoryStore) DeleteByToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[token]; !ok {
		return ErrNotFound
	}
	delete(s.records, token)
	return nil
}
