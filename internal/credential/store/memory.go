package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// ErrNotFound is returned when a record cannot be located.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "credential record not found")

// InMemoryStore keeps credential mirrors and requests in memory for tests and
// local runs.
type InMemoryStore struct {
	mu          sync.RWMutex
	credentials map[string]*models.CredentialRecord
	requests    map[string]*models.VCRequest
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		credentials: make(map[string]*models.CredentialRecord),
		requests:    make(map[string]*models.VCRequest),
	}
}

func (s *InMemoryStore) SaveCredential(_ context.Context, record *models.CredentialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := cloneCredential(record)
	s.credentials[record.Token] = clone
	return nil
}

func (s *InMemoryStore) FindByToken(_ context.Context, token string) (*models.CredentialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if rec, ok := s.credentials[token]; ok {
		return cloneCredential(rec), nil
	}
	return nil, ErrNotFound
}

func (s *InMemoryStore) FindByCID(_ context.Context, cid string) ([]*models.CredentialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.CredentialRecord
	for _, rec := range s.credentials {
		if rec.CID == cid {
			out = append(out, cloneCredential(rec))
		}
	}
	return out, nil
}

func (s *InMemoryStore) SetRevocationEndTime(_ context.Context, encryptedCID string, end time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := 0
	for _, rec := range s.credentials {
		if rec.EncryptedCID == encryptedCID {
			endCopy := end
			rec.RevocationEndTime = &endCopy
			matched++
		}
	}
	return matched, nil
}

func (s *InMemoryStore) SubmitRequest(_ context.Context, request *models.VCRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *request
	s.requests[request.ID] = &clone
	return nil
}

func (s *InMemoryStore) ListRequests(_ context.Context) ([]*models.VCRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.VCRequest
	for _, req := range s.requests {
		clone := *req
		out = append(out, &clone)
	}
	sortRequests(out)
	return out, nil
}

func (s *InMemoryStore) ListRequestsByUser(_ context.Context, userID string) ([]*models.VCRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.VCRequest
	for _, req := range s.requests {
		if req.UserID == userID {
			clone := *req
			out = append(out, &clone)
		}
	}
	sortRequests(out)
	return out, nil
}

func sortRequests(requests []*models.VCRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
}

func cloneCredential(rec *models.CredentialRecord) *models.CredentialRecord {
	clone := *rec
	if rec.RevocationEndTime != nil {
		end := *rec.RevocationEndTime
		clone.RevocationEndTime = &end
	}
	return &clone
}
