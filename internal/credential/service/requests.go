package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// SubmitRequest queues a bank-ID credential request and returns its id.
func (s *Service) SubmitRequest(ctx context.Context, userID string, data models.BankIDData) (string, error) {
	request := &models.VCRequest{
		ID:         uuid.NewString(),
		Type:       models.RequestTypeBankID,
		UserID:     userID,
		FullName:   data.FullName,
		BirthDate:  data.BirthDate,
		NationalID: data.NationalID,
		HolderDID:  data.HolderDID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.SubmitRequest(ctx, request); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "queueing credential request failed")
	}
	return request.ID, nil
}

// Requests lists every pending credential request.
func (s *Service) Requests(ctx context.Context) ([]*models.VCRequest, error) {
	requests, err := s.store.ListRequests(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "listing credential requests failed")
	}
	return requests, nil
}

// RequestsByUser lists the pending credential requests of one user.
func (s *Service) RequestsByUser(ctx context.Context, userID string) ([]*models.VCRequest, error) {
	requests, err := s.store.ListRequestsByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "listing credential requests failed")
	}
	return requests, nil
}
