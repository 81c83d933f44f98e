package store

import (
	"context"
	"time"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
)

// Store mirrors issued credentials and queues credential requests in the side
// database. Credential mirror writes are best-effort from the caller's point
// of view; the soft-revocation end time is the one field the mirror is
// authoritative for.
type Store interface {
	SaveCredential(ctx context.Context, record *models.CredentialRecord) error
	FindByToken(ctx context.Context, token string) (*models.CredentialRecord, error)
	FindByCID(ctx context.Context, cid string) ([]*models.CredentialRecord, error)
	// SetRevocationEndTime updates every record carrying the encrypted
	// content id and reports how many rows matched.
	SetRevocationEndTime(ctx context.Context, encryptedCID string, end time.Time) (int, error)

	SubmitRequest(ctx context.Context, request *models.VCRequest) error
	ListRequests(ctx context.Context) ([]*models.VCRequest, error)
	ListRequestsByUser(ctx context.Context, userID string) ([]*models.VCRequest, error)
}
