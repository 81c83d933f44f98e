package store

import (
	"context"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/models"
)

// Store mirrors anchored identifiers in the side database. Writes are
// best-effort from the caller's point of view; the ledger stays authoritative.
type Store interface {
	Save(ctx context.Context, record *models.IdentifierRecord) error
	FindByToken(ctx context.Context, token string) (*models.IdentifierRecord, error)
	ListByAddress(ctx context.Context, address string) ([]*models.IdentifierRecord, error)
	DeleteByToken(ctx context.Context, token string) error
}
