// Package ledger is the anchoring layer. Identifier documents and sealed
// credential references are appended to an on-chain registry keyed by the
// caller's address; reads are free view calls. The interface is narrow so the
// rest of the system never sees transaction plumbing, and an in-memory
// implementation backs unit tests and local development.
package ledger

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mock.go -package=mocks

// Signer authorizes a ledger write. It is satisfied by the token layer's
// signer, so one request key signs both the token and the anchoring
// transaction.
type Signer interface {
	Key() *ecdsa.PrivateKey
	Address() common.Address
}

// Client reads and writes the registry. Records are opaque byte strings; the
// identifier path stores content ids, the credential path stores sealed
// references.
type Client interface {
	// AppendIdentifier anchors a record under the signer's own address.
	AppendIdentifier(ctx context.Context, key Signer, record []byte) error

	// RemoveIdentifierByIndex deletes the record at the given position in
	// the signer's identifier list.
	RemoveIdentifierByIndex(ctx context.Context, key Signer, index int) error

	// ListIdentifiers returns every identifier record anchored by address.
	ListIdentifiers(ctx context.Context, address common.Address) ([][]byte, error)

	// RecordIssuedCertificate anchors a sealed credential reference under
	// both the signer (issuer) and the holder.
	RecordIssuedCertificate(ctx context.Context, key Signer, holder common.Address, sealed []byte) error

	// RevokeCertificate marks a sealed credential reference revoked under
	// the signer's address.
	RevokeCertificate(ctx context.Context, key Signer, sealed []byte) error

	// ListIssuedBy returns the sealed references issued by address.
	ListIssuedBy(ctx context.Context, address common.Address) ([][]byte, error)

	// ListOwnedBy returns the sealed references held by address.
	ListOwnedBy(ctx context.Context, address common.Address) ([][]byte, error)

	// ListRevokedBy returns the sealed references revoked by address.
	ListRevokedBy(ctx context.Context, address common.Address) ([][]byte, error)
}
