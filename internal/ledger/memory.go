package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// MemoryClient mirrors the registry contract's storage layout in process
// memory. It backs unit tests and local development where no chain is
// reachable.
type MemoryClient struct {
	mu          sync.RWMutex
	identifiers map[common.Address][][]byte
	issued      map[common.Address][][]byte
	owned       map[common.Address][][]byte
	revoked     map[common.Address][][]byte
}

var _ Client = (*MemoryClient)(nil)

// NewMemoryClient builds an empty in-memory registry.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		identifiers: make(map[common.Address][][]byte),
		issued:      make(map[common.Address][][]byte),
		owned:       make(map[common.Address][][]byte),
		revoked:     make(map[common.Address][][]byte),
	}
}

func (m *MemoryClient) AppendIdentifier(_ context.Context, key Signer, record []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	addr := key.Address()
	m.identifiers[addr] = append(m.identifiers[addr], cloneRecord(record))
	return nil
}

func (m *MemoryClient) RemoveIdentifierByIndex(_ context.Context, key Signer, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	addr := key.Address()
	records := m.identifiers[addr]
	if index < 0 || index >= len(records) {
		return dErrors.New(dErrors.CodeLedgerWrite, fmt.Sprintf("identifier index %d out of range", index))
	}
	m.identifiers[addr] = append(records[:index], records[index+1:]...)
	return nil
}

func (m *MemoryClient) ListIdentifiers(_ context.Context, address common.Address) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRecords(m.identifiers[address]), nil
}

func (m *MemoryClient) RecordIssuedCertificate(_ context.Context, key Signer, holder common.Address, sealed []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	issuer := key.Address()
	m.issued[issuer] = append(m.issued[issuer], cloneRecord(sealed))
	m.owned[holder] = append(m.owned[holder], cloneRecord(sealed))
	return nil
}

func (m *MemoryClient) RevokeCertificate(_ context.Context, key Signer, sealed []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	addr := key.Address()
	m.revoked[addr] = append(m.revoked[addr], cloneRecord(sealed))
	return nil
}

func (m *MemoryClient) ListIssuedBy(_ context.Context, address common.Address) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRecords(m.issued[address]), nil
}

func (m *MemoryClient) ListOwnedBy(_ context.Context, address common.Address) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRecords(m.owned[address]), nil
}

func (m *MemoryClient) ListRevokedBy(_ context.Context, address common.Address) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRecords(m.revoked[address]), nil
}

func cloneRecord(record []byte) []byte {
	out := make([]byte, len(record))
	copy(out, record)
	return out
}

func cloneRecords(records [][]byte) [][]byte {
	if records == nil {
		return nil
	}
	out := make([][]byte, len(records))
	for i, r := range records {
		out[i] = cloneRecord(r)
	}
	return out
}
