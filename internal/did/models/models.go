// Package models holds the DID lifecycle domain types.
package models

import "time"

// IdentifierRecord is the side-database mirror of an anchored identifier.
// The token is the record key; the authoritative anchor lives on the ledger.
type IdentifierRecord struct {
	Token     string    `json:"token"`
	Address   string    `json:"user"`
	DID       string    `json:"did"`
	CID       string    `json:"ipfsHash"`
	CreatedAt time.Time `json:"created_at"`
}

// MintResult is the outcome of minting a new identifier.
type MintResult struct {
	Token string
	CID   string
	DID   string
}

// VerificationResult carries the off-chain verification outcome together with
// the token payload it was derived from.
type VerificationResult struct {
	Verified bool
	Payload  map[string]any
}
