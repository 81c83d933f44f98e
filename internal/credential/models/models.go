// Package models holds the credential lifecycle domain types.
package models

import "time"

// CredentialRecord is the side-database mirror of an issued credential. The
// credential token is the record key. EncryptedCID holds the hex-encoded
// sealed content id exactly as it was anchored, so revocation checks can
// compare in encrypted form without unsealing.
type CredentialRecord struct {
	Token             string     `json:"token"`
	HolderAddress     string     `json:"user"`
	PresentationToken string     `json:"vp_jwt"`
	CID               string     `json:"cid"`
	EncryptedCID      string     `json:"vc_encrypted_hash"`
	RevocationEndTime *time.Time `json:"revocation_end_time,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// VCRequest is a pending credential request submitted by a user.
type VCRequest struct {
	ID         string    `json:"reqId"`
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	FullName   string    `json:"fullName"`
	BirthDate  string    `json:"birthDate"`
	NationalID string    `json:"nationalID"`
	HolderDID  string    `json:"holderDID"`
	JWS        string    `json:"jws"`
	CreatedAt  time.Time `json:"created_at"`
}

// RequestTypeBankID is the only request type currently issued.
const RequestTypeBankID = "bank-id"

// IssueResult is the outcome of issuing a credential. EncryptedCID is the
// hex-encoded sealed content id; CID is the plaintext content id the mirror
// keeps for later revocation lookups.
type IssueResult struct {
	CredentialToken   string
	PresentationToken string
	CID               string
	EncryptedCID      string
	HolderAddress     string
}

// ResolvedCredential is the stored and returned form of a verified
// credential token. The embedded token lets cross-verification compare
// fetched documents against presented tokens.
type ResolvedCredential struct {
	JWT      string         `json:"jwt"`
	Payload  map[string]any `json:"payload"`
	Verified bool           `json:"verified"`
}

// BankIDData carries the subject fields for a bank-ID credential.
type BankIDData struct {
	FullName   string `json:"fullName"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalID"`
	HolderDID  string `json:"holderDID"`
}
