package handler

import (
	"strings"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

type CreateDIDRequest struct {
	Subject string `json:"subject"`
	Method  string `json:"method"`
}

func (r *CreateDIDRequest) Normalize() {
	if r == nil {
		return
	}
	r.Subject = strings.TrimSpace(r.Subject)
	r.Method = strings.TrimSpace(r.Method)
}

func (r *CreateDIDRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Subject == "" {
		return dErrors.New(dErrors.CodeValidation, "subject is required")
	}
	if r.Method == "" {
		return dErrors.New(dErrors.CodeValidation, "method is required")
	}
	return nil
}

type DeleteDIDRequest struct {
	Token       string `json:"jwt"`
	UserAddress string `json:"userAddress"`
	CID         string `json:"hash"`
}

func (r *DeleteDIDRequest) Normalize() {
	if r == nil {
		return
	}
	r.Token = strings.TrimSpace(r.Token)
	r.UserAddress = strings.TrimSpace(r.UserAddress)
	r.CID = strings.TrimSpace(r.CID)
}

func (r *DeleteDIDRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Token == "" {
		return dErrors.New(dErrors.CodeValidation, "jwt is required")
	}
	if r.UserAddress == "" {
		return dErrors.New(dErrors.CodeValidation, "userAddress is required")
	}
	if r.CID == "" {
		return dErrors.New(dErrors.CodeValidation, "hash is required")
	}
	return nil
}
