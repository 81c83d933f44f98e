package handler

import (
	"strings"
	"time"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

// BankIDVCData carries the bank-id attributes a credential is built from.
type BankIDVCData struct {
	FullName   string `json:"fullName"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalId"`
	HolderDID  string `json:"holderDid"`
}

func (d BankIDVCData) toModel() models.BankIDData {
	return models.BankIDData{
		FullName:   d.FullName,
		BirthDate:  d.BirthDate,
		NationalID: d.NationalID,
		HolderDID:  d.HolderDID,
	}
}

type CreateVCRequest struct {
	Name        string `json:"name"`
	IssuerDID   string `json:"issuer_did"`
	HolderDID   string `json:"holder_did"`
	CID         string `json:"ipfsHash"`
	UserAddress string `json:"userAddress"`
}

func (r *CreateVCRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.IssuerDID = strings.TrimSpace(r.IssuerDID)
	r.HolderDID = strings.TrimSpace(r.HolderDID)
	r.CID = strings.TrimSpace(r.CID)
	r.UserAddress = strings.TrimSpace(r.UserAddress)
}

func (r *CreateVCRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.IssuerDID == "" {
		return dErrors.New(dErrors.CodeValidation, "issuer_did is required")
	}
	if r.HolderDID == "" {
		return dErrors.New(dErrors.CodeValidation, "holder_did is required")
	}
	return nil
}

type RevokeVCRequest struct {
	CID     string `json:"cidHash"`
	EndTime string `json:"endTime"`
}

func (r *RevokeVCRequest) Normalize() {
	if r == nil {
		return
	}
	r.CID = strings.TrimSpace(r.CID)
	r.EndTime = strings.TrimSpace(r.EndTime)
}

func (r *RevokeVCRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.CID == "" {
		return dErrors.New(dErrors.CodeValidation, "cidHash is required")
	}
	if r.EndTime != "" {
		if _, err := time.Parse(time.RFC3339, r.EndTime); err != nil {
			return dErrors.New(dErrors.CodeValidation, "endTime must be RFC 3339")
		}
	}
	return nil
}

// endTime returns the parsed soft-revocation end, nil for a hard revocation.
// Validate has already checked the format.
func (r *RevokeVCRequest) endTime() *time.Time {
	if r.EndTime == "" {
		return nil
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil
	}
	return &end
}

type SubmitBankIDRequest struct {
	UserID string       `json:"userId"`
	Data   BankIDVCData `json:"bankIdVcData"`
}

func (r *SubmitBankIDRequest) Normalize() {
	if r == nil {
		return
	}
	r.UserID = strings.TrimSpace(r.UserID)
	r.Data.FullName = strings.TrimSpace(r.Data.FullName)
	r.Data.HolderDID = strings.TrimSpace(r.Data.HolderDID)
}

func (r *SubmitBankIDRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.UserID == "" {
		return dErrors.New(dErrors.CodeValidation, "userId is required")
	}
	if r.Data.FullName == "" {
		return dErrors.New(dErrors.CodeValidation, "bankIdVcData.fullName is required")
	}
	return nil
}

type IssueBankIDRequest struct {
	Data BankIDVCData `json:"bankIdVcData"`
}

func (r *IssueBankIDRequest) Normalize() {
	if r == nil {
		return
	}
	r.Data.FullName = strings.TrimSpace(r.Data.FullName)
	r.Data.HolderDID = strings.TrimSpace(r.Data.HolderDID)
}

func (r *IssueBankIDRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Data.HolderDID == "" {
		return dErrors.New(dErrors.CodeValidation, "bankIdVcData.holderDid is required")
	}
	return nil
}
