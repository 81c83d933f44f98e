package handler

import "github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"

type CreateVCResponse struct {
	VerifiableCredential   string `json:"verifiable_credential"`
	VerifiablePresentation string `json:"verifiable_presentation"`
	EncryptedCID           string `json:"encrypCID"`
}

type RevokeVCResponse struct {
	Message string `json:"message"`
	CID     string `json:"cid"`
}

type RevokedCIDsResponse struct {
	CIDs []string `json:"cids"`
}

type VerifyVPResponse struct {
	VP map[string]any `json:"vp"`
}

type DecryptCIDsResponse struct {
	DecryptedCIDs []string `json:"decryptedCIDs"`
}

type RequestsResponse struct {
	Requests []*models.VCRequest `json:"vc_requests"`
}

type UserRequestsResponse struct {
	Requests []*models.VCRequest `json:"user_vc_requests"`
}

type SubmitRequestResponse struct {
	Message string `json:"message"`
	ReqID   string `json:"reqId"`
}

type IssueBankIDResponse struct {
	Message     string `json:"message"`
	DocumentCID string `json:"documentCid"`
}
