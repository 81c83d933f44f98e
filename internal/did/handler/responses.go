package handler

import "github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"

type CreateDIDResponse struct {
	Token string `json:"token"`
	CID   string `json:"ipfsHash"`
	DID   string `json:"did"`
}

type DeleteDIDResponse struct {
	Message string `json:"message"`
}

type DecodeDIDResponse struct {
	Decoded jwtoken.DecodedToken `json:"decoded_data"`
}

type VerifyDIDResponse struct {
	OffChainVerificationStatus bool `json:"offChainVerificationStatus"`
	OnChainVerificationStatus  bool `json:"onChainVerificationStatus"`
}
