package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"
)

// BankIDPayload builds the bank-ID credential document. The schema follows
// the NorwegianBankIDV1 credential shape.
func BankIDPayload(data models.BankIDData, jwsSignature string) map[string]any {
	issuanceDate := time.Now().UTC().Format(time.RFC3339)
	return map[string]any{
		"@context": []string{
			"https://www.w3.org/2018/credentials/v1",
			"https://schema.affinidi.com/NorwegianBankIDV1V1-0.jsonld",
		},
		"id":   "claimId:" + uuid.NewString(),
		"type": []string{"VerifiableCredential", "NorwegianBankIDV1"},
		"holder": map[string]any{
			"id": data.HolderDID,
		},
		"issuer":       "https://www.signicat.com",
		"issuanceDate": issuanceDate,
		"credentialSubject": map[string]any{
			"data": map[string]any{
				"@type": "Person",
			},
			"birthDate": map[string]any{
				"@type": "Date",
				"date":  data.BirthDate,
			},
			"name": map[string]any{
				"@type": "Name",
				"name":  data.FullName,
			},
			"nationalID": data.NationalID,
		},
		"certificate": map[string]any{
			"certificateIssuer":   "Government",
			"certificateUniqueID": uuid.NewString(),
			"country":             "NO",
		},
		"credentialStatus": map[string]any{
			"id":   "https://www.signicat.com/status/100",
			"type": "CredentialStatusList2017",
		},
		"credentialSchema": map[string]any{
			"id":   "https://schema.affinidi.com/NorwegianBankIDV1V1-0.json",
			"type": "JsonSchemaValidator2018",
		},
		"proof": map[string]any{
			"type":               "RsaSignature2018",
			"created":            issuanceDate,
			"proofPurpose":       "assertionMethod",
			"verificationMethod": "https://signicat.com/issuers/144223#key-1",
			"jws":                jwsSignature,
		},
	}
}

// IssueBankID stores a bank-ID credential document and anchors its sealed
// content id under the holder. Returns the plaintext content id.
func (s *Service) IssueBankID(ctx context.Context, data models.BankIDData, privateKey string) (string, error) {
	signer, err := jwtoken.NewSigner(privateKey)
	if err != nil {
		return "", err
	}
	holderAddress, err := jwtoken.AddressOf(data.HolderDID)
	if err != nil {
		return "", err
	}

	payload := BankIDPayload(data, "jwsSignature")
	cid, err := s.content.Put(ctx, payload)
	if err != nil {
		return "", err
	}

	sealed, err := s.sealer.SealString(cid)
	if err != nil {
		return "", err
	}

	if err := s.ledger.RecordIssuedCertificate(ctx, signer, holderAddress, []byte(sealed)); err != nil {
		return "", err
	}

	if s.metrics != nil {
		s.metrics.IncrementIssued()
	}
	return cid, nil
}
