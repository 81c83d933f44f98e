// Package service implements the credential lifecycle: signing verifiable
// credentials, storing their resolved documents, sealing and anchoring the
// content ids, wrapping presentations, and revoking in hard or soft mode.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"

	credmetrics "github.com/Muhammad-Masood/ssi-system-backend/internal/credential/metrics"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/store"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/hexbytes"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// ContentStore is the content-addressed storage surface the lifecycle needs.
type ContentStore interface {
	Put(ctx context.Context, doc any) (string, error)
	GetJSON(ctx context.Context, cid string, out any) error
}

// Sealer encrypts content ids before they reach the ledger and opens them on
// the way back.
type Sealer interface {
	SealString(plaintext string) (string, error)
	OpenString(encoded string) (string, error)
}

// IssueCommand carries the inputs for issuing a credential. Claims is the
// verifiable-credential block embedded under the vc claim.
type IssueCommand struct {
	Claims     map[string]any
	IssuerDID  string
	HolderDID  string
	PrivateKey string
}

// RevokeCommand revokes by plaintext content id. A set EndTime selects the
// soft path (side-database only); without it the revocation is anchored on
// the ledger permanently.
type RevokeCommand struct {
	CID        string
	EndTime    *time.Time
	PrivateKey string
}

// Service orchestrates the credential lifecycle.
type Service struct {
	ledger  ledger.Client
	content ContentStore
	sealer  Sealer
	store   store.Store
	logger  *slog.Logger
	metrics *credmetrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *credmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(ledgerClient ledger.Client, content ContentStore, sealer Sealer, credStore store.Store, opts ...Option) *Service {
	s := &Service{
		ledger:  ledgerClient,
		content: content,
		sealer:  sealer,
		store:   credStore,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a credential token, verifies it back through the resolver,
// stores the resolved document, seals and anchors the content id under the
// holder, and wraps the credential into a presentation. The caller persists
// the mirror record from the returned result.
func (s *Service) Issue(ctx context.Context, cmd IssueCommand) (*models.IssueResult, error) {
	if s.metrics != nil {
		defer s.metrics.ObserveIssue(time.Now())
	}

	signer, err := jwtoken.NewSigner(cmd.PrivateKey)
	if err != nil {
		return nil, err
	}

	issuerDID, err := jwtoken.Reduce(cmd.IssuerDID)
	if err != nil {
		return nil, err
	}
	holderDID, err := jwtoken.Reduce(cmd.HolderDID)
	if err != nil {
		return nil, err
	}
	holderAddress, err := jwtoken.AddressOf(cmd.HolderDID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	token, err := signer.Sign(jwt.MapClaims{
		"iss": issuerDID,
		"sub": holderDID,
		"nbf": now.Unix(),
		"iat": now.Unix(),
		"vc":  cmd.Claims,
	})
	if err != nil {
		return nil, err
	}

	// Interoperability self-check: the freshly signed token must resolve
	// before anything is stored or anchored.
	payload, err := jwtoken.Verify(token)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeVerification, "issued credential does not verify")
	}
	resolved := models.ResolvedCredential{JWT: token, Payload: payload, Verified: true}

	cid, err := s.content.Put(ctx, resolved)
	if err != nil {
		return nil, err
	}

	sealed, err := s.sealer.SealString(cid)
	if err != nil {
		return nil, err
	}
	encoded := hexbytes.Encode(sealed)

	if err := s.ledger.RecordIssuedCertificate(ctx, signer, holderAddress, []byte(sealed)); err != nil {
		return nil, err
	}

	presentation, err := signer.Sign(jwt.MapClaims{
		"iss": issuerDID,
		"nbf": now.Unix(),
		"iat": now.Unix(),
		"vp": map[string]any{
			"@context":             []string{"https://www.w3.org/2018/credentials/v1"},
			"type":                 []string{"VerifiablePresentation"},
			"verifiableCredential": []string{token},
		},
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementIssued()
	}
	return &models.IssueResult{
		CredentialToken:   token,
		PresentationToken: presentation,
		CID:               cid,
		EncryptedCID:      encoded,
		HolderAddress:     holderAddress.Hex(),
	}, nil
}

// VerifyToken resolves a credential token: signature against the issuer
// identifier and VC shape.
func (s *Service) VerifyToken(_ context.Context, token string) (*models.ResolvedCredential, error) {
	payload, err := jwtoken.Verify(token)
	if err != nil {
		return nil, err
	}
	if _, ok := payload["vc"]; !ok {
		return nil, dErrors.New(dErrors.CodeVerification, "token carries no verifiable credential")
	}
	return &models.ResolvedCredential{JWT: token, Payload: payload, Verified: true}, nil
}

// VerifyPresentation resolves a presentation token.
func (s *Service) VerifyPresentation(_ context.Context, token string) (*models.ResolvedCredential, error) {
	payload, err := jwtoken.Verify(token)
	if err != nil {
		return nil, err
	}
	if _, ok := payload["vp"]; !ok {
		return nil, dErrors.New(dErrors.CodeVerification, "token carries no verifiable presentation")
	}
	return &models.ResolvedCredential{JWT: token, Payload: payload, Verified: true}, nil
}

// Revoke revokes the credential behind a plaintext content id. The sealed
// value written at issuance is reused where a mirror row exists, so on-chain
// and mirrored state stay comparable in encrypted form.
func (s *Service) Revoke(ctx context.Context, cmd RevokeCommand) error {
	rows, err := s.store.FindByCID(ctx, cmd.CID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "credential mirror lookup failed")
	}

	var encoded string
	if len(rows) > 0 {
		encoded = rows[0].EncryptedCID
	} else {
		sealed, sealErr := s.sealer.SealString(cmd.CID)
		if sealErr != nil {
			return sealErr
		}
		encoded = hexbytes.Encode(sealed)
	}

	if cmd.EndTime != nil {
		matched, err := s.store.SetRevocationEndTime(ctx, encoded, *cmd.EndTime)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "updating revocation end time failed")
		}
		if matched == 0 {
			s.logger.InfoContext(ctx, "soft revocation matched no credentials", "cid", cmd.CID)
		}
		if s.metrics != nil {
			s.metrics.IncrementRevoked("soft")
		}
		return nil
	}

	signer, err := jwtoken.NewSigner(cmd.PrivateKey)
	if err != nil {
		return err
	}
	sealed, err := hexbytes.Decode(encoded)
	if err != nil {
		return err
	}
	if err := s.ledger.RevokeCertificate(ctx, signer, []byte(sealed)); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.IncrementRevoked("hard")
	}
	return nil
}

// RevokedList returns the plaintext content ids an issuer has revoked on the
// ledger. Entries that fail to unseal are dropped, never fatal.
func (s *Service) RevokedList(ctx context.Context, issuerAddress string) ([]string, error) {
	if !common.IsHexAddress(issuerAddress) {
		return nil, dErrors.New(dErrors.CodeMalformedInput, "invalid issuer address: "+issuerAddress)
	}

	records, err := s.ledger.ListRevokedBy(ctx, common.HexToAddress(issuerAddress))
	if err != nil {
		return nil, err
	}

	cids := make([]string, 0, len(records))
	for _, record := range records {
		sealed := string(record)
		if sealed == "" {
			continue
		}
		cid, err := s.sealer.OpenString(sealed)
		if err != nil {
			s.logger.WarnContext(ctx, "revoked entry does not unseal", "error", err)
			continue
		}
		cids = append(cids, cid)
	}
	return cids, nil
}

// DecryptCIDs opens a batch of hex-encoded sealed content ids. A failed
// entry yields an empty string in its position; the batch never aborts.
func (s *Service) DecryptCIDs(ctx context.Context, encoded []string) []string {
	out := make([]string, len(encoded))
	for i, enc := range encoded {
		sealed, err := hexbytes.Decode(enc)
		if err != nil {
			s.logger.WarnContext(ctx, "encrypted content id does not decode", "error", err)
			continue
		}
		cid, err := s.sealer.OpenString(sealed)
		if err != nil {
			s.logger.WarnContext(ctx, "encrypted content id does not unseal", "error", err)
			continue
		}
		out[i] = cid
	}
	return out
}
