// Package service implements the cross-verification engine: the decision
// authority reconciling off-chain cryptographic proof with on-chain anchored
// state and the soft-revocation side table. Callers consult this engine
// before trusting a credential or identifier.
package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/errgroup"

	credmodels "github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
	didmodels "github.com/Muhammad-Masood/ssi-system-backend/internal/did/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/hexbytes"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
	vmetrics "github.com/Muhammad-Masood/ssi-system-backend/internal/verification/metrics"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// matchFetchLimit bounds concurrent content fetches while checking
// intersecting ledger entries.
const matchFetchLimit = 8

// ContentStore fetches resolved credential documents by content id.
type ContentStore interface {
	GetJSON(ctx context.Context, cid string, out any) error
}

// Sealer opens sealed content ids read back from the ledger.
type Sealer interface {
	OpenString(encoded string) (string, error)
}

// MirrorStore reads the credential side-database. It is authoritative only
// for soft-revocation state.
type MirrorStore interface {
	FindByToken(ctx context.Context, token string) (*credmodels.CredentialRecord, error)
}

// DIDVerifier is the identifier-side surface the composite DID check needs.
type DIDVerifier interface {
	Verify(ctx context.Context, token string) (*didmodels.VerificationResult, error)
	IsAnchored(ctx context.Context, subjectDID, token string) (bool, error)
}

// RevocationStatus reports both revocation tracks for one credential. The
// tracks are independent; a caller must treat either flag as revoked.
type RevocationStatus struct {
	HardRevoked bool
	SoftRevoked bool
	EndDate     *time.Time
}

// Revoked reports whether either track flags the credential.
func (r RevocationStatus) Revoked() bool {
	return r.HardRevoked || r.SoftRevoked
}

// CredentialStatus is the composite verdict for one credential token.
// Verified covers authorship, OnChainMatch the anchored state, Revocation
// the state machine. All three are orthogonal; "valid" means Verified and
// OnChainMatch with nothing revoked.
type CredentialStatus struct {
	Verified     bool
	OnChainMatch bool
	Revocation   RevocationStatus
	Payload      jwt.MapClaims
}

// IdentifierStatus is the composite verdict for one identifier token.
type IdentifierStatus struct {
	Verified bool
	Anchored bool
	Payload  jwt.MapClaims
}

// Service reconciles the verification sources.
type Service struct {
	ledger  ledger.Client
	content ContentStore
	sealer  Sealer
	mirror  MirrorStore
	dids    DIDVerifier
	logger  *slog.Logger
	metrics *vmetrics.Metrics
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *vmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source. Tests pin it around revocation ends.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(ledgerClient ledger.Client, content ContentStore, sealer Sealer, mirror MirrorStore, dids DIDVerifier, opts ...Option) *Service {
	s := &Service{
		ledger:  ledgerClient,
		content: content,
		sealer:  sealer,
		mirror:  mirror,
		dids:    dids,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsCredentialValid reports whether the token is anchored as jointly owned:
// the same sealed content id must appear in the issuer's issued-list and the
// holder's owned-list, and the document behind one such entry must embed the
// token. Per-entry open or fetch failures count as non-matches and never
// abort the batch.
func (s *Service) IsCredentialValid(ctx context.Context, issuerDID, holderDID, token string) (bool, error) {
	issuerAddress, err := jwtoken.AddressOf(issuerDID)
	if err != nil {
		return false, err
	}
	holderAddress, err := jwtoken.AddressOf(holderDID)
	if err != nil {
		return false, err
	}

	issued, err := s.ledger.ListIssuedBy(ctx, issuerAddress)
	if err != nil {
		return false, err
	}
	owned, err := s.ledger.ListOwnedBy(ctx, holderAddress)
	if err != nil {
		return false, err
	}

	issuedSet := make(map[string]struct{}, len(issued))
	for _, record := range issued {
		issuedSet[string(record)] = struct{}{}
	}
	var matching []string
	for _, record := range owned {
		sealed := string(record)
		if sealed == "" {
			continue
		}
		if _, ok := issuedSet[sealed]; ok {
			matching = append(matching, sealed)
		}
	}

	var found atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(matchFetchLimit)
	for _, sealed := range matching {
		g.Go(func() error {
			cid, err := s.sealer.OpenString(sealed)
			if err != nil {
				s.logger.WarnContext(gctx, "matched ledger entry does not unseal", "error", err)
				return nil
			}
			var doc credmodels.ResolvedCredential
			if err := s.content.GetJSON(gctx, cid, &doc); err != nil {
				s.logger.WarnContext(gctx, "credential document fetch failed", "error", err, "cid", cid)
				return nil
			}
			if doc.JWT == token {
				found.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()

	return found.Load(), nil
}

// RevocationStatus checks both revocation tracks for a credential token. A
// stored end time is the soft track: the credential counts as revoked once
// the end time has passed. Without one the hard track applies: the mirrored
// sealed content id is searched in the issuer's on-chain revoked list,
// compared in sealed form. A token with no mirror row has no revocation
// state and reports clean.
func (s *Service) RevocationStatus(ctx context.Context, token, issuerAddress string) (RevocationStatus, error) {
	record, err := s.mirror.FindByToken(ctx, token)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return RevocationStatus{}, nil
		}
		return RevocationStatus{}, dErrors.Wrap(err, dErrors.CodeInternal, "credential mirror lookup failed")
	}

	if record.RevocationEndTime != nil {
		end := *record.RevocationEndTime
		return RevocationStatus{
			SoftRevoked: s.now().After(end),
			EndDate:     &end,
		}, nil
	}

	if !common.IsHexAddress(issuerAddress) {
		return RevocationStatus{}, dErrors.New(dErrors.CodeMalformedInput, "invalid issuer address: "+issuerAddress)
	}
	revoked, err := s.ledger.ListRevokedBy(ctx, common.HexToAddress(issuerAddress))
	if err != nil {
		return RevocationStatus{}, err
	}
	for _, entry := range revoked {
		if hexbytes.Encode(string(entry)) == record.EncryptedCID {
			return RevocationStatus{HardRevoked: true}, nil
		}
	}
	return RevocationStatus{}, nil
}

// VerifyCredential is the composite credential check: authorship, joint
// on-chain ownership, and revocation. A failed signature short-circuits with
// Verified false; the other checks are skipped since the payload cannot be
// trusted for addresses.
func (s *Service) VerifyCredential(ctx context.Context, token, issuerAddress string) (*CredentialStatus, error) {
	payload, err := jwtoken.Verify(token)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeVerification) {
			if s.metrics != nil {
				s.metrics.IncrementVerification(vmetrics.OutcomeInvalid)
			}
			return &CredentialStatus{Verified: false}, nil
		}
		return nil, err
	}

	issuerDID, _ := payload["iss"].(string)
	holderDID, _ := payload["sub"].(string)
	if issuerDID == "" || holderDID == "" {
		return nil, dErrors.New(dErrors.CodeMalformedToken, "credential token carries no issuer or subject")
	}

	onChain, err := s.IsCredentialValid(ctx, issuerDID, holderDID, token)
	if err != nil {
		return nil, err
	}

	revocation, err := s.RevocationStatus(ctx, token, issuerAddress)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		switch {
		case revocation.Revoked():
			s.metrics.IncrementVerification(vmetrics.OutcomeRevoked)
		case onChain:
			s.metrics.IncrementVerification(vmetrics.OutcomeValid)
		default:
			s.metrics.IncrementVerification(vmetrics.OutcomeInvalid)
		}
	}

	return &CredentialStatus{
		Verified:     true,
		OnChainMatch: onChain,
		Revocation:   revocation,
		Payload:      payload,
	}, nil
}

// VerifyDID is the composite identifier check: off-chain signature plus the
// on-chain anchor under the token's audience identifier.
func (s *Service) VerifyDID(ctx context.Context, token string) (*IdentifierStatus, error) {
	result, err := s.dids.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	status := &IdentifierStatus{Verified: result.Verified, Payload: result.Payload}
	if !result.Verified {
		return status, nil
	}

	if aud, ok := result.Payload["aud"].(string); ok && aud != "" {
		status.Anchored, err = s.dids.IsAnchored(ctx, aud, token)
		if err != nil {
			return nil, err
		}
	}
	return status, nil
}
