// Package service implements the identifier lifecycle: minting a signed
// token, anchoring its resolvable document on the ledger, resolving and
// verifying tokens, and retracting anchored identifiers.
package service

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	didmetrics "github.com/Muhammad-Masood/ssi-system-backend/internal/did/metrics"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// anchorFetchLimit bounds concurrent content fetches during anchor checks.
const anchorFetchLimit = 8

// ContentStore is the content-addressed storage surface the lifecycle needs.
type ContentStore interface {
	Put(ctx context.Context, doc any) (string, error)
	GetJSON(ctx context.Context, cid string, out any) error
}

// MirrorStore is the best-effort side-database mirror of anchored
// identifiers. The ledger stays authoritative; mirror failures are logged
// and never propagated.
type MirrorStore interface {
	Save(ctx context.Context, record *models.IdentifierRecord) error
	DeleteByToken(ctx context.Context, token string) error
}

// MintCommand carries the inputs for minting a new identifier. The private
// key arrives per request and is never stored.
type MintCommand struct {
	Subject    string
	Method     string
	PrivateKey string
}

// RetractCommand removes an anchored identifier. Ledger first; the mirror
// delete follows only after the on-chain removal succeeded.
type RetractCommand struct {
	Token      string
	Address    string
	CID        string
	PrivateKey string
}

// Service orchestrates the identifier lifecycle.
type Service struct {
	ledger  ledger.Client
	content ContentStore
	mirror  MirrorStore
	logger  *slog.Logger
	metrics *didmetrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *didmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(ledgerClient ledger.Client, content ContentStore, mirror MirrorStore, opts ...Option) *Service {
	s := &Service{
		ledger:  ledgerClient,
		content: content,
		mirror:  mirror,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mint signs a fresh identifier token, stores its decoded document, anchors
// the content id on the ledger and mirrors the record.
func (s *Service) Mint(ctx context.Context, cmd MintCommand) (*models.MintResult, error) {
	method := strings.TrimPrefix(cmd.Method, "did:")
	if method != jwtoken.MethodEthr {
		return nil, dErrors.New(dErrors.CodeUnsupportedMethod, "unsupported DID method: "+cmd.Method)
	}

	signer, err := jwtoken.NewSigner(cmd.PrivateKey)
	if err != nil {
		return nil, err
	}

	did := jwtoken.NewDID(cmd.Subject, signer.Address())
	token, err := signer.SignWithStandardClaims(cmd.Subject, nil)
	if err != nil {
		return nil, err
	}

	decoded, err := jwtoken.Decode(token)
	if err != nil {
		return nil, err
	}

	cid, err := s.content.Put(ctx, decoded)
	if err != nil {
		return nil, err
	}

	// Anchor after storage: a ledger failure leaves the token unanchored
	// and the mint fails as a whole.
	if err := s.ledger.AppendIdentifier(ctx, signer, []byte(cid)); err != nil {
		return nil, err
	}

	record := &models.IdentifierRecord{
		Token:     token,
		Address:   signer.Address().Hex(),
		DID:       did,
		CID:       cid,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.mirror.Save(ctx, record); err != nil {
		s.logger.WarnContext(ctx, "identifier mirror write failed", "error", err, "cid", cid)
	}

	if s.metrics != nil {
		s.metrics.IncrementMinted()
	}
	return &models.MintResult{Token: token, CID: cid, DID: did}, nil
}

// Resolve decodes a token without verifying it.
func (s *Service) Resolve(token string) (jwtoken.DecodedToken, error) {
	return jwtoken.Decode(token)
}

// Verify checks the token signature against its issuer identifier. A failed
// signature yields Verified false, not an error; malformed input errors.
func (s *Service) Verify(_ context.Context, token string) (*models.VerificationResult, error) {
	payload, err := jwtoken.Verify(token)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeVerification) {
			decoded, decodeErr := jwtoken.Decode(token)
			if decodeErr != nil {
				return nil, decodeErr
			}
			return &models.VerificationResult{Verified: false, Payload: decoded.Payload}, nil
		}
		return nil, err
	}
	return &models.VerificationResult{Verified: true, Payload: payload}, nil
}

// IsAnchored reports whether the supplied token is anchored under the
// identifier's controller address. Every anchored content id is fetched and
// its reconstructed token compared; a fetch or decode failure counts as a
// non-match and never aborts the batch.
func (s *Service) IsAnchored(ctx context.Context, subjectDID, token string) (bool, error) {
	if s.metrics != nil {
		defer s.metrics.ObserveAnchorCheck(time.Now())
	}

	address, err := jwtoken.AddressOf(subjectDID)
	if err != nil {
		return false, err
	}

	records, err := s.ledger.ListIdentifiers(ctx, address)
	if err != nil {
		return false, err
	}

	var found atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(anchorFetchLimit)
	for _, record := range records {
		cid := string(record)
		if cid == "" {
			continue
		}
		g.Go(func() error {
			var doc jwtoken.DecodedToken
			if err := s.content.GetJSON(gctx, cid, &doc); err != nil {
				s.logger.WarnContext(gctx, "anchored document fetch failed", "error", err, "cid", cid)
				return nil
			}
			if doc.Reconstruct() == token {
				found.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()

	return found.Load(), nil
}

// Retract removes an anchored identifier. The ledger entry must exist; a
// missing entry fails with not_found and nothing is touched.
func (s *Service) Retract(ctx context.Context, cmd RetractCommand) error {
	signer, err := jwtoken.NewSigner(cmd.PrivateKey)
	if err != nil {
		return err
	}

	address, err := jwtoken.AddressOf("did:ethr:" + cmd.Address)
	if err != nil {
		return err
	}

	records, err := s.ledger.ListIdentifiers(ctx, address)
	if err != nil {
		return err
	}

	index := -1
	for i, record := range records {
		if string(record) == cmd.CID {
			index = i
			break
		}
	}
	if index == -1 {
		return dErrors.New(dErrors.CodeNotFound, "identifier is not anchored: "+cmd.CID)
	}

	if err := s.ledger.RemoveIdentifierByIndex(ctx, signer, index); err != nil {
		return err
	}

	if err := s.mirror.DeleteByToken(ctx, cmd.Token); err != nil {
		s.logger.WarnContext(ctx, "identifier mirror delete failed", "error", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementRetracted()
	}
	return nil
}
