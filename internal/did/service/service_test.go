package service_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/service"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/service/mocks"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
	ledgermocks "github.com/Muhammad-Masood/ssi-system-backend/internal/ledger/mocks"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

type ServiceTestSuite struct {
	suite.Suite

	ctrl    *gomock.Controller
	content *mocks.MockContentStore
	mirror  *mocks.MockMirrorStore
	ledger  *ledger.MemoryClient
	svc     *service.Service

	keyHex  string
	address string
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.content = mocks.NewMockContentStore(s.ctrl)
	s.mirror = mocks.NewMockMirrorStore(s.ctrl)
	s.ledger = ledger.NewMemoryClient()
	s.svc = service.New(s.ledger, s.content, s.mirror)

	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.keyHex = hex.EncodeToString(crypto.FromECDSA(key))
	s.address = crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func (s *ServiceTestSuite) mint(subject string) *jwtoken.DecodedToken {
	s.content.EXPECT().Put(gomock.Any(), gomock.Any()).Return("QmAnchoredCID", nil)
	s.mirror.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.svc.Mint(context.Background(), service.MintCommand{
		Subject:    subject,
		Method:     "did:ethr",
		PrivateKey: s.keyHex,
	})
	s.Require().NoError(err)

	decoded, err := jwtoken.Decode(result.Token)
	s.Require().NoError(err)
	return &decoded
}

func (s *ServiceTestSuite) TestMint() {
	s.Run("mints, anchors and mirrors an identifier", func() {
		s.content.EXPECT().Put(gomock.Any(), gomock.Any()).Return("QmCID", nil)
		s.mirror.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.svc.Mint(context.Background(), service.MintCommand{
			Subject:    "alice",
			Method:     "did:ethr",
			PrivateKey: s.keyHex,
		})
		s.Require().NoError(err)
		s.Equal("did:ethr:alice:"+s.address, result.DID)
		s.Equal("QmCID", result.CID)

		payload, err := jwtoken.Verify(result.Token)
		s.Require().NoError(err)
		s.Equal("alice", payload["sub"])
		s.Equal("did:ethr:"+s.address, payload["iss"])

		records, err := s.ledger.ListIdentifiers(context.Background(), s.addr())
		s.Require().NoError(err)
		s.Equal([][]byte{[]byte("QmCID")}, records)
	})

	s.Run("rejects unsupported methods before doing any work", func() {
		_, err := s.svc.Mint(context.Background(), service.MintCommand{
			Subject:    "alice",
			Method:     "did:key",
			PrivateKey: s.keyHex,
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnsupportedMethod))
	})

	s.Run("fails when content storage fails, leaving the ledger untouched", func() {
		s.content.EXPECT().Put(gomock.Any(), gomock.Any()).
			Return("", dErrors.New(dErrors.CodeStorage, "pin call failed"))

		_, err := s.svc.Mint(context.Background(), service.MintCommand{
			Subject:    "bob",
			Method:     "did:ethr",
			PrivateKey: s.keyHex,
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeStorage))

		records, err := s.ledger.ListIdentifiers(context.Background(), s.addr())
		s.Require().NoError(err)
		s.Len(records, 1) // only the record from the first subtest
	})

	s.Run("succeeds even when the mirror write fails", func() {
		s.content.EXPECT().Put(gomock.Any(), gomock.Any()).Return("QmOther", nil)
		s.mirror.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(errors.New("database unavailable"))

		result, err := s.svc.Mint(context.Background(), service.MintCommand{
			Subject:    "carol",
			Method:     "did:ethr",
			PrivateKey: s.keyHex,
		})
		s.Require().NoError(err)
		s.NotEmpty(result.Token)
	})
}

func (s *ServiceTestSuite) TestMintLedgerFailure() {
	ledgerMock := ledgermocks.NewMockClient(s.ctrl)
	svc := service.New(ledgerMock, s.content, s.mirror)

	s.content.EXPECT().Put(gomock.Any(), gomock.Any()).Return("QmCID", nil)
	ledgerMock.EXPECT().AppendIdentifier(gomock.Any(), gomock.Any(), []byte("QmCID")).
		Return(dErrors.New(dErrors.CodeLedgerWrite, "transaction failed"))

	_, err := svc.Mint(context.Background(), service.MintCommand{
		Subject:    "alice",
		Method:     "did:ethr",
		PrivateKey: s.keyHex,
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeLedgerWrite))
}

func (s *ServiceTestSuite) TestVerify() {
	decoded := s.mint("alice")
	token := decoded.Reconstruct()

	s.Run("verifies a freshly minted token", func() {
		result, err := s.svc.Verify(context.Background(), token)
		s.Require().NoError(err)
		s.True(result.Verified)
		s.Equal("alice", result.Payload["sub"])
	})

	s.Run("reports a spliced token as unverified", func() {
		forged := s.mint("mallory")
		spliced := forged.Data + "." + decoded.Signature

		result, err := s.svc.Verify(context.Background(), spliced)
		s.Require().NoError(err)
		s.False(result.Verified)
	})

	s.Run("errors on malformed input", func() {
		_, err := s.svc.Verify(context.Background(), "garbage")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedToken))
	})
}

func (s *ServiceTestSuite) TestIsAnchored() {
	decoded := s.mint("alice")
	token := decoded.Reconstruct()
	did := "did:ethr:alice:" + s.address

	s.Run("finds the anchored token", func() {
		s.content.EXPECT().GetJSON(gomock.Any(), "QmAnchoredCID", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out any) error {
				*out.(*jwtoken.DecodedToken) = *decoded
				return nil
			})

		anchored, err := s.svc.IsAnchored(context.Background(), did, token)
		s.Require().NoError(err)
		s.True(anchored)
	})

	s.Run("does not find a different token", func() {
		s.content.EXPECT().GetJSON(gomock.Any(), "QmAnchoredCID", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, out any) error {
				*out.(*jwtoken.DecodedToken) = *decoded
				return nil
			})

		anchored, err := s.svc.IsAnchored(context.Background(), did, "some.other.token")
		s.Require().NoError(err)
		s.False(anchored)
	})

	s.Run("treats a fetch failure as a non-match", func() {
		s.content.EXPECT().GetJSON(gomock.Any(), "QmAnchoredCID", gomock.Any()).
			Return(dErrors.New(dErrors.CodeStorage, "gateway fetch failed"))

		anchored, err := s.svc.IsAnchored(context.Background(), did, token)
		s.Require().NoError(err)
		s.False(anchored)
	})

	s.Run("errors on a malformed identifier", func() {
		_, err := s.svc.IsAnchored(context.Background(), "not-a-did", token)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeMalformedInput))
	})
}

func (s *ServiceTestSuite) TestRetract() {
	decoded := s.mint("alice")
	token := decoded.Reconstruct()

	s.Run("fails for a content id that is not anchored", func() {
		err := s.svc.Retract(context.Background(), service.RetractCommand{
			Token:      token,
			Address:    s.address,
			CID:        "QmUnknown",
			PrivateKey: s.keyHex,
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("removes the ledger entry and the mirror", func() {
		s.mirror.EXPECT().DeleteByToken(gomock.Any(), token).Return(nil)

		err := s.svc.Retract(context.Background(), service.RetractCommand{
			Token:      token,
			Address:    s.address,
			CID:        "QmAnchoredCID",
			PrivateKey: s.keyHex,
		})
		s.Require().NoError(err)

		records, err := s.ledger.ListIdentifiers(context.Background(), s.addr())
		s.Require().NoError(err)
		s.Empty(records)
	})
}

func (s *ServiceTestSuite) addr() common.Address {
	signer, err := jwtoken.NewSigner(s.keyHex)
	s.Require().NoError(err)
	return signer.Address()
}
