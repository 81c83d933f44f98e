package handler

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/cidseal"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/service"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/store"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
)

// stubContent is an in-process content store: Put assigns sequential ids,
// GetJSON round-trips the stored document through JSON.
type stubContent struct {
	mu   sync.Mutex
	docs map[string]any
	n    int
}

func newStubContent() *stubContent {
	return &stubContent{docs: make(map[string]any)}
}

func (c *stubContent) Put(_ context.Context, doc any) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	cid := fmt.Sprintf("QmStub%03d", c.n)
	c.docs[cid] = doc
	return cid, nil
}

func (c *stubContent) GetJSON(_ context.Context, cid string, out any) error {
	c.mu.Lock()
	doc, ok := c.docs[cid]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("document not found: %s", cid)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

type HandlerSuite struct {
	suite.Suite
	router http.Handler
	store  *store.InMemoryStore
	sealer *cidseal.Sealer

	issuerKey  string
	issuerDID  string
	issuerAddr string
	holderDID  string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	issuerKey, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.issuerKey = hex.EncodeToString(crypto.FromECDSA(issuerKey))
	s.issuerAddr = crypto.PubkeyToAddress(issuerKey.PublicKey).Hex()
	s.issuerDID = "did:ethr:hospital:" + s.issuerAddr

	holderKey, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.holderDID = "did:ethr:patient:" + crypto.PubkeyToAddress(holderKey.PublicKey).Hex()

	s.sealer, err = cidseal.New("9737bc0d89fe3b3d64a66b8fa2b35fea", "8965cb1e28c8e54ea3546af8")
	s.Require().NoError(err)

	s.store = store.NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := service.New(ledger.NewMemoryClient(), newStubContent(), s.sealer, s.store,
		service.WithLogger(logger))

	h := New(svc, s.store, logger)
	r := chi.NewRouter()
	h.Register(r)
	h.RegisterAdmin(r)
	s.router = r
}

func (s *HandlerSuite) createVC() CreateVCResponse {
	body := fmt.Sprintf(`{"name":"Vaccination","issuer_did":%q,"holder_did":%q,"ipfsHash":"QmDoc"}`,
		s.issuerDID, s.holderDID)
	req := httptest.NewRequest(http.MethodPost, "/vc/create_vc", strings.NewReader(body))
	req.Header.Set("Private-Key", s.issuerKey)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resp CreateVCResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *HandlerSuite) TestCreateVC() {
	s.Run("issues and mirrors a credential", func() {
		resp := s.createVC()
		s.NotEmpty(resp.VerifiableCredential)
		s.NotEmpty(resp.VerifiablePresentation)
		s.NotEmpty(resp.EncryptedCID)

		rec, err := s.store.FindByToken(context.Background(), resp.VerifiableCredential)
		s.Require().NoError(err)
		s.Equal(resp.EncryptedCID, rec.EncryptedCID)
	})

	s.Run("rejects a missing private key header", func() {
		req := httptest.NewRequest(http.MethodPost, "/vc/create_vc",
			strings.NewReader(`{"name":"Vaccination","issuer_did":"d","holder_did":"d"}`))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects a missing holder", func() {
		body := fmt.Sprintf(`{"name":"Vaccination","issuer_did":%q}`, s.issuerDID)
		req := httptest.NewRequest(http.MethodPost, "/vc/create_vc", strings.NewReader(body))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestVerifyVP() {
	created := s.createVC()

	s.Run("verifies an issued presentation", func() {
		req := httptest.NewRequest(http.MethodGet, "/vc/verify_vp", nil)
		req.Header.Set("Vp-Jwt", created.VerifiablePresentation)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var resp VerifyVPResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		vp := resp.VP["vp"].(map[string]any)
		creds := vp["verifiableCredential"].([]any)
		s.Equal(created.VerifiableCredential, creds[0])
	})

	s.Run("rejects a credential token on the presentation surface", func() {
		req := httptest.NewRequest(http.MethodGet, "/vc/verify_vp", nil)
		req.Header.Set("Vp-Jwt", created.VerifiableCredential)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.NotEqual(http.StatusOK, rec.Code)
	})

	s.Run("rejects a missing header", func() {
		req := httptest.NewRequest(http.MethodGet, "/vc/verify_vp", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestRevokeVC() {
	s.Run("hard revocation shows up in the issuer's revoked list", func() {
		s.createVC()

		body := `{"cidHash":"QmStub001"}`
		req := httptest.NewRequest(http.MethodPost, "/vc/revoke_vc", strings.NewReader(body))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var resp RevokeVCResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("QmStub001", resp.CID)

		listReq := httptest.NewRequest(http.MethodGet,
			"/vc/issuer_revoked_cids?issuerAddress="+s.issuerAddr, nil)
		listRec := httptest.NewRecorder()
		s.router.ServeHTTP(listRec, listReq)

		s.Require().Equal(http.StatusOK, listRec.Code, listRec.Body.String())
		var listResp RevokedCIDsResponse
		s.Require().NoError(json.Unmarshal(listRec.Body.Bytes(), &listResp))
		s.Equal([]string{"QmStub001"}, listResp.CIDs)
	})

	s.Run("soft revocation sets the mirror end time", func() {
		created := s.createVC()
		end := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

		body := fmt.Sprintf(`{"cidHash":"QmStub002","endTime":%q}`, end)
		req := httptest.NewRequest(http.MethodPost, "/vc/revoke_vc", strings.NewReader(body))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		found, err := s.store.FindByToken(context.Background(), created.VerifiableCredential)
		s.Require().NoError(err)
		s.NotNil(found.RevocationEndTime)
	})

	s.Run("rejects a malformed end time", func() {
		req := httptest.NewRequest(http.MethodPost, "/vc/revoke_vc",
			strings.NewReader(`{"cidHash":"QmStub001","endTime":"tomorrow"}`))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestDecryptCIDs() {
	sealed, err := s.sealer.SealString("QmPlain")
	s.Require().NoError(err)
	encoded := "0x" + hex.EncodeToString([]byte(sealed))

	req := httptest.NewRequest(http.MethodGet, "/vc/decryptCID", nil)
	req.Header.Set("Encrypted-Cids", encoded+" , not-hex")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resp DecryptCIDsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal([]string{"QmPlain", ""}, resp.DecryptedCIDs)
}

func (s *HandlerSuite) TestBankIDRequests() {
	s.Run("submitting a request returns its id", func() {
		body := fmt.Sprintf(`{"userId":"user-1","bankIdVcData":{"fullName":"Alice Berg","birthDate":"1990-01-01","nationalId":"01019012345","holderDid":%q}}`,
			s.holderDID)
		req := httptest.NewRequest(http.MethodPost, "/vc/submit_bank_id_vc_request", strings.NewReader(body))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var resp SubmitRequestResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.NotEmpty(resp.ReqID)
	})

	s.Run("listing returns the submitted request", func() {
		listReq := httptest.NewRequest(http.MethodGet, "/vc/get_vc_requests", nil)
		listRec := httptest.NewRecorder()
		s.router.ServeHTTP(listRec, listReq)

		s.Require().Equal(http.StatusOK, listRec.Code)
		var listResp RequestsResponse
		s.Require().NoError(json.Unmarshal(listRec.Body.Bytes(), &listResp))
		s.Require().Len(listResp.Requests, 1)
		s.Equal("Alice Berg", listResp.Requests[0].FullName)
	})

	s.Run("per-user listing filters by user", func() {
		userReq := httptest.NewRequest(http.MethodGet, "/vc/get_user_vc_requests/user-1", nil)
		userRec := httptest.NewRecorder()
		s.router.ServeHTTP(userRec, userReq)

		s.Require().Equal(http.StatusOK, userRec.Code)
		var userResp UserRequestsResponse
		s.Require().NoError(json.Unmarshal(userRec.Body.Bytes(), &userResp))
		s.Len(userResp.Requests, 1)

		otherReq := httptest.NewRequest(http.MethodGet, "/vc/get_user_vc_requests/user-2", nil)
		otherRec := httptest.NewRecorder()
		s.router.ServeHTTP(otherRec, otherReq)

		var otherResp UserRequestsResponse
		s.Require().NoError(json.Unmarshal(otherRec.Body.Bytes(), &otherResp))
		s.Empty(otherResp.Requests)
	})
}

func (s *HandlerSuite) TestIssueBankID() {
	body := fmt.Sprintf(`{"bankIdVcData":{"fullName":"Alice Berg","birthDate":"1990-01-01","nationalId":"01019012345","holderDid":%q}}`,
		s.holderDID)
	req := httptest.NewRequest(http.MethodPost, "/vc/issue_bank_id_vc", strings.NewReader(body))
	req.Header.Set("Private-Key", s.issuerKey)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var resp IssueBankIDResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("QmStub001", resp.DocumentCID)
}
