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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/cidseal"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/store"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
)

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

type HandlerSuite struct {
	suite.Suite
	router http.Handler
	ledger *ledger.MemoryClient
	sealer *cidseal.Sealer

	issuerKey  string
	holderAddr string
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	issuerKey, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.issuerKey = hex.EncodeToString(crypto.FromECDSA(issuerKey))

	holderKey, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.holderAddr = crypto.PubkeyToAddress(holderKey.PublicKey).Hex()

	s.sealer, err = cidseal.New("9737bc0d89fe3b3d64a66b8fa2b35fea", "8965cb1e28c8e54ea3546af8")
	s.Require().NoError(err)

	s.ledger = ledger.NewMemoryClient()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(s.ledger, newStubContent(), s.sealer, store.NewInMemoryStore(), logger)
	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TestCreatePatient() {
	s.Run("stores, anchors and mirrors the resource", func() {
		body := fmt.Sprintf(`{"patientData":{"identifier":"patient-1","name":"Alice Berg"},"holderAddress":%q}`,
			s.holderAddr)
		req := httptest.NewRequest(http.MethodPost, "/fhir/resource/create_patient", strings.NewReader(body))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
		var resp CreateResourceResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.NotEmpty(resp.DocID)

		owned, err := s.ledger.ListOwnedBy(context.Background(), common.HexToAddress(s.holderAddr))
		s.Require().NoError(err)
		s.Require().Len(owned, 1)
		cid, err := s.sealer.OpenString(string(owned[0]))
		s.Require().NoError(err)
		s.Equal("QmStub001", cid)

		getReq := httptest.NewRequest(http.MethodGet, "/fhir/resource/get_patient/patient-1", nil)
		getRec := httptest.NewRecorder()
		s.router.ServeHTTP(getRec, getReq)

		s.Require().Equal(http.StatusOK, getRec.Code)
		s.Contains(getRec.Body.String(), "QmStub001")
	})

	s.Run("rejects a missing private key header", func() {
		body := fmt.Sprintf(`{"patientData":{"identifier":"patient-1"},"holderAddress":%q}`, s.holderAddr)
		req := httptest.NewRequest(http.MethodPost, "/fhir/resource/create_patient", strings.NewReader(body))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects a resource without an identifier", func() {
		body := fmt.Sprintf(`{"patientData":{"name":"Alice Berg"},"holderAddress":%q}`, s.holderAddr)
		req := httptest.NewRequest(http.MethodPost, "/fhir/resource/create_patient", strings.NewReader(body))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("rejects an invalid holder address", func() {
		req := httptest.NewRequest(http.MethodPost, "/fhir/resource/create_patient",
			strings.NewReader(`{"patientData":{"identifier":"patient-1"},"holderAddress":"nope"}`))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerSuite) TestMedicationRequest() {
	body := `{"medicationRequest":{"identifier":"med-req-1","status":"active"}}`
	req := httptest.NewRequest(http.MethodPost, "/fhir/resource/create_medication_request", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	getReq := httptest.NewRequest(http.MethodGet, "/fhir/resource/get_med_req/med-req-1", nil)
	getRec := httptest.NewRecorder()
	s.router.ServeHTTP(getRec, getReq)
	s.Require().Equal(http.StatusOK, getRec.Code)
	s.Contains(getRec.Body.String(), "med-req-1")

	listReq := httptest.NewRequest(http.MethodGet, "/fhir/resource/get_all_medication_requests", nil)
	listRec := httptest.NewRecorder()
	s.router.ServeHTTP(listRec, listReq)
	s.Require().Equal(http.StatusOK, listRec.Code)

	missingReq := httptest.NewRequest(http.MethodGet, "/fhir/resource/get_med_req/med-req-9", nil)
	missingRec := httptest.NewRecorder()
	s.router.ServeHTTP(missingRec, missingReq)
	s.Equal(http.StatusNotFound, missingRec.Code)
}

func (s *HandlerSuite) TestMedicationDispense() {
	body := `{"medicationDispense":{"identifier":"med-disp-1","status":"completed"}}`
	req := httptest.NewRequest(http.MethodPost, "/fhir/resource/create_medication_dispense", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	getReq := httptest.NewRequest(http.MethodGet, "/fhir/resource/get_med_disp/med-disp-1", nil)
	getRec := httptest.NewRecorder()
	s.router.ServeHTTP(getRec, getReq)
	s.Require().Equal(http.StatusOK, getRec.Code)
	s.Contains(getRec.Body.String(), "med-disp-1")
}

func (s *HandlerSuite) TestListPatients() {
	for i := 1; i <= 2; i++ {
		body := fmt.Sprintf(`{"patientData":{"identifier":"patient-%d"},"holderAddress":%q}`, i, s.holderAddr)
		req := httptest.NewRequest(http.MethodPost, "/fhir/resource/create_patient", strings.NewReader(body))
		req.Header.Set("Private-Key", s.issuerKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/fhir/resource/get_all_patients", nil)
	listRec := httptest.NewRecorder()
	s.router.ServeHTTP(listRec, listReq)

	s.Require().Equal(http.StatusOK, listRec.Code)
	var patients []map[string]any
	s.Require().NoError(json.Unmarshal(listRec.Body.Bytes(), &patients))
	s.Len(patients, 2)
}
