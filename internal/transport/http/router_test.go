package httptransport

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/health"
	"github.com/Muhammad-Masood/ssi-system-backend/pkg/secrets"
)

type stubRegistrar struct {
	routes      []string
	adminRoutes []string
}

func (s *stubRegistrar) Register(r chi.Router) {
	for _, route := range s.routes {
		r.Get(route, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}
}

func (s *stubRegistrar) RegisterAdmin(r chi.Router) {
	for _, route := range s.adminRoutes {
		r.Post(route, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}
}

type RouterSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func (s *RouterSuite) newRouter(adminHash string) http.Handler {
	return NewRouter(Deps{
		DID:          &stubRegistrar{routes: []string{"/dids/decode_did_jwt"}},
		Credential:   &stubRegistrar{routes: []string{"/vc/get_vc_requests"}, adminRoutes: []string{"/vc/revoke_vc"}},
		Verification: &stubRegistrar{routes: []string{"/vc/verify_vc"}},
		FHIR:         &stubRegistrar{routes: []string{"/fhir/resource/get_all_patients"}},
		Health:       health.New("test"),

		AdminTokenHash: adminHash,
	}, s.logger)
}

func (s *RouterSuite) TestMountsModuleRoutes() {
	router := s.newRouter("")

	for _, route := range []string{
		"/dids/decode_did_jwt",
		"/vc/get_vc_requests",
		"/vc/verify_vc",
		"/fhir/resource/get_all_patients",
		"/healthz",
		"/health/ready",
		"/metrics",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))
		s.Equal(http.StatusOK, rec.Code, route)
	}
}

func (s *RouterSuite) TestAdminGuard() {
	hash, err := secrets.Hash("letmein")
	s.Require().NoError(err)
	router := s.newRouter(hash)

	s.Run("rejects a missing admin token", func() {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vc/revoke_vc", nil))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("accepts the configured token", func() {
		req := httptest.NewRequest(http.MethodPost, "/vc/revoke_vc", nil)
		req.Header.Set("X-Admin-Token", "letmein")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("skips the guard when no hash is configured", func() {
		rec := httptest.NewRecorder()
		s.newRouter("").ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/vc/revoke_vc", nil))
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *RouterSuite) TestRequestIDHeader() {
	router := s.newRouter("")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	s.NotEmpty(rec.Header().Get("X-Request-ID"))
}
