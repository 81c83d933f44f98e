// Package httptransport assembles the HTTP surface. It mounts the module
// handlers behind a shared middleware stack and should stay free of business
// logic so transport concerns remain isolated.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/health"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/middleware"
)

// Registrar mounts a module's routes on the router.
type Registrar interface {
	Register(r chi.Router)
}

// AdminRegistrar additionally exposes issuer-side routes that sit behind the
// admin token guard.
type AdminRegistrar interface {
	Registrar
	RegisterAdmin(r chi.Router)
}

// Deps carries the wired module handlers into the router.
type Deps struct {
	DID          Registrar
	Credential   AdminRegistrar
	Verification Registrar
	FHIR         Registrar
	Health       *health.Handler

	// bcrypt hash guarding the admin routes; empty disables the guard.
	AdminTokenHash string
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(deps Deps, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	if deps.Health != nil {
		deps.Health.Register(r)
		r.Get("/healthz", deps.Health.HandleLiveness)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if deps.DID != nil {
		deps.DID.Register(r)
	}
	if deps.Verification != nil {
		deps.Verification.Register(r)
	}
	if deps.FHIR != nil {
		deps.FHIR.Register(r)
	}
	if deps.Credential != nil {
		deps.Credential.Register(r)
		r.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdminToken(deps.AdminTokenHash, logger))
			deps.Credential.RegisterAdmin(admin)
		})
	}

	return r
}
