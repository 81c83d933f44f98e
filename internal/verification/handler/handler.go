// Package handler exposes the cross-verification engine over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/middleware"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/verification/service"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
	"github.com/Muhammad-Masood/ssi-system-backend/pkg/platform/httputil"
)

const headerVCToken = "Vc-Jwt"

// Service defines the verification operations the handler needs.
type Service interface {
	VerifyCredential(ctx context.Context, token, issuerAddress string) (*service.CredentialStatus, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/vc/verify_vc", h.HandleVerifyVC)
}

type VerificationDTO struct {
	Verified bool          `json:"verified"`
	Payload  jwt.MapClaims `json:"payload,omitempty"`
}

type RevocationDTO struct {
	IsRevokedCurrently bool       `json:"isRevokedCurrently"`
	EndDate            *time.Time `json:"endDate,omitempty"`
}

type VerifyVCResponse struct {
	Verification VerificationDTO `json:"verificationResponse"`
	OnChain      bool            `json:"onChainVerificationResponse"`
	Revocation   RevocationDTO   `json:"revocation"`
}

// HandleVerifyVC runs the composite credential check: cryptographic
// verification, joint on-chain ownership, and both revocation tracks.
func (h *Handler) HandleVerifyVC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	token := r.Header.Get(headerVCToken)
	if token == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "credential token header is required"))
		return
	}
	issuerAddress := strings.TrimSpace(r.URL.Query().Get("issuerAddress"))

	status, err := h.service.VerifyCredential(ctx, token, issuerAddress)
	if err != nil {
		h.logger.ErrorContext(ctx, "credential verification failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &VerifyVCResponse{
		Verification: VerificationDTO{Verified: status.Verified, Payload: status.Payload},
		OnChain:      status.OnChainMatch,
		Revocation: RevocationDTO{
			IsRevokedCurrently: status.Revocation.Revoked(),
			EndDate:            status.Revocation.EndDate,
		},
	})
}
