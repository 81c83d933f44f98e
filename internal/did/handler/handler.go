// Package handler exposes the identifier lifecycle over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/did/service"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/middleware"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
	"github.com/Muhammad-Masood/ssi-system-backend/pkg/platform/httputil"
)

// Header names follow the original public API surface.
const (
	headerPrivateKey = "Private-Key"
	headerToken      = "Token"
)

// Service defines the identifier operations the handler needs.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Mint(ctx context.Context, cmd service.MintCommand) (*models.MintResult, error)
	Resolve(token string) (jwtoken.DecodedToken, error)
	Verify(ctx context.Context, token string) (*models.VerificationResult, error)
	IsAnchored(ctx context.Context, subjectDID, token string) (bool, error)
	Retract(ctx context.Context, cmd service.RetractCommand) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/dids/create_did_jwt", h.HandleCreateDID)
	r.Post("/dids/delete_did_jwt", h.HandleDeleteDID)
	r.Get("/dids/decode_did_jwt", h.HandleDecodeDID)
	r.Get("/dids/verify_did_jwt", h.HandleVerifyDID)
}

// HandleCreateDID mints a new identifier and anchors it.
func (h *Handler) HandleCreateDID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	privateKey := r.Header.Get(headerPrivateKey)
	if privateKey == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "private key header is required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateDIDRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Mint(ctx, service.MintCommand{
		Subject:    req.Subject,
		Method:     req.Method,
		PrivateKey: privateKey,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "mint identifier failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &CreateDIDResponse{
		Token: result.Token,
		CID:   result.CID,
		DID:   result.DID,
	})
}

// HandleDeleteDID retracts an anchored identifier.
func (h *Handler) HandleDeleteDID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	privateKey := r.Header.Get(headerPrivateKey)
	if privateKey == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "private key header is required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[DeleteDIDRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	err := h.service.Retract(ctx, service.RetractCommand{
		Token:      req.Token,
		Address:    req.UserAddress,
		CID:        req.CID,
		PrivateKey: privateKey,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "retract identifier failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &DeleteDIDResponse{
		Message: "Successfully deleted DID document",
	})
}

// HandleDecodeDID decodes a token without verification.
func (h *Handler) HandleDecodeDID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	token := r.Header.Get(headerToken)
	if token == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "token header is required"))
		return
	}

	decoded, err := h.service.Resolve(token)
	if err != nil {
		h.logger.WarnContext(ctx, "decode token failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &DecodeDIDResponse{Decoded: decoded})
}

// HandleVerifyDID runs off-chain signature verification and the on-chain
// anchor check against the token's audience identifier.
func (h *Handler) HandleVerifyDID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	token := r.Header.Get(headerToken)
	if token == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "token header is required"))
		return
	}

	result, err := h.service.Verify(ctx, token)
	if err != nil {
		h.logger.ErrorContext(ctx, "verify token failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	anchored := false
	if aud, ok := result.Payload["aud"].(string); ok && aud != "" {
		anchored, err = h.service.IsAnchored(ctx, aud, token)
		if err != nil {
			h.logger.ErrorContext(ctx, "anchor check failed", "error", err, "request_id", requestID)
			httputil.WriteError(w, err)
			return
		}
	}

	httputil.WriteJSON(w, http.StatusOK, &VerifyDIDResponse{
		OffChainVerificationStatus: result.Verified,
		OnChainVerificationStatus:  anchored,
	})
}
