// Package handler exposes the credential lifecycle over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/credential/service"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/middleware"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
	"github.com/Muhammad-Masood/ssi-system-backend/pkg/platform/httputil"
)

// Header names follow the original public API surface.
const (
	headerPrivateKey    = "Private-Key"
	headerVPToken       = "Vp-Jwt"
	headerEncryptedCIDs = "Encrypted-Cids"
)

// Service defines the credential operations the handler needs.
// Returns domain objects, not HTTP response DTOs.
type Service interface {
	Issue(ctx context.Context, cmd service.IssueCommand) (*models.IssueResult, error)
	IssueBankID(ctx context.Context, data models.BankIDData, privateKey string) (string, error)
	Revoke(ctx context.Context, cmd service.RevokeCommand) error
	RevokedList(ctx context.Context, issuerAddress string) ([]string, error)
	VerifyPresentation(ctx context.Context, token string) (*models.ResolvedCredential, error)
	DecryptCIDs(ctx context.Context, encoded []string) []string
	SubmitRequest(ctx context.Context, userID string, data models.BankIDData) (string, error)
	Requests(ctx context.Context) ([]*models.VCRequest, error)
	RequestsByUser(ctx context.Context, userID string) ([]*models.VCRequest, error)
}

// MirrorStore persists credential records alongside the ledger anchor. Saves
// are best effort; the anchored credential is the source of truth.
type MirrorStore interface {
	SaveCredential(ctx context.Context, record *models.CredentialRecord) error
}

type Handler struct {
	service Service
	mirror  MirrorStore
	logger  *slog.Logger
}

func New(service Service, mirror MirrorStore, logger *slog.Logger) *Handler {
	return &Handler{service: service, mirror: mirror, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/vc/create_vc", h.HandleCreateVC)
	r.Get("/vc/issuer_revoked_cids", h.HandleRevokedCIDs)
	r.Get("/vc/verify_vp", h.HandleVerifyVP)
	r.Get("/vc/decryptCID", h.HandleDecryptCIDs)
	r.Get("/vc/get_vc_requests", h.HandleListRequests)
	r.Get("/vc/get_user_vc_requests/{userId}", h.HandleListUserRequests)
	r.Post("/vc/submit_bank_id_vc_request", h.HandleSubmitBankIDRequest)
}

// RegisterAdmin mounts the issuer-side routes. The router wraps these with
// the admin token guard when one is configured.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/vc/revoke_vc", h.HandleRevokeVC)
	r.Post("/vc/issue_bank_id_vc", h.HandleIssueBankID)
}

// HandleCreateVC issues a medical certificate credential, anchors its sealed
// content id, and mirrors the record.
func (h *Handler) HandleCreateVC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	privateKey := r.Header.Get(headerPrivateKey)
	if privateKey == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "private key header is required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateVCRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Issue(ctx, service.IssueCommand{
		Claims: map[string]any{
			"@context": []string{"https://www.w3.org/2018/credentials/v1"},
			"type":     []string{"VerifiableCredential"},
			"credentialSubject": map[string]any{
				"certificate": map[string]any{
					"type":     "Medical",
					"name":     req.Name,
					"document": req.CID,
				},
			},
		},
		IssuerDID:  req.IssuerDID,
		HolderDID:  req.HolderDID,
		PrivateKey: privateKey,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "issue credential failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	record := &models.CredentialRecord{
		Token:             result.CredentialToken,
		HolderAddress:     result.HolderAddress,
		PresentationToken: result.PresentationToken,
		CID:               result.CID,
		EncryptedCID:      result.EncryptedCID,
		CreatedAt:         time.Now().UTC(),
	}
	if err := h.mirror.SaveCredential(ctx, record); err != nil {
		h.logger.WarnContext(ctx, "mirroring credential failed", "error", err, "request_id", requestID)
	}

	httputil.WriteJSON(w, http.StatusOK, &CreateVCResponse{
		VerifiableCredential:   result.CredentialToken,
		VerifiablePresentation: result.PresentationToken,
		EncryptedCID:           result.EncryptedCID,
	})
}

// HandleRevokeVC revokes by content id. A request with an endTime revokes
// softly; one without anchors the revocation on the ledger for good.
func (h *Handler) HandleRevokeVC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	privateKey := r.Header.Get(headerPrivateKey)
	if privateKey == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "private key header is required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[RevokeVCRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	err := h.service.Revoke(ctx, service.RevokeCommand{
		CID:        req.CID,
		EndTime:    req.endTime(),
		PrivateKey: privateKey,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "revoke credential failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &RevokeVCResponse{
		Message: "Successfully revoked the credential",
		CID:     req.CID,
	})
}

// HandleRevokedCIDs lists the plaintext content ids an issuer has revoked.
func (h *Handler) HandleRevokedCIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	issuerAddress := strings.TrimSpace(r.URL.Query().Get("issuerAddress"))
	if issuerAddress == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "issuerAddress query parameter is required"))
		return
	}

	cids, err := h.service.RevokedList(ctx, issuerAddress)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing revoked credentials failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &RevokedCIDsResponse{CIDs: cids})
}

// HandleVerifyVP verifies a presentation token and returns its payload.
func (h *Handler) HandleVerifyVP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	token := r.Header.Get(headerVPToken)
	if token == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "presentation token header is required"))
		return
	}

	resolved, err := h.service.VerifyPresentation(ctx, token)
	if err != nil {
		h.logger.ErrorContext(ctx, "verify presentation failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &VerifyVPResponse{VP: resolved.Payload})
}

// HandleDecryptCIDs opens a comma-separated batch of sealed content ids.
func (h *Handler) HandleDecryptCIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := r.Header.Get(headerEncryptedCIDs)
	if raw == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "encrypted cids header is required"))
		return
	}

	parts := strings.Split(raw, ",")
	encoded := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			encoded = append(encoded, trimmed)
		}
	}

	httputil.WriteJSON(w, http.StatusOK, &DecryptCIDsResponse{
		DecryptedCIDs: h.service.DecryptCIDs(ctx, encoded),
	})
}

// HandleListRequests lists every pending credential request.
func (h *Handler) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	requests, err := h.service.Requests(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing credential requests failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &RequestsResponse{Requests: requests})
}

// HandleListUserRequests lists the credential requests one user has submitted.
func (h *Handler) HandleListUserRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "userId path parameter is required"))
		return
	}

	requests, err := h.service.RequestsByUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing user credential requests failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &UserRequestsResponse{Requests: requests})
}

// HandleSubmitBankIDRequest queues a bank-id credential request for issuance.
func (h *Handler) HandleSubmitBankIDRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitBankIDRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	reqID, err := h.service.SubmitRequest(ctx, req.UserID, req.Data.toModel())
	if err != nil {
		h.logger.ErrorContext(ctx, "submitting credential request failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &SubmitRequestResponse{
		Message: "Successfully submitted the credential request",
		ReqID:   reqID,
	})
}

// HandleIssueBankID issues a bank-id credential document and anchors its
// sealed content id under the holder.
func (h *Handler) HandleIssueBankID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	privateKey := r.Header.Get(headerPrivateKey)
	if privateKey == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "private key header is required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[IssueBankIDRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cid, err := h.service.IssueBankID(ctx, req.Data.toModel(), privateKey)
	if err != nil {
		h.logger.ErrorContext(ctx, "issuing bank-id credential failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &IssueBankIDResponse{
		Message:     "Successfully issued the bank-id credential",
		DocumentCID: cid,
	})
}
