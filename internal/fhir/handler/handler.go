// Package handler exposes the FHIR resource glue over HTTP. Resource
// documents are stored on content-addressed storage; patient resources are
// additionally anchored under the holder like issued credentials.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/store"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/jwtoken"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/ledger"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/platform/middleware"
	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
	"github.com/Muhammad-Masood/ssi-system-backend/pkg/platform/httputil"
)

const headerPrivateKey = "Private-Key"

// ContentStore stores resource documents.
type ContentStore interface {
	Put(ctx context.Context, doc any) (string, error)
}

// Sealer encrypts content ids before anchoring.
type Sealer interface {
	SealString(plaintext string) (string, error)
}

type Handler struct {
	ledger  ledger.Client
	content ContentStore
	sealer  Sealer
	store   store.Store
	logger  *slog.Logger
}

func New(ledgerClient ledger.Client, content ContentStore, sealer Sealer, resourceStore store.Store, logger *slog.Logger) *Handler {
	return &Handler{
		ledger:  ledgerClient,
		content: content,
		sealer:  sealer,
		store:   resourceStore,
		logger:  logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/fhir/resource/create_patient", h.HandleCreatePatient)
	r.Get("/fhir/resource/get_patient/{id}", h.HandleGetPatient)
	r.Get("/fhir/resource/get_all_patients", h.HandleListPatients)
	r.Post("/fhir/resource/create_medication_request", h.HandleCreateMedicationRequest)
	r.Get("/fhir/resource/get_med_req/{id}", h.HandleGetMedicationRequest)
	r.Get("/fhir/resource/get_all_medication_requests", h.HandleListMedicationRequests)
	r.Post("/fhir/resource/create_medication_dispense", h.HandleCreateMedicationDispense)
	r.Get("/fhir/resource/get_med_disp/{id}", h.HandleGetMedicationDispense)
	r.Get("/fhir/resource/get_all_medication_dispenses", h.HandleListMedicationDispenses)
}

// HandleCreatePatient stores the patient document, anchors its sealed
// content id under the holder, and mirrors the lookup row.
func (h *Handler) HandleCreatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	privateKey := r.Header.Get(headerPrivateKey)
	if privateKey == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "private key header is required"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreatePatientRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	signer, err := jwtoken.NewSigner(privateKey)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	cid, err := h.content.Put(ctx, req.PatientData)
	if err != nil {
		h.logger.ErrorContext(ctx, "storing patient resource failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	sealed, err := h.sealer.SealString(cid)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	holder := common.HexToAddress(req.HolderAddress)
	if err := h.ledger.RecordIssuedCertificate(ctx, signer, holder, []byte(sealed)); err != nil {
		h.logger.ErrorContext(ctx, "anchoring patient resource failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	record := &models.PatientRecord{
		ID:            uuid.NewString(),
		HolderAddress: req.HolderAddress,
		PatientID:     req.identifier(),
		CID:           cid,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.store.SavePatient(ctx, record); err != nil {
		h.logger.ErrorContext(ctx, "saving patient record failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &CreateResourceResponse{
		Message: "Patient resource created and issued successfully!",
		DocID:   record.ID,
	})
}

func (h *Handler) HandleGetPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	record, err := h.store.FindPatient(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) HandleListPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	records, err := h.store.ListPatients(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing patient records failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

// HandleCreateMedicationRequest stores the document and mirrors the lookup
// row. Medication resources are not anchored on the ledger.
func (h *Handler) HandleCreateMedicationRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateMedicationRequestRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cid, err := h.content.Put(ctx, req.MedicationRequest)
	if err != nil {
		h.logger.ErrorContext(ctx, "storing medication request failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	record := &models.MedicationRequestRecord{
		ID:        uuid.NewString(),
		RequestID: req.identifier(),
		CID:       cid,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.store.SaveMedicationRequest(ctx, record); err != nil {
		h.logger.ErrorContext(ctx, "saving medication request record failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &CreateResourceResponse{
		Message: "Patient medication request created successfully!",
		DocID:   record.ID,
	})
}

func (h *Handler) HandleGetMedicationRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	record, err := h.store.FindMedicationRequest(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) HandleListMedicationRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	records, err := h.store.ListMedicationRequests(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing medication request records failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) HandleCreateMedicationDispense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateMedicationDispenseRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cid, err := h.content.Put(ctx, req.MedicationDispense)
	if err != nil {
		h.logger.ErrorContext(ctx, "storing medication dispense failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	record := &models.MedicationDispenseRecord{
		ID:         uuid.NewString(),
		DispenseID: req.identifier(),
		CID:        cid,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.store.SaveMedicationDispense(ctx, record); err != nil {
		h.logger.ErrorContext(ctx, "saving medication dispense record failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &CreateResourceResponse{
		Message: "Patient medication dispense created successfully!",
		DocID:   record.ID,
	})
}

func (h *Handler) HandleGetMedicationDispense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	record, err := h.store.FindMedicationDispense(ctx, chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) HandleListMedicationDispenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	records, err := h.store.ListMedicationDispenses(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "listing medication dispense records failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}
