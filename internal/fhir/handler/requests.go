package handler

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	dErrors "github.com/Muhammad-Masood/ssi-system-backend/pkg/domain-errors"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// Resource documents are free-form FHIR JSON carrying an identifier field.

type CreatePatientRequest struct {
	PatientData   map[string]any `json:"patientData"`
	HolderAddress string         `json:"holderAddress"`
}

func (r *CreatePatientRequest) Normalize() {
	if r == nil {
		return
	}
	r.HolderAddress = strings.TrimSpace(r.HolderAddress)
}

func (r *CreatePatientRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.PatientData) == 0 {
		return dErrors.New(dErrors.CodeValidation, "patientData is required")
	}
	if identifierOf(r.PatientData) == "" {
		return dErrors.New(dErrors.CodeValidation, "patientData.identifier is required")
	}
	if !common.IsHexAddress(r.HolderAddress) {
		return dErrors.New(dErrors.CodeValidation, "holderAddress must be a hex address")
	}
	return nil
}

func (r *CreatePatientRequest) identifier() string {
	return identifierOf(r.PatientData)
}

type CreateMedicationRequestRequest struct {
	MedicationRequest map[string]any `json:"medicationRequest"`
}

func (r *CreateMedicationRequestRequest) Normalize() {}

func (r *CreateMedicationRequestRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.MedicationRequest) == 0 {
		return dErrors.New(dErrors.CodeValidation, "medicationRequest is required")
	}
	if identifierOf(r.MedicationRequest) == "" {
		return dErrors.New(dErrors.CodeValidation, "medicationRequest.identifier is required")
	}
	return nil
}

func (r *CreateMedicationRequestRequest) identifier() string {
	return identifierOf(r.MedicationRequest)
}

type CreateMedicationDispenseRequest struct {
	MedicationDispense map[string]any `json:"medicationDispense"`
}

func (r *CreateMedicationDispenseRequest) Normalize() {}

func (r *CreateMedicationDispenseRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if len(r.MedicationDispense) == 0 {
		return dErrors.New(dErrors.CodeValidation, "medicationDispense is required")
	}
	if identifierOf(r.MedicationDispense) == "" {
		return dErrors.New(dErrors.CodeValidation, "medicationDispense.identifier is required")
	}
	return nil
}

func (r *CreateMedicationDispenseRequest) identifier() string {
	return identifierOf(r.MedicationDispense)
}

type CreateResourceResponse struct {
	Message string `json:"message"`
	DocID   string `json:"docId"`
}

func identifierOf(doc map[string]any) string {
	id, _ := doc["identifier"].(string)
	return strings.TrimSpace(id)
}
