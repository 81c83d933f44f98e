// Package models holds the FHIR resource mirror records. The resource
// documents themselves live on content-addressed storage; the side-database
// keeps the lookup rows.
package models

import "time"

type PatientRecord struct {
	ID            string    `json:"docId"`
	HolderAddress string    `json:"holderAddress"`
	PatientID     string    `json:"patientId"`
	CID           string    `json:"ipfsHash"`
	CreatedAt     time.Time `json:"created_at"`
}

type MedicationRequestRecord struct {
	ID        string    `json:"docId"`
	RequestID string    `json:"medReqId"`
	CID       string    `json:"ipfsHash"`
	CreatedAt time.Time `json:"created_at"`
}

type MedicationDispenseRecord struct {
	ID         string    `json:"docId"`
	DispenseID string    `json:"medDispId"`
	CID        string    `json:"ipfsHash"`
	CreatedAt  time.Time `json:"created_at"`
}
