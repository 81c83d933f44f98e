package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/models"
	"github.com/Muhammad-Masood/ssi-system-backend/internal/fhir/store"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *store.InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = store.NewInMemoryStore()
}

func (s *InMemoryStoreSuite) TestPatients() {
	ctx := context.Background()
	base := time.Now().UTC()

	s.Require().NoError(s.store.SavePatient(ctx, &models.PatientRecord{
		ID:            "doc-2",
		HolderAddress: "0x1111111111111111111111111111111111111111",
		PatientID:     "patient-2",
		CID:           "QmTwo",
		CreatedAt:     base.Add(time.Minute),
	}))
	s.Require().NoError(s.store.SavePatient(ctx, &models.PatientRecord{
		ID:            "doc-1",
		HolderAddress: "0x1111111111111111111111111111111111111111",
		PatientID:     "patient-1",
		CID:           "QmOne",
		CreatedAt:     base,
	}))

	s.Run("finds by patient identifier", func() {
		found, err := s.store.FindPatient(ctx, "patient-1")
		s.Require().NoError(err)
		s.Equal("QmOne", found.CID)
	})

	s.Run("missing identifier reports not found", func() {
		_, err := s.store.FindPatient(ctx, "patient-9")
		s.ErrorIs(err, store.ErrNotFound)
	})

	s.Run("lists in creation order", func() {
		all, err := s.store.ListPatients(ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 2)
		s.Equal("doc-1", all[0].ID)
		s.Equal("doc-2", all[1].ID)
	})
}

func (s *InMemoryStoreSuite) TestMedicationRequests() {
	ctx := context.Background()

	s.Require().NoError(s.store.SaveMedicationRequest(ctx, &models.MedicationRequestRecord{
		ID:        "doc-1",
		RequestID: "med-req-1",
		CID:       "QmReq",
		CreatedAt: time.Now().UTC(),
	}))

	found, err := s.store.FindMedicationRequest(ctx, "med-req-1")
	s.Require().NoError(err)
	s.Equal("QmReq", found.CID)

	_, err = s.store.FindMedicationRequest(ctx, "med-req-9")
	s.ErrorIs(err, store.ErrNotFound)

	all, err := s.store.ListMedicationRequests(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *InMemoryStoreSuite) TestMedicationDispenses() {
	ctx := context.Background()

	s.Require().NoError(s.store.SaveMedicationDispense(ctx, &models.MedicationDispenseRecord{
		ID:         "doc-1",
		DispenseID: "med-disp-1",
		CID:        "QmDisp",
		CreatedAt:  time.Now().UTC(),
	}))

	found, err := s.store.FindMedicationDispense(ctx, "med-disp-1")
	s.Require().NoError(err)
	s.Equal("QmDisp", found.CID)

	_, err = s.store.FindMedicationDispense(ctx, "med-disp-9")
	s.ErrorIs(err, store.ErrNotFound)

	all, err := s.store.ListMedicationDispenses(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *InMemoryStoreSuite) TestReturnedRecordsAreCopies() {
	ctx := context.Background()
	s.Require().NoError(s.store.SavePatient(ctx, &models.PatientRecord{
		ID:        "doc-1",
		PatientID: "patient-1",
		CID:       "QmOne",
		CreatedAt: time.Now().UTC(),
	}))

	found, err := s.store.FindPatient(ctx, "patient-1")
	s.Require().NoError(err)
	found.CID = "mutated"

	again, err := s.store.FindPatient(ctx, "patient-1")
	s.Require().NoError(err)
	s.Equal("QmOne", again.CID)
}
