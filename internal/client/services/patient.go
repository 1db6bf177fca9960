package services

import (
	"context"

	"github.com/dmitrijs2005/patientcli/internal/client/api"
	"github.com/dmitrijs2005/patientcli/internal/client/models"
	"github.com/dmitrijs2005/patientcli/internal/client/session"
)

// PatientService performs patient CRUD against the backend on behalf of the
// current session.
//
// The service is stateless per call: each operation reads the bearer token
// at call time and goes straight to the API client. Calls are independent
// and not deduplicated, so a double-issued Add produces two records.
type PatientService interface {
	List(ctx context.Context) ([]models.Patient, error)
	Add(ctx context.Context, draft models.PatientDraft) (*models.Patient, error)
	Update(ctx context.Context, id int64, draft models.PatientDraft) (*models.Patient, error)
	Delete(ctx context.Context, id int64) error
}

type patientService struct {
	client  api.Client
	session *session.Store
}

// NewPatientService constructs a PatientService bound to the given API
// client and session store.
func NewPatientService(client api.Client, store *session.Store) PatientService {
	return &patientService{client: client, session: store}
}

func (s *patientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.client.ListPatients(ctx, s.session.Token())
}

func (s *patientService) Add(ctx context.Context, draft models.PatientDraft) (*models.Patient, error) {
	return s.client.CreatePatient(ctx, s.session.Token(), draft)
}

func (s *patientService) Update(ctx context.Context, id int64, draft models.PatientDraft) (*models.Patient, error) {
	return s.client.UpdatePatient(ctx, s.session.Token(), id, draft.ToPatient(id))
}

func (s *patientService) Delete(ctx context.Context, id int64) error {
	return s.client.DeletePatient(ctx, s.session.Token(), id)
}
