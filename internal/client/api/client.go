package api

import (
	"context"

	"github.com/dmitrijs2005/patientcli/internal/client/models"
)

// Client is the API contract against the patient-profile backend.
//
// The patient operations take the bearer token explicitly: the client keeps
// no session state of its own, every call is independent.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
	ListPatients(ctx context.Context, token string) ([]models.Patient, error)
	CreatePatient(ctx context.Context, token string, draft models.PatientDraft) (*models.Patient, error)
	UpdatePatient(ctx context.Context, token string, id int64, patient models.Patient) (*models.Patient, error)
	DeletePatient(ctx context.Context, token string, id int64) error
}
