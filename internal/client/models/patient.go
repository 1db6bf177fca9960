// Package models defines the data types exchanged with the patient-profile
// backend: patient records, the session user descriptor, and auth payloads.
package models

import "errors"

// ErrRequiredFieldMissing is returned by PatientDraft.Validate when one of
// the mandatory fields is empty.
var ErrRequiredFieldMissing = errors.New("required field is empty")

// Patient is a patient profile record as returned by the backend.
// ID, OwnerID and the timestamps are server-assigned; their zero values mean
// the record has not been accepted by the server yet.
type Patient struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	OwnerID        int64  `json:"owner_id"`
}

// Assigned reports whether the server has assigned an identity to the record.
func (p Patient) Assigned() bool {
	return p.ID != 0
}

// PatientDraft holds the user-entered form values for a patient record,
// before the server assigns id, owner and timestamps.
type PatientDraft struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history,omitempty"`
}

// Validate checks that every required field is non-empty. MedicalHistory is
// optional. No format checks are applied: any non-empty string passes, which
// matches what the backend accepts.
func (d PatientDraft) Validate() error {
	required := []string{
		d.FirstName,
		d.LastName,
		d.DateOfBirth,
		d.Gender,
		d.Email,
		d.Phone,
		d.Address,
	}
	for _, v := range required {
		if v == "" {
			return ErrRequiredFieldMissing
		}
	}
	return nil
}

// ToPatient builds the full update payload for an existing record id.
func (d PatientDraft) ToPatient(id int64) Patient {
	return Patient{
		ID:             id,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		DateOfBirth:    d.DateOfBirth,
		Gender:         d.Gender,
		Email:          d.Email,
		Phone:          d.Phone,
		Address:        d.Address,
		MedicalHistory: d.MedicalHistory,
	}
}
