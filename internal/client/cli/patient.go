package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/patientcli/internal/client/models"
)

// promptDraft collects the patient form fields one line at a time. Empty
// input leaves a field empty; required-field checks happen in Validate, not
// here, so the user sees a single message instead of being re-prompted per
// field.
func (a *App) promptDraft() (models.PatientDraft, error) {
	var d models.PatientDraft

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &d.FirstName},
		{"Last name", &d.LastName},
		{"Date of birth (YYYY-MM-DD)", &d.DateOfBirth},
		{"Gender", &d.Gender},
		{"Email", &d.Email},
		{"Phone", &d.Phone},
		{"Address", &d.Address},
		{"Medical history (optional)", &d.MedicalHistory},
	}

	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return models.PatientDraft{}, err
		}
		*f.dst = v
	}
	return d, nil
}

func (a *App) promptPatientID(prompt string) (int64, bool, error) {
	text, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Invalid patient id:", text)
		return 0, false, nil
	}
	return id, true, nil
}

func formatPatient(p models.Patient) string {
	s := fmt.Sprintf("#%d %s %s | dob=%s gender=%s email=%s phone=%s address=%q",
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender, p.Email, p.Phone, p.Address)
	if p.MedicalHistory != "" {
		s += fmt.Sprintf(" history=%q", p.MedicalHistory)
	}
	return s
}

// ListPatients fetches and prints the patient collection for the current
// session. Failures are printed and the previously shown collection is
// simply left as-is on screen.
func (a *App) ListPatients(ctx context.Context) error {
	patients, err := a.patientService.List(ctx)
	if err != nil {
		printlnFn(displayError(err, "An error occurred while fetching patients"))
		return nil
	}

	if len(patients) == 0 {
		printlnFn("No patients found.")
		return nil
	}
	for _, p := range patients {
		printlnFn(formatPatient(p))
	}
	return nil
}

// AddPatient collects a draft, validates required fields locally, and
// submits it. Validation failures never reach the network.
func (a *App) AddPatient(ctx context.Context) error {
	draft, err := a.promptDraft()
	if err != nil {
		return err
	}

	if err := draft.Validate(); err != nil {
		printlnFn("Please fill in all required fields")
		return nil
	}

	p, err := a.patientService.Add(ctx, draft)
	if err != nil {
		printlnFn(displayError(err, "An error occurred while adding patient"))
		return nil
	}

	a.setNotice("Patient added successfully!")
	printlnFn(formatPatient(*p))
	return nil
}

// UpdatePatient prompts for a record id and a full replacement draft, then
// submits it. Same validation as AddPatient.
func (a *App) UpdatePatient(ctx context.Context) error {
	id, ok, err := a.promptPatientID("Enter patient id to update")
	if err != nil || !ok {
		return err
	}

	draft, err := a.promptDraft()
	if err != nil {
		return err
	}

	if err := draft.Validate(); err != nil {
		printlnFn("Please fill in all required fields")
		return nil
	}

	p, err := a.patientService.Update(ctx, id, draft)
	if err != nil {
		printlnFn(displayError(err, "An error occurred while updating patient"))
		return nil
	}

	a.setNotice("Patient updated successfully!")
	printlnFn(formatPatient(*p))
	return nil
}

// DeletePatient prompts for a record id and asks for confirmation before
// issuing the request. Declining aborts with no network call and no error.
func (a *App) DeletePatient(ctx context.Context) error {
	id, ok, err := a.promptPatientID("Enter patient id to delete")
	if err != nil || !ok {
		return err
	}

	confirmed, err := getConfirmation(a.reader, "Are you sure you want to delete this patient?", os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.patientService.Delete(ctx, id); err != nil {
		printlnFn(displayError(err, "An error occurred while deleting patient"))
		return nil
	}

	a.setNotice("Patient deleted successfully!")
	return nil
}
