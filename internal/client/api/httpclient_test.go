package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/patientcli/internal/client/models"
	"github.com/dmitrijs2005/patientcli/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewHTTPClient(srv.URL, log)
}

func samplePatient(id int64) models.Patient {
	return models.Patient{
		ID:          id,
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "1980-05-17",
		Gender:      "male",
		Email:       "john@example.org",
		Phone:       "555-0100",
		Address:     "1 Main St",
		CreatedAt:   "2024-01-01T00:00:00Z",
		UpdatedAt:   "2024-01-01T00:00:00Z",
		OwnerID:     1,
	}
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])
		require.Equal(t, "pw", body["password"])

		json.NewEncoder(w).Encode(map[string]string{"access_token": "T", "token_type": "bearer"})
	}))

	resp, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "T", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_RejectedWithDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
	}))

	_, err := c.Login(context.Background(), "alice", "wrong")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Incorrect username or password", authErr.Message)
}

func TestLogin_RejectedWithoutDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Login(context.Background(), "alice", "pw")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Login failed", authErr.Message)
}

func TestSignup_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "bob", body["username"])
		require.Equal(t, "b@x.com", body["email"])
		require.Equal(t, "pw", body["password"])

		json.NewEncoder(w).Encode(map[string]string{"access_token": "T2", "token_type": "bearer"})
	}))

	resp, err := c.Signup(context.Background(), "bob", "b@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "T2", resp.AccessToken)
}

func TestSignup_RejectedWithoutDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := c.Signup(context.Background(), "bob", "b@x.com", "pw")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Signup failed", authErr.Message)
}

func TestListPatients_Success(t *testing.T) {
	want := []models.Patient{samplePatient(1), samplePatient(2)}

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/patients/", r.URL.Path)
		require.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(want)
	}))

	patients, err := c.ListPatients(context.Background(), "T")
	require.NoError(t, err)
	assert.Equal(t, want, patients)
}

func TestListPatients_UnauthorizedUsesFixedMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
	}))

	_, err := c.ListPatients(context.Background(), "stale")
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	// the list failure message is fixed even when the body carries a detail
	assert.Equal(t, "Failed to fetch patients", fetchErr.Message)
}

func TestCreatePatient_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/patients/", r.URL.Path)
		require.Equal(t, "Bearer T", r.Header.Get("Authorization"))

		var draft models.PatientDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		require.Equal(t, "John", draft.FirstName)

		created := draft.ToPatient(7)
		created.OwnerID = 1
		created.CreatedAt = "2024-01-01T00:00:00Z"
		created.UpdatedAt = "2024-01-01T00:00:00Z"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}))

	draft := models.PatientDraft{
		FirstName: "John", LastName: "Doe", DateOfBirth: "1980-05-17",
		Gender: "male", Email: "john@example.org", Phone: "555-0100", Address: "1 Main St",
	}
	p, err := c.CreatePatient(context.Background(), "T", draft)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, int64(1), p.OwnerID)
	assert.True(t, p.Assigned())
	assert.Equal(t, draft.FirstName, p.FirstName)
}

func TestCreatePatient_RejectedDetailFallback(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"detail passed through", `{"detail":"email already registered"}`, http.StatusConflict, "email already registered"},
		{"empty body falls back", ``, http.StatusBadRequest, "Failed to add patient"},
		{"non-json body falls back", `oops`, http.StatusBadGateway, "Failed to add patient"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))

			_, err := c.CreatePatient(context.Background(), "T", models.PatientDraft{})
			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tt.want, fetchErr.Message)
		})
	}
}

func TestUpdatePatient_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/patients/5", r.URL.Path)
		require.Equal(t, "Bearer T", r.Header.Get("Authorization"))

		var p models.Patient
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.UpdatedAt = "2024-02-02T00:00:00Z"
		json.NewEncoder(w).Encode(p)
	}))

	p, err := c.UpdatePatient(context.Background(), "T", 5, samplePatient(5))
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, "2024-02-02T00:00:00Z", p.UpdatedAt)
}

func TestUpdatePatient_RejectedWithoutDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.UpdatePatient(context.Background(), "T", 5, samplePatient(5))
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Failed to update patient", fetchErr.Message)
}

func TestDeletePatient(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath string
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, c.DeletePatient(context.Background(), "T", 3))
		assert.Equal(t, "/patients/3", gotPath)
	})

	t.Run("rejected", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Patient not found"})
		}))

		err := c.DeletePatient(context.Background(), "T", 3)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "Patient not found", fetchErr.Message)
	})
}

func TestCreateThenListRoundTrip(t *testing.T) {
	var stored []models.Patient
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/patients/", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			var draft models.PatientDraft
			require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
			created := draft.ToPatient(int64(len(stored) + 1))
			created.OwnerID = 1
			created.CreatedAt = "2024-01-01T00:00:00Z"
			created.UpdatedAt = "2024-01-01T00:00:00Z"
			stored = append(stored, created)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(created)
		case http.MethodGet:
			json.NewEncoder(w).Encode(stored)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))

	draft := models.PatientDraft{
		FirstName: "Jane", LastName: "Roe", DateOfBirth: "1979-01-02",
		Gender: "female", Email: "jane@example.org", Phone: "555-0101",
		Address: "2 Side St", MedicalHistory: "asthma",
	}
	created, err := c.CreatePatient(context.Background(), "T", draft)
	require.NoError(t, err)

	patients, err := c.ListPatients(context.Background(), "T")
	require.NoError(t, err)
	require.Len(t, patients, 1)

	got := patients[0]
	assert.Equal(t, *created, got)
	assert.Equal(t, draft.FirstName, got.FirstName)
	assert.Equal(t, draft.MedicalHistory, got.MedicalHistory)
	assert.True(t, got.Assigned())
	assert.Equal(t, int64(1), got.OwnerID)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestTransportFailure_WrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing is listening anymore

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := NewHTTPClient(url, log)

	_, err := c.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = c.ListPatients(context.Background(), "T")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/patients/", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Patient{})
	}))
	t.Cleanup(srv.Close)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := NewHTTPClient(srv.URL+"/", log)

	patients, err := c.ListPatients(context.Background(), "T")
	require.NoError(t, err)
	assert.Empty(t, patients)
}
