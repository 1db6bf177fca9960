package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/patientcli/internal/client/models"
	"github.com/dmitrijs2005/patientcli/internal/common"
	"github.com/dmitrijs2005/patientcli/internal/logging"
)

// HTTPClient is the REST implementation of Client.
//
// The underlying http.Client carries no Timeout: calls rely on transport
// defaults and context cancellation, and in-flight requests are not aborted
// by a logout.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// do builds and executes one request. A non-nil body is JSON-encoded; a
// non-empty token is attached as a bearer Authorization header. Transport
// failures come back wrapped in ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func is2xx(code int) bool {
	return code >= 200 && code < 300
}

// detail drains the error response and returns the backend's detail message,
// or fallback when the body carries none.
func detail(resp *http.Response, fallback string) string {
	defer resp.Body.Close()
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err == nil && er.Detail != "" {
		return er.Detail
	}
	return fallback
}

func decodeInto(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/users/login", "", loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, &AuthError{Message: detail(resp, "Login failed")}
	}

	var ar models.AuthResponse
	if err := decodeInto(resp, &ar); err != nil {
		return nil, err
	}
	return &ar, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/users/signup", "", signupRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, &AuthError{Message: detail(resp, "Signup failed")}
	}

	var ar models.AuthResponse
	if err := decodeInto(resp, &ar); err != nil {
		return nil, err
	}
	return &ar, nil
}

func (c *HTTPClient) ListPatients(ctx context.Context, token string) ([]models.Patient, error) {
	resp, err := c.do(ctx, http.MethodGet, "/patients/", token, nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		// the list endpoint's failure message is fixed, the body is not consulted
		resp.Body.Close()
		return nil, &FetchError{Message: "Failed to fetch patients"}
	}

	var patients []models.Patient
	if err := decodeInto(resp, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *HTTPClient) CreatePatient(ctx context.Context, token string, draft models.PatientDraft) (*models.Patient, error) {
	resp, err := c.do(ctx, http.MethodPost, "/patients/", token, draft)
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, &FetchError{Message: detail(resp, "Failed to add patient")}
	}

	var p models.Patient
	if err := decodeInto(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdatePatient(ctx context.Context, token string, id int64, patient models.Patient) (*models.Patient, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/patients/%d", id), token, patient)
	if err != nil {
		return nil, err
	}
	if !is2xx(resp.StatusCode) {
		return nil, &FetchError{Message: detail(resp, "Failed to update patient")}
	}

	var p models.Patient
	if err := decodeInto(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeletePatient(ctx context.Context, token string, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/patients/%d", id), token, nil)
	if err != nil {
		return err
	}
	if !is2xx(resp.StatusCode) {
		return &FetchError{Message: detail(resp, "Failed to delete patient")}
	}
	resp.Body.Close()
	return nil
}
