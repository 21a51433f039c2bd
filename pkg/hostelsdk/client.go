// Package hostelsdk is the API client for the hostel admin service. It also
// defines the request/response wire types and the shared error format, so the
// server handlers and external consumers agree on one schema.
package hostelsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the hostel admin API. It provides the
// unauthenticated operations and creates authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges admin credentials for an authenticated Session.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/api/auth/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{client: c, token: out.Token, user: out.User}, nil
}

// Bootstrap provisions the first admin user and initial room inventory.
// It only works while the service has no users and requires the pre-shared
// bootstrap token.
func (c *SDKClient) Bootstrap(ctx context.Context, req BootstrapRequest) (*BootstrapResponse, error) {
	resp, err := c.postJSON(ctx, "/api/auth/bootstrap", req)
	if err != nil {
		return nil, err
	}

	var out BootstrapResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInquiry submits a public contact-form inquiry. No authentication.
func (c *SDKClient) CreateInquiry(ctx context.Context, req CreateInquiryRequest) (*Inquiry, error) {
	resp, err := c.postJSON(ctx, "/api/inquiries", req)
	if err != nil {
		return nil, err
	}

	var out Inquiry
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez checks that the service process is up.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz checks that the service can reach its database.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewSessionFromToken creates a Session from a previously issued token, e.g.
// one stored by a browser client. No verification happens client-side; a bad
// token surfaces as a 403 on the first request.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
