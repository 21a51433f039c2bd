package hostelsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sharmapg/hostel/pkg/httpx"
)

// Error codes returned in the "error" field of every non-2xx response.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeAlreadyProvisioned = "already_provisioned"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeServerError        = "server_error"
)

// APIError is the wire error format shared by the server handlers and the SDK
// client. It implements the error interface on both sides.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Message is a human-readable description of the error.
	Message string `json:"message"`

	// Details carries field-level validation errors when Code is
	// "validation_error".
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or
	// cannot be decoded.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request is malformed or missing required fields",
	}

	// ErrInvalidCredentials is returned on login failure. The message is the
	// same whether the username is unknown or the password is wrong.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredentials,
		Message:    "invalid username or password",
	}

	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "record not found",
	}

	// ErrAlreadyProvisioned is returned when bootstrap is attempted after an
	// admin user already exists.
	ErrAlreadyProvisioned = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeAlreadyProvisioned,
		Message:    "service is already provisioned",
	}

	// ErrForbidden is returned when the bootstrap token does not match.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "access denied",
	}

	// ErrServerError is returned for unexpected internal failures. Internals
	// are never included in the message.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}
)

// NewValidationError wraps field-level validation failures into an APIError.
func NewValidationError(details map[string]string) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "request validation failed",
		Details:    details,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
