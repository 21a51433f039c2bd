package hostelsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated view of the admin API. Tokens are valid for
// 24 hours and there is no refresh flow; when a request starts returning
// *APIError with StatusCode 403, log in again.
type Session struct {
	client *SDKClient
	token  string
	user   User
}

// Token returns the raw bearer token, e.g. for storage between runs.
func (s *Session) Token() string { return s.token }

// User returns the authenticated admin user. Zero-valued for sessions built
// with NewSessionFromToken.
func (s *Session) User() User { return s.user }

// ListResidents returns all active residents, newest first.
func (s *Session) ListResidents(ctx context.Context) ([]Resident, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/residents", nil)
	if err != nil {
		return nil, err
	}

	var out []Resident
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateResident registers a new resident.
func (s *Session) CreateResident(ctx context.Context, req CreateResidentRequest) (*Resident, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/residents", req)
	if err != nil {
		return nil, err
	}

	var out Resident
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResident applies a partial update to a resident.
func (s *Session) UpdateResident(ctx context.Context, id string, req UpdateResidentRequest) (*Resident, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/residents/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var out Resident
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteResident soft-deletes a resident; their record and payment history
// survive, they just leave the active roster.
func (s *Session) DeleteResident(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/residents/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	var out struct {
		Success bool `json:"success"`
	}
	return decodeJSON(resp, &out, http.StatusOK)
}

// ListResidentPayments returns one resident's payments, newest due first.
func (s *Session) ListResidentPayments(ctx context.Context, residentID string) ([]Payment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet,
		"/api/residents/"+url.PathEscape(residentID)+"/payments", nil)
	if err != nil {
		return nil, err
	}

	var out []Payment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInquiries returns all inquiries, newest first, handled ones included.
func (s *Session) ListInquiries(ctx context.Context) ([]Inquiry, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/inquiries", nil)
	if err != nil {
		return nil, err
	}

	var out []Inquiry
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkInquiryHandled flags an inquiry as followed-up. Idempotent.
func (s *Session) MarkInquiryHandled(ctx context.Context, id string) (*Inquiry, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut,
		"/api/inquiries/"+url.PathEscape(id)+"/handled", nil)
	if err != nil {
		return nil, err
	}

	var out Inquiry
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPayments returns all payments joined with their residents, newest due
// first.
func (s *Session) ListPayments(ctx context.Context) ([]PaymentWithResident, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/payments", nil)
	if err != nil {
		return nil, err
	}

	var out []PaymentWithResident
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePayment records a rent entry for a resident.
func (s *Session) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/payments", req)
	if err != nil {
		return nil, err
	}

	var out Payment
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePaymentStatus transitions a payment's status. Marking a payment paid
// stamps its paid date.
func (s *Session) UpdatePaymentStatus(ctx context.Context, id string, req UpdatePaymentStatusRequest) (*Payment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut,
		"/api/payments/"+url.PathEscape(id)+"/status", req)
	if err != nil {
		return nil, err
	}

	var out Payment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRoomStatus returns the occupancy summary for every room type.
func (s *Session) ListRoomStatus(ctx context.Context) ([]RoomStatus, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/room-status", nil)
	if err != nil {
		return nil, err
	}

	var out []RoomStatus
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertRoomStatus creates or updates the occupancy row for a room type.
func (s *Session) UpsertRoomStatus(ctx context.Context, req UpsertRoomStatusRequest) (*RoomStatus, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/room-status", req)
	if err != nil {
		return nil, err
	}

	var out RoomStatus
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
