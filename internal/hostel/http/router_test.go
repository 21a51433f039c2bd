package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/internal/hostel/store/drivers/sqlite"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer    = "hostel-api-test"
	testBootstrap = "test-bootstrap-token"
	testUsername  = "admin"
	testPassword  = "super secret pw"
)

func newTestRouter(t *testing.T) (*Router, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSigner(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifier(secret, testIssuer)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(verifier, "test", st, logger)
	r.AuthService = &service.AuthService{Store: st, Signer: signer, Issuer: testIssuer}
	r.BootstrapService = &service.BootstrapService{Store: st, Token: testBootstrap}
	r.ResidentService = &service.ResidentService{Store: st}
	r.InquiryService = &service.InquiryService{Store: st}
	r.PaymentService = &service.PaymentService{Store: st}
	r.RoomStatusService = &service.RoomStatusService{Store: st}
	r.ApplyRoutes()

	return r, st
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

// bootstrapAndLogin provisions the admin and returns a valid session token.
func bootstrapAndLogin(t *testing.T, h http.Handler) string {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/auth/bootstrap", "", hostelsdk.BootstrapRequest{
		Token:    testBootstrap,
		Username: testUsername,
		Password: testPassword,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodPost, "/api/auth/login", "", hostelsdk.LoginRequest{
		Username: testUsername,
		Password: testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login hostelsdk.LoginResponse
	decodeInto(t, rec, &login)
	require.NotEmpty(t, login.Token)
	require.Equal(t, testUsername, login.User.Username)
	return login.Token
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	token := bootstrapAndLogin(t, r)
	require.NotEmpty(t, token)

	// Wrong password is a 401 with the generic credentials error.
	rec := doJSON(t, r, http.MethodPost, "/api/auth/login", "", hostelsdk.LoginRequest{
		Username: testUsername,
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var apiErr hostelsdk.APIError
	decodeInto(t, rec, &apiErr)
	require.Equal(t, hostelsdk.ErrorCodeInvalidCredentials, apiErr.Code)

	// Unknown username produces the identical body.
	rec2 := doJSON(t, r, http.MethodPost, "/api/auth/login", "", hostelsdk.LoginRequest{
		Username: "nobody",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec2.Code)
	require.JSONEq(t, rec.Body.String(), rec2.Body.String())
}

func TestBootstrapEndpointGuards(t *testing.T) {
	r, _ := newTestRouter(t)

	// Wrong token.
	rec := doJSON(t, r, http.MethodPost, "/api/auth/bootstrap", "", hostelsdk.BootstrapRequest{
		Token:    "nope",
		Username: testUsername,
		Password: testPassword,
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Correct token works once.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/bootstrap", "", hostelsdk.BootstrapRequest{
		Token:    testBootstrap,
		Username: testUsername,
		Password: testPassword,
		Rooms: []hostelsdk.RoomSeed{
			{RoomType: "2-sharing", TotalRooms: 10},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Second attempt conflicts.
	rec = doJSON(t, r, http.MethodPost, "/api/auth/bootstrap", "", hostelsdk.BootstrapRequest{
		Token:    testBootstrap,
		Username: "other",
		Password: testPassword,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	// Missing bearer is 401.
	rec := doJSON(t, r, http.MethodGet, "/api/residents", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage bearer is 403.
	rec = doJSON(t, r, http.MethodGet, "/api/residents", "not-a-jwt", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	// Expired token is 403 too.
	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSigner(secret)
	require.NoError(t, err)
	expired, err := signer.Sign(jwtx.NewSessionClaims(
		"user-id", testUsername, testIssuer, time.Hour, time.Now().Add(-2*time.Hour)))
	require.NoError(t, err)

	rec = doJSON(t, r, http.MethodGet, "/api/residents", expired, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestResidentLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)
	token := bootstrapAndLogin(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/residents", token, hostelsdk.CreateResidentRequest{
		Name:        "Ravi Kumar",
		Mobile:      "9876543210",
		RoomNumber:  "201",
		College:     "Govt Engineering College",
		JoiningDate: time.Now().UTC(),
		RoomType:    "2-sharing",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created hostelsdk.Resident
	decodeInto(t, rec, &created)
	require.True(t, created.IsActive)

	// Partial update changes just the room.
	room := "305"
	rec = doJSON(t, r, http.MethodPut, "/api/residents/"+created.ID, token,
		hostelsdk.UpdateResidentRequest{RoomNumber: &room})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated hostelsdk.Resident
	decodeInto(t, rec, &updated)
	require.Equal(t, "305", updated.RoomNumber)
	require.Equal(t, created.Name, updated.Name)

	// Soft delete drops them from the list.
	rec = doJSON(t, r, http.MethodDelete, "/api/residents/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/residents", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []hostelsdk.Resident
	decodeInto(t, rec, &list)
	require.Empty(t, list)

	// Updates against an unknown id are a 404.
	rec = doJSON(t, r, http.MethodPut, "/api/residents/01JMISSING00000000000000000", token,
		hostelsdk.UpdateResidentRequest{RoomNumber: &room})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInquiryScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	// Public submission needs no token.
	rec := doJSON(t, r, http.MethodPost, "/api/inquiries", "", hostelsdk.CreateInquiryRequest{
		StudentName:  "Priya Sharma",
		College:      "City Medical College",
		RoomType:     "2-sharing",
		StayDuration: "6 months",
		Phone:        "9123456780",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var inq hostelsdk.Inquiry
	decodeInto(t, rec, &inq)
	require.False(t, inq.IsHandled)
	require.False(t, inq.CreatedAt.IsZero())

	// Listing requires auth.
	token := bootstrapAndLogin(t, r)

	rec = doJSON(t, r, http.MethodPut, "/api/inquiries/"+inq.ID+"/handled", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Idempotent: marking again is still a 200.
	rec = doJSON(t, r, http.MethodPut, "/api/inquiries/"+inq.ID+"/handled", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/inquiries", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []hostelsdk.Inquiry
	decodeInto(t, rec, &list)
	require.Len(t, list, 1)
	require.True(t, list[0].IsHandled)

	// Bad submission is rejected with field details.
	rec = doJSON(t, r, http.MethodPost, "/api/inquiries", "", hostelsdk.CreateInquiryRequest{
		StudentName: "No Phone",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr hostelsdk.APIError
	decodeInto(t, rec, &apiErr)
	require.Equal(t, hostelsdk.ErrorCodeValidation, apiErr.Code)
	require.Contains(t, apiErr.Details, "phone")
}

func TestPaymentFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	token := bootstrapAndLogin(t, r)

	rec := doJSON(t, r, http.MethodPost, "/api/residents", token, hostelsdk.CreateResidentRequest{
		Name:        "Ravi Kumar",
		Mobile:      "9876543210",
		RoomNumber:  "201",
		College:     "Govt Engineering College",
		JoiningDate: time.Now().UTC(),
		RoomType:    "2-sharing",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var res hostelsdk.Resident
	decodeInto(t, rec, &res)

	// Payment for an unknown resident is a 404.
	rec = doJSON(t, r, http.MethodPost, "/api/payments", token, hostelsdk.CreatePaymentRequest{
		ResidentID: "01JMISSING00000000000000000",
		Amount:     8500,
		DueDate:    time.Now().UTC(),
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/payments", token, hostelsdk.CreatePaymentRequest{
		ResidentID: res.ID,
		Amount:     8500,
		DueDate:    time.Now().UTC(),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var payment hostelsdk.Payment
	decodeInto(t, rec, &payment)
	require.Equal(t, "pending", payment.Status)
	require.Nil(t, payment.PaidDate)

	// Mark paid with an explicit date.
	paid := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	rec = doJSON(t, r, http.MethodPut, "/api/payments/"+payment.ID+"/status", token,
		hostelsdk.UpdatePaymentStatusRequest{Status: "paid", PaidDate: &paid})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated hostelsdk.Payment
	decodeInto(t, rec, &updated)
	require.Equal(t, "paid", updated.Status)
	require.NotNil(t, updated.PaidDate)
	require.True(t, paid.Equal(*updated.PaidDate))

	// Listing joins the resident.
	rec = doJSON(t, r, http.MethodGet, "/api/payments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []hostelsdk.PaymentWithResident
	decodeInto(t, rec, &list)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Resident)
	require.Equal(t, res.Name, list[0].Resident.Name)

	// The per-resident listing shows it too.
	rec = doJSON(t, r, http.MethodGet, "/api/residents/"+res.ID+"/payments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var byResident []hostelsdk.Payment
	decodeInto(t, rec, &byResident)
	require.Len(t, byResident, 1)

	// Unknown status is a 400.
	rec = doJSON(t, r, http.MethodPut, "/api/payments/"+payment.ID+"/status", token,
		hostelsdk.UpdatePaymentStatusRequest{Status: "refunded"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoomStatusEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)
	token := bootstrapAndLogin(t, r)

	rec := doJSON(t, r, http.MethodPut, "/api/room-status", token, hostelsdk.UpsertRoomStatusRequest{
		RoomType:   "2-sharing",
		TotalRooms: 10,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var first hostelsdk.RoomStatus
	decodeInto(t, rec, &first)

	// Upserting again for the same type keeps the id, updates the counts.
	rec = doJSON(t, r, http.MethodPut, "/api/room-status", token, hostelsdk.UpsertRoomStatusRequest{
		RoomType:      "2-sharing",
		TotalRooms:    10,
		OccupiedRooms: 7,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var second hostelsdk.RoomStatus
	decodeInto(t, rec, &second)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 7, second.OccupiedRooms)

	rec = doJSON(t, r, http.MethodGet, "/api/room-status", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []hostelsdk.RoomStatus
	decodeInto(t, rec, &list)
	require.Len(t, list, 1)

	// Negative counts are rejected.
	rec = doJSON(t, r, http.MethodPut, "/api/room-status", token, hostelsdk.UpsertRoomStatusRequest{
		RoomType:   "3-sharing",
		TotalRooms: -1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health hostelsdk.HealthResponse
	decodeInto(t, rec, &health)
	require.Equal(t, "ok", health.Status)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeInto(t, rec, &health)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
