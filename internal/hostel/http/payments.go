package http

import (
	"net/http"
	"strings"

	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/httpx"
)

type PaymentsHandler struct {
	PaymentService *service.PaymentService
}

// HandleList returns all payments joined with their residents, newest due
// first. Payments whose resident row is missing come back with a null
// resident.
//
//	@Summary		List payments
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		hostelsdk.PaymentWithResident
//	@Failure		401	{object}	hostelsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	hostelsdk.APIError	"Invalid or expired token"
//	@Failure		500	{object}	hostelsdk.APIError	"Internal error"
//	@Router			/api/payments [get].
func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.PaymentService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKPaymentsWithResidents(list))
}

// HandleCreate records a rent entry for an existing resident.
//
//	@Summary		Create a payment
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		hostelsdk.CreatePaymentRequest	true	"Payment details"
//	@Success		201		{object}	hostelsdk.Payment				"Stored payment"
//	@Failure		400		{object}	hostelsdk.APIError				"Invalid request body or validation failed"
//	@Failure		401		{object}	hostelsdk.APIError				"Missing bearer token"
//	@Failure		403		{object}	hostelsdk.APIError				"Invalid or expired token"
//	@Failure		404		{object}	hostelsdk.APIError				"Unknown resident"
//	@Failure		500		{object}	hostelsdk.APIError				"Internal error"
//	@Router			/api/payments [post].
func (h *PaymentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hostelsdk.CreatePaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	p, err := h.PaymentService.Create(
		r.Context(),
		strings.TrimSpace(req.ResidentID),
		req.Amount,
		req.DueDate,
		req.Status,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKPayment(p))
}

// HandleUpdateStatus transitions a payment's status. Marking a payment paid
// stamps its paid date (supplied or now).
//
//	@Summary		Update a payment's status
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Payment ID"
//	@Param			request	body		hostelsdk.UpdatePaymentStatusRequest	true	"New status"
//	@Success		200		{object}	hostelsdk.Payment					"Updated payment"
//	@Failure		400		{object}	hostelsdk.APIError					"Invalid request body or status"
//	@Failure		401		{object}	hostelsdk.APIError					"Missing bearer token"
//	@Failure		403		{object}	hostelsdk.APIError					"Invalid or expired token"
//	@Failure		404		{object}	hostelsdk.APIError					"Unknown payment"
//	@Failure		500		{object}	hostelsdk.APIError					"Internal error"
//	@Router			/api/payments/{id}/status [put].
func (h *PaymentsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req hostelsdk.UpdatePaymentStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	p, err := h.PaymentService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status, req.PaidDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKPayment(p))
}
