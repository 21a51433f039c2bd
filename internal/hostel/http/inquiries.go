package http

import (
	"net/http"
	"strings"

	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/httpx"
)

type InquiriesHandler struct {
	InquiryService *service.InquiryService
}

// HandleCreate accepts a public contact-form submission.
//
//	@Summary		Submit an inquiry
//	@Description	Public endpoint for prospective residents. No authentication.
//	@Tags			Inquiries
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hostelsdk.CreateInquiryRequest	true	"Inquiry details"
//	@Success		201		{object}	hostelsdk.Inquiry				"Stored inquiry"
//	@Failure		400		{object}	hostelsdk.APIError				"Invalid request body or validation failed"
//	@Failure		500		{object}	hostelsdk.APIError				"Internal error"
//	@Router			/api/inquiries [post].
func (h *InquiriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hostelsdk.CreateInquiryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	inq, err := h.InquiryService.Create(
		r.Context(),
		strings.TrimSpace(req.StudentName),
		strings.TrimSpace(req.College),
		strings.TrimSpace(req.RoomType),
		strings.TrimSpace(req.StayDuration),
		strings.TrimSpace(req.Phone),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKInquiry(inq))
}

// HandleList returns every inquiry, newest first.
//
//	@Summary		List inquiries
//	@Tags			Inquiries
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		hostelsdk.Inquiry
//	@Failure		401	{object}	hostelsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	hostelsdk.APIError	"Invalid or expired token"
//	@Failure		500	{object}	hostelsdk.APIError	"Internal error"
//	@Router			/api/inquiries [get].
func (h *InquiriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.InquiryService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKInquiries(list))
}

// HandleMarkHandled flags an inquiry as followed-up. Idempotent: re-marking
// an already-handled inquiry is still a 200.
//
//	@Summary		Mark an inquiry handled
//	@Tags			Inquiries
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Inquiry ID"
//	@Success		200	{object}	hostelsdk.Inquiry	"Updated inquiry"
//	@Failure		401	{object}	hostelsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	hostelsdk.APIError	"Invalid or expired token"
//	@Failure		404	{object}	hostelsdk.APIError	"Unknown inquiry"
//	@Failure		500	{object}	hostelsdk.APIError	"Internal error"
//	@Router			/api/inquiries/{id}/handled [put].
func (h *InquiriesHandler) HandleMarkHandled(w http.ResponseWriter, r *http.Request) {
	inq, err := h.InquiryService.MarkHandled(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKInquiry(inq))
}
