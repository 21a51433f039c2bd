package http

import (
	"net/http"
	"strings"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/httpx"
)

type ResidentsHandler struct {
	ResidentService *service.ResidentService
	PaymentService  *service.PaymentService
}

// HandleList returns all active residents, newest first.
//
//	@Summary		List active residents
//	@Tags			Residents
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		hostelsdk.Resident
//	@Failure		401	{object}	hostelsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	hostelsdk.APIError	"Invalid or expired token"
//	@Failure		500	{object}	hostelsdk.APIError	"Internal error"
//	@Router			/api/residents [get].
func (h *ResidentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.ResidentService.ListActive(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKResidents(list))
}

// HandleCreate registers a new resident.
//
//	@Summary		Create a resident
//	@Tags			Residents
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		hostelsdk.CreateResidentRequest	true	"Resident details"
//	@Success		201		{object}	hostelsdk.Resident				"Stored resident"
//	@Failure		400		{object}	hostelsdk.APIError				"Invalid request body or validation failed"
//	@Failure		401		{object}	hostelsdk.APIError				"Missing bearer token"
//	@Failure		403		{object}	hostelsdk.APIError				"Invalid or expired token"
//	@Failure		500		{object}	hostelsdk.APIError				"Internal error"
//	@Router			/api/residents [post].
func (h *ResidentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req hostelsdk.CreateResidentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	res, err := h.ResidentService.Create(
		r.Context(),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Mobile),
		strings.TrimSpace(req.RoomNumber),
		strings.TrimSpace(req.College),
		req.JoiningDate,
		strings.TrimSpace(req.RoomType),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKResident(res))
}

// HandleUpdate applies a partial update to a resident.
//
//	@Summary		Update a resident
//	@Description	Partial update; omitted fields keep their current values.
//	@Tags			Residents
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Resident ID"
//	@Param			request	body		hostelsdk.UpdateResidentRequest	true	"Fields to update"
//	@Success		200		{object}	hostelsdk.Resident				"Updated resident"
//	@Failure		400		{object}	hostelsdk.APIError				"Invalid request body or validation failed"
//	@Failure		401		{object}	hostelsdk.APIError				"Missing bearer token"
//	@Failure		403		{object}	hostelsdk.APIError				"Invalid or expired token"
//	@Failure		404		{object}	hostelsdk.APIError				"Unknown resident"
//	@Failure		500		{object}	hostelsdk.APIError				"Internal error"
//	@Router			/api/residents/{id} [put].
func (h *ResidentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req hostelsdk.UpdateResidentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	upd := domain.ResidentUpdate{
		Name:        req.Name,
		Mobile:      req.Mobile,
		RoomNumber:  req.RoomNumber,
		College:     req.College,
		JoiningDate: req.JoiningDate,
		RoomType:    req.RoomType,
	}

	res, err := h.ResidentService.Update(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKResident(res))
}

// HandleDelete soft-deletes a resident.
//
//	@Summary		Delete a resident
//	@Description	Soft delete: the record and its payment history survive, the resident just
//	@Description	leaves the active roster.
//	@Tags			Residents
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string				true	"Resident ID"
//	@Success		200	{object}	map[string]bool		"success flag"
//	@Failure		401	{object}	hostelsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	hostelsdk.APIError	"Invalid or expired token"
//	@Failure		404	{object}	hostelsdk.APIError	"Unknown resident"
//	@Failure		500	{object}	hostelsdk.APIError	"Internal error"
//	@Router			/api/residents/{id} [delete].
func (h *ResidentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ResidentService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleListPayments returns one resident's payments, newest due first.
//
//	@Summary		List a resident's payments
//	@Tags			Residents
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Resident ID"
//	@Success		200	{array}		hostelsdk.Payment
//	@Failure		401	{object}	hostelsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	hostelsdk.APIError	"Invalid or expired token"
//	@Failure		404	{object}	hostelsdk.APIError	"Unknown resident"
//	@Failure		500	{object}	hostelsdk.APIError	"Internal error"
//	@Router			/api/residents/{id}/payments [get].
func (h *ResidentsHandler) HandleListPayments(w http.ResponseWriter, r *http.Request) {
	list, err := h.PaymentService.ListByResident(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKPayments(list))
}
