package http

import (
	"net/http"
	"strings"

	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/httpx"
)

type RoomStatusHandler struct {
	RoomStatusService *service.RoomStatusService
}

// HandleList returns the occupancy summary for every room type.
//
//	@Summary		List room occupancy
//	@Tags			RoomStatus
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		hostelsdk.RoomStatus
//	@Failure		401	{object}	hostelsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	hostelsdk.APIError	"Invalid or expired token"
//	@Failure		500	{object}	hostelsdk.APIError	"Internal error"
//	@Router			/api/room-status [get].
func (h *RoomStatusHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.RoomStatusService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKRoomStatuses(list))
}

// HandleUpsert creates or updates the occupancy row for a room type.
//
//	@Summary		Upsert room occupancy
//	@Description	Keyed by roomType; an existing row keeps its id and gets the new counts.
//	@Tags			RoomStatus
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		hostelsdk.UpsertRoomStatusRequest	true	"Occupancy counts"
//	@Success		200		{object}	hostelsdk.RoomStatus				"Stored row"
//	@Failure		400		{object}	hostelsdk.APIError					"Invalid request body or validation failed"
//	@Failure		401		{object}	hostelsdk.APIError					"Missing bearer token"
//	@Failure		403		{object}	hostelsdk.APIError					"Invalid or expired token"
//	@Failure		500		{object}	hostelsdk.APIError					"Internal error"
//	@Router			/api/room-status [put].
func (h *RoomStatusHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req hostelsdk.UpsertRoomStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	rs, err := h.RoomStatusService.Upsert(
		r.Context(),
		strings.TrimSpace(req.RoomType),
		req.TotalRooms,
		req.OccupiedRooms,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKRoomStatus(rs))
}
