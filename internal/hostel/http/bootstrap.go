package http

import (
	"net/http"
	"strings"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/httpx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles one-time provisioning of the first admin user.
//
//	@Summary		Bootstrap the service
//	@Description	Creates the first admin user and optionally seeds the room inventory. Guarded by a
//	@Description	pre-shared bootstrap token and only available while no users exist.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hostelsdk.BootstrapRequest	true	"Bootstrap configuration"
//	@Success		201		{object}	hostelsdk.BootstrapResponse	"Created admin user ID"
//	@Failure		400		{object}	hostelsdk.APIError			"Invalid request body or validation failed"
//	@Failure		403		{object}	hostelsdk.APIError			"Wrong bootstrap token"
//	@Failure		404		{object}	hostelsdk.APIError			"Bootstrap not enabled"
//	@Failure		409		{object}	hostelsdk.APIError			"Already provisioned"
//	@Failure		500		{object}	hostelsdk.APIError			"Internal error"
//	@Router			/api/auth/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.BootstrapService.Token == "" {
		(&hostelsdk.APIError{
			StatusCode: http.StatusNotFound,
			Code:       hostelsdk.ErrorCodeNotFound,
			Message:    "bootstrap is not enabled",
		}).WriteError(w)
		return
	}

	var req hostelsdk.BootstrapRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	rooms := make([]domain.RoomStatus, len(req.Rooms))
	for i, seed := range req.Rooms {
		rooms[i] = domain.RoomStatus{
			RoomType:      strings.TrimSpace(seed.RoomType),
			TotalRooms:    seed.TotalRooms,
			OccupiedRooms: seed.OccupiedRooms,
		}
	}

	adminUserID, err := h.BootstrapService.Bootstrap(
		r.Context(),
		req.Token,
		strings.TrimSpace(req.Username),
		req.Password,
		rooms,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, hostelsdk.BootstrapResponse{
		AdminUserID: adminUserID,
	})
}
