package http

import (
	"net/http"

	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles admin login.
//
//	@Summary		Authenticate an admin user
//	@Description	Exchanges admin credentials for a signed bearer token valid for 24 hours.
//	@Description	The response does not reveal whether the username or the password was wrong.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hostelsdk.LoginRequest	true	"Admin credentials"
//	@Success		200		{object}	hostelsdk.LoginResponse	"Session token and user"
//	@Failure		400		{object}	hostelsdk.APIError		"Malformed request body"
//	@Failure		401		{object}	hostelsdk.APIError		"Invalid credentials"
//	@Failure		500		{object}	hostelsdk.APIError		"Internal error"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req hostelsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		hostelsdk.NewValidationError(errs).WriteError(w)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hostelsdk.LoginResponse{
		Token: token,
		User:  toSDKUser(user),
	})
}
