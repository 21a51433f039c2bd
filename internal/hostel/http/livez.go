package http

import (
	"net/http"
	"time"

	"github.com/sharmapg/hostel/pkg/hostelsdk"
	"github.com/sharmapg/hostel/pkg/httpx"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns 200 with uptime and version whenever the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	hostelsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, hostelsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
