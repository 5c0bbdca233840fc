package http

import (
	"net/http"
	"time"

	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness Probe Endpoint
//	@Description	Reports whether the process is alive. Always returns 200 while
//	@Description	the server is running.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	sdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, sdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	})
}
