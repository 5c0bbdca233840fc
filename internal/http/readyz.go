package http

import (
	"net/http"
	"time"

	"github.com/murmurapp/murmur/internal/store"
	"github.com/murmurapp/murmur/pkg/httpx"
	"github.com/murmurapp/murmur/pkg/sdk"
	"github.com/murmurapp/murmur/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe Endpoint
//	@Description	Reports whether the service can take traffic. Checks database
//	@Description	connectivity and returns 503 when it is unreachable.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	sdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	sdk.HealthResponse	"status, uptime, version, checks"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := slogx.FromContext(ctx)

		status := http.StatusOK
		checks := sdk.HealthChecks{Database: "ok"}

		if err := st.Ping(ctx); err != nil {
			log.Warn("readiness database check failed", "err", err)
			status = http.StatusServiceUnavailable
			checks.Database = "unreachable"
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		httpx.WriteJSON(w, status, sdk.HealthResponse{
			Status:  overall,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  &checks,
		})
	})
}
