package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/connect/internal/connect/store"
	"github.com/aussiebroadwan/connect/pkg/connectsdk"
	"github.com/aussiebroadwan/connect/pkg/httpx"
	"github.com/aussiebroadwan/connect/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and the state of the database
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	connectsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	connectsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &connectsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Warn("readiness: database unreachable", "err", err)
			checks.Database = "error"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, connectsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
