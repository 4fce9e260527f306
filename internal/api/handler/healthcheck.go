package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/ventas-api/internal/scheduler"
)

type HealthChecker interface {
	Check(ctx context.Context) scheduler.DatabaseStatus
}

type HealthcheckResponse struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version"`
	Database scheduler.DatabaseStatus `json:"database"`
}

// HealthcheckHandler responde 503 si la base de datos no contesta el ping.
func HealthcheckHandler(checker HealthChecker, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := checker.Check(r.Context())

		resp := HealthcheckResponse{
			Status:   "ok",
			Version:  version,
			Database: status,
		}

		code := http.StatusOK
		if !status.Healthy {
			resp.Status = "degradado"
			code = http.StatusServiceUnavailable
		}

		writeJSON(w, r, code, resp)
	})
}
