package controllers

import (
	"context"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  map[string]HealthCheck
}

func NewHealthController(logger *zap.Logger, version string, checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		Log:     logger,
		Version: version,
		Checks:  checks,
	}
}

type healthStatus struct {
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := healthStatus{Version: ctrl.Version, Dependencies: make(map[string]string, len(names))}
	code := constvars.StatusOK
	for _, name := range names {
		if err := ctrl.Checks[name](ctx); err != nil {
			ctrl.Log.Warn("HealthController.Check dependency unavailable",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String("dependency", name),
				zap.Error(err),
			)
			status.Dependencies[name] = "down"
			code = constvars.StatusServiceUnavailable
			continue
		}
		status.Dependencies[name] = "up"
	}

	message := constvars.HealthyMessage
	if code != constvars.StatusOK {
		message = constvars.UnhealthyMessage
	}
	utils.BuildSuccessResponse(w, code, message, status)
}
