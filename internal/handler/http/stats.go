package http

import (
	"log/slog"
	"net/http"

	"github.com/TVAexe/ar-fe-admin/pkg/httputil"

	"github.com/TVAexe/ar-fe-admin/internal/service"
)

// StatsHandler handles HTTP requests for the dashboard statistics.
type StatsHandler struct {
	service *service.StatsService
	logger  *slog.Logger
}

// NewStatsHandler creates a new stats HTTP handler.
func NewStatsHandler(svc *service.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service: svc,
		logger:  logger,
	}
}

// Dashboard handles GET /api/v1/admin/stats/dashboard.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusOK, "dashboard stats fetched", stats)
}
