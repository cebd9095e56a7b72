package handler

import (
	"net/http"

	"mindcare/internal/service"
)

// DashboardHandler serves the role specific dashboard
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Get handles GET /v1/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dash, err := h.dashboardSvc.Dashboard(r.Context(), actor(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}
