package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

// ReportHandler handles case report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Create handles POST /v1/reports
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	report, err := h.reportSvc.Create(r.Context(), actor(r), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// List handles GET /v1/reports?college=&status=
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reports, err := h.reportSvc.List(r.Context(), actor(r), q.Get("college"), model.ReportStatus(q.Get("status")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// UpdateStatus handles PUT /v1/reports/{id}/status
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateReportStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	report, err := h.reportSvc.UpdateStatus(r.Context(), actor(r), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
