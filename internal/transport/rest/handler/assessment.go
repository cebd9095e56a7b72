package handler

import (
	"net/http"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

// AssessmentHandler handles PHQ-9/GAD-7 check-in endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.AssessmentResponse
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.assessmentSvc.Submit(r.Context(), actor(r), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Latest handles GET /v1/assessments/latest?userId=
func (h *AssessmentHandler) Latest(w http.ResponseWriter, r *http.Request) {
	claims := actor(r)
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = claims.UserID
	}

	latest, err := h.assessmentSvc.LatestFor(r.Context(), claims, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, latest)
}

// History handles GET /v1/assessments?userId=&limit=
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	claims := actor(r)
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = claims.UserID
	}

	list, err := h.assessmentSvc.History(r.Context(), claims, userID, queryInt(r, "limit", 0))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// RiskBoard handles GET /v1/assessments/risk?college=&limit=
func (h *AssessmentHandler) RiskBoard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.assessmentSvc.RiskBoard(r.Context(), actor(r), r.URL.Query().Get("college"), queryInt(r, "limit", 0))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
