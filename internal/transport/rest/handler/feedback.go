package handler

import (
	"net/http"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

// FeedbackHandler handles feedback endpoints
type FeedbackHandler struct {
	feedbackSvc *service.FeedbackService
}

func NewFeedbackHandler(feedbackSvc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// Submit handles POST /v1/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	fb, err := h.feedbackSvc.Submit(r.Context(), actor(r), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

// List handles GET /v1/feedback?limit=
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedbackSvc.List(r.Context(), actor(r), queryInt(r, "limit", 100))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Summary handles GET /v1/feedback/summary
func (h *FeedbackHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.feedbackSvc.Summary(r.Context(), actor(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
