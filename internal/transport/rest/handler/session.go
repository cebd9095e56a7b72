package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

// SessionHandler handles counselling session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Book handles POST /v1/sessions
func (h *SessionHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req model.BookSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.sessionSvc.Book(r.Context(), actor(r), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

// List handles GET /v1/sessions?from=&to= (RFC 3339, both optional)
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	for key, dst := range map[string]*time.Time{"from": &from, "to": &to} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+key+" time")
			return
		}
		*dst = t
	}

	sessions, err := h.sessionSvc.List(r.Context(), actor(r), from, to)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// Confirm handles POST /v1/sessions/{id}/confirm
func (h *SessionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Confirm(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Complete handles POST /v1/sessions/{id}/complete with an optional {"notes": ...} body
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.sessionSvc.Complete(r.Context(), actor(r), mux.Vars(r)["id"], req.Notes)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Cancel handles POST /v1/sessions/{id}/cancel
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Cancel(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
