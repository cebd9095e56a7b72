package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

// UserHandler handles profile and user administration endpoints
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me handles GET /v1/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := actor(r)
	user, err := h.userSvc.Get(r.Context(), claims, claims.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateMe handles PUT /v1/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.userSvc.UpdateProfile(r.Context(), actor(r), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// List handles GET /v1/users?role=&college=
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.UserFilter{
		Role:    model.Role(r.URL.Query().Get("role")),
		College: r.URL.Query().Get("college"),
	}
	users, err := h.userSvc.List(r.Context(), actor(r), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Get handles GET /v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.Get(r.Context(), actor(r), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Create handles POST /v1/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.userSvc.Create(r.Context(), actor(r), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// SetActive handles POST /v1/users/{id}/active
func (h *UserHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.userSvc.SetActive(r.Context(), actor(r), mux.Vars(r)["id"], req.Active)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// AssignCounsellor handles POST /v1/users/{id}/counsellor
func (h *UserHandler) AssignCounsellor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CounsellorID string `json:"counsellorId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.userSvc.AssignCounsellor(r.Context(), actor(r), mux.Vars(r)["id"], req.CounsellorID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
