package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

// ChatHandler handles counselor bot and direct message endpoints
type ChatHandler struct {
	chatSvc *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// Bot handles POST /v1/chat/bot
func (h *ChatHandler) Bot(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reply, err := h.chatSvc.BotReply(r.Context(), actor(r), req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// Direct handles POST /v1/chat/direct/{userId}
func (h *ChatHandler) Direct(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := h.chatSvc.SendDirect(r.Context(), actor(r), mux.Vars(r)["userId"], req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// Messages handles GET /v1/chat/conversations/{id}/messages?limit=
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.chatSvc.History(r.Context(), actor(r), mux.Vars(r)["id"], queryInt(r, "limit", 0))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}
