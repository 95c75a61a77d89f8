package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/api/respond"
	"github.com/homebrain/homebrain/internal/api/validate"
	"github.com/homebrain/homebrain/internal/services"
)

type ChatHandler struct {
	svc *services.ChatService
	log zerolog.Logger
}

func NewChatHandler(svc *services.ChatService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: log}
}

// Chat POST /api/actors/{actorId}/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("message", req.Message); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	reply, err := h.svc.Chat(r.Context(), actorID, req.Message)
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("chat turn failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":   reply.Content,
		"timestamp": reply.CreationTime,
	})
}

// History GET /api/actors/{actorId}/chat/history
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	messages, err := h.svc.History(r.Context(), actorID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": messages, "count": len(messages)})
}
