package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/api/respond"
	"github.com/homebrain/homebrain/internal/api/validate"
	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/services"
)

type NotificationHandler struct {
	svc *services.NotificationService
	log zerolog.Logger
}

func NewNotificationHandler(svc *services.NotificationService, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: log}
}

// CreateNotification POST /api/actors/{actorId}/notifications
func (h *NotificationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Content *string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NotificationType(req.Type); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.NonEmpty("title", req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateNotification(r.Context(), actorID, &model.Notification{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("create notification failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListNotifications GET /api/actors/{actorId}/notifications?unread=true
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	unreadOnly := r.URL.Query().Get("unread") == "true"
	notes, err := h.svc.ListNotifications(r.Context(), actorID, unreadOnly)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"notifications": notes, "count": len(notes)})
}
