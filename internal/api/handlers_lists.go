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

type ListHandler struct {
	svc *services.ListService
	log zerolog.Logger
}

func NewListHandler(svc *services.ListService, log zerolog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: log}
}

// CreateList POST /api/actors/{actorId}/lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("name", req.Name); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.ListType(req.Type); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateList(r.Context(), actorID, &model.List{Name: req.Name, Type: req.Type})
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("create list failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListLists GET /api/actors/{actorId}/lists
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	lists, err := h.svc.ListLists(r.Context(), actorID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"lists": lists, "count": len(lists)})
}

// AddItem POST /api/actors/{actorId}/lists/{listId}/items
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req struct {
		Text     string  `json:"text"`
		Quantity *string `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("text", req.Text); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.AddItem(r.Context(), vars["actorId"], vars["listId"], &model.ListItem{
		Text:     req.Text,
		Quantity: req.Quantity,
	})
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListItems GET /api/actors/{actorId}/lists/{listId}/items
func (h *ListHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	listID := mux.Vars(r)["listId"]
	items, err := h.svc.ListItems(r.Context(), listID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items, "count": len(items)})
}
