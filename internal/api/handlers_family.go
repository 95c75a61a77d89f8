// Package api is the HTTP transport layer. Handlers stay thin: decode,
// validate, call the service, map errors, encode.
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

type FamilyHandler struct {
	svc *services.FamilyService
	log zerolog.Logger
}

func NewFamilyHandler(svc *services.FamilyService, log zerolog.Logger) *FamilyHandler {
	return &FamilyHandler{svc: svc, log: log}
}

// CreateFamily POST /api/families
func (h *FamilyHandler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		OwnerID string `json:"ownerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("name", req.Name); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.NonEmpty("ownerId", req.OwnerID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateFamily(r.Context(), &model.Family{Name: req.Name, OwnerID: req.OwnerID})
	if err != nil {
		h.log.Error().Err(err).Msg("create family failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetFamily GET /api/actors/{actorId}/family
func (h *FamilyHandler) GetFamily(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	family, err := h.svc.GetFamilyByActor(r.Context(), actorID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, family)
}

// ListMembers GET /api/actors/{actorId}/family/members
func (h *FamilyHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	members, err := h.svc.ListMembers(r.Context(), actorID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"members": members, "count": len(members)})
}

// AddMember POST /api/actors/{actorId}/family/members
func (h *FamilyHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		ActorID string `json:"actorId"`
		Role    string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("actorId", req.ActorID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Role(req.Role); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.AddMember(r.Context(), actorID, &model.FamilyMember{ActorID: req.ActorID, Role: req.Role})
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("add member failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}
