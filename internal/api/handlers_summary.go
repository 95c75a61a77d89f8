package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/api/respond"
	"github.com/homebrain/homebrain/internal/api/validate"
	"github.com/homebrain/homebrain/internal/services"
)

type SummaryHandler struct {
	svc *services.SummaryService
	log zerolog.Logger
}

func NewSummaryHandler(svc *services.SummaryService, log zerolog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: log}
}

// DailyBrief GET /api/actors/{actorId}/summary/daily
func (h *SummaryHandler) DailyBrief(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	brief, err := h.svc.DailyBrief(r.Context(), actorID)
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("daily brief failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, brief)
}

// WeeklyRecap GET /api/actors/{actorId}/summary/weekly
func (h *SummaryHandler) WeeklyRecap(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	recap, err := h.svc.WeeklyRecap(r.Context(), actorID)
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("weekly recap failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, recap)
}

// MoodSuggestions GET /api/actors/{actorId}/summary/mood?mood=calm
func (h *SummaryHandler) MoodSuggestions(w http.ResponseWriter, r *http.Request) {
	mood := r.URL.Query().Get("mood")
	if err := validate.Mood(mood); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	report, err := h.svc.MoodSuggestions(mood)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, report)
}
