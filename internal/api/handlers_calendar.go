package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/api/respond"
	"github.com/homebrain/homebrain/internal/api/validate"
	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/services"
)

type CalendarHandler struct {
	svc *services.CalendarService
	log zerolog.Logger
}

func NewCalendarHandler(svc *services.CalendarService, log zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{svc: svc, log: log}
}

// CreateEvent POST /api/actors/{actorId}/events
func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		Title       string    `json:"title"`
		Description *string   `json:"description"`
		StartTime   time.Time `json:"startTime"`
		EndTime     time.Time `json:"endTime"`
		Location    *string   `json:"location"`
		Attendees   []string  `json:"attendees"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("title", req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() || req.EndTime.Before(req.StartTime) {
		respond.WriteBadRequest(w, "startTime and endTime must form a valid window")
		return
	}
	out, err := h.svc.CreateEvent(r.Context(), actorID, &model.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Attendees:   req.Attendees,
	})
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("create event failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListEvents GET /api/actors/{actorId}/events?from=...&to=...
// Defaults to the next 7 days when the range is omitted.
func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	from, to, err := parseRange(r, time.Now().UTC())
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	events, err := h.svc.ListEvents(r.Context(), actorID, from, to)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"events": events, "count": len(events)})
}

func parseRange(r *http.Request, now time.Time) (time.Time, time.Time, error) {
	from := now
	to := now.AddDate(0, 0, 7)
	q := r.URL.Query()
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = t
	}
	return from, to, nil
}
