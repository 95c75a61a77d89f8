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

type MealHandler struct {
	svc *services.MealService
	log zerolog.Logger
}

func NewMealHandler(svc *services.MealService, log zerolog.Logger) *MealHandler {
	return &MealHandler{svc: svc, log: log}
}

// CreateMealPlan POST /api/actors/{actorId}/meals
func (h *MealHandler) CreateMealPlan(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		Date        time.Time `json:"date"`
		MealType    string    `json:"mealType"`
		Meal        string    `json:"meal"`
		Recipe      *string   `json:"recipe"`
		Ingredients []string  `json:"ingredients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.MealType(req.MealType); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.NonEmpty("meal", req.Meal); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if req.Date.IsZero() {
		respond.WriteBadRequest(w, "date is required")
		return
	}
	out, err := h.svc.CreateMealPlan(r.Context(), actorID, &model.MealPlan{
		Date:        req.Date,
		MealType:    req.MealType,
		Meal:        req.Meal,
		Recipe:      req.Recipe,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("create meal plan failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListMealPlans GET /api/actors/{actorId}/meals?date=2026-03-14
// Defaults to today when date is omitted.
func (h *MealHandler) ListMealPlans(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	day := time.Now().UTC()
	if v := r.URL.Query().Get("date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			respond.WriteBadRequest(w, "date must be YYYY-MM-DD")
			return
		}
		day = t
	}
	meals, err := h.svc.ListMealPlans(r.Context(), actorID, day)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"meals": meals, "count": len(meals)})
}
