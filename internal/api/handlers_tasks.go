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

type TaskHandler struct {
	svc *services.TaskService
	log zerolog.Logger
}

func NewTaskHandler(svc *services.TaskService, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: log}
}

// CreateTask POST /api/actors/{actorId}/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		Title       string     `json:"title"`
		Description *string    `json:"description"`
		AssignedTo  *string    `json:"assignedTo"`
		DueDate     *time.Time `json:"dueDate"`
		Priority    string     `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("title", req.Title); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if req.Priority != "" {
		if err := validate.TaskPriority(req.Priority); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	out, err := h.svc.CreateTask(r.Context(), actorID, &model.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	})
	if err != nil {
		h.log.Error().Err(err).Str("actor_id", actorID).Msg("create task failed")
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListTasks GET /api/actors/{actorId}/tasks?status=...
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	status := r.URL.Query().Get("status")
	if status != "" {
		if err := validate.TaskStatus(status); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	tasks, err := h.svc.ListTasks(r.Context(), actorID, status)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks, "count": len(tasks)})
}

// UpdateTask PATCH /api/actors/{actorId}/tasks/{taskId}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["taskId"]
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.TaskStatus(req.Status); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.UpdateTaskStatus(r.Context(), taskID, req.Status)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
