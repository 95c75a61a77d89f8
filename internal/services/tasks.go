package services

import (
	"context"
	"time"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

type TaskService struct {
	store store.Store
	now   func() time.Time
}

func NewTaskService(s store.Store) *TaskService {
	return &TaskService{store: s, now: time.Now}
}

func (s *TaskService) CreateTask(ctx context.Context, actorID string, t *model.Task) (*model.Task, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	t.FamilyID = family.FamilyID
	t.CreatedBy = actorID
	return s.store.Tasks().Create(ctx, t)
}

func (s *TaskService) ListTasks(ctx context.Context, actorID, status string) ([]*model.Task, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.store.Tasks().List(ctx, family.FamilyID, status)
}

// UpdateTaskStatus moves a task to the given status. Completion stamps
// the task; leaving the completed status clears the stamp.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, taskID, status string) (*model.Task, error) {
	var completedAt *time.Time
	if status == model.TaskStatusCompleted {
		now := s.now().UTC()
		completedAt = &now
	}
	return s.store.Tasks().UpdateStatus(ctx, taskID, status, completedAt)
}
