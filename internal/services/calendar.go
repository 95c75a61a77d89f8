package services

import (
	"context"
	"time"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

type CalendarService struct {
	store store.Store
}

func NewCalendarService(s store.Store) *CalendarService {
	return &CalendarService{store: s}
}

func (s *CalendarService) CreateEvent(ctx context.Context, actorID string, e *model.CalendarEvent) (*model.CalendarEvent, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	e.FamilyID = family.FamilyID
	e.CreatedBy = actorID
	return s.store.Events().Create(ctx, e)
}

func (s *CalendarService) ListEvents(ctx context.Context, actorID string, from, to time.Time) ([]*model.CalendarEvent, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.store.Events().ListRange(ctx, family.FamilyID, from, to)
}
