package services

import (
	"context"
	"time"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

type MealService struct {
	store store.Store
}

func NewMealService(s store.Store) *MealService {
	return &MealService{store: s}
}

func (s *MealService) CreateMealPlan(ctx context.Context, actorID string, m *model.MealPlan) (*model.MealPlan, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	m.FamilyID = family.FamilyID
	m.CreatedBy = actorID
	return s.store.Meals().Create(ctx, m)
}

func (s *MealService) ListMealPlans(ctx context.Context, actorID string, day time.Time) ([]*model.MealPlan, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.store.Meals().ListByDate(ctx, family.FamilyID, day)
}
