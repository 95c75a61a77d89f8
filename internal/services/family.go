// Package services contains the business logic between HTTP handlers
// and the store. Services stay thin: they resolve family context,
// enforce cross-record rules, and delegate persistence.
package services

import (
	"context"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

type FamilyService struct {
	store store.Store
}

func NewFamilyService(s store.Store) *FamilyService {
	return &FamilyService{store: s}
}

func (s *FamilyService) CreateFamily(ctx context.Context, f *model.Family) (*model.Family, error) {
	return s.store.Families().Create(ctx, f)
}
func (s *FamilyService) GetFamilyByActor(ctx context.Context, actorID string) (*model.Family, error) {
	return s.store.Families().GetByActor(ctx, actorID)
}
func (s *FamilyService) ListMembers(ctx context.Context, actorID string) ([]*model.FamilyMember, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.store.Families().Members(ctx, family.FamilyID)
}
func (s *FamilyService) AddMember(ctx context.Context, actorID string, m *model.FamilyMember) (*model.FamilyMember, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	m.FamilyID = family.FamilyID
	return s.store.Families().AddMember(ctx, m)
}
