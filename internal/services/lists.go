package services

import (
	"context"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

type ListService struct {
	store store.Store
}

func NewListService(s store.Store) *ListService {
	return &ListService{store: s}
}

func (s *ListService) CreateList(ctx context.Context, actorID string, l *model.List) (*model.List, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	l.FamilyID = family.FamilyID
	l.CreatedBy = actorID
	return s.store.Lists().Create(ctx, l)
}

func (s *ListService) ListLists(ctx context.Context, actorID string) ([]*model.List, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.store.Lists().ListByFamily(ctx, family.FamilyID)
}

func (s *ListService) AddItem(ctx context.Context, actorID, listID string, it *model.ListItem) (*model.ListItem, error) {
	it.ListID = listID
	it.CreatedBy = actorID
	return s.store.Lists().AddItem(ctx, it)
}

func (s *ListService) ListItems(ctx context.Context, listID string) ([]*model.ListItem, error) {
	return s.store.Lists().Items(ctx, listID)
}
