package services

import (
	"context"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

type NotificationService struct {
	store store.Store
}

func NewNotificationService(s store.Store) *NotificationService {
	return &NotificationService{store: s}
}

func (s *NotificationService) CreateNotification(ctx context.Context, actorID string, n *model.Notification) (*model.Notification, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	n.FamilyID = family.FamilyID
	n.ActorID = actorID
	return s.store.Notifications().Create(ctx, n)
}

func (s *NotificationService) ListNotifications(ctx context.Context, actorID string, unreadOnly bool) ([]*model.Notification, error) {
	return s.store.Notifications().ListByActor(ctx, actorID, unreadOnly)
}
