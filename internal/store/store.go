package store

import (
	"context"
	"time"

	"github.com/homebrain/homebrain/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Families() Families
	Events() Events
	Tasks() Tasks
	Lists() Lists
	Meals() Meals
	Chat() Chat
	Notifications() Notifications

	// HealthPing reports whether the backing store is reachable.
	HealthPing(ctx context.Context) error
}

type Families interface {
	Create(ctx context.Context, f *model.Family) (*model.Family, error)
	// GetByActor resolves the single family an actor belongs to.
	// Returns model.ErrNotFound when the actor has no family.
	GetByActor(ctx context.Context, actorID string) (*model.Family, error)
	List(ctx context.Context) ([]*model.Family, error)
	Members(ctx context.Context, familyID string) ([]*model.FamilyMember, error)
	AddMember(ctx context.Context, m *model.FamilyMember) (*model.FamilyMember, error)
}

type Events interface {
	Create(ctx context.Context, e *model.CalendarEvent) (*model.CalendarEvent, error)
	// ListRange returns events whose start time falls within [from, to].
	ListRange(ctx context.Context, familyID string, from, to time.Time) ([]*model.CalendarEvent, error)
}

type Tasks interface {
	Create(ctx context.Context, t *model.Task) (*model.Task, error)
	// List returns the family's tasks, filtered by status when non-empty.
	List(ctx context.Context, familyID, status string) ([]*model.Task, error)
	UpdateStatus(ctx context.Context, taskID, status string, completedAt *time.Time) (*model.Task, error)
}

type Lists interface {
	Create(ctx context.Context, l *model.List) (*model.List, error)
	ListByFamily(ctx context.Context, familyID string) ([]*model.List, error)
	AddItem(ctx context.Context, it *model.ListItem) (*model.ListItem, error)
	Items(ctx context.Context, listID string) ([]*model.ListItem, error)
}

type Meals interface {
	Create(ctx context.Context, m *model.MealPlan) (*model.MealPlan, error)
	// ListByDate returns the plans for the calendar day containing day.
	ListByDate(ctx context.Context, familyID string, day time.Time) ([]*model.MealPlan, error)
}

type Chat interface {
	Append(ctx context.Context, m *model.ChatMessage) (*model.ChatMessage, error)
	// Recent returns up to limit messages, newest first.
	Recent(ctx context.Context, familyID string, limit int) ([]*model.ChatMessage, error)
}

type Notifications interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	ListByActor(ctx context.Context, actorID string, unreadOnly bool) ([]*model.Notification, error)
}
