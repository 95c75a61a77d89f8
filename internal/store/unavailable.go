package store

import (
	"context"
	"time"

	"github.com/homebrain/homebrain/internal/model"
)

// Unavailable returns a Store for deployments without a configured
// database. Reads degrade to empty collections so the UI keeps working;
// writes fail explicitly with model.ErrUnavailable. This replaces the
// lazily-initialized nullable handle pattern with an injected value.
func Unavailable() Store { return unavailable{} }

type unavailable struct{}

func (unavailable) Families() Families           { return noFamilies{} }
func (unavailable) Events() Events               { return noEvents{} }
func (unavailable) Tasks() Tasks                 { return noTasks{} }
func (unavailable) Lists() Lists                 { return noLists{} }
func (unavailable) Meals() Meals                 { return noMeals{} }
func (unavailable) Chat() Chat                   { return noChat{} }
func (unavailable) Notifications() Notifications { return noNotifications{} }

func (unavailable) HealthPing(context.Context) error { return model.ErrUnavailable }

type noFamilies struct{}

func (noFamilies) Create(context.Context, *model.Family) (*model.Family, error) {
	return nil, model.ErrUnavailable
}
func (noFamilies) GetByActor(context.Context, string) (*model.Family, error) {
	return nil, model.ErrNotFound
}
func (noFamilies) List(context.Context) ([]*model.Family, error) {
	return []*model.Family{}, nil
}
func (noFamilies) Members(context.Context, string) ([]*model.FamilyMember, error) {
	return []*model.FamilyMember{}, nil
}
func (noFamilies) AddMember(context.Context, *model.FamilyMember) (*model.FamilyMember, error) {
	return nil, model.ErrUnavailable
}

type noEvents struct{}

func (noEvents) Create(context.Context, *model.CalendarEvent) (*model.CalendarEvent, error) {
	return nil, model.ErrUnavailable
}
func (noEvents) ListRange(context.Context, string, time.Time, time.Time) ([]*model.CalendarEvent, error) {
	return []*model.CalendarEvent{}, nil
}

type noTasks struct{}

func (noTasks) Create(context.Context, *model.Task) (*model.Task, error) {
	return nil, model.ErrUnavailable
}
func (noTasks) List(context.Context, string, string) ([]*model.Task, error) {
	return []*model.Task{}, nil
}
func (noTasks) UpdateStatus(context.Context, string, string, *time.Time) (*model.Task, error) {
	return nil, model.ErrUnavailable
}

type noLists struct{}

func (noLists) Create(context.Context, *model.List) (*model.List, error) {
	return nil, model.ErrUnavailable
}
func (noLists) ListByFamily(context.Context, string) ([]*model.List, error) {
	return []*model.List{}, nil
}
func (noLists) AddItem(context.Context, *model.ListItem) (*model.ListItem, error) {
	return nil, model.ErrUnavailable
}
func (noLists) Items(context.Context, string) ([]*model.ListItem, error) {
	return []*model.ListItem{}, nil
}

type noMeals struct{}

func (noMeals) Create(context.Context, *model.MealPlan) (*model.MealPlan, error) {
	return nil, model.ErrUnavailable
}
func (noMeals) ListByDate(context.Context, string, time.Time) ([]*model.MealPlan, error) {
	return []*model.MealPlan{}, nil
}

type noChat struct{}

func (noChat) Append(context.Context, *model.ChatMessage) (*model.ChatMessage, error) {
	return nil, model.ErrUnavailable
}
func (noChat) Recent(context.Context, string, int) ([]*model.ChatMessage, error) {
	return []*model.ChatMessage{}, nil
}

type noNotifications struct{}

func (noNotifications) Create(context.Context, *model.Notification) (*model.Notification, error) {
	return nil, model.ErrUnavailable
}
func (noNotifications) ListByActor(context.Context, string, bool) ([]*model.Notification, error) {
	return []*model.Notification{}, nil
}
