package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/homebrain/homebrain/internal/llm"
	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

// --- Fakes ---

var errBoom = errors.New("boom")

// fakeStore is an in-memory store.Store. Failure flags let tests force
// errors on specific groups.
type fakeStore struct {
	family  *model.Family
	members []*model.FamilyMember
	events  []*model.CalendarEvent
	tasks   []*model.Task
	lists   []*model.List
	items   []*model.ListItem
	meals   []*model.MealPlan
	chat    []*model.ChatMessage
	notes   []*model.Notification

	failEvents bool
	failTasks  bool
	failChat   bool
}

func (f *fakeStore) Families() store.Families           { return &fakeFamilies{f} }
func (f *fakeStore) Events() store.Events               { return &fakeEvents{f} }
func (f *fakeStore) Tasks() store.Tasks                 { return &fakeTasks{f} }
func (f *fakeStore) Lists() store.Lists                 { return &fakeLists{f} }
func (f *fakeStore) Meals() store.Meals                 { return &fakeMeals{f} }
func (f *fakeStore) Chat() store.Chat                   { return &fakeChat{f} }
func (f *fakeStore) Notifications() store.Notifications { return &fakeNotifications{f} }
func (f *fakeStore) HealthPing(context.Context) error   { return nil }

type fakeFamilies struct{ p *fakeStore }

func (v *fakeFamilies) Create(_ context.Context, fam *model.Family) (*model.Family, error) {
	v.p.family = fam
	return fam, nil
}
func (v *fakeFamilies) GetByActor(_ context.Context, actorID string) (*model.Family, error) {
	if v.p.family == nil {
		return nil, model.ErrNotFound
	}
	return v.p.family, nil
}
func (v *fakeFamilies) List(context.Context) ([]*model.Family, error) {
	if v.p.family == nil {
		return nil, nil
	}
	return []*model.Family{v.p.family}, nil
}
func (v *fakeFamilies) Members(context.Context, string) ([]*model.FamilyMember, error) {
	return v.p.members, nil
}
func (v *fakeFamilies) AddMember(_ context.Context, m *model.FamilyMember) (*model.FamilyMember, error) {
	v.p.members = append(v.p.members, m)
	return m, nil
}

type fakeEvents struct{ p *fakeStore }

func (e *fakeEvents) Create(_ context.Context, ev *model.CalendarEvent) (*model.CalendarEvent, error) {
	if e.p.failEvents {
		return nil, errBoom
	}
	e.p.events = append(e.p.events, ev)
	return ev, nil
}
func (e *fakeEvents) ListRange(_ context.Context, _ string, from, to time.Time) ([]*model.CalendarEvent, error) {
	var out []*model.CalendarEvent
	for _, ev := range e.p.events {
		if !ev.StartTime.Before(from) && !ev.StartTime.After(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeTasks struct{ p *fakeStore }

func (t *fakeTasks) Create(_ context.Context, task *model.Task) (*model.Task, error) {
	if t.p.failTasks {
		return nil, errBoom
	}
	t.p.tasks = append(t.p.tasks, task)
	return task, nil
}
func (t *fakeTasks) List(_ context.Context, _ string, status string) ([]*model.Task, error) {
	if status == "" {
		return t.p.tasks, nil
	}
	var out []*model.Task
	for _, task := range t.p.tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out, nil
}
func (t *fakeTasks) UpdateStatus(_ context.Context, taskID, status string, completedAt *time.Time) (*model.Task, error) {
	for _, task := range t.p.tasks {
		if task.TaskID == taskID {
			task.Status = status
			task.CompletedAt = completedAt
			return task, nil
		}
	}
	return nil, model.ErrNotFound
}

type fakeLists struct{ p *fakeStore }

func (l *fakeLists) Create(_ context.Context, list *model.List) (*model.List, error) {
	l.p.lists = append(l.p.lists, list)
	return list, nil
}
func (l *fakeLists) ListByFamily(context.Context, string) ([]*model.List, error) {
	return l.p.lists, nil
}
func (l *fakeLists) AddItem(_ context.Context, it *model.ListItem) (*model.ListItem, error) {
	l.p.items = append(l.p.items, it)
	return it, nil
}
func (l *fakeLists) Items(context.Context, string) ([]*model.ListItem, error) {
	return l.p.items, nil
}

type fakeMeals struct{ p *fakeStore }

func (m *fakeMeals) Create(_ context.Context, plan *model.MealPlan) (*model.MealPlan, error) {
	m.p.meals = append(m.p.meals, plan)
	return plan, nil
}
func (m *fakeMeals) ListByDate(context.Context, string, time.Time) ([]*model.MealPlan, error) {
	return m.p.meals, nil
}

type fakeChat struct{ p *fakeStore }

func (c *fakeChat) Append(_ context.Context, msg *model.ChatMessage) (*model.ChatMessage, error) {
	if c.p.failChat {
		return nil, errBoom
	}
	msg.MessageID = fmt.Sprintf("m%d", len(c.p.chat)+1)
	msg.CreationTime = time.Date(2026, 1, 1, 12, 0, len(c.p.chat), 0, time.UTC)
	c.p.chat = append(c.p.chat, msg)
	return msg, nil
}

// Recent returns newest first, like the real drivers.
func (c *fakeChat) Recent(_ context.Context, _ string, limit int) ([]*model.ChatMessage, error) {
	var out []*model.ChatMessage
	for i := len(c.p.chat) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, c.p.chat[i])
	}
	return out, nil
}

type fakeNotifications struct{ p *fakeStore }

func (n *fakeNotifications) Create(_ context.Context, note *model.Notification) (*model.Notification, error) {
	n.p.notes = append(n.p.notes, note)
	return note, nil
}
func (n *fakeNotifications) ListByActor(_ context.Context, actorID string, unreadOnly bool) ([]*model.Notification, error) {
	var out []*model.Notification
	for _, note := range n.p.notes {
		if note.ActorID == actorID && (!unreadOnly || !note.Read) {
			out = append(out, note)
		}
	}
	return out, nil
}

// fakeProvider records each prompt it receives and answers with a fixed
// reply or error.
type fakeProvider struct {
	reply   string
	err     error
	prompts [][]llm.Message
}

func (f *fakeProvider) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.prompts = append(f.prompts, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newFamilyStore() *fakeStore {
	return &fakeStore{
		family: &model.Family{FamilyID: "f1", Name: "Nguyen", OwnerID: "a1"},
		members: []*model.FamilyMember{
			{FamilyID: "f1", ActorID: "a1", Role: model.RoleParent},
			{FamilyID: "f1", ActorID: "a2", Role: model.RoleChild},
		},
	}
}
