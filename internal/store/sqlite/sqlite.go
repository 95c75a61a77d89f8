package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

// New opens the database file at path and returns a SQLite-backed store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an existing connection (used by the factory and tests).
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Families() store.Families           { return &families{db: s.db} }
func (s *sqliteStore) Events() store.Events               { return &events{db: s.db} }
func (s *sqliteStore) Tasks() store.Tasks                 { return &tasks{db: s.db} }
func (s *sqliteStore) Lists() store.Lists                 { return &lists{db: s.db} }
func (s *sqliteStore) Meals() store.Meals                 { return &meals{db: s.db} }
func (s *sqliteStore) Chat() store.Chat                   { return &chat{db: s.db} }
func (s *sqliteStore) Notifications() store.Notifications { return &notifications{db: s.db} }

func (s *sqliteStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

func toJSON(v []string) *string {
	if len(v) == 0 {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(b)
	return &str
}

func fromJSON(s *string) []string {
	if s == nil || *s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*s), &out); err != nil {
		return nil
	}
	return out
}

// --- Families ---

type families struct{ db *sql.DB }

func (f *families) Create(ctx context.Context, m *model.Family) (*model.Family, error) {
	id := m.FamilyID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := f.db.ExecContext(ctx, `
        INSERT INTO families (family_id, name, owner_id, creation_time)
        VALUES (?,?,?,?)`,
		id, m.Name, m.OwnerID, now)
	if err != nil {
		return nil, err
	}
	// The owner joins their own family immediately.
	_, err = f.db.ExecContext(ctx, `
        INSERT INTO family_members (family_id, actor_id, role, join_time)
        VALUES (?,?,?,?)`,
		id, m.OwnerID, "parent", now)
	if err != nil {
		return nil, err
	}
	return &model.Family{FamilyID: id, Name: m.Name, OwnerID: m.OwnerID, CreationTime: now}, nil
}

func (f *families) GetByActor(ctx context.Context, actorID string) (*model.Family, error) {
	var out model.Family
	row := f.db.QueryRowContext(ctx, `
        SELECT f.family_id, f.name, f.owner_id, f.creation_time
        FROM families f
        JOIN family_members fm ON fm.family_id = f.family_id
        WHERE fm.actor_id = ?
        LIMIT 1`, actorID)
	if err := row.Scan(&out.FamilyID, &out.Name, &out.OwnerID, &out.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (f *families) List(ctx context.Context) ([]*model.Family, error) {
	rows, err := f.db.QueryContext(ctx, `
        SELECT family_id, name, owner_id, creation_time FROM families`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Family
	for rows.Next() {
		var fam model.Family
		if err := rows.Scan(&fam.FamilyID, &fam.Name, &fam.OwnerID, &fam.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &fam)
	}
	return out, rows.Err()
}

func (f *families) Members(ctx context.Context, familyID string) ([]*model.FamilyMember, error) {
	rows, err := f.db.QueryContext(ctx, `
        SELECT family_id, actor_id, role, join_time
        FROM family_members WHERE family_id = ?`, familyID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.FamilyMember
	for rows.Next() {
		var m model.FamilyMember
		if err := rows.Scan(&m.FamilyID, &m.ActorID, &m.Role, &m.JoinTime); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (f *families) AddMember(ctx context.Context, m *model.FamilyMember) (*model.FamilyMember, error) {
	now := time.Now().UTC()
	_, err := f.db.ExecContext(ctx, `
        INSERT INTO family_members (family_id, actor_id, role, join_time)
        VALUES (?,?,?,?)`,
		m.FamilyID, m.ActorID, m.Role, now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.JoinTime = now
	return &out, nil
}

// --- Events ---

type events struct{ db *sql.DB }

func (e *events) Create(ctx context.Context, ev *model.CalendarEvent) (*model.CalendarEvent, error) {
	id := ev.EventID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := e.db.ExecContext(ctx, `
        INSERT INTO calendar_events
            (event_id, family_id, created_by, title, description, start_time, end_time, location, attendees, creation_time)
        VALUES (?,?,?,?,?,?,?,?,?,?)`,
		id, ev.FamilyID, ev.CreatedBy, ev.Title, ev.Description,
		ev.StartTime.UTC(), ev.EndTime.UTC(), ev.Location, toJSON(ev.Attendees), now)
	if err != nil {
		return nil, err
	}
	out := *ev
	out.EventID = id
	out.CreationTime = now
	return &out, nil
}

func (e *events) ListRange(ctx context.Context, familyID string, from, to time.Time) ([]*model.CalendarEvent, error) {
	rows, err := e.db.QueryContext(ctx, `
        SELECT event_id, family_id, created_by, title, description, start_time, end_time, location, attendees, creation_time
        FROM calendar_events
        WHERE family_id = ? AND start_time >= ? AND start_time <= ?
        ORDER BY start_time`, familyID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.CalendarEvent
	for rows.Next() {
		var ev model.CalendarEvent
		var attendees *string
		if err := rows.Scan(&ev.EventID, &ev.FamilyID, &ev.CreatedBy, &ev.Title, &ev.Description,
			&ev.StartTime, &ev.EndTime, &ev.Location, &attendees, &ev.CreationTime); err != nil {
			return nil, err
		}
		ev.Attendees = fromJSON(attendees)
		out = append(out, &ev)
	}
	return out, rows.Err()
}

// --- Tasks ---

type tasks struct{ db *sql.DB }

func (t *tasks) Create(ctx context.Context, m *model.Task) (*model.Task, error) {
	id := m.TaskID
	if id == "" {
		id = uuid.New().String()
	}
	priority := m.Priority
	if priority == "" {
		priority = "medium"
	}
	status := m.Status
	if status == "" {
		status = "pending"
	}
	now := time.Now().UTC()
	_, err := t.db.ExecContext(ctx, `
        INSERT INTO tasks
            (task_id, family_id, created_by, title, description, assigned_to, due_date, priority, status, creation_time)
        VALUES (?,?,?,?,?,?,?,?,?,?)`,
		id, m.FamilyID, m.CreatedBy, m.Title, m.Description, m.AssignedTo, m.DueDate, priority, status, now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.TaskID = id
	out.Priority = priority
	out.Status = status
	out.CreationTime = now
	return &out, nil
}

func (t *tasks) List(ctx context.Context, familyID, status string) ([]*model.Task, error) {
	q := `
        SELECT task_id, family_id, created_by, title, description, assigned_to, due_date, priority, status, completed_at, creation_time
        FROM tasks WHERE family_id = ?`
	args := []any{familyID}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY creation_time`
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Task
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(&task.TaskID, &task.FamilyID, &task.CreatedBy, &task.Title, &task.Description,
			&task.AssignedTo, &task.DueDate, &task.Priority, &task.Status, &task.CompletedAt, &task.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &task)
	}
	return out, rows.Err()
}

func (t *tasks) UpdateStatus(ctx context.Context, taskID, status string, completedAt *time.Time) (*model.Task, error) {
	res, err := t.db.ExecContext(ctx, `
        UPDATE tasks SET status = ?, completed_at = ? WHERE task_id = ?`,
		status, completedAt, taskID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, model.ErrNotFound
	}
	var task model.Task
	row := t.db.QueryRowContext(ctx, `
        SELECT task_id, family_id, created_by, title, description, assigned_to, due_date, priority, status, completed_at, creation_time
        FROM tasks WHERE task_id = ?`, taskID)
	if err := row.Scan(&task.TaskID, &task.FamilyID, &task.CreatedBy, &task.Title, &task.Description,
		&task.AssignedTo, &task.DueDate, &task.Priority, &task.Status, &task.CompletedAt, &task.CreationTime); err != nil {
		return nil, err
	}
	return &task, nil
}

// --- Lists ---

type lists struct{ db *sql.DB }

func (l *lists) Create(ctx context.Context, m *model.List) (*model.List, error) {
	id := m.ListID
	if id == "" {
		id = uuid.New().String()
	}
	typ := m.Type
	if typ == "" {
		typ = "custom"
	}
	now := time.Now().UTC()
	_, err := l.db.ExecContext(ctx, `
        INSERT INTO lists (list_id, family_id, created_by, name, type, creation_time)
        VALUES (?,?,?,?,?,?)`,
		id, m.FamilyID, m.CreatedBy, m.Name, typ, now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.ListID = id
	out.Type = typ
	out.CreationTime = now
	return &out, nil
}

func (l *lists) ListByFamily(ctx context.Context, familyID string) ([]*model.List, error) {
	rows, err := l.db.QueryContext(ctx, `
        SELECT list_id, family_id, created_by, name, type, creation_time
        FROM lists WHERE family_id = ? ORDER BY creation_time`, familyID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.List
	for rows.Next() {
		var li model.List
		if err := rows.Scan(&li.ListID, &li.FamilyID, &li.CreatedBy, &li.Name, &li.Type, &li.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &li)
	}
	return out, rows.Err()
}

func (l *lists) AddItem(ctx context.Context, it *model.ListItem) (*model.ListItem, error) {
	id := it.ItemID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := l.db.ExecContext(ctx, `
        INSERT INTO list_items (item_id, list_id, created_by, text, quantity, done, creation_time)
        VALUES (?,?,?,?,?,?,?)`,
		id, it.ListID, it.CreatedBy, it.Text, it.Quantity, it.Done, now)
	if err != nil {
		return nil, err
	}
	out := *it
	out.ItemID = id
	out.CreationTime = now
	return &out, nil
}

func (l *lists) Items(ctx context.Context, listID string) ([]*model.ListItem, error) {
	rows, err := l.db.QueryContext(ctx, `
        SELECT item_id, list_id, created_by, text, quantity, done, creation_time
        FROM list_items WHERE list_id = ? ORDER BY creation_time`, listID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.ListItem
	for rows.Next() {
		var it model.ListItem
		if err := rows.Scan(&it.ItemID, &it.ListID, &it.CreatedBy, &it.Text, &it.Quantity, &it.Done, &it.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}

// --- Meals ---

type meals struct{ db *sql.DB }

func (m *meals) Create(ctx context.Context, p *model.MealPlan) (*model.MealPlan, error) {
	id := p.MealID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := m.db.ExecContext(ctx, `
        INSERT INTO meal_plans (meal_id, family_id, created_by, date, meal_type, meal, recipe, ingredients, creation_time)
        VALUES (?,?,?,?,?,?,?,?,?)`,
		id, p.FamilyID, p.CreatedBy, p.Date.UTC(), p.MealType, p.Meal, p.Recipe, toJSON(p.Ingredients), now)
	if err != nil {
		return nil, err
	}
	out := *p
	out.MealID = id
	out.CreationTime = now
	return &out, nil
}

func (m *meals) ListByDate(ctx context.Context, familyID string, day time.Time) ([]*model.MealPlan, error) {
	day = day.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	rows, err := m.db.QueryContext(ctx, `
        SELECT meal_id, family_id, created_by, date, meal_type, meal, recipe, ingredients, creation_time
        FROM meal_plans
        WHERE family_id = ? AND date >= ? AND date <= ?
        ORDER BY date`, familyID, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.MealPlan
	for rows.Next() {
		var p model.MealPlan
		var ingredients *string
		if err := rows.Scan(&p.MealID, &p.FamilyID, &p.CreatedBy, &p.Date, &p.MealType, &p.Meal,
			&p.Recipe, &ingredients, &p.CreationTime); err != nil {
			return nil, err
		}
		p.Ingredients = fromJSON(ingredients)
		out = append(out, &p)
	}
	return out, rows.Err()
}

// --- Chat ---

type chat struct{ db *sql.DB }

func (c *chat) Append(ctx context.Context, m *model.ChatMessage) (*model.ChatMessage, error) {
	id := m.MessageID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := c.db.ExecContext(ctx, `
        INSERT INTO chat_messages (message_id, family_id, actor_id, role, content, creation_time)
        VALUES (?,?,?,?,?,?)`,
		id, m.FamilyID, m.ActorID, m.Role, m.Content, now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.MessageID = id
	out.CreationTime = now
	return &out, nil
}

func (c *chat) Recent(ctx context.Context, familyID string, limit int) ([]*model.ChatMessage, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT message_id, family_id, actor_id, role, content, creation_time
        FROM chat_messages
        WHERE family_id = ?
        ORDER BY creation_time DESC, message_id DESC
        LIMIT ?`, familyID, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		if err := rows.Scan(&msg.MessageID, &msg.FamilyID, &msg.ActorID, &msg.Role, &msg.Content, &msg.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &msg)
	}
	return out, rows.Err()
}

// --- Notifications ---

type notifications struct{ db *sql.DB }

func (n *notifications) Create(ctx context.Context, m *model.Notification) (*model.Notification, error) {
	id := m.NotificationID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := n.db.ExecContext(ctx, `
        INSERT INTO notifications (notification_id, family_id, actor_id, type, title, content, is_read, creation_time)
        VALUES (?,?,?,?,?,?,?,?)`,
		id, m.FamilyID, m.ActorID, m.Type, m.Title, m.Content, m.Read, now)
	if err != nil {
		return nil, err
	}
	out := *m
	out.NotificationID = id
	out.CreationTime = now
	return &out, nil
}

func (n *notifications) ListByActor(ctx context.Context, actorID string, unreadOnly bool) ([]*model.Notification, error) {
	q := `
        SELECT notification_id, family_id, actor_id, type, title, content, is_read, creation_time
        FROM notifications WHERE actor_id = ?`
	args := []any{actorID}
	if unreadOnly {
		q += ` AND is_read = 0`
	}
	q += ` ORDER BY creation_time DESC`
	rows, err := n.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Notification
	for rows.Next() {
		var no model.Notification
		if err := rows.Scan(&no.NotificationID, &no.FamilyID, &no.ActorID, &no.Type, &no.Title, &no.Content, &no.Read, &no.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &no)
	}
	return out, rows.Err()
}
