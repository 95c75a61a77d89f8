package model

import "time"

// Family is the scoping unit for all domain records. Every actor belongs
// to exactly one family at a time.
type Family struct {
	FamilyID     string    `json:"familyId"`
	Name         string    `json:"name"`
	OwnerID      string    `json:"ownerId"`
	CreationTime time.Time `json:"creationTime"`
}

// FamilyMember links an actor to a family with a household role.
type FamilyMember struct {
	FamilyID string    `json:"familyId"`
	ActorID  string    `json:"actorId"`
	Role     string    `json:"role"`
	JoinTime time.Time `json:"joinTime"`
}

// CalendarEvent is a scheduled event on the family calendar.
type CalendarEvent struct {
	EventID      string    `json:"eventId"`
	FamilyID     string    `json:"familyId"`
	CreatedBy    string    `json:"createdBy"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Location     *string   `json:"location,omitempty"`
	Attendees    []string  `json:"attendees,omitempty"`
	CreationTime time.Time `json:"creationTime"`
}

// Task is a family chore or to-do.
type Task struct {
	TaskID       string     `json:"taskId"`
	FamilyID     string     `json:"familyId"`
	CreatedBy    string     `json:"createdBy"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	AssignedTo   *string    `json:"assignedTo,omitempty"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreationTime time.Time  `json:"creationTime"`
}

// List is a named family list (grocery, todo, shopping, custom).
type List struct {
	ListID       string    `json:"listId"`
	FamilyID     string    `json:"familyId"`
	CreatedBy    string    `json:"createdBy"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	CreationTime time.Time `json:"creationTime"`
}

// ListItem is a single entry on a list.
type ListItem struct {
	ItemID       string    `json:"itemId"`
	ListID       string    `json:"listId"`
	CreatedBy    string    `json:"createdBy"`
	Text         string    `json:"text"`
	Quantity     *string   `json:"quantity,omitempty"`
	Done         bool      `json:"done"`
	CreationTime time.Time `json:"creationTime"`
}

// MealPlan is one planned meal for a family on a given date.
type MealPlan struct {
	MealID       string    `json:"mealId"`
	FamilyID     string    `json:"familyId"`
	CreatedBy    string    `json:"createdBy"`
	Date         time.Time `json:"date"`
	MealType     string    `json:"mealType"`
	Meal         string    `json:"meal"`
	Recipe       *string   `json:"recipe,omitempty"`
	Ingredients  []string  `json:"ingredients,omitempty"`
	CreationTime time.Time `json:"creationTime"`
}

// ChatMessage is one half of a conversation turn with the assistant.
// Rows are append-only and ordered by creation time.
type ChatMessage struct {
	MessageID    string    `json:"messageId"`
	FamilyID     string    `json:"familyId"`
	ActorID      string    `json:"actorId"`
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	CreationTime time.Time `json:"creationTime"`
}

// Notification is a per-actor message produced by the system
// (reminders, summaries, suggestions).
type Notification struct {
	NotificationID string    `json:"notificationId"`
	FamilyID       string    `json:"familyId"`
	ActorID        string    `json:"actorId"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Content        *string   `json:"content,omitempty"`
	Read           bool      `json:"read"`
	CreationTime   time.Time `json:"creationTime"`
}

// CommandResult is the outcome of one voice command. It is transient:
// created per request, returned to the caller, never persisted.
type CommandResult struct {
	Success  bool   `json:"success"`
	Action   string `json:"action"`
	Response string `json:"response"`
	Data     any    `json:"data,omitempty"`
}
