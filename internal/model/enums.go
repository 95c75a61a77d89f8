package model

// Closed value sets shared by validation and services. Stored as plain
// strings so the wire format matches the client exactly.
const (
	RoleParent    = "parent"
	RoleChild     = "child"
	RoleCaregiver = "caregiver"

	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"

	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"

	ListTypeGrocery  = "grocery"
	ListTypeTodo     = "todo"
	ListTypeShopping = "shopping"
	ListTypeCustom   = "custom"

	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"

	NotificationEvent      = "event"
	NotificationTask       = "task"
	NotificationReminder   = "reminder"
	NotificationSummary    = "summary"
	NotificationSuggestion = "suggestion"
)
