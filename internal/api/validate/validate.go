// Package validate holds request field validation shared by handlers.
package validate

import "fmt"

var roles = map[string]bool{"parent": true, "child": true, "caregiver": true}
var taskStatuses = map[string]bool{"pending": true, "in_progress": true, "completed": true}
var taskPriorities = map[string]bool{"low": true, "medium": true, "high": true}
var listTypes = map[string]bool{"grocery": true, "todo": true, "shopping": true, "custom": true}
var mealTypes = map[string]bool{"breakfast": true, "lunch": true, "dinner": true, "snack": true}
var moods = map[string]bool{"calm": true, "busy": true, "exciting": true, "relaxed": true}
var notificationTypes = map[string]bool{"event": true, "task": true, "reminder": true, "summary": true, "suggestion": true}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

func oneOf(field, v string, set map[string]bool) error {
	if !set[v] {
		return fmt.Errorf("invalid %s %q", field, v)
	}
	return nil
}

func Role(v string) error         { return oneOf("role", v, roles) }
func TaskStatus(v string) error   { return oneOf("status", v, taskStatuses) }
func TaskPriority(v string) error { return oneOf("priority", v, taskPriorities) }
func ListType(v string) error     { return oneOf("list type", v, listTypes) }
func MealType(v string) error     { return oneOf("meal type", v, mealTypes) }
func Mood(v string) error         { return oneOf("mood", v, moods) }
func NotificationType(v string) error {
	return oneOf("notification type", v, notificationTypes)
}
