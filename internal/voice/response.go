package voice

import "fmt"

// Action tags the outcome of an executed command for response phrasing.
type Action string

const (
	ActionEventCreated   Action = "event_created"
	ActionTaskCreated    Action = "task_created"
	ActionTaskCompleted  Action = "task_completed"
	ActionListItemAdded  Action = "list_item_added"
	ActionEventRetrieved Action = "event_retrieved"
	ActionTaskRetrieved  Action = "task_retrieved"
	ActionMealRetrieved  Action = "meal_retrieved"
	ActionGeneralQuery   Action = "general_query"
	ActionError          Action = "error"
)

// Respond turns an action tag plus detail into the sentence spoken or
// shown to the user. Unknown actions return detail unchanged so callers
// can pass through already-formed text.
func Respond(action Action, detail string) string {
	switch action {
	case ActionEventCreated:
		return fmt.Sprintf("I've added %s to your calendar.", detail)
	case ActionTaskCreated:
		return fmt.Sprintf("I've created a task: %s.", detail)
	case ActionTaskCompleted:
		return fmt.Sprintf("Great! I've marked %s as done.", detail)
	case ActionListItemAdded:
		return fmt.Sprintf("I've added %s to your list.", detail)
	case ActionEventRetrieved:
		return fmt.Sprintf("Here are your upcoming events: %s.", detail)
	case ActionTaskRetrieved:
		return fmt.Sprintf("You have these pending tasks: %s.", detail)
	case ActionMealRetrieved:
		return fmt.Sprintf("Your meal plan includes: %s.", detail)
	case ActionError:
		return fmt.Sprintf("Sorry, I couldn't %s. Please try again.", detail)
	default:
		return detail
	}
}
