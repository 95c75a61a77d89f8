// Package voice holds the pure command-interpretation core: the intent
// classifier and the response generator. Nothing in this package does I/O.
package voice

import "strings"

// Kind is the classified purpose of a natural-language command.
type Kind string

const (
	KindCreateEvent  Kind = "create_event"
	KindCompleteTask Kind = "complete_task"
	KindCreateTask   Kind = "create_task"
	KindAddListItem  Kind = "add_list_item"
	KindQueryEvents  Kind = "query_events"
	KindQueryTasks   Kind = "query_tasks"
	KindQueryMeals   Kind = "query_meals"
	KindGeneralQuery Kind = "general_query"
)

// Intent is the classifier's output: a kind from the closed set above
// plus the extracted parameters. It is never persisted.
type Intent struct {
	Kind   Kind
	Params map[string]string
}

// Classify maps free-form text to exactly one intent. Rules are checked
// in a fixed specificity-first order; the first match wins and anything
// unmatched degrades to general_query. The rule order is part of the
// contract: reordering changes which intent wins for mixed wording.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	params := map[string]string{"text": text}

	contains := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("add") && contains("appointment", "event", "meeting"):
		return Intent{Kind: KindCreateEvent, Params: params}
	case contains("mark") && contains("done", "complete", "finished"):
		return Intent{Kind: KindCompleteTask, Params: params}
	case contains("add") && contains("task"):
		return Intent{Kind: KindCreateTask, Params: params}
	case contains("add") && contains("list", "grocery"):
		return Intent{Kind: KindAddListItem, Params: params}
	case contains("what", "show", "tell"):
		switch {
		case contains("schedule", "event"):
			return Intent{Kind: KindQueryEvents, Params: params}
		case contains("task", "chore"):
			return Intent{Kind: KindQueryTasks, Params: params}
		case contains("meal", "dinner", "lunch"):
			return Intent{Kind: KindQueryMeals, Params: params}
		}
	}
	return Intent{Kind: KindGeneralQuery, Params: params}
}
