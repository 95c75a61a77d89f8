package voice

import "testing"

func TestRespond(t *testing.T) {
	cases := []struct {
		action Action
		detail string
		want   string
	}{
		{ActionEventCreated, "your appointment", "I've added your appointment to your calendar."},
		{ActionTaskCreated, "new task", "I've created a task: new task."},
		{ActionTaskCompleted, "homework", "Great! I've marked homework as done."},
		{ActionListItemAdded, "item to your list", "I've added item to your list to your list."},
		{ActionEventRetrieved, "upcoming events", "Here are your upcoming events: upcoming events."},
		{ActionTaskRetrieved, "pending tasks", "You have these pending tasks: pending tasks."},
		{ActionMealRetrieved, "today's meals", "Your meal plan includes: today's meals."},
		{ActionError, "process that command", "Sorry, I couldn't process that command. Please try again."},
	}
	for _, tc := range cases {
		if got := Respond(tc.action, tc.detail); got != tc.want {
			t.Errorf("Respond(%s, %q) = %q, want %q", tc.action, tc.detail, got, tc.want)
		}
	}
}

func TestRespondIdentityFallback(t *testing.T) {
	if got := Respond(Action("unknown_tag"), "foo"); got != "foo" {
		t.Fatalf("unknown action must return detail unchanged, got %q", got)
	}
}
