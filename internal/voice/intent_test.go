package voice

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Kind
	}{
		{"event with appointment", "Add dentist appointment Thursday 3 PM", KindCreateEvent},
		{"event with meeting", "please add a team meeting tomorrow", KindCreateEvent},
		{"event uppercase", "ADD Dentist APPOINTMENT Thursday", KindCreateEvent},
		{"complete task", "Mark homework as done", KindCompleteTask},
		{"complete with finished", "mark the laundry finished", KindCompleteTask},
		{"complete wins over add", "add a note and mark it complete", KindCompleteTask},
		{"create task", "Add a task to water the plants", KindCreateTask},
		{"list item", "Add milk to grocery list", KindAddListItem},
		{"grocery without list", "add eggs to the grocery run", KindAddListItem},
		{"query events", "What's on our schedule today?", KindQueryEvents},
		{"query events show", "show me the next event", KindQueryEvents},
		{"query tasks", "tell me which chores are left", KindQueryTasks},
		{"query meals", "What's our meal plan for today?", KindQueryMeals},
		{"query meals dinner", "what's for dinner tonight", KindQueryMeals},
		{"question without topic", "what time is it", KindGeneralQuery},
		{"no keywords", "xyzzy plugh", KindGeneralQuery},
		{"empty-ish", "hello there", KindGeneralQuery},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.text)
			if got.Kind != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.text, got.Kind, tc.want)
			}
			if got.Params["text"] != tc.text {
				t.Fatalf("Classify(%q) params text = %q, want original text", tc.text, got.Params["text"])
			}
		})
	}
}

// Rule order is load-bearing: "add ... event" must win even when the
// wording could satisfy a later rule too.
func TestClassifyRulePriority(t *testing.T) {
	got := Classify("add an event to the task list")
	if got.Kind != KindCreateEvent {
		t.Fatalf("event rule must win over task rule, got %s", got.Kind)
	}
	got = Classify("show the task schedule")
	if got.Kind != KindQueryEvents {
		t.Fatalf("schedule sub-rule must win over task sub-rule, got %s", got.Kind)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	const text = "Add dentist appointment Thursday 3 PM"
	a, b := Classify(text), Classify(text)
	if a.Kind != b.Kind || a.Params["text"] != b.Params["text"] {
		t.Fatalf("Classify is not deterministic: %v vs %v", a, b)
	}
}
