package validate

import "testing"

func TestNonEmpty(t *testing.T) {
	if err := NonEmpty("title", ""); err == nil {
		t.Fatal("expected error for empty value")
	}
	if err := NonEmpty("title", "dentist"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClosedSets(t *testing.T) {
	checks := []struct {
		name string
		fn   func(string) error
		good string
		bad  string
	}{
		{"role", Role, "parent", "grandparent"},
		{"status", TaskStatus, "in_progress", "paused"},
		{"priority", TaskPriority, "high", "urgent"},
		{"list type", ListType, "grocery", "wishlist"},
		{"meal type", MealType, "snack", "brunch"},
		{"mood", Mood, "calm", "grumpy"},
		{"notification type", NotificationType, "summary", "alert"},
	}
	for _, c := range checks {
		if err := c.fn(c.good); err != nil {
			t.Fatalf("%s: %q should be valid: %v", c.name, c.good, err)
		}
		if err := c.fn(c.bad); err == nil {
			t.Fatalf("%s: %q should be rejected", c.name, c.bad)
		}
	}
}
