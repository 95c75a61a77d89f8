package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/llm"
	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

// DailyBrief is a generated morning summary of the family's day.
type DailyBrief struct {
	Type       string    `json:"type"`
	Date       time.Time `json:"date"`
	Summary    string    `json:"summary"`
	EventCount int       `json:"eventCount"`
	TaskCount  int       `json:"taskCount"`
	MealCount  int       `json:"mealCount"`
}

// WeeklyRecap is a generated end-of-week summary.
type WeeklyRecap struct {
	Type           string    `json:"type"`
	WeekStart      time.Time `json:"weekStart"`
	WeekEnd        time.Time `json:"weekEnd"`
	Summary        string    `json:"summary"`
	EventCount     int       `json:"eventCount"`
	TasksCompleted int       `json:"tasksCompleted"`
}

// MoodReport pairs a mood with a canned suggestion. No model call is
// involved; the suggestions are fixed text.
type MoodReport struct {
	Mood            string   `json:"mood"`
	Suggestion      string   `json:"suggestion"`
	Recommendations []string `json:"recommendations"`
}

var moodSuggestions = map[string]string{
	"calm":     "🧘 Calm Mode: Try soft background music, take deep breaths, and focus on one task at a time. Consider a relaxing activity like reading or gentle stretching.",
	"busy":     "⚡ Busy Mode: You've got a lot going on! Break tasks into smaller chunks, take short breaks, and don't forget to hydrate. You're doing great!",
	"exciting": "🎉 Exciting Mode: Channel that energy! This is a great time to tackle challenging tasks or plan something fun for the family.",
	"relaxed":  "😌 Relaxed Mode: Perfect time for planning, creative thinking, or quality family time. Enjoy the moment!",
}

var moodRecommendations = []string{
	"Take a 5-minute break",
	"Drink some water",
	"Step outside for fresh air",
	"Connect with a family member",
}

// SummaryService generates daily briefs and weekly recaps from the
// family's records. The scheduler reuses the per-family variants.
type SummaryService struct {
	store    store.Store
	provider llm.Provider
	log      zerolog.Logger
	now      func() time.Time
}

func NewSummaryService(s store.Store, p llm.Provider, log zerolog.Logger) *SummaryService {
	return &SummaryService{store: s, provider: p, log: log, now: time.Now}
}

func (s *SummaryService) DailyBrief(ctx context.Context, actorID string) (*DailyBrief, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.DailyBriefForFamily(ctx, family)
}

func (s *SummaryService) DailyBriefForFamily(ctx context.Context, family *model.Family) (*DailyBrief, error) {
	today := s.now()
	events, err := s.store.Events().ListRange(ctx, family.FamilyID, startOfDay(today), endOfDay(today))
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.Tasks().List(ctx, family.FamilyID, "")
	if err != nil {
		return nil, err
	}
	meals, err := s.store.Meals().ListByDate(ctx, family.FamilyID, today)
	if err != nil {
		return nil, err
	}

	var pending []*model.Task
	completed := 0
	for _, t := range tasks {
		switch t.Status {
		case model.TaskStatusPending:
			pending = append(pending, t)
		case model.TaskStatusCompleted:
			completed++
		}
	}

	eventLines := make([]string, 0, len(events))
	for _, e := range events {
		eventLines = append(eventLines, fmt.Sprintf("- %s at %s", e.Title, e.StartTime.Format("3:04 PM")))
	}
	taskLines := make([]string, 0, len(pending))
	for _, t := range pending {
		taskLines = append(taskLines, fmt.Sprintf("- %s (%s priority)", t.Title, t.Priority))
	}
	mealLines := make([]string, 0, len(meals))
	for _, m := range meals {
		mealLines = append(mealLines, fmt.Sprintf("- %s: %s", m.MealType, m.Meal))
	}

	prompt := fmt.Sprintf(`Generate a friendly, concise daily brief for the %s family.

Today: %s

Events (%d):
%s

Pending Tasks (%d):
%s

Meals Planned (%d):
%s

Tasks Completed Today: %d

Create a warm, encouraging summary that:
1. Greets the family
2. Highlights key events
3. Reminds about pending tasks
4. Mentions meals
5. Ends with an encouraging note

Keep it under 100 words.`,
		family.Name,
		today.Format("Monday, January 2, 2006"),
		len(events), joinOr(eventLines, "None"),
		len(pending), joinOr(taskLines, "All caught up!"),
		len(meals), joinOr(mealLines, "No meals planned"),
		completed,
	)

	summary, err := s.complete(ctx, "You are a friendly family assistant creating daily briefings.", prompt, "Unable to generate summary")
	if err != nil {
		return nil, err
	}
	return &DailyBrief{
		Type:       "daily",
		Date:       today,
		Summary:    summary,
		EventCount: len(events),
		TaskCount:  len(pending),
		MealCount:  len(meals),
	}, nil
}

func (s *SummaryService) WeeklyRecap(ctx context.Context, actorID string) (*WeeklyRecap, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.WeeklyRecapForFamily(ctx, family)
}

func (s *SummaryService) WeeklyRecapForFamily(ctx context.Context, family *model.Family) (*WeeklyRecap, error) {
	today := s.now()
	weekStart := startOfWeek(today)
	weekEnd := endOfWeek(today)

	events, err := s.store.Events().ListRange(ctx, family.FamilyID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	tasks, err := s.store.Tasks().List(ctx, family.FamilyID, "")
	if err != nil {
		return nil, err
	}
	completedThisWeek := 0
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted && t.CompletedAt != nil && !t.CompletedAt.Before(weekStart) {
			completedThisWeek++
		}
	}

	top := events
	if len(top) > 5 {
		top = top[:5]
	}
	eventLines := make([]string, 0, len(top))
	for _, e := range top {
		eventLines = append(eventLines, fmt.Sprintf("- %s on %s", e.Title, e.StartTime.Format("Monday")))
	}

	prompt := fmt.Sprintf(`Generate an engaging weekly recap for the %s family.

Week of: %s - %s

Total Events: %d
Tasks Completed: %d

Key Events:
%s

Create a warm, celebratory weekly recap that:
1. Celebrates accomplishments
2. Highlights key events
3. Acknowledges completed tasks
4. Suggests planning for next week
5. Ends with encouragement

Keep it under 150 words.`,
		family.Name,
		weekStart.Format("Jan 2"), weekEnd.Format("Jan 2, 2006"),
		len(events), completedThisWeek,
		strings.Join(eventLines, "\n"),
	)

	summary, err := s.complete(ctx, "You are a warm, encouraging family assistant creating weekly recaps.", prompt, "Unable to generate recap")
	if err != nil {
		return nil, err
	}
	return &WeeklyRecap{
		Type:           "weekly",
		WeekStart:      weekStart,
		WeekEnd:        weekEnd,
		Summary:        summary,
		EventCount:     len(events),
		TasksCompleted: completedThisWeek,
	}, nil
}

// MoodSuggestions returns the canned guidance for a mood. The mood must
// already be validated against the closed set.
func (s *SummaryService) MoodSuggestions(mood string) (*MoodReport, error) {
	suggestion, ok := moodSuggestions[mood]
	if !ok {
		return nil, fmt.Errorf("unknown mood %q: %w", mood, model.ErrValidation)
	}
	return &MoodReport{
		Mood:            mood,
		Suggestion:      suggestion,
		Recommendations: append([]string(nil), moodRecommendations...),
	}, nil
}

func (s *SummaryService) complete(ctx context.Context, system, prompt, fallback string) (string, error) {
	content, err := s.provider.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("summary completion: %w", err)
	}
	if content == "" {
		return fallback, nil
	}
	return content, nil
}

func joinOr(lines []string, empty string) string {
	if len(lines) == 0 {
		return empty
	}
	return strings.Join(lines, "\n")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// startOfWeek returns midnight on the Sunday on or before t.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func endOfWeek(t time.Time) time.Time {
	return startOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}
