package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/speech"
	"github.com/homebrain/homebrain/internal/store"
	"github.com/homebrain/homebrain/internal/voice"
)

// VoiceService interprets and executes natural-language commands. The
// classifier decides the intent; this service performs the matching
// store mutation (at most one insert per command) and phrases the reply.
type VoiceService struct {
	store       store.Store
	transcriber speech.Transcriber
	log         zerolog.Logger
	now         func() time.Time
}

func NewVoiceService(s store.Store, t speech.Transcriber, log zerolog.Logger) *VoiceService {
	return &VoiceService{store: s, transcriber: t, log: log, now: time.Now}
}

// Transcribe converts a referenced audio recording to text.
func (s *VoiceService) Transcribe(ctx context.Context, audioURL, language string) (string, error) {
	return s.transcriber.Transcribe(ctx, audioURL, language)
}

// ProcessCommand classifies text and executes the resulting intent for
// the actor's family. Store failures do not surface as transport
// errors: the caller gets a spoken-style error result while the full
// cause is logged here.
func (s *VoiceService) ProcessCommand(ctx context.Context, actorID, text string) (model.CommandResult, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return model.CommandResult{}, fmt.Errorf("resolve family for actor %s: %w", actorID, err)
	}

	intent := voice.Classify(text)

	switch intent.Kind {
	case voice.KindCreateEvent:
		// No date/time parsing yet: the raw phrase becomes the title and
		// the event is pinned to a now/now+1h window.
		start := s.now().UTC()
		end := start.Add(time.Hour)
		desc := "Created via voice: " + text
		_, err := s.store.Events().Create(ctx, &model.CalendarEvent{
			FamilyID:    family.FamilyID,
			CreatedBy:   actorID,
			Title:       text,
			Description: &desc,
			StartTime:   start,
			EndTime:     end,
		})
		if err != nil {
			return s.errorResult(actorID, intent.Kind, err), nil
		}
		return successResult(voice.ActionEventCreated, "your appointment"), nil

	case voice.KindCreateTask:
		desc := "Created via voice: " + text
		_, err := s.store.Tasks().Create(ctx, &model.Task{
			FamilyID:    family.FamilyID,
			CreatedBy:   actorID,
			Title:       text,
			Description: &desc,
		})
		if err != nil {
			return s.errorResult(actorID, intent.Kind, err), nil
		}
		return successResult(voice.ActionTaskCreated, "new task"), nil

	case voice.KindCompleteTask:
		// Acknowledged without a store mutation. Matching the spoken
		// phrase against pending task titles is not implemented.
		return successResult(voice.ActionTaskCompleted, "that task"), nil

	case voice.KindAddListItem:
		// Acknowledged without a store mutation. Picking the target list
		// from the phrase is not implemented.
		return successResult(voice.ActionListItemAdded, "item to your list"), nil

	case voice.KindQueryEvents:
		return successResult(voice.ActionEventRetrieved, "upcoming events"), nil
	case voice.KindQueryTasks:
		return successResult(voice.ActionTaskRetrieved, "pending tasks"), nil
	case voice.KindQueryMeals:
		return successResult(voice.ActionMealRetrieved, "today's meals"), nil

	default:
		return model.CommandResult{
			Success:  true,
			Action:   string(voice.ActionGeneralQuery),
			Response: fmt.Sprintf("I heard: %q. How can I help?", text),
		}, nil
	}
}

func successResult(action voice.Action, detail string) model.CommandResult {
	return model.CommandResult{
		Success:  true,
		Action:   string(action),
		Response: voice.Respond(action, detail),
	}
}

func (s *VoiceService) errorResult(actorID string, kind voice.Kind, err error) model.CommandResult {
	s.log.Error().Err(err).
		Str("actor_id", actorID).
		Str("intent", string(kind)).
		Msg("voice command execution failed")
	return model.CommandResult{
		Success:  false,
		Action:   string(voice.ActionError),
		Response: voice.Respond(voice.ActionError, "process that command"),
	}
}
