// Package scheduler runs the periodic summary jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/services"
	"github.com/homebrain/homebrain/internal/store"
)

const jobTimeout = 2 * time.Minute

// Scheduler generates daily briefs and weekly recaps on cron schedules
// and delivers them as summary notifications to every family member.
type Scheduler struct {
	cron    *cron.Cron
	store   store.Store
	summary *services.SummaryService
	log     zerolog.Logger
}

func New(st store.Store, summary *services.SummaryService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		store:   st,
		summary: summary,
		log:     log,
	}
}

// Start registers the jobs and starts the cron loop. An empty spec
// disables that job.
func (s *Scheduler) Start(dailySpec, weeklySpec string) error {
	if dailySpec != "" {
		if _, err := s.cron.AddFunc(dailySpec, s.runDailyBriefs); err != nil {
			return err
		}
	}
	if weeklySpec != "" {
		if _, err := s.cron.AddFunc(weeklySpec, s.runWeeklyRecaps); err != nil {
			return err
		}
	}
	s.cron.Start()
	s.log.Info().Str("daily", dailySpec).Str("weekly", weeklySpec).Msg("summary scheduler started")
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runDailyBriefs() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	families, err := s.store.Families().List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("daily brief: list families failed")
		return
	}
	for _, family := range families {
		brief, err := s.summary.DailyBriefForFamily(ctx, family)
		if err != nil {
			s.log.Error().Err(err).Str("family_id", family.FamilyID).Msg("daily brief generation failed")
			continue
		}
		s.notifyMembers(ctx, family.FamilyID, "Daily Brief", brief.Summary)
	}
}

func (s *Scheduler) runWeeklyRecaps() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	families, err := s.store.Families().List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("weekly recap: list families failed")
		return
	}
	for _, family := range families {
		recap, err := s.summary.WeeklyRecapForFamily(ctx, family)
		if err != nil {
			s.log.Error().Err(err).Str("family_id", family.FamilyID).Msg("weekly recap generation failed")
			continue
		}
		s.notifyMembers(ctx, family.FamilyID, "Weekly Recap", recap.Summary)
	}
}

func (s *Scheduler) notifyMembers(ctx context.Context, familyID, title, content string) {
	members, err := s.store.Families().Members(ctx, familyID)
	if err != nil {
		s.log.Error().Err(err).Str("family_id", familyID).Msg("list members failed")
		return
	}
	for _, m := range members {
		body := content
		_, err := s.store.Notifications().Create(ctx, &model.Notification{
			FamilyID: familyID,
			ActorID:  m.ActorID,
			Type:     model.NotificationSummary,
			Title:    title,
			Content:  &body,
		})
		if err != nil {
			s.log.Error().Err(err).Str("actor_id", m.ActorID).Msg("summary notification failed")
		}
	}
}
