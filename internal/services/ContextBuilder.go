package services

import (
	"context"
	"mindcare/internal/analytics"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/structures"
	"sync"
	"time"
)

const (
	contextMedicationLimit = 3
	contextReminderLimit   = 3
	contextReminderDays    = 7
)

type ContextBuilderInterface interface {
	Build(ctx context.Context, owner string) models.ContextSummary
}

type ContextBuilder struct {
	entries    EntryReader
	aggregator *analytics.MoodAggregator
	logger     providers.Logger
	statsDays  int
	now        func() time.Time
}

func NewContextBuilder(conf *structures.Config, entries EntryReader, aggregator *analytics.MoodAggregator, logger providers.Logger) ContextBuilderInterface {
	days := conf.Analytics.StatsWindowDays
	if days <= 0 {
		days = DefaultStatsDays
	}
	return &ContextBuilder{
		entries:    entries,
		aggregator: aggregator,
		logger:     logger,
		statsDays:  days,
		now:        time.Now,
	}
}

// Build gathers the four sections concurrently. A failing read drops its
// section only.
func (b *ContextBuilder) Build(ctx context.Context, owner string) models.ContextSummary {
	var (
		summary models.ContextSummary
		wg      sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		summary.RecentMood = b.recentMood(ctx, owner)
	}()
	go func() {
		defer wg.Done()
		summary.Statistics = b.statistics(ctx, owner)
	}()
	go func() {
		defer wg.Done()
		summary.Medications = b.medications(ctx, owner)
	}()
	go func() {
		defer wg.Done()
		summary.UpcomingReminders = b.reminders(ctx, owner)
	}()
	wg.Wait()

	return summary
}

func (b *ContextBuilder) recentMood(ctx context.Context, owner string) *models.MoodEntry {
	moods, err := b.entries.ListMoodEntries(ctx, owner, 1, time.Time{}, time.Time{})
	if err != nil {
		b.logger.Warnf(providers.TypeChat, "Context: recent mood for %s unavailable: %s", owner, err)
		return nil
	}
	if len(moods) == 0 {
		return nil
	}
	return moods[0]
}

func (b *ContextBuilder) statistics(ctx context.Context, owner string) *models.MoodStatistics {
	now := b.now()
	start := models.WindowStart(now, b.statsDays)
	moods, err := b.entries.ListMoodEntries(ctx, owner, statsFetchLimit, start, now)
	if err != nil {
		b.logger.Warnf(providers.TypeChat, "Context: mood statistics for %s unavailable: %s", owner, err)
		return nil
	}
	stats := b.aggregator.StatisticsAt(moods, b.statsDays, now)
	if stats.TotalEntries == 0 {
		return nil
	}
	return &stats
}

func (b *ContextBuilder) medications(ctx context.Context, owner string) []models.ActiveMedication {
	meds, err := b.entries.ListMedications(ctx, owner)
	if err != nil {
		b.logger.Warnf(providers.TypeChat, "Context: medications for %s unavailable: %s", owner, err)
		return nil
	}
	now := b.now()
	var out []models.ActiveMedication
	for _, m := range meds {
		if !m.ActiveAt(now) {
			continue
		}
		out = append(out, models.ActiveMedication{Name: m.Name, Dosage: m.Dosage, Frequency: m.Frequency})
		if len(out) == contextMedicationLimit {
			break
		}
	}
	return out
}

func (b *ContextBuilder) reminders(ctx context.Context, owner string) []models.UpcomingReminder {
	reminders, err := b.entries.ListUpcomingReminders(ctx, owner, contextReminderDays)
	if err != nil {
		b.logger.Warnf(providers.TypeChat, "Context: reminders for %s unavailable: %s", owner, err)
		return nil
	}
	var out []models.UpcomingReminder
	for _, r := range reminders {
		med, err := b.entries.GetMedication(ctx, owner, r.MedicationID)
		if err != nil {
			continue
		}
		out = append(out, models.UpcomingReminder{MedicationName: med.Name, ScheduledTime: r.ScheduledTime})
		if len(out) == contextReminderLimit {
			break
		}
	}
	return out
}
