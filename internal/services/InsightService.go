package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"mindcare/internal/analytics"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/storage"
	"strings"
	"time"
)

const (
	recommendationFetchLimit = 100
	reportFetchLimit         = 100
	reportWindow             = 7 * 24 * time.Hour
	lowSuggestionRating      = 4
	highSuggestionRating     = 7
)

type InsightServiceInterface interface {
	Recommendations(ctx context.Context, owner string) (models.RecommendationSet, error)
	Suggestions(ctx context.Context, owner string) (models.Suggestions, error)
	WeeklyReport(ctx context.Context, owner string) (*models.WeeklyReport, error)
	SubmitFeedback(ctx context.Context, owner, feedback string) (*models.Feedback, error)
}

type InsightService struct {
	entries EntryReader
	engine  *analytics.RecommendationEngine
	llm     providers.LLMProviderInterface
	db      *storage.Database
	logger  providers.Logger
	now     func() time.Time
}

func NewInsightService(entries EntryReader, engine *analytics.RecommendationEngine, llm providers.LLMProviderInterface, db *storage.Database, logger providers.Logger) InsightServiceInterface {
	return &InsightService{
		entries: entries,
		engine:  engine,
		llm:     llm,
		db:      db,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *InsightService) Recommendations(ctx context.Context, owner string) (models.RecommendationSet, error) {
	moods, err := s.entries.ListMoodEntries(ctx, owner, recommendationFetchLimit, time.Time{}, time.Time{})
	if err != nil {
		return models.RecommendationSet{}, fmt.Errorf("list moods: %w", err)
	}
	journals, err := s.entries.ListJournalEntries(ctx, owner, recommendationFetchLimit, time.Time{}, time.Time{})
	if err != nil {
		return models.RecommendationSet{}, fmt.Errorf("list journal: %w", err)
	}
	return s.engine.Recommend(owner, moods, journals), nil
}

// Suggestions picks canned texts by the latest mood rating and names the
// first medication in a reminder tip.
func (s *InsightService) Suggestions(ctx context.Context, owner string) (models.Suggestions, error) {
	var out models.Suggestions

	moods, err := s.entries.ListMoodEntries(ctx, owner, 1, time.Time{}, time.Time{})
	if err != nil {
		return out, fmt.Errorf("list moods: %w", err)
	}
	if len(moods) > 0 {
		switch rating := moods[0].Rating; {
		case rating < lowSuggestionRating:
			out.JournalPrompt = "What is causing you to feel this way?"
			out.CopingTip = "Try a short mindfulness meditation."
			out.MotivationalContent = "Remember that it's okay to have bad days."
		case rating > highSuggestionRating:
			out.JournalPrompt = "What is making you feel so good today?"
			out.CopingTip = "Continue your positive habits."
			out.MotivationalContent = "Share your positive energy with others."
		default:
			out.JournalPrompt = "Reflect on your day and identify any positive or negative experiences."
			out.CopingTip = "Practice self-care activities."
			out.MotivationalContent = "Focus on the present moment."
		}
	}

	meds, err := s.entries.ListMedications(ctx, owner)
	if err != nil {
		return out, fmt.Errorf("list medications: %w", err)
	}
	if med, ok := lo.Find(meds, func(m *models.Medication) bool { return strings.TrimSpace(m.Name) != "" }); ok {
		out.MedicationTip = fmt.Sprintf("Remember to take your %s as prescribed.", med.Name)
	}
	return out, nil
}

// WeeklyReport summarizes the last seven days and asks the LLM to write it up.
// Adherence counts reminders scheduled inside the same window.
func (s *InsightService) WeeklyReport(ctx context.Context, owner string) (*models.WeeklyReport, error) {
	end := s.now()
	start := end.Add(-reportWindow)

	moods, err := s.entries.ListMoodEntries(ctx, owner, reportFetchLimit, start, end)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	journals, err := s.entries.ListJournalEntries(ctx, owner, reportFetchLimit, start, end)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	reminders, err := s.entries.ListReminders(ctx, owner, start, end)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	report, err := s.llm.Complete(ctx, weeklyReportPrompt(moods, journals, reminders))
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Weekly report for %s failed: %s", owner, err)
		return nil, err
	}
	return &models.WeeklyReport{Report: report}, nil
}

func weeklyReportPrompt(moods []*models.MoodEntry, journals []*models.JournalEntry, reminders []*models.Reminder) string {
	average := 0.0
	if len(moods) > 0 {
		average = float64(lo.SumBy(moods, func(m *models.MoodEntry) int { return m.Rating })) / float64(len(moods))
	}
	completed := lo.CountBy(reminders, func(r *models.Reminder) bool { return r.Status == models.ReminderCompleted })
	adherence := 0.0
	if len(reminders) > 0 {
		adherence = float64(completed) / float64(len(reminders)) * 100
	}

	var b strings.Builder
	b.WriteString("Generate a weekly mental health report for a user based on the following data:\n\n")
	fmt.Fprintf(&b, "Mood Entries (past week):\n%d entries\nAverage mood rating: %.1f/10\n\n", len(moods), average)
	fmt.Fprintf(&b, "Journal Entries (past week):\n%d entries\n\n", len(journals))
	fmt.Fprintf(&b, "Medication Adherence (past week):\n%.1f%% (%d/%d reminders completed)\n\n", adherence, completed, len(reminders))
	b.WriteString("Create a supportive, encouraging weekly report that summarizes this data and provides " +
		"personalized recommendations for the coming week. Include:\n" +
		"1. A summary of the user's mood and journaling patterns\n" +
		"2. Recognition of their medication adherence\n" +
		"3. Specific, actionable suggestions for the coming week\n" +
		"4. Encouragement and positive reinforcement\n\n" +
		"Format the report with clear sections and bullet points where appropriate.")
	return b.String()
}

func (s *InsightService) SubmitFeedback(_ context.Context, owner, feedback string) (*models.Feedback, error) {
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return nil, models.NewValidationError("feedback", "feedback is required")
	}
	if len(feedback) > 2000 {
		return nil, models.NewValidationError("feedback", "feedback must be at most 2000 characters")
	}
	record := &models.Feedback{
		ID:        uuid.NewString(),
		UserID:    owner,
		Feedback:  feedback,
		Timestamp: s.now().UTC(),
	}
	s.db.Feedback.Put(record)
	return record, nil
}
