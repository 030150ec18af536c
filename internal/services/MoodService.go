package services

import (
	"context"
	"github.com/google/uuid"
	"mindcare/internal/analytics"
	"mindcare/internal/models"
	"mindcare/internal/providers"
	"mindcare/internal/storage"
	"strconv"
	"time"
)

const (
	DefaultListLimit = 100
	DefaultStatsDays = 30
	statsFetchLimit  = 1000
)

type MoodServiceInterface interface {
	Create(ctx context.Context, owner string, in *models.MoodCreateInput) (*models.MoodEntry, error)
	Get(ctx context.Context, owner, id string) (*models.MoodEntry, error)
	List(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.MoodEntry, error)
	Update(ctx context.Context, owner, id string, in *models.MoodUpdateInput) (*models.MoodEntry, error)
	Delete(ctx context.Context, owner, id string) error
	Statistics(ctx context.Context, owner string, days int) (models.MoodStatistics, error)
}

type MoodService struct {
	db         *storage.Database
	aggregator *analytics.MoodAggregator
	events     providers.EventPublisherInterface
	logger     providers.Logger
	now        func() time.Time
}

func NewMoodService(db *storage.Database, aggregator *analytics.MoodAggregator, events providers.EventPublisherInterface, logger providers.Logger) MoodServiceInterface {
	return &MoodService{
		db:         db,
		aggregator: aggregator,
		events:     events,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *MoodService) Create(ctx context.Context, owner string, in *models.MoodCreateInput) (*models.MoodEntry, error) {
	ts, err := in.Validate()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if ts.IsZero() {
		ts = now
	}
	entry := &models.MoodEntry{
		ID:        uuid.NewString(),
		UserID:    owner,
		Rating:    in.Rating,
		Tags:      models.NormalizeTags(in.Tags),
		Notes:     in.Notes,
		Timestamp: ts,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
	}
	s.db.Moods.Put(entry)

	event := providers.Event{
		Type:       providers.EventMoodLogged,
		UserID:     owner,
		OccurredAt: now,
		Attributes: map[string]string{"mood_rating": strconv.Itoa(entry.Rating)},
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warnf(providers.TypePost, "Failed to publish %s for %s: %s", event.Type, owner, err)
	}
	return entry, nil
}

func (s *MoodService) Get(_ context.Context, owner, id string) (*models.MoodEntry, error) {
	return s.db.Moods.GetOwned(owner, id)
}

func (s *MoodService) List(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.MoodEntry, error) {
	return s.db.ListMoodEntries(ctx, owner, limit, start, end)
}

func (s *MoodService) Update(_ context.Context, owner, id string, in *models.MoodUpdateInput) (*models.MoodEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	entry, err := s.db.Moods.GetOwned(owner, id)
	if err != nil {
		return nil, err
	}
	in.Apply(entry, s.now())
	s.db.Moods.Put(entry)
	return entry, nil
}

func (s *MoodService) Delete(_ context.Context, owner, id string) error {
	return s.db.Moods.Delete(owner, id)
}

// Statistics aggregates the owner's entries of the last days days.
func (s *MoodService) Statistics(ctx context.Context, owner string, days int) (models.MoodStatistics, error) {
	now := s.now()
	start := models.WindowStart(now, days)
	entries, err := s.db.ListMoodEntries(ctx, owner, statsFetchLimit, start, now)
	if err != nil {
		return models.MoodStatistics{}, err
	}
	return s.aggregator.StatisticsAt(entries, days, now), nil
}
