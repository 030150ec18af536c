package services

import (
	"context"
	"github.com/google/uuid"
	"mindcare/internal/analytics"
	"mindcare/internal/models"
	"mindcare/internal/storage"
	"time"
)

const journalKeywordCount = 5

type JournalServiceInterface interface {
	Create(ctx context.Context, owner string, in *models.JournalCreateInput) (*models.JournalEntry, error)
	Get(ctx context.Context, owner, id string) (*models.JournalEntry, error)
	List(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.JournalEntry, error)
	Search(ctx context.Context, owner string, search models.JournalSearch) ([]*models.JournalEntry, error)
	Update(ctx context.Context, owner, id string, in *models.JournalUpdateInput) (*models.JournalEntry, error)
	Delete(ctx context.Context, owner, id string) error
	Analyze(ctx context.Context, owner, id string) (*models.JournalAnalysis, error)
}

type JournalService struct {
	db       *storage.Database
	analyzer *analytics.TextAnalyzer
	now      func() time.Time
}

func NewJournalService(db *storage.Database, analyzer *analytics.TextAnalyzer) JournalServiceInterface {
	return &JournalService{db: db, analyzer: analyzer, now: time.Now}
}

func (s *JournalService) Create(_ context.Context, owner string, in *models.JournalCreateInput) (*models.JournalEntry, error) {
	ts, err := in.Validate()
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if ts.IsZero() {
		ts = now
	}
	entry := &models.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    owner,
		Title:     in.Title,
		Content:   in.Content,
		Tags:      models.NormalizeTags(in.Tags),
		Timestamp: ts,
		CreatedAt: now.Unix(),
		UpdatedAt: now.Unix(),
	}
	s.db.Journals.Put(entry)
	return entry, nil
}

func (s *JournalService) Get(_ context.Context, owner, id string) (*models.JournalEntry, error) {
	return s.db.Journals.GetOwned(owner, id)
}

func (s *JournalService) List(ctx context.Context, owner string, limit int, start, end time.Time) ([]*models.JournalEntry, error) {
	return s.db.ListJournalEntries(ctx, owner, limit, start, end)
}

func (s *JournalService) Search(ctx context.Context, owner string, search models.JournalSearch) ([]*models.JournalEntry, error) {
	search.Tags = models.NormalizeTags(search.Tags)
	return s.db.SearchJournalEntries(ctx, owner, search)
}

func (s *JournalService) Update(_ context.Context, owner, id string, in *models.JournalUpdateInput) (*models.JournalEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	entry, err := s.db.Journals.GetOwned(owner, id)
	if err != nil {
		return nil, err
	}
	in.Apply(entry, s.now())
	s.db.Journals.Put(entry)
	return entry, nil
}

func (s *JournalService) Delete(_ context.Context, owner, id string) error {
	return s.db.Journals.Delete(owner, id)
}

// Analyze derives sentiment and keywords of the entry content. Nothing is stored.
func (s *JournalService) Analyze(_ context.Context, owner, id string) (*models.JournalAnalysis, error) {
	entry, err := s.db.Journals.GetOwned(owner, id)
	if err != nil {
		return nil, err
	}
	return &models.JournalAnalysis{
		EntryID:   entry.ID,
		Sentiment: s.analyzer.Sentiment(entry.Content),
		Keywords:  s.analyzer.Keywords(entry.Content, journalKeywordCount),
	}, nil
}
