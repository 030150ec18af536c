package services

import (
	"context"
	"mindcare/internal/analytics"
	"mindcare/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJournalService() *JournalService {
	svc := NewJournalService(newTestDB(), analytics.NewTextAnalyzer()).(*JournalService)
	svc.now = fixedClock
	return svc
}

func TestJournalCreateAndSearch(t *testing.T) {
	svc := newJournalService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", &models.JournalCreateInput{Title: "Morning walk", Content: "The park was lovely", Tags: []string{"outdoors", "calm"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", &models.JournalCreateInput{Title: "Work", Content: "A stressful PARK meeting", Tags: []string{"work"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u2", &models.JournalCreateInput{Title: "Park", Content: "someone else"})
	require.NoError(t, err)

	found, err := svc.Search(ctx, "u1", models.JournalSearch{Query: "park"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.Search(ctx, "u1", models.JournalSearch{Query: "park", Tags: []string{"outdoors", " calm "}})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Morning walk", found[0].Title)

	found, err = svc.Search(ctx, "u1", models.JournalSearch{Tags: []string{"outdoors", "work"}})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestJournalCreate_RequiresContent(t *testing.T) {
	svc := newJournalService()
	_, err := svc.Create(context.Background(), "u1", &models.JournalCreateInput{Title: "t"})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "content")
}

func TestJournalUpdate(t *testing.T) {
	svc := newJournalService()
	ctx := context.Background()
	entry, err := svc.Create(ctx, "u1", &models.JournalCreateInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "u1", entry.ID, &models.JournalUpdateInput{Content: strPtr("new content")})
	require.NoError(t, err)
	assert.Equal(t, "t", updated.Title)
	assert.Equal(t, "new content", updated.Content)

	_, err = svc.Update(ctx, "u2", entry.ID, &models.JournalUpdateInput{Content: strPtr("x")})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "u1", entry.ID))
	_, err = svc.Get(ctx, "u1", entry.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestJournalAnalyze(t *testing.T) {
	svc := newJournalService()
	ctx := context.Background()
	entry, err := svc.Create(ctx, "u1", &models.JournalCreateInput{
		Title:   "Good day",
		Content: "I am so happy and grateful. Happy friends, happy family, wonderful dinner.",
	})
	require.NoError(t, err)

	analysis, err := svc.Analyze(ctx, "u1", entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, analysis.EntryID)
	assert.Greater(t, analysis.Sentiment.Compound, 0.5)
	require.NotEmpty(t, analysis.Keywords)
	assert.Equal(t, "happy", analysis.Keywords[0])
	assert.LessOrEqual(t, len(analysis.Keywords), journalKeywordCount)

	_, err = svc.Analyze(ctx, "u2", entry.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
