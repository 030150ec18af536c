package analytics

import (
	"github.com/samber/lo"
	"math/rand/v2"
	"mindcare/internal/models"
	"mindcare/internal/structures"
	"sort"
	"sync"
	"time"
)

const (
	DefaultLowMoodThreshold           = 5.0
	DefaultNegativeSentimentThreshold = -0.3

	recentMoodCount    = 5
	recentJournalCount = 3
	sampleSize         = 2
)

// RandomSource is satisfied by *rand.Rand from math/rand and math/rand/v2.
type RandomSource interface {
	Perm(n int) []int
}

type EngineOptions struct {
	LowMoodThreshold           float64
	NegativeSentimentThreshold float64
	Prompts                    []models.JournalPrompt
	Strategies                 []models.CopingStrategy
	Random                     RandomSource
	Now                        func() time.Time
}

// RecommendationEngine picks journal prompts and coping strategies from
// fixed catalogs. Branch selection is deterministic; only the fallback
// branch draws from the random source.
type RecommendationEngine struct {
	analyzer     *TextAnalyzer
	lowMood      float64
	lowSentiment float64
	prompts      []models.JournalPrompt
	strategies   []models.CopingStrategy
	now          func() time.Time

	mu  sync.Mutex
	rnd RandomSource
}

func NewRecommendationEngine(analyzer *TextAnalyzer, opts EngineOptions) *RecommendationEngine {
	e := &RecommendationEngine{
		analyzer:     analyzer,
		lowMood:      opts.LowMoodThreshold,
		lowSentiment: opts.NegativeSentimentThreshold,
		prompts:      opts.Prompts,
		strategies:   opts.Strategies,
		now:          opts.Now,
		rnd:          opts.Random,
	}
	if e.prompts == nil {
		e.prompts = JournalPrompts()
	}
	if e.strategies == nil {
		e.strategies = CopingStrategies()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// NewEngineFromConfig builds an engine with the configured thresholds and
// a freshly seeded random source. A non-positive mood threshold selects the default.
func NewEngineFromConfig(conf *structures.Config, analyzer *TextAnalyzer) *RecommendationEngine {
	lowMood := conf.Analytics.LowMoodThreshold
	if lowMood <= 0 {
		lowMood = DefaultLowMoodThreshold
	}
	return NewRecommendationEngine(analyzer, EngineOptions{
		LowMoodThreshold:           lowMood,
		NegativeSentimentThreshold: conf.Analytics.NegativeSentimentThreshold,
	})
}

func (e *RecommendationEngine) Recommend(ownerID string, moods []*models.MoodEntry, journals []*models.JournalEntry) models.RecommendationSet {
	avgMood, haveMood := e.averageMood(moods)
	avgSentiment, haveSentiment := e.averageSentiment(journals)
	lowMood := haveMood && avgMood < e.lowMood

	var prompts []models.JournalPrompt
	switch {
	case lowMood:
		prompts = e.promptsByTitle(PromptMoodReflection, PromptGratitude)
	case haveSentiment && avgSentiment < e.lowSentiment:
		prompts = e.promptsByTitle(PromptJoy, PromptGratitude)
	}
	if len(prompts) == 0 {
		prompts = sample(e, e.prompts)
	}

	var strategies []models.CopingStrategy
	if lowMood {
		strategies = e.strategiesByTitle(StrategyPhysicalExercise, StrategySocialConnection)
	}
	if len(strategies) == 0 {
		strategies = sample(e, e.strategies)
	}

	return models.RecommendationSet{
		JournalPrompts:   prompts,
		CopingStrategies: strategies,
		GeneratedAt:      e.now().UTC(),
		OwnerID:          ownerID,
	}
}

func (e *RecommendationEngine) averageMood(moods []*models.MoodEntry) (float64, bool) {
	recent := mostRecent(lo.Compact(moods), recentMoodCount, func(m *models.MoodEntry) time.Time { return m.Timestamp })
	if len(recent) == 0 {
		return 0, false
	}
	var sum int
	for _, m := range recent {
		sum += m.Rating
	}
	return float64(sum) / float64(len(recent)), true
}

func (e *RecommendationEngine) averageSentiment(journals []*models.JournalEntry) (float64, bool) {
	recent := mostRecent(lo.Compact(journals), recentJournalCount, func(j *models.JournalEntry) time.Time { return j.Timestamp })
	if len(recent) == 0 {
		return 0, false
	}
	var sum float64
	for _, j := range recent {
		sum += e.analyzer.Sentiment(j.Content).Compound
	}
	return sum / float64(len(recent)), true
}

func (e *RecommendationEngine) promptsByTitle(titles ...string) []models.JournalPrompt {
	out := make([]models.JournalPrompt, 0, len(titles))
	for _, title := range titles {
		for _, p := range e.prompts {
			if p.Title == title {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (e *RecommendationEngine) strategiesByTitle(titles ...string) []models.CopingStrategy {
	out := make([]models.CopingStrategy, 0, len(titles))
	for _, title := range titles {
		for _, s := range e.strategies {
			if s.Title == title {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// perm draws a uniform permutation of [0, n) under the engine lock.
func (e *RecommendationEngine) perm(n int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rnd.Perm(n)
}

// sample returns up to sampleSize distinct catalog members.
func sample[T any](e *RecommendationEngine, catalog []T) []T {
	n := min(sampleSize, len(catalog))
	out := make([]T, 0, n)
	for _, idx := range e.perm(len(catalog))[:n] {
		out = append(out, catalog[idx])
	}
	return out
}

// mostRecent returns the limit items with the latest timestamps, newest
// first. Equal timestamps keep their input order.
func mostRecent[T any](items []T, limit int, ts func(T) time.Time) []T {
	sorted := append([]T(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ts(sorted[i]).After(ts(sorted[j]))
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
