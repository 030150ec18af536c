package analytics

import (
	"mindcare/internal/models"
	"sort"
	"time"
)

const (
	maxCommonTags = 5
	dayLayout     = "2006-01-02"
)

// MoodAggregator computes windowed statistics over mood entries.
type MoodAggregator struct {
	now func() time.Time
}

func NewMoodAggregator() *MoodAggregator {
	return &MoodAggregator{now: time.Now}
}

// NewMoodAggregatorWithClock uses now instead of the wall clock.
func NewMoodAggregatorWithClock(now func() time.Time) *MoodAggregator {
	return &MoodAggregator{now: now}
}

func (a *MoodAggregator) Statistics(entries []*models.MoodEntry, windowDays int) models.MoodStatistics {
	return a.StatisticsAt(entries, windowDays, a.now())
}

// StatisticsAt aggregates the entries whose timestamp lies in
// [now - windowDays, now], both ends inclusive.
func (a *MoodAggregator) StatisticsAt(entries []*models.MoodEntry, windowDays int, now time.Time) models.MoodStatistics {
	if windowDays < 0 {
		return models.EmptyMoodStatistics()
	}
	start := models.WindowStart(now, windowDays)

	var count, sum, highest, lowest int
	var tagOrder []string
	tagCounts := make(map[string]int)
	daySums := make(map[string]int)
	dayCounts := make(map[string]int)
	for _, e := range entries {
		if e == nil || e.Timestamp.Before(start) || e.Timestamp.After(now) {
			continue
		}
		if count == 0 || e.Rating > highest {
			highest = e.Rating
		}
		if count == 0 || e.Rating < lowest {
			lowest = e.Rating
		}
		count++
		sum += e.Rating

		for _, tag := range e.Tags {
			if tagCounts[tag] == 0 {
				tagOrder = append(tagOrder, tag)
			}
			tagCounts[tag]++
		}

		day := e.Timestamp.UTC().Format(dayLayout)
		daySums[day] += e.Rating
		dayCounts[day]++
	}

	if count == 0 {
		return models.EmptyMoodStatistics()
	}

	top := rankByCount(tagOrder, tagCounts)
	if len(top) > maxCommonTags {
		top = top[:maxCommonTags]
	}
	tags := make([]models.TagCount, 0, len(top))
	for _, tag := range top {
		tags = append(tags, models.TagCount{Tag: tag, Count: tagCounts[tag]})
	}

	days := make([]string, 0, len(dayCounts))
	for day := range dayCounts {
		days = append(days, day)
	}
	sort.Strings(days)
	trend := make([]models.DailyAverage, 0, len(days))
	for _, day := range days {
		trend = append(trend, models.DailyAverage{
			Date:          day,
			AverageRating: float64(daySums[day]) / float64(dayCounts[day]),
		})
	}

	return models.MoodStatistics{
		AverageRating:  float64(sum) / float64(count),
		HighestRating:  highest,
		LowestRating:   lowest,
		MostCommonTags: tags,
		DailyTrend:     trend,
		TotalEntries:   count,
	}
}

// rankByCount orders keys by count descending. order holds keys in
// first-seen order and breaks ties.
func rankByCount(order []string, counts map[string]int) []string {
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}
