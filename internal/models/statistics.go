package models

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type DailyAverage struct {
	Date          string  `json:"date"`
	AverageRating float64 `json:"average_rating"`
}

// MoodStatistics is derived on demand and never stored.
type MoodStatistics struct {
	AverageRating  float64        `json:"average_rating"`
	HighestRating  int            `json:"highest_rating"`
	LowestRating   int            `json:"lowest_rating"`
	MostCommonTags []TagCount     `json:"most_common_tags"`
	DailyTrend     []DailyAverage `json:"mood_trend"`
	TotalEntries   int            `json:"total_entries"`
}

// EmptyMoodStatistics is the value reported for a window with no entries.
// Sequences are empty, not nil, so they encode as [].
func EmptyMoodStatistics() MoodStatistics {
	return MoodStatistics{
		MostCommonTags: []TagCount{},
		DailyTrend:     []DailyAverage{},
	}
}
