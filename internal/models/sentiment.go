package models

type SentimentResult struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Neutral  float64 `json:"neu"`
	Negative float64 `json:"neg"`
}

// JournalAnalysis is computed from a journal entry on request.
type JournalAnalysis struct {
	EntryID   string          `json:"entry_id"`
	Sentiment SentimentResult `json:"sentiment"`
	Keywords  []string        `json:"keywords"`
}
