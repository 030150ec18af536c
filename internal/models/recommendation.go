package models

import "time"

type JournalPrompt struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

type CopingStrategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RecommendationSet struct {
	JournalPrompts   []JournalPrompt  `json:"journal_prompts"`
	CopingStrategies []CopingStrategy `json:"coping_strategies"`
	GeneratedAt      time.Time        `json:"timestamp"`
	OwnerID          string           `json:"user_id"`
}

type Suggestions struct {
	JournalPrompt       string `json:"journal_prompt,omitempty"`
	CopingTip           string `json:"coping_tip,omitempty"`
	MotivationalContent string `json:"motivational_content,omitempty"`
	MedicationTip       string `json:"medication_tip,omitempty"`
}

type WeeklyReport struct {
	Report string `json:"report"`
}
