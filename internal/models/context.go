package models

import (
	"fmt"
	"strings"
	"time"
)

type ActiveMedication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

type UpcomingReminder struct {
	MedicationName string    `json:"medication_name"`
	ScheduledTime  time.Time `json:"scheduled_time"`
}

// ContextSummary is the bounded per-user context handed to the LLM prompt.
// Nil or empty sections were unavailable and are simply left out.
type ContextSummary struct {
	RecentMood        *MoodEntry         `json:"recent_mood,omitempty"`
	Statistics        *MoodStatistics    `json:"mood_stats,omitempty"`
	Medications       []ActiveMedication `json:"medications,omitempty"`
	UpcomingReminders []UpcomingReminder `json:"upcoming_reminders,omitempty"`
}

// Render formats the summary as the "User Context:" block of a prompt.
func (s ContextSummary) Render() string {
	var b strings.Builder
	b.WriteString("User Context:\n")
	if s.RecentMood != nil {
		fmt.Fprintf(&b, "- Recent mood: %d/10", s.RecentMood.Rating)
		if len(s.RecentMood.Tags) > 0 {
			fmt.Fprintf(&b, " (Tags: %s)", strings.Join(s.RecentMood.Tags, ", "))
		}
		b.WriteString("\n")
	}
	if s.Statistics != nil {
		fmt.Fprintf(&b, "- Average mood: %.1f/10\n", s.Statistics.AverageRating)
	}
	if len(s.Medications) > 0 {
		b.WriteString("- Medications:\n")
		for _, m := range s.Medications {
			fmt.Fprintf(&b, "  * %s (%s, %s)\n", m.Name, m.Dosage, m.Frequency)
		}
	}
	if len(s.UpcomingReminders) > 0 {
		b.WriteString("- Upcoming medication reminders:\n")
		for _, r := range s.UpcomingReminders {
			fmt.Fprintf(&b, "  * %s at %s\n", r.MedicationName, r.ScheduledTime.UTC().Format(time.RFC3339))
		}
	}
	return b.String()
}
