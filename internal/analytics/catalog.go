package analytics

import "mindcare/internal/models"

const (
	PromptMoodReflection = "Mood Reflection"
	PromptGratitude      = "Gratitude"
	PromptJoy            = "Joy"

	StrategyPhysicalExercise = "Physical Exercise"
	StrategySocialConnection = "Social Connection"
)

// JournalPrompts is the fixed, ordered prompt catalog.
func JournalPrompts() []models.JournalPrompt {
	return []models.JournalPrompt{
		{Title: PromptMoodReflection, Prompt: "What emotions did you experience today? What might have triggered them?"},
		{Title: PromptGratitude, Prompt: "List three things you're grateful for today and why they matter to you."},
		{Title: "Self-Care", Prompt: "What's one thing you did today to take care of yourself? How did it make you feel?"},
		{Title: "Emotions", Prompt: "Describe a challenging emotion you felt recently. How did you respond to it?"},
		{Title: "Looking Forward", Prompt: "What's something you're looking forward to in the coming days?"},
		{Title: PromptJoy, Prompt: "What's something that brought you joy recently? How can you incorporate more of that into your life?"},
		{Title: "Learning", Prompt: "Reflect on a recent situation that didn't go as planned. What did you learn from it?"},
		{Title: "Sleep", Prompt: "How has your sleep been lately? What factors might be affecting it?"},
	}
}

// CopingStrategies is the fixed, ordered strategy catalog.
func CopingStrategies() []models.CopingStrategy {
	return []models.CopingStrategy{
		{Title: "Deep Breathing", Description: "Take slow, deep breaths for 5 minutes. Inhale for 4 counts, hold for 4, exhale for 6."},
		{Title: "Mindful Walking", Description: "Take a 10-minute walk focusing on your surroundings and the sensation of walking."},
		{Title: "Gratitude Practice", Description: "Write down three things you're grateful for right now."},
		{Title: "Progressive Muscle Relaxation", Description: "Tense and then release each muscle group in your body, starting from your toes and working up to your head."},
		{Title: "5-4-3-2-1 Grounding", Description: "Acknowledge 5 things you see, 4 things you can touch, 3 things you hear, 2 things you smell, and 1 thing you taste."},
		{Title: "Journaling", Description: "Write freely about your thoughts and feelings for 10 minutes without judgment."},
		{Title: StrategyPhysicalExercise, Description: "Engage in 20-30 minutes of moderate physical activity like walking, dancing, or yoga."},
		{Title: StrategySocialConnection, Description: "Reach out to a friend or family member for a brief conversation."},
	}
}
