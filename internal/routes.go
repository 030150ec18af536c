package internal

import (
	"mindcare/internal/controllers"
	"mindcare/internal/providers"
	"net/http"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Moods       *controllers.MoodController
	Journal     *controllers.JournalController
	Medications *controllers.MedicationController
	Reminders   *controllers.ReminderController
	AI          *controllers.AIController
}

func NewControllers(
	auth *controllers.AuthController,
	moods *controllers.MoodController,
	journal *controllers.JournalController,
	medications *controllers.MedicationController,
	reminders *controllers.ReminderController,
	ai *controllers.AIController,
) *Controllers {
	return &Controllers{
		Auth:        auth,
		Moods:       moods,
		Journal:     journal,
		Medications: medications,
		Reminders:   reminders,
		AI:          ai,
	}
}

func InitRoutes(c *Controllers, auth *providers.AuthMiddleware) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()
	protected := func(h http.HandlerFunc) http.Handler { return auth.Wrap(h) }

	routers.Post("/api/auth/register", http.HandlerFunc(c.Auth.Register))
	routers.Post("/api/auth/login", http.HandlerFunc(c.Auth.Login))
	routers.Post("/api/auth/refresh", protected(c.Auth.Refresh))
	routers.Get("/api/auth/me", protected(c.Auth.Me))
	routers.Put("/api/auth/me", protected(c.Auth.UpdateMe))
	routers.Put("/api/auth/password", protected(c.Auth.ChangePassword))

	routers.Post("/api/moods", protected(c.Moods.Create))
	routers.Get("/api/moods", protected(c.Moods.List))
	routers.Get("/api/moods/stats", protected(c.Moods.Stats))
	routers.Get("/api/moods/{id}", protected(c.Moods.Get))
	routers.Put("/api/moods/{id}", protected(c.Moods.Update))
	routers.Delete("/api/moods/{id}", protected(c.Moods.Delete))

	routers.Post("/api/journal", protected(c.Journal.Create))
	routers.Get("/api/journal", protected(c.Journal.List))
	routers.Get("/api/journal/search", protected(c.Journal.Search))
	routers.Get("/api/journal/{id}", protected(c.Journal.Get))
	routers.Get("/api/journal/{id}/analysis", protected(c.Journal.Analyze))
	routers.Put("/api/journal/{id}", protected(c.Journal.Update))
	routers.Delete("/api/journal/{id}", protected(c.Journal.Delete))

	routers.Post("/api/medications", protected(c.Medications.Create))
	routers.Get("/api/medications", protected(c.Medications.List))
	routers.Get("/api/medications/{id}", protected(c.Medications.Get))
	routers.Put("/api/medications/{id}", protected(c.Medications.Update))
	routers.Delete("/api/medications/{id}", protected(c.Medications.Delete))
	routers.Post("/api/medications/{id}/image", protected(c.Medications.UploadImage))

	routers.Post("/api/reminders", protected(c.Reminders.Create))
	routers.Get("/api/reminders", protected(c.Reminders.List))
	routers.Get("/api/reminders/today", protected(c.Reminders.Today))
	routers.Get("/api/reminders/upcoming", protected(c.Reminders.Upcoming))
	routers.Get("/api/reminders/{id}", protected(c.Reminders.Get))
	routers.Put("/api/reminders/{id}", protected(c.Reminders.Update))
	routers.Put("/api/reminders/{id}/status", protected(c.Reminders.UpdateStatus))
	routers.Delete("/api/reminders/{id}", protected(c.Reminders.Delete))

	routers.Post("/api/ai/chat", protected(c.AI.Chat))
	routers.Get("/api/ai/chat/history", protected(c.AI.History))
	routers.Get("/api/ai/recommendations", protected(c.AI.Recommendations))
	routers.Get("/api/ai/suggestions", protected(c.AI.Suggestions))
	routers.Get("/api/ai/weekly-report", protected(c.AI.WeeklyReport))
	routers.Post("/api/ai/feedback", protected(c.AI.Feedback))
	return routers
}
