//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"mindcare/internal"
	"mindcare/internal/analytics"
	"mindcare/internal/controllers"
	"mindcare/internal/providers"
	"mindcare/internal/services"
	"mindcare/internal/storage"
	"mindcare/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		storage.NewDatabase,
		wire.Bind(new(providers.RecordCounter), new(*storage.Database)),
		wire.Bind(new(services.EntryReader), new(*storage.Database)),
		chatTranscript,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewLLMProvider,
		providers.NewEventPublisher,
		providers.NewMediaProvider,

		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewScheduler,

		analytics.NewTextAnalyzer,
		analytics.NewMoodAggregator,
		analytics.NewCrisisDetector,
		analytics.NewEngineFromConfig,

		services.NewAuthService,
		services.NewMoodService,
		services.NewJournalService,
		services.NewMedicationService,
		services.NewReminderService,
		services.NewContextBuilder,
		services.NewChatService,
		services.NewInsightService,
		tokenVerifier,
		providers.NewAuthMiddleware,

		controllers.NewAuthController,
		controllers.NewMoodController,
		controllers.NewJournalController,
		controllers.NewMedicationController,
		controllers.NewReminderController,
		controllers.NewAIController,
		controllers.NewHealthController,
		internal.NewControllers,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
