package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"traffic-insights/internal/aggregators"
	"traffic-insights/internal/events"
	internalhttp "traffic-insights/internal/http"
	"traffic-insights/internal/ingestors"
	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/configs"
	"traffic-insights/internal/shared/filestorages"
	"traffic-insights/internal/shared/loggers"
	"traffic-insights/internal/stores"
	"traffic-insights/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	studyEventConsumer streams.StudyEventConsumer
	backgroundCtx      context.Context
	backgroundCancel   context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "traffic-insights").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stream queue
	studyUpdateQueue := streams.NewPartitionedQueue[events.StudyUpdatedEvent]()

	// Initialize insight service
	binScheme, err := models.NewBinSchemeFromString(config.Aggregation.BinScheme)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bin scheme: %w", err)
	}
	batchStore := stores.NewRecordBatchStore(fileStorage)
	deviceStore := stores.NewDeviceObservationsStore(fileStorage)
	insightStore := stores.NewStudyInsightStore(fileStorage)
	insightService := aggregators.NewInsightService(batchStore, deviceStore, insightStore, binScheme)
	consumerLogger := loggers.WithComponent(appLogger, "consumer")
	studyEventConsumer := streams.NewStudyEventConsumer(studyUpdateQueue, insightService, consumerLogger)

	// Initialize ingestionService
	studyEventProducer := streams.NewStudyEventProducer(studyUpdateQueue)
	ingestionService := ingestors.NewIngestionService(batchStore, deviceStore, studyEventProducer)

	// Initialize http router
	httpLogger := loggers.WithComponent(appLogger, "http")
	router := internalhttp.NewRouter(ingestionService, insightService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:             config,
		appLogger:          appLogger,
		server:             server,
		studyEventConsumer: studyEventConsumer,
	}, nil
}

// Handler returns the root HTTP handler, mainly for in-process tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting traffic-insights service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	app.StartConsumers()

	return app.server.ListenAndServe()
}

// StartConsumers starts only the background consumers, for in-process tests
// that drive the handler directly instead of binding a port.
func (app *App) StartConsumers() {
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.studyEventConsumer.Start(app.backgroundCtx)
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.studyEventConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
