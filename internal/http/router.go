package http

import (
	"net/http"

	"traffic-insights/internal/aggregators"
	"traffic-insights/internal/ingestors"
	"traffic-insights/internal/shared/loggers"
	"traffic-insights/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, insightService aggregators.InsightService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestRecordsHandler := NewIngestRecordsHandler(ingestionService)
	deviceObservationsHandler := NewDeviceObservationsHandler(ingestionService)
	studyInsightHandler := NewStudyInsightHandler(insightService)

	// Routes
	router.Post("/studies/{studyID}/records", errorHandlingAdapter(ingestRecordsHandler))
	router.Put("/studies/{studyID}/device-observations", errorHandlingAdapter(deviceObservationsHandler))
	router.Get("/studies/{studyID}/insight", errorHandlingAdapter(studyInsightHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
