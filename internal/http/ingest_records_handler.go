package http

import (
	"encoding/json"
	"net/http"

	"traffic-insights/internal/ingestors"

	"github.com/go-chi/chi/v5"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type ingestRecordsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestRecordsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestRecordsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /studies/{studyID}/records requests. The batch is
// stored and accepted; the insight rebuild happens asynchronously.
func (h *ingestRecordsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	studyID := chi.URLParam(r, "studyID")

	result, err := h.ingestionService.IngestBatch(r.Context(), studyID, idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	return json.NewEncoder(w).Encode(result)
}
