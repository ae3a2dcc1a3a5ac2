package http

import (
	"net/http"

	"traffic-insights/internal/ingestors"

	"github.com/go-chi/chi/v5"
)

type deviceObservationsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewDeviceObservationsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &deviceObservationsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes PUT /studies/{studyID}/device-observations requests.
// The upload replaces any previous one for the study.
func (h *deviceObservationsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	studyID := chi.URLParam(r, "studyID")

	if err := h.ingestionService.PutDeviceObservations(r.Context(), studyID, r.Body); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
