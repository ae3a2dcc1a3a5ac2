package http

import (
	"encoding/json"
	"net/http"

	"traffic-insights/internal/aggregators"

	"github.com/go-chi/chi/v5"
)

type studyInsightHandler struct {
	insightService aggregators.InsightService
}

func NewStudyInsightHandler(insightService aggregators.InsightService) AppHttpHandler {
	return &studyInsightHandler{
		insightService: insightService,
	}
}

// Handle processes GET /studies/{studyID}/insight requests.
func (h *studyInsightHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	studyID := chi.URLParam(r, "studyID")

	insight, svcErr := h.insightService.GetInsight(r.Context(), studyID)
	if svcErr != nil {
		return svcErr
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(insight)
}
