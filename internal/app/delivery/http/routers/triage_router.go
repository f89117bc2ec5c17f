package routers

import (
	"care4u-service/internal/app/services/core/triage"

	"github.com/go-chi/chi/v5"
)

func attachTriageRoutes(router chi.Router, triageController *triage.TriageController) {
	router.Post("/analyze", triageController.AnalyzeSymptoms)
}
