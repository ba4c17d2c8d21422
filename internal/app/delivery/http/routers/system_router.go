package routers

import (
	"staffportal-service/internal/app/services/system"

	"github.com/go-chi/chi/v5"
)

func attachSystemRoutes(router chi.Router, systemController *system.SystemController) {
	router.Get("/security/status", systemController.SecurityStatus)
	router.Get("/performance/metrics", systemController.PerformanceMetrics)
}
