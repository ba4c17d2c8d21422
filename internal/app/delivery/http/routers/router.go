package routers

import (
	"fmt"
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/delivery/http/middlewares"
	"staffportal-service/internal/app/services/auth"
	"staffportal-service/internal/app/services/patients"
	"staffportal-service/internal/app/services/staff"
	"staffportal-service/internal/app/services/system"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	staffController *staff.StaffController,
	patientController *patients.PatientController,
	systemController *system.SystemController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController, staffController)

		r.Route("/users", func(r chi.Router) {
			attachStaffRoutes(r, middlewares, staffController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController)
		})

		attachSystemRoutes(r, systemController)
	})
}
