package routers

import (
	"staffportal-service/internal/app/delivery/http/middlewares"
	"staffportal-service/internal/app/services/auth"
	"staffportal-service/internal/app/services/staff"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController, staffController *staff.StaffController) {
	router.Post("/register", staffController.Register)
	router.Post("/login", authController.Login)
	router.Post("/mfa/verify", authController.VerifyMFA)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
