package routers

import (
	"staffportal-service/internal/app/delivery/http/middlewares"
	"staffportal-service/internal/app/services/staff"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *staff.StaffController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireAdmin)

	router.Get("/", staffController.GetAll)
	router.Post("/", staffController.Create)
	router.Put("/{staffID}", staffController.Update)
	router.Delete("/{staffID}", staffController.Delete)
}
