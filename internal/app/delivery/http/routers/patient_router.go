package routers

import (
	"staffportal-service/internal/app/delivery/http/middlewares"
	"staffportal-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.GetAll)
	router.Post("/", patientController.Create)

	// Fixed paths are declared before the {patientID} wildcard
	router.Get("/search", patientController.Search)

	router.Get("/{patientID}", patientController.GetByID)
	router.Put("/{patientID}", patientController.Update)
	router.Delete("/{patientID}", patientController.Delete)

	router.Get("/{patientID}/prescriptions", patientController.GetPrescriptions)
	router.Post("/{patientID}/prescriptions", patientController.AddPrescription)
	router.Get("/{patientID}/history", patientController.GetMedicalHistory)
	router.Post("/{patientID}/history", patientController.AddMedicalHistory)
	router.Get("/{patientID}/vitals", patientController.GetVitals)
	router.Post("/{patientID}/vitals", patientController.AddVitals)
	router.Get("/{patientID}/nursing-notes", patientController.GetNursingNotes)
	router.Post("/{patientID}/nursing-notes", patientController.AddNursingNote)
}
