package patients

import (
	"context"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/pkg/dto/requests"
)

type PatientRepository interface {
	NextPatientSequence(ctx context.Context) (int64, error)
	CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	Search(ctx context.Context, query string) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, patientModel *models.Patient) error
	DeletePatient(ctx context.Context, patientID string) (bool, error)
	PushPrescription(ctx context.Context, patientID string, entry *models.Prescription) error
	PushMedicalHistory(ctx context.Context, patientID string, entry *models.MedicalHistoryEntry) error
	PushVitals(ctx context.Context, patientID string, entry *models.VitalsRecord) error
	PushNursingNote(ctx context.Context, patientID string, entry *models.NursingNote) error
	CountPatients(ctx context.Context) (int64, error)
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient, claims *tokens.Claims) (*models.Patient, error)
	GetAllPatients(ctx context.Context) ([]models.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient, claims *tokens.Claims) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	SearchPatients(ctx context.Context, query string) ([]models.Patient, error)

	AddPrescription(ctx context.Context, patientID string, request *requests.AddPrescription, claims *tokens.Claims) (*models.Prescription, error)
	GetPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error)
	AddMedicalHistory(ctx context.Context, patientID string, request *requests.AddMedicalHistory, claims *tokens.Claims) (*models.MedicalHistoryEntry, error)
	GetMedicalHistory(ctx context.Context, patientID string) ([]models.MedicalHistoryEntry, error)
	AddVitals(ctx context.Context, patientID string, request *requests.AddVitals, claims *tokens.Claims) (*models.VitalsRecord, error)
	GetVitals(ctx context.Context, patientID string) ([]models.VitalsRecord, error)
	AddNursingNote(ctx context.Context, patientID string, request *requests.AddNursingNote, claims *tokens.Claims) (*models.NursingNote, error)
	GetNursingNotes(ctx context.Context, patientID string) ([]models.NursingNote, error)
}
