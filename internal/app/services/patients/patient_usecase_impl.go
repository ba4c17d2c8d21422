package patients

import (
	"context"
	"fmt"
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/app/services/shared/alerts"
	"staffportal-service/internal/app/services/shared/storage"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/dto/requests"
	"staffportal-service/internal/pkg/exceptions"
	"staffportal-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patientUsecase struct {
	Log               *zap.Logger
	PatientRepository PatientRepository
	Storage           storage.Storage
	AlertPublisher    alerts.AlertPublisher
	InternalConfig    *config.InternalConfig
	DriverConfig      *config.DriverConfig
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientMongoRepository PatientRepository,
	minioStorage storage.Storage,
	alertPublisher alerts.AlertPublisher,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
) PatientUsecase {
	return &patientUsecase{
		Log:               logger,
		PatientRepository: patientMongoRepository,
		Storage:           minioStorage,
		AlertPublisher:    alertPublisher,
		InternalConfig:    internalConfig,
		DriverConfig:      driverConfig,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient, claims *tokens.Claims) (*models.Patient, error) {
	// Mint the next sequential display id
	sequence, err := uc.PatientRepository.NextPatientSequence(ctx)
	if err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = constvars.PatientStatusActive
	}
	priority := request.Priority
	if priority == "" {
		priority = constvars.PatientPriorityMedium
	}

	now := time.Now()
	patient := &models.Patient{
		PatientID:      fmt.Sprintf(constvars.PatientIDFormat, sequence),
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Age:            request.Age,
		Gender:         request.Gender,
		Phone:          request.Phone,
		Email:          request.Email,
		Address:        request.Address,
		Condition:      request.Condition,
		Status:         status,
		Priority:       priority,
		Doctor:         request.Doctor,
		AdmissionDate:  request.AdmissionDate,
		LastVisit:      utils.CurrentDateString(),
		Notes:          request.Notes,
		Prescriptions:  []models.Prescription{},
		MedicalHistory: []models.MedicalHistoryEntry{},
		Vitals:         []models.VitalsRecord{},
		NursingNotes:   []models.NursingNote{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	if patient.Status == constvars.PatientStatusCritical {
		uc.publishCriticalAlert(ctx, patient, claims)
	}

	return patient, nil
}

func (uc *patientUsecase) GetAllPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAll(ctx)
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", patientID))
	}
	return patient, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient, claims *tokens.Claims) (*models.Patient, error) {
	patient, err := uc.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	previousStatus := patient.Status

	// Merge the provided fields over the stored aggregate
	if request.FirstName != nil {
		patient.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		patient.LastName = *request.LastName
	}
	if request.Age != nil {
		patient.Age = *request.Age
	}
	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.Phone != nil {
		patient.Phone = *request.Phone
	}
	if request.Email != nil {
		patient.Email = *request.Email
	}
	if request.Address != nil {
		patient.Address = *request.Address
	}
	if request.Condition != nil {
		patient.Condition = *request.Condition
	}
	if request.Status != nil {
		patient.Status = *request.Status
	}
	if request.Priority != nil {
		patient.Priority = *request.Priority
	}
	if request.Doctor != nil {
		patient.Doctor = *request.Doctor
	}
	if request.AdmissionDate != nil {
		patient.AdmissionDate = *request.AdmissionDate
	}
	if request.LastVisit != nil {
		patient.LastVisit = *request.LastVisit
	}
	if request.Notes != nil {
		patient.Notes = *request.Notes
	}

	if request.Photo != "" {
		objectName, err := uc.uploadPatientPhoto(ctx, patient.PatientID, request.Photo)
		if err != nil {
			return nil, err
		}
		patient.PhotoObject = objectName
	}

	patient.UpdatedAt = time.Now()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	if patient.Status == constvars.PatientStatusCritical && previousStatus != constvars.PatientStatusCritical {
		uc.publishCriticalAlert(ctx, patient, claims)
	}

	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	deleted, err := uc.PatientRepository.DeletePatient(ctx, patientID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", patientID))
	}
	return nil
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, query string) ([]models.Patient, error) {
	query = utils.SanitizeSearchQuery(query)
	if query == "" {
		return nil, exceptions.ErrSearchQueryMissing(fmt.Errorf("empty search query"))
	}
	return uc.PatientRepository.Search(ctx, query)
}

func (uc *patientUsecase) AddPrescription(ctx context.Context, patientID string, request *requests.AddPrescription, claims *tokens.Claims) (*models.Prescription, error) {
	if _, err := uc.GetPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	prescribedDate := request.PrescribedDate
	if prescribedDate == "" {
		prescribedDate = utils.CurrentDateString()
	}

	entry := &models.Prescription{
		ID:             uuid.NewString(),
		Medication:     request.Medication,
		Dosage:         request.Dosage,
		Frequency:      request.Frequency,
		Duration:       request.Duration,
		Instructions:   request.Instructions,
		PrescribedDate: prescribedDate,
		Status:         constvars.PrescriptionStatusActive,
		PrescribedBy:   claims.UserID,
		CreatedAt:      time.Now(),
	}

	if err := uc.PatientRepository.PushPrescription(ctx, patientID, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *patientUsecase) GetPrescriptions(ctx context.Context, patientID string) ([]models.Prescription, error) {
	patient, err := uc.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.Prescriptions == nil {
		return []models.Prescription{}, nil
	}
	return patient.Prescriptions, nil
}

func (uc *patientUsecase) AddMedicalHistory(ctx context.Context, patientID string, request *requests.AddMedicalHistory, claims *tokens.Claims) (*models.MedicalHistoryEntry, error) {
	if _, err := uc.GetPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	dateRecorded := request.DateRecorded
	if dateRecorded == "" {
		dateRecorded = utils.CurrentDateString()
	}
	severity := request.Severity
	if severity == "" {
		severity = constvars.SeverityMedium
	}

	entry := &models.MedicalHistoryEntry{
		ID:           uuid.NewString(),
		Condition:    request.Condition,
		Diagnosis:    request.Diagnosis,
		Treatment:    request.Treatment,
		Notes:        request.Notes,
		DateRecorded: dateRecorded,
		Severity:     severity,
		RecordedBy:   claims.UserID,
		CreatedAt:    time.Now(),
	}

	if err := uc.PatientRepository.PushMedicalHistory(ctx, patientID, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *patientUsecase) GetMedicalHistory(ctx context.Context, patientID string) ([]models.MedicalHistoryEntry, error) {
	patient, err := uc.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.MedicalHistory == nil {
		return []models.MedicalHistoryEntry{}, nil
	}
	return patient.MedicalHistory, nil
}

func (uc *patientUsecase) AddVitals(ctx context.Context, patientID string, request *requests.AddVitals, claims *tokens.Claims) (*models.VitalsRecord, error) {
	if _, err := uc.GetPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	recordedDate := request.RecordedDate
	if recordedDate == "" {
		recordedDate = utils.CurrentDateString()
	}
	recordedTime := request.RecordedTime
	if recordedTime == "" {
		recordedTime = utils.CurrentTimeString()
	}
	recordedBy := request.RecordedBy
	if recordedBy == "" {
		recordedBy = claims.Username
	}

	entry := &models.VitalsRecord{
		ID:                     uuid.NewString(),
		BloodPressureSystolic:  request.BloodPressureSystolic,
		BloodPressureDiastolic: request.BloodPressureDiastolic,
		HeartRate:              request.HeartRate,
		Temperature:            request.Temperature,
		RespiratoryRate:        request.RespiratoryRate,
		OxygenSaturation:       request.OxygenSaturation,
		Weight:                 request.Weight,
		Height:                 request.Height,
		PainLevel:              request.PainLevel,
		Notes:                  request.Notes,
		RecordedDate:           recordedDate,
		RecordedTime:           recordedTime,
		RecordedBy:             recordedBy,
		CreatedAt:              time.Now(),
	}

	if err := uc.PatientRepository.PushVitals(ctx, patientID, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *patientUsecase) GetVitals(ctx context.Context, patientID string) ([]models.VitalsRecord, error) {
	patient, err := uc.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.Vitals == nil {
		return []models.VitalsRecord{}, nil
	}
	return patient.Vitals, nil
}

func (uc *patientUsecase) AddNursingNote(ctx context.Context, patientID string, request *requests.AddNursingNote, claims *tokens.Claims) (*models.NursingNote, error) {
	if _, err := uc.GetPatientByID(ctx, patientID); err != nil {
		return nil, err
	}

	category := request.Category
	if category == "" {
		category = constvars.NursingCategoryGeneralCare
	}
	priority := request.Priority
	if priority == "" {
		priority = constvars.NursingPriorityNormal
	}
	noteDate := request.NoteDate
	if noteDate == "" {
		noteDate = utils.CurrentDateString()
	}
	noteTime := request.NoteTime
	if noteTime == "" {
		noteTime = utils.CurrentTimeString()
	}
	nurseName := request.NurseName
	if nurseName == "" {
		nurseName = claims.Username
	}

	entry := &models.NursingNote{
		ID:           uuid.NewString(),
		Category:     category,
		Observation:  request.Observation,
		Intervention: request.Intervention,
		Response:     request.Response,
		Plan:         request.Plan,
		Priority:     priority,
		NoteDate:     noteDate,
		NoteTime:     noteTime,
		NurseName:    nurseName,
		CreatedBy:    claims.UserID,
		CreatedAt:    time.Now(),
	}

	if err := uc.PatientRepository.PushNursingNote(ctx, patientID, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *patientUsecase) GetNursingNotes(ctx context.Context, patientID string) ([]models.NursingNote, error) {
	patient, err := uc.GetPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient.NursingNotes == nil {
		return []models.NursingNote{}, nil
	}
	return patient.NursingNotes, nil
}

func (uc *patientUsecase) uploadPatientPhoto(ctx context.Context, patientDisplayID, encodedPhoto string) (string, error) {
	imageData, extension, err := utils.DecodeBase64Image(encodedPhoto)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(extension, utils.AllowedPatientPhotoFormats); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(imageData, uc.InternalConfig.App.PatientPhotoMaxSizeInMB); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	fileName := utils.GenerateFileName("patient", patientDisplayID, extension)
	return uc.Storage.UploadBase64Image(ctx, imageData, uc.DriverConfig.Minio.BucketName, fileName, extension)
}

// publishCriticalAlert is best effort; a broker outage never fails the
// update that raised the alert.
func (uc *patientUsecase) publishCriticalAlert(ctx context.Context, patient *models.Patient, claims *tokens.Claims) {
	alert := &alerts.PatientAlert{
		PatientID: patient.PatientID,
		FullName:  fmt.Sprintf("%s %s", patient.FirstName, patient.LastName),
		Status:    patient.Status,
		Doctor:    patient.Doctor,
		RaisedAt:  time.Now().Format(time.RFC3339),
	}
	if claims != nil {
		alert.RaisedBy = claims.Username
	}
	if err := uc.AlertPublisher.PublishCriticalStatus(ctx, alert); err != nil {
		uc.Log.Warn("failed to publish critical patient alert",
			zap.String(constvars.LoggingPatientIDKey, patient.PatientID),
			zap.Error(err),
		)
	}
}
