package patients

import (
	"context"
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/app/services/shared/alerts"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/dto/requests"
	"staffportal-service/internal/pkg/exceptions"
	"staffportal-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) NextPatientSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	args := m.Called(ctx, patientModel)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patientModel *models.Patient) error {
	args := m.Called(ctx, patientModel)
	return args.Error(0)
}

func (m *MockPatientRepository) DeletePatient(ctx context.Context, patientID string) (bool, error) {
	args := m.Called(ctx, patientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPatientRepository) PushPrescription(ctx context.Context, patientID string, entry *models.Prescription) error {
	args := m.Called(ctx, patientID, entry)
	return args.Error(0)
}

func (m *MockPatientRepository) PushMedicalHistory(ctx context.Context, patientID string, entry *models.MedicalHistoryEntry) error {
	args := m.Called(ctx, patientID, entry)
	return args.Error(0)
}

func (m *MockPatientRepository) PushVitals(ctx context.Context, patientID string, entry *models.VitalsRecord) error {
	args := m.Called(ctx, patientID, entry)
	return args.Error(0)
}

func (m *MockPatientRepository) PushNursingNote(ctx context.Context, patientID string, entry *models.NursingNote) error {
	args := m.Called(ctx, patientID, entry)
	return args.Error(0)
}

func (m *MockPatientRepository) CountPatients(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadBase64Image(ctx context.Context, imageData []byte, bucketName, fileName, fileExtension string) (string, error) {
	args := m.Called(ctx, imageData, bucketName, fileName, fileExtension)
	return args.String(0), args.Error(1)
}

type MockAlertPublisher struct {
	mock.Mock
}

func (m *MockAlertPublisher) PublishCriticalStatus(ctx context.Context, alert *alerts.PatientAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func newUsecaseForTest(repo *MockPatientRepository, publisher *MockAlertPublisher) PatientUsecase {
	return NewPatientUsecase(
		zap.NewNop(),
		repo,
		new(MockStorage),
		publisher,
		&config.InternalConfig{App: config.App{PatientPhotoMaxSizeInMB: 2}},
		&config.DriverConfig{Minio: config.Minio{BucketName: "patient-photos"}},
	)
}

func doctorClaims() *tokens.Claims {
	return &tokens.Claims{
		UserID:   "64f000000000000000000001",
		Username: "doctor",
		Role:     constvars.RoleDoctor,
		Step:     constvars.TokenStepSession,
	}
}

func storedPatient(status string) *models.Patient {
	return &models.Patient{
		ID:        "64f000000000000000000010",
		PatientID: "P001",
		FirstName: "John",
		LastName:  "Carter",
		Age:       45,
		Gender:    "male",
		Status:    status,
		Priority:  constvars.PatientPriorityMedium,
	}
}

func TestCreatePatient_SequentialDisplayIDs(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	request := &requests.CreatePatient{FirstName: "John", LastName: "Carter", Age: 45, Gender: "male"}

	for i, want := range []string{"P001", "P002", "P003"} {
		repo.ExpectedCalls = nil
		repo.On("NextPatientSequence", mock.Anything).Return(int64(i+1), nil)
		repo.On("CreatePatient", mock.Anything, mock.Anything).Return("64f00000000000000000001"+string(rune('0'+i)), nil)

		patient, err := uc.CreatePatient(context.Background(), request, doctorClaims())
		assert.NoError(t, err)
		assert.Equal(t, want, patient.PatientID)
	}
}

func TestCreatePatient_AppliesDefaults(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("NextPatientSequence", mock.Anything).Return(int64(1), nil)
	repo.On("CreatePatient", mock.Anything, mock.Anything).Return("64f000000000000000000010", nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	patient, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		FirstName: "John", LastName: "Carter", Age: 45, Gender: "male",
	}, doctorClaims())

	assert.NoError(t, err)
	assert.Equal(t, constvars.PatientStatusActive, patient.Status)
	assert.Equal(t, constvars.PatientPriorityMedium, patient.Priority)
	assert.Equal(t, utils.CurrentDateString(), patient.LastVisit)
	assert.NotNil(t, patient.Prescriptions)
	assert.Empty(t, patient.Prescriptions)
	assert.NotNil(t, patient.NursingNotes)
}

func TestCreatePatient_CriticalStatusPublishesAlert(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("NextPatientSequence", mock.Anything).Return(int64(1), nil)
	repo.On("CreatePatient", mock.Anything, mock.Anything).Return("64f000000000000000000010", nil)

	publisher := new(MockAlertPublisher)
	publisher.On("PublishCriticalStatus", mock.Anything, mock.Anything).Return(nil)

	uc := newUsecaseForTest(repo, publisher)
	patient, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		FirstName: "John", LastName: "Carter", Age: 45, Gender: "male",
		Status: constvars.PatientStatusCritical,
	}, doctorClaims())

	assert.NoError(t, err)
	assert.Equal(t, constvars.PatientStatusCritical, patient.Status)
	publisher.AssertCalled(t, "PublishCriticalStatus", mock.Anything, mock.MatchedBy(func(alert *alerts.PatientAlert) bool {
		return alert.PatientID == "P001" && alert.Status == constvars.PatientStatusCritical && alert.RaisedBy == "doctor"
	}))
}

func TestCreatePatient_ActiveStatusPublishesNoAlert(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("NextPatientSequence", mock.Anything).Return(int64(1), nil)
	repo.On("CreatePatient", mock.Anything, mock.Anything).Return("64f000000000000000000010", nil)

	publisher := new(MockAlertPublisher)

	uc := newUsecaseForTest(repo, publisher)
	_, err := uc.CreatePatient(context.Background(), &requests.CreatePatient{
		FirstName: "John", LastName: "Carter", Age: 45, Gender: "male",
	}, doctorClaims())

	assert.NoError(t, err)
	publisher.AssertNotCalled(t, "PublishCriticalStatus", mock.Anything, mock.Anything)
}

func TestSearchPatients_EmptyQuery(t *testing.T) {
	uc := newUsecaseForTest(new(MockPatientRepository), new(MockAlertPublisher))

	_, err := uc.SearchPatients(context.Background(), "   ")

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientSearchQueryRequired, customErr.ClientMessage)
}

func TestSearchPatients_TrimsQuery(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("Search", mock.Anything, "cardiac").Return([]models.Patient{}, nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	_, err := uc.SearchPatients(context.Background(), "  cardiac  ")

	assert.NoError(t, err)
	repo.AssertCalled(t, "Search", mock.Anything, "cardiac")
}

func TestAddPrescription_DefaultsAndAttribution(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", mock.Anything, "64f000000000000000000010").Return(storedPatient(constvars.PatientStatusActive), nil)
	repo.On("PushPrescription", mock.Anything, "64f000000000000000000010", mock.Anything).Return(nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	entry, err := uc.AddPrescription(context.Background(), "64f000000000000000000010", &requests.AddPrescription{
		Medication: "Aspirin",
		Dosage:     "75mg",
	}, doctorClaims())

	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, constvars.PrescriptionStatusActive, entry.Status)
	assert.Equal(t, utils.CurrentDateString(), entry.PrescribedDate)
	assert.Equal(t, "64f000000000000000000001", entry.PrescribedBy)
}

func TestAddMedicalHistory_DefaultSeverity(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", mock.Anything, "64f000000000000000000010").Return(storedPatient(constvars.PatientStatusActive), nil)
	repo.On("PushMedicalHistory", mock.Anything, "64f000000000000000000010", mock.Anything).Return(nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	entry, err := uc.AddMedicalHistory(context.Background(), "64f000000000000000000010", &requests.AddMedicalHistory{
		Condition: "Hypertension",
		Diagnosis: "Stage 1",
	}, doctorClaims())

	assert.NoError(t, err)
	assert.Equal(t, constvars.SeverityMedium, entry.Severity)
	assert.Equal(t, utils.CurrentDateString(), entry.DateRecorded)
}

func TestAddNursingNote_FallsBackToActingStaff(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", mock.Anything, "64f000000000000000000010").Return(storedPatient(constvars.PatientStatusActive), nil)
	repo.On("PushNursingNote", mock.Anything, "64f000000000000000000010", mock.Anything).Return(nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	entry, err := uc.AddNursingNote(context.Background(), "64f000000000000000000010", &requests.AddNursingNote{
		Observation: "Patient resting comfortably",
	}, doctorClaims())

	assert.NoError(t, err)
	assert.Equal(t, constvars.NursingCategoryGeneralCare, entry.Category)
	assert.Equal(t, constvars.NursingPriorityNormal, entry.Priority)
	assert.Equal(t, "doctor", entry.NurseName)
	assert.Equal(t, "64f000000000000000000001", entry.CreatedBy)
}

func TestAddPrescription_UnknownPatient(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", mock.Anything, "64f0000000000000000000ff").Return(nil, nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	_, err := uc.AddPrescription(context.Background(), "64f0000000000000000000ff", &requests.AddPrescription{
		Medication: "Aspirin",
		Dosage:     "75mg",
	}, doctorClaims())

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientPatientNotFound, customErr.ClientMessage)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestUpdatePatient_CriticalTransitionPublishesAlert(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", mock.Anything, "64f000000000000000000010").Return(storedPatient(constvars.PatientStatusActive), nil)
	repo.On("UpdatePatient", mock.Anything, mock.Anything).Return(nil)

	publisher := new(MockAlertPublisher)
	publisher.On("PublishCriticalStatus", mock.Anything, mock.Anything).Return(nil)

	uc := newUsecaseForTest(repo, publisher)
	status := constvars.PatientStatusCritical
	patient, err := uc.UpdatePatient(context.Background(), "64f000000000000000000010", &requests.UpdatePatient{Status: &status}, doctorClaims())

	assert.NoError(t, err)
	assert.Equal(t, constvars.PatientStatusCritical, patient.Status)
	publisher.AssertCalled(t, "PublishCriticalStatus", mock.Anything, mock.MatchedBy(func(alert *alerts.PatientAlert) bool {
		return alert.PatientID == "P001" && alert.Status == constvars.PatientStatusCritical
	}))
}

func TestUpdatePatient_AlreadyCriticalDoesNotRepublish(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", mock.Anything, "64f000000000000000000010").Return(storedPatient(constvars.PatientStatusCritical), nil)
	repo.On("UpdatePatient", mock.Anything, mock.Anything).Return(nil)

	publisher := new(MockAlertPublisher)

	uc := newUsecaseForTest(repo, publisher)
	status := constvars.PatientStatusCritical
	_, err := uc.UpdatePatient(context.Background(), "64f000000000000000000010", &requests.UpdatePatient{Status: &status}, doctorClaims())

	assert.NoError(t, err)
	publisher.AssertNotCalled(t, "PublishCriticalStatus", mock.Anything, mock.Anything)
}

func TestUpdatePatient_MergesOnlyProvidedFields(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("FindByID", mock.Anything, "64f000000000000000000010").Return(storedPatient(constvars.PatientStatusActive), nil)
	repo.On("UpdatePatient", mock.Anything, mock.Anything).Return(nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	condition := "Post-op recovery"
	patient, err := uc.UpdatePatient(context.Background(), "64f000000000000000000010", &requests.UpdatePatient{Condition: &condition}, doctorClaims())

	assert.NoError(t, err)
	assert.Equal(t, "Post-op recovery", patient.Condition)
	assert.Equal(t, "John", patient.FirstName)
	assert.Equal(t, 45, patient.Age)
}

func TestDeletePatient_NotFound(t *testing.T) {
	repo := new(MockPatientRepository)
	repo.On("DeletePatient", mock.Anything, "64f0000000000000000000ff").Return(false, nil)

	uc := newUsecaseForTest(repo, new(MockAlertPublisher))
	err := uc.DeletePatient(context.Background(), "64f0000000000000000000ff")

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientPatientNotFound, customErr.ClientMessage)
}
