package auth

import (
	"context"
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/app/services/shared/stepup"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/dto/requests"
	"staffportal-service/internal/pkg/dto/responses"
	"staffportal-service/internal/pkg/exceptions"
	"staffportal-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) CreateStaff(ctx context.Context, staffModel *models.StaffAccount) (string, error) {
	args := m.Called(ctx, staffModel)
	return args.String(0), args.Error(1)
}

func (m *MockStaffRepository) FindByID(ctx context.Context, staffID string) (*models.StaffAccount, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) FindByUsername(ctx context.Context, username string) (*models.StaffAccount, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) FindByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*models.StaffAccount, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) FindAll(ctx context.Context) ([]models.StaffAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staffModel *models.StaffAccount) error {
	args := m.Called(ctx, staffModel)
	return args.Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, staffID string) (bool, error) {
	args := m.Called(ctx, staffID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStaffRepository) CountStaff(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenDenylist struct {
	mock.Mock
}

func (m *MockTokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func newTokenService(stepUpMinutes int) *tokens.TokenService {
	return tokens.NewTokenService(&config.InternalConfig{
		JWT: config.JWT{
			Secret:                "test-secret",
			StepUpExpTimeInMinute: stepUpMinutes,
			SessionExpTimeInHour:  24,
		},
	})
}

func seededAccount(t *testing.T, mfaEnabled bool) *models.StaffAccount {
	t.Helper()
	hashed, err := utils.HashPassword("password123")
	assert.NoError(t, err)
	return &models.StaffAccount{
		ID:         "64f000000000000000000001",
		Username:   "doctor",
		Password:   hashed,
		Role:       constvars.RoleDoctor,
		FullName:   "Dr. Sarah",
		MFAEnabled: mfaEnabled,
	}
}

func newUsecaseForTest(repo *MockStaffRepository, denylist *MockTokenDenylist, stepUpMinutes int) AuthUsecase {
	return NewAuthUsecase(
		zap.NewNop(),
		repo,
		newTokenService(stepUpMinutes),
		stepup.NewBackupCodeVerifier(stepup.DefaultBackupCodes),
		denylist,
	)
}

func TestLogin_UnknownUsername(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	_, err := uc.Login(context.Background(), &requests.Login{Username: "ghost", Password: "password123"})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientUserNotFound, customErr.ClientMessage)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("FindByUsername", mock.Anything, "doctor").Return(seededAccount(t, true), nil)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	_, err := uc.Login(context.Background(), &requests.Login{Username: "doctor", Password: "wrong"})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientInvalidPassword, customErr.ClientMessage)
}

func TestLogin_MFAEnabledReturnsStepUpToken(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("FindByUsername", mock.Anything, "doctor").Return(seededAccount(t, true), nil)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	response, err := uc.Login(context.Background(), &requests.Login{Username: "doctor", Password: "password123"})

	assert.NoError(t, err)
	assert.True(t, response.MFARequired)
	assert.Empty(t, response.Token)
	assert.NotEmpty(t, response.TempToken)

	// Password stage only earns the reduced profile
	pending, ok := response.User.(*responses.PendingStepUpProfile)
	assert.True(t, ok)
	assert.Equal(t, "doctor", pending.Username)

	claims, err := newTokenService(5).Verify(response.TempToken)
	assert.NoError(t, err)
	assert.True(t, claims.IsStepUp())
}

func TestLogin_MFADisabledReturnsSessionToken(t *testing.T) {
	repo := new(MockStaffRepository)
	repo.On("FindByUsername", mock.Anything, "doctor").Return(seededAccount(t, false), nil)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	response, err := uc.Login(context.Background(), &requests.Login{Username: "doctor", Password: "password123"})

	assert.NoError(t, err)
	assert.False(t, response.MFARequired)
	assert.NotEmpty(t, response.Token)
	assert.Empty(t, response.TempToken)

	profile, ok := response.User.(*responses.StaffProfile)
	assert.True(t, ok)
	assert.Equal(t, constvars.RoleDoctor, profile.Role)

	claims, err := newTokenService(5).Verify(response.Token)
	assert.NoError(t, err)
	assert.True(t, claims.IsSession())
	assert.False(t, claims.MFAVerified)
}

func TestVerifyMFA_AcceptsLowercaseBackupCode(t *testing.T) {
	repo := new(MockStaffRepository)
	account := seededAccount(t, true)
	repo.On("FindByUsername", mock.Anything, "doctor").Return(account, nil)

	service := newTokenService(5)
	tempToken, err := service.IssueStepUp(account)
	assert.NoError(t, err)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	response, err := uc.VerifyMFA(context.Background(), &requests.VerifyMFA{
		Username:  "doctor",
		Token:     "test01",
		TempToken: tempToken,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, constvars.RoleDoctor, response.User.Role)

	claims, err := service.Verify(response.Token)
	assert.NoError(t, err)
	assert.True(t, claims.IsSession())
	assert.True(t, claims.MFAVerified)
}

func TestVerifyMFA_RejectsBadCode(t *testing.T) {
	repo := new(MockStaffRepository)
	account := seededAccount(t, true)
	repo.On("FindByUsername", mock.Anything, "doctor").Return(account, nil)

	tempToken, err := newTokenService(5).IssueStepUp(account)
	assert.NoError(t, err)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	_, err = uc.VerifyMFA(context.Background(), &requests.VerifyMFA{
		Username:  "doctor",
		Token:     "TEST99",
		TempToken: tempToken,
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientInvalidMFACode, customErr.ClientMessage)
}

func TestVerifyMFA_ExpiredStepUpToken(t *testing.T) {
	repo := new(MockStaffRepository)
	account := seededAccount(t, true)

	expiredToken, err := newTokenService(-1).IssueStepUp(account)
	assert.NoError(t, err)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	_, err = uc.VerifyMFA(context.Background(), &requests.VerifyMFA{
		Username:  "doctor",
		Token:     "TEST01",
		TempToken: expiredToken,
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientSessionExpired, customErr.ClientMessage)
	repo.AssertNotCalled(t, "FindByUsername")
}

func TestVerifyMFA_RejectsSessionTokenAsTempToken(t *testing.T) {
	repo := new(MockStaffRepository)
	account := seededAccount(t, true)

	sessionToken, err := newTokenService(5).IssueFull(account, true)
	assert.NoError(t, err)

	uc := newUsecaseForTest(repo, new(MockTokenDenylist), 5)
	_, err = uc.VerifyMFA(context.Background(), &requests.VerifyMFA{
		Username:  "doctor",
		Token:     "TEST01",
		TempToken: sessionToken,
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientSessionExpired, customErr.ClientMessage)
}

func TestLogout_RevokesTokenForRemainingLifetime(t *testing.T) {
	denylist := new(MockTokenDenylist)
	denylist.On("Revoke", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := newTokenService(5)
	raw, err := service.IssueFull(seededAccount(t, true), true)
	assert.NoError(t, err)
	claims, err := service.Verify(raw)
	assert.NoError(t, err)

	uc := newUsecaseForTest(new(MockStaffRepository), denylist, 5)
	err = uc.Logout(context.Background(), claims)

	assert.NoError(t, err)
	denylist.AssertCalled(t, "Revoke", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 23*time.Hour && ttl <= 24*time.Hour
	}))
}
