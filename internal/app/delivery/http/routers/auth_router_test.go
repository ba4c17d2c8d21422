package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/delivery/http/middlewares"
	"staffportal-service/internal/app/services/auth"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/app/services/staff"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/dto/requests"
	"staffportal-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) VerifyMFA(ctx context.Context, request *requests.VerifyMFA) (*responses.VerifyMFA, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.VerifyMFA), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, claims *tokens.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func TestAuthRouter_LoginEndpoint(t *testing.T) {
	logger := zap.NewNop()

	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.Login")).Return(&responses.Login{
		TempToken:   "temp-token",
		MFARequired: true,
		User:        &responses.PendingStepUpProfile{Username: "doctor", FullName: "Dr. Sarah"},
	}, nil)

	authController := auth.NewAuthController(logger, mockAuthUsecase)

	tokenService := tokens.NewTokenService(&config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", StepUpExpTimeInMinute: 5, SessionExpTimeInHour: 24},
	})
	middlewareInstance := middlewares.NewMiddlewares(logger, tokenService, stubDenylist{})

	staffController := staff.NewStaffController(logger, staff.NewStaffUsecase(logger, nil))

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController, staffController)

	requestBody := requests.Login{Username: "doctor", Password: "password123"}
	jsonBody, _ := json.Marshal(requestBody)

	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", constvars.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, constvars.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "temp-token")
	assert.Contains(t, rec.Body.String(), `"mfaRequired":true`)
	mockAuthUsecase.AssertCalled(t, "Login", mock.Anything, mock.AnythingOfType("*requests.Login"))
}

func TestAuthRouter_LoginRejectsMissingFields(t *testing.T) {
	logger := zap.NewNop()

	mockAuthUsecase := new(MockAuthUsecase)
	authController := auth.NewAuthController(logger, mockAuthUsecase)

	tokenService := tokens.NewTokenService(&config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", StepUpExpTimeInMinute: 5, SessionExpTimeInHour: 24},
	})
	middlewareInstance := middlewares.NewMiddlewares(logger, tokenService, stubDenylist{})
	staffController := staff.NewStaffController(logger, staff.NewStaffUsecase(logger, nil))

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController, staffController)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"doctor"}`))
	req.Header.Set("Content-Type", constvars.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, constvars.StatusBadRequest, rec.Code)
	mockAuthUsecase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthRouter_LogoutRequiresToken(t *testing.T) {
	logger := zap.NewNop()

	mockAuthUsecase := new(MockAuthUsecase)
	authController := auth.NewAuthController(logger, mockAuthUsecase)

	tokenService := tokens.NewTokenService(&config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", StepUpExpTimeInMinute: 5, SessionExpTimeInHour: 24},
	})
	middlewareInstance := middlewares.NewMiddlewares(logger, tokenService, stubDenylist{})
	staffController := staff.NewStaffController(logger, staff.NewStaffUsecase(logger, nil))

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController, staffController)

	req := httptest.NewRequest("POST", "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, constvars.StatusUnauthorized, rec.Code)
	mockAuthUsecase.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
}

type stubDenylist struct{}

func (stubDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return nil
}

func (stubDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}
