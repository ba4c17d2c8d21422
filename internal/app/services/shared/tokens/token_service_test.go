package tokens

import (
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:                "test-secret",
			StepUpExpTimeInMinute: 5,
			SessionExpTimeInHour:  24,
		},
	}
}

func testAccount() *models.StaffAccount {
	return &models.StaffAccount{
		ID:       "64f000000000000000000001",
		Username: "doctor",
		Role:     constvars.RoleDoctor,
		FullName: "Dr. Sarah",
	}
}

func TestTokenService_StepUpRoundTrip(t *testing.T) {
	service := NewTokenService(newTestConfig())

	raw, err := service.IssueStepUp(testAccount())
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	claims, err := service.Verify(raw)
	assert.NoError(t, err)
	assert.True(t, claims.IsStepUp())
	assert.False(t, claims.IsSession())
	assert.Equal(t, "doctor", claims.Username)
	assert.Empty(t, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_SessionRoundTrip(t *testing.T) {
	service := NewTokenService(newTestConfig())

	raw, err := service.IssueFull(testAccount(), true)
	assert.NoError(t, err)

	claims, err := service.Verify(raw)
	assert.NoError(t, err)
	assert.True(t, claims.IsSession())
	assert.Equal(t, constvars.RoleDoctor, claims.Role)
	assert.True(t, claims.MFAVerified)
	assert.Equal(t, "64f000000000000000000001", claims.UserID)
}

func TestTokenService_ExpiredIsDistinguishedFromMalformed(t *testing.T) {
	expiredConfig := newTestConfig()
	expiredConfig.JWT.StepUpExpTimeInMinute = -1
	service := NewTokenService(expiredConfig)

	raw, err := service.IssueStepUp(testAccount())
	assert.NoError(t, err)

	_, err = service.Verify(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = service.Verify("definitely-not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	service := NewTokenService(newTestConfig())
	raw, err := service.IssueFull(testAccount(), false)
	assert.NoError(t, err)

	otherConfig := newTestConfig()
	otherConfig.JWT.Secret = "a-different-secret"
	otherService := NewTokenService(otherConfig)

	_, err = otherService.Verify(raw)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenService_UniqueJTIPerToken(t *testing.T) {
	service := NewTokenService(newTestConfig())

	first, err := service.IssueFull(testAccount(), true)
	assert.NoError(t, err)
	second, err := service.IssueFull(testAccount(), true)
	assert.NoError(t, err)

	firstClaims, err := service.Verify(first)
	assert.NoError(t, err)
	secondClaims, err := service.Verify(second)
	assert.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
