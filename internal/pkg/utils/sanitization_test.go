package utils

import (
	"staffportal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	request := &requests.Login{Username: "  doctor  ", Password: "password123"}
	SanitizeLoginRequest(request)
	assert.Equal(t, "doctor", request.Username)
	assert.Equal(t, "password123", request.Password)
}

func TestSanitizeVerifyMFARequest(t *testing.T) {
	request := &requests.VerifyMFA{Username: " doctor ", Token: " TEST01 ", TempToken: "abc"}
	SanitizeVerifyMFARequest(request)
	assert.Equal(t, "doctor", request.Username)
	assert.Equal(t, "TEST01", request.Token)
}

func TestSanitizeRegisterStaffRequest(t *testing.T) {
	request := &requests.RegisterStaff{
		Username: " newdoc ",
		Email:    " NewDoc@Hospital.COM ",
		FullName: " Dr. New ",
	}
	SanitizeRegisterStaffRequest(request)
	assert.Equal(t, "newdoc", request.Username)
	assert.Equal(t, "newdoc@hospital.com", request.Email)
	assert.Equal(t, "Dr. New", request.FullName)
}

func TestSanitizeSearchQuery(t *testing.T) {
	assert.Equal(t, "cardiac", SanitizeSearchQuery("  cardiac  "))
	assert.Equal(t, "", SanitizeSearchQuery("   "))
}
