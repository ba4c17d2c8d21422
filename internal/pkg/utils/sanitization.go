package utils

import (
	"staffportal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Username = strings.TrimSpace(request.Username)
}

func SanitizeVerifyMFARequest(request *requests.VerifyMFA) {
	request.Username = strings.TrimSpace(request.Username)
	request.Token = strings.TrimSpace(request.Token)
}

func SanitizeRegisterStaffRequest(request *requests.RegisterStaff) {
	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.FullName = strings.TrimSpace(request.FullName)
	request.EmployeeID = strings.TrimSpace(request.EmployeeID)
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
}

func SanitizeSearchQuery(query string) string {
	return strings.TrimSpace(query)
}
