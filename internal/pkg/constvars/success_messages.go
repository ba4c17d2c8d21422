package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccess     = "successfully login"
	MFAVerifySuccess = "MFA verification successful"
	LogoutSuccess    = "successfully logout"

	// Staff messages
	StaffCreatedSuccess    = "User created successfully"
	StaffUpdatedSuccess    = "user updated successfully"
	StaffDeletedSuccess    = "User deleted successfully"
	StaffListSuccess       = "get users successfully"
	StaffRegisteredSuccess = "User created successfully"

	// Patient messages
	PatientCreatedSuccess  = "patient created successfully"
	PatientUpdatedSuccess  = "patient updated successfully"
	PatientDeletedSuccess  = "Patient deleted successfully"
	PatientListSuccess     = "get patients successfully"
	PatientSearchSuccess   = "search patients successfully"
	PatientGetSuccess      = "get patient successfully"
	PrescriptionAddSuccess = "prescription added successfully"
	HistoryAddSuccess      = "medical history added successfully"
	VitalsAddSuccess       = "vitals added successfully"
	NursingNoteAddSuccess  = "nursing note added successfully"
	SubRecordsGetSuccess   = "get records successfully"

	// System messages
	SecurityStatusSuccess     = "get security status successfully"
	PerformanceMetricsSuccess = "get performance metrics successfully"
)
