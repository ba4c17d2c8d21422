package constvars

const (
	LoggingRequestIDKey = "request_id"
	LoggingUsernameKey  = "username"
	LoggingStaffIDKey   = "staff_id"
	LoggingPatientIDKey = "patient_id"
	LoggingQueueKey     = "queue"
)
