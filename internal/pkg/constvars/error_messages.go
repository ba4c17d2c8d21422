package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients. The login/MFA literals mirror the portal's
// published contract, including the account-not-found vs wrong-password
// split (see DESIGN.md).
const (
	ErrClientUserNotFound         = "User not found"
	ErrClientInvalidPassword      = "Invalid password"
	ErrClientSessionExpired       = "Session expired. Please login again."
	ErrClientInvalidMFACode       = "Invalid MFA code. Use backup codes: TEST01, TEST02, TEST03"
	ErrClientNoTokenProvided      = "No token provided"
	ErrClientTokenExpired         = "Token expired"
	ErrClientInvalidTokenFormat   = "Invalid token format"
	ErrClientInvalidToken         = "Invalid token"
	ErrClientAdminAccessRequired  = "Admin access required"
	ErrClientMissingFields        = "Missing required fields"
	ErrClientSearchQueryRequired  = "Search query required"
	ErrClientPrescriptionRequired = "Medication and dosage are required"
	ErrClientHistoryRequired      = "Condition and diagnosis are required"
	ErrClientVitalsRequired       = "Blood pressure and heart rate are required"
	ErrClientObservationRequired  = "Observation is required"
	ErrClientPatientNotFound      = "Patient not found"
	ErrClientStaffNotFound        = "User not found"
	ErrClientUsernameAlreadyExist = "Username already exists"
	ErrClientEmailAlreadyExist    = "Email already exists"
	ErrClientEmployeeIDExist      = "Employee ID already exists"

	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidImageFormat            = "invalid image data"
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevValidationFailed     = "validation failed"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevAccountNotFound      = "account not found for given login name"
	ErrDevPasswordMismatch     = "password hash comparison failed"
	ErrDevFailedToHashPassword = "failed to hash password"

	// Token messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenMalformed = "token is structurally invalid"
	ErrDevAuthTokenExpired   = "token signature valid but expired"
	ErrDevAuthTokenMissing   = "authorization header has no bearer token"
	ErrDevAuthTokenRevoked   = "token jti found on denylist"
	ErrDevAuthGenerateToken  = "failed to sign token"
	ErrDevAuthWrongPurpose   = "step-up token presented for resource access"
	ErrDevAuthStepUpExpired  = "step-up token invalid or expired"
	ErrDevAuthBadBackupCode  = "supplied code not in backup code set"
	ErrDevAuthRoleMismatch   = "role claim does not satisfy requirement"

	// Staff messages
	ErrDevStaffDuplicateUsername = "username already taken"
	ErrDevStaffDuplicateEmail    = "email already taken"
	ErrDevStaffDuplicateEmployee = "employee id already taken"
	ErrDevStaffNotExists         = "staff account does not exist"
	ErrDevStaffMissingFields     = "required staff fields absent"

	// Patient messages
	ErrDevPatientNotExists        = "patient document does not exist"
	ErrDevPatientMissingFields    = "required patient fields absent"
	ErrDevPatientEmptySearchQuery = "search query is empty"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from cursor"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"
	ErrDevDBFailedToIncrementCounter = "failed to increment sequence counter"

	// Redis messages
	ErrDevRedisSetData = "failed to set data into redis"
	ErrDevRedisGetData = "failed to get data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue"

	// Minio messages
	ErrDevMinioCreateObject = "failed to put object into bucket %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "server failed to process request"
)
