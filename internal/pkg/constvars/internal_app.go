package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_TOKEN_CLAIMS_KEY ContextKey = "token_claims"
)

const (
	MongoCollectionStaff    = "staff"
	MongoCollectionPatients = "patients"
	MongoCollectionCounters = "counters"
)

const (
	RoleDoctor = "doctor"
	RoleNurse  = "nurse"
	RoleAdmin  = "admin"
)

// Token purposes. A step-up token only authorizes the MFA verification
// endpoint; a session token carries the role captured at issuance.
const (
	TokenStepMFARequired = "mfa_required"
	TokenStepSession     = "session"
)

const (
	PatientStatusActive     = "Active"
	PatientStatusDischarged = "Discharged"
	PatientStatusCritical   = "Critical"

	PatientPriorityHigh   = "High"
	PatientPriorityMedium = "Medium"
	PatientPriorityLow    = "Low"
)

const (
	PrescriptionStatusActive = "Active"

	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"

	NursingCategoryGeneralCare = "General Care"
	NursingPriorityNormal      = "Normal"
)

// PatientIDFormat renders the sequential display identifier, e.g. P001.
const PatientIDFormat = "P%03d"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	RedisTokenDenylistPrefix = "token_denylist:"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
