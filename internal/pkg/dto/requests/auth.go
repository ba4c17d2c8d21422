package requests

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// VerifyMFA completes the step-up stage. Token carries the backup code the
// user typed; TempToken is the short-lived token issued at login.
type VerifyMFA struct {
	Username  string `json:"username" validate:"required"`
	Token     string `json:"token" validate:"required"`
	TempToken string `json:"tempToken" validate:"required"`
}
