package responses

// StaffProfile is the full disclosure returned once a session token exists.
type StaffProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

// PendingStepUpProfile deliberately omits id and role; the password stage
// alone does not earn full disclosure.
type PendingStepUpProfile struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Login carries either a full session token with a StaffProfile, or a
// temporary token with a PendingStepUpProfile, both under the same "user"
// key the frontend already consumes.
type Login struct {
	Token       string      `json:"token,omitempty"`
	TempToken   string      `json:"tempToken,omitempty"`
	MFARequired bool        `json:"mfaRequired"`
	User        interface{} `json:"user,omitempty"`
}

type VerifyMFA struct {
	Token string        `json:"token"`
	User  *StaffProfile `json:"user"`
}
