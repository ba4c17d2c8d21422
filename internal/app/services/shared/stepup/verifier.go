package stepup

import "strings"

// Verifier decides whether a supplied step-up code is acceptable for the
// given account. The backup-code implementation below is the only one the
// portal ships; a TOTP verifier can replace it without touching the auth
// usecase.
type Verifier interface {
	VerifyCode(username, code string) bool
}

type backupCodeVerifier struct {
	codes map[string]struct{}
}

// NewBackupCodeVerifier builds a Verifier over a fixed code list. Matching
// is case-insensitive.
func NewBackupCodeVerifier(codes []string) Verifier {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[strings.ToUpper(code)] = struct{}{}
	}
	return &backupCodeVerifier{codes: set}
}

// DefaultBackupCodes is the fixed demo code list the portal accepts.
var DefaultBackupCodes = []string{"TEST01", "TEST02", "TEST03", "TEST04", "TEST05"}

func (v *backupCodeVerifier) VerifyCode(_, code string) bool {
	_, ok := v.codes[strings.ToUpper(code)]
	return ok
}
