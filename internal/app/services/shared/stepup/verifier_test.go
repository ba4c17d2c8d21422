package stepup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackupCodeVerifier_AcceptsKnownCodes(t *testing.T) {
	verifier := NewBackupCodeVerifier(DefaultBackupCodes)

	for _, code := range DefaultBackupCodes {
		assert.True(t, verifier.VerifyCode("doctor", code), code)
	}
}

func TestBackupCodeVerifier_CaseInsensitive(t *testing.T) {
	verifier := NewBackupCodeVerifier(DefaultBackupCodes)

	assert.True(t, verifier.VerifyCode("doctor", "test01"))
	assert.True(t, verifier.VerifyCode("doctor", "TeSt05"))
}

func TestBackupCodeVerifier_RejectsUnknownCodes(t *testing.T) {
	verifier := NewBackupCodeVerifier(DefaultBackupCodes)

	assert.False(t, verifier.VerifyCode("doctor", "TEST06"))
	assert.False(t, verifier.VerifyCode("doctor", ""))
	assert.False(t, verifier.VerifyCode("doctor", "123456"))
}
