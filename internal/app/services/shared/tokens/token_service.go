package tokens

import (
	"errors"
	"staffportal-service/internal/app/config"
	"staffportal-service/internal/app/models"
	"staffportal-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Sentinel errors returned by Verify. Expired and malformed are kept apart
// so the boundary can answer "please log in again" vs "invalid token".
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims is the single claim set for both token kinds. Step tells them
// apart: a step-up token proves the password stage only and carries no
// role; a session token is authoritative for role-based decisions with the
// role frozen at issuance time.
type Claims struct {
	UserID      string `json:"userId"`
	Username    string `json:"username,omitempty"`
	Role        string `json:"role,omitempty"`
	Step        string `json:"step"`
	MFAVerified bool   `json:"mfaVerified,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) IsStepUp() bool {
	return c.Step == constvars.TokenStepMFARequired
}

func (c *Claims) IsSession() bool {
	return c.Step == constvars.TokenStepSession
}

type TokenService struct {
	secret     []byte
	stepUpTTL  time.Duration
	sessionTTL time.Duration
}

func NewTokenService(internalConfig *config.InternalConfig) *TokenService {
	return &TokenService{
		secret:     []byte(internalConfig.JWT.Secret),
		stepUpTTL:  time.Duration(internalConfig.JWT.StepUpExpTimeInMinute) * time.Minute,
		sessionTTL: time.Duration(internalConfig.JWT.SessionExpTimeInHour) * time.Hour,
	}
}

// IssueStepUp signs the 5 minute token handed out after a correct password
// when the account still owes a step-up verification.
func (s *TokenService) IssueStepUp(account *models.StaffAccount) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   account.ID,
		Username: account.Username,
		Step:     constvars.TokenStepMFARequired,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.stepUpTTL)),
		},
	}
	return s.sign(claims)
}

// IssueFull signs the 24 hour session token. The account role is embedded
// at issuance and is not re-checked against the live account until the next
// login.
func (s *TokenService) IssueFull(account *models.StaffAccount, mfaVerified bool) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:      account.ID,
		Username:    account.Username,
		Role:        account.Role,
		Step:        constvars.TokenStepSession,
		MFAVerified: mfaVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	return s.sign(claims)
}

func (s *TokenService) sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry together and decodes the claims. An
// expired-but-well-formed token returns ErrTokenExpired; anything else that
// fails to parse returns ErrTokenMalformed.
func (s *TokenService) Verify(rawToken string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return s.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
