package auth

import (
	"context"
	"fmt"
	"staffportal-service/internal/app/services/shared/redis"
	"staffportal-service/internal/app/services/shared/stepup"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/app/services/staff"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/dto/requests"
	"staffportal-service/internal/pkg/dto/responses"
	"staffportal-service/internal/pkg/exceptions"
	"staffportal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	Log             *zap.Logger
	StaffRepository staff.StaffRepository
	TokenService    *tokens.TokenService
	StepUpVerifier  stepup.Verifier
	TokenDenylist   redis.TokenDenylist
}

func NewAuthUsecase(
	logger *zap.Logger,
	staffMongoRepository staff.StaffRepository,
	tokenService *tokens.TokenService,
	stepUpVerifier stepup.Verifier,
	tokenDenylist redis.TokenDenylist,
) AuthUsecase {
	return &authUsecase{
		Log:             logger,
		StaffRepository: staffMongoRepository,
		TokenService:    tokenService,
		StepUpVerifier:  stepUpVerifier,
		TokenDenylist:   tokenDenylist,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	// Find the account
	account, err := uc.StaffRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrLoginUserNotFound(fmt.Errorf("no account for username %s", request.Username))
	}

	// Check password
	if !utils.CheckPasswordHash(request.Password, account.Password) {
		return nil, exceptions.ErrLoginInvalidPassword(fmt.Errorf("password mismatch for username %s", request.Username))
	}

	// Step-up stage for protected accounts
	if account.MFAEnabled {
		tempToken, err := uc.TokenService.IssueStepUp(account)
		if err != nil {
			return nil, exceptions.ErrTokenGenerate(err)
		}
		uc.Log.Info("login pending step-up verification",
			zap.String(constvars.LoggingUsernameKey, account.Username),
		)
		return &responses.Login{
			TempToken:   tempToken,
			MFARequired: true,
			User: &responses.PendingStepUpProfile{
				Username: account.Username,
				FullName: account.FullName,
			},
		}, nil
	}

	// No step-up owed, issue the session token directly
	token, err := uc.TokenService.IssueFull(account, false)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	uc.Log.Info("login successful",
		zap.String(constvars.LoggingUsernameKey, account.Username),
	)
	return &responses.Login{
		Token:       token,
		MFARequired: false,
		User: &responses.StaffProfile{
			ID:       account.ID,
			Username: account.Username,
			Role:     account.Role,
			FullName: account.FullName,
		},
	}, nil
}

func (uc *authUsecase) VerifyMFA(ctx context.Context, request *requests.VerifyMFA) (*responses.VerifyMFA, error) {
	// The temp token must still be valid and minted for step-up
	claims, err := uc.TokenService.Verify(request.TempToken)
	if err != nil {
		return nil, exceptions.ErrStepUpSessionExpired(err)
	}
	if !claims.IsStepUp() {
		return nil, exceptions.ErrStepUpSessionExpired(fmt.Errorf("token step is %s", claims.Step))
	}

	// Re-read the account so the issued role reflects the live document
	account, err := uc.StaffRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrLoginUserNotFound(fmt.Errorf("no account for username %s", request.Username))
	}

	// Check the supplied code
	if !uc.StepUpVerifier.VerifyCode(request.Username, request.Token) {
		return nil, exceptions.ErrInvalidStepUpCode(fmt.Errorf("code rejected for username %s", request.Username))
	}

	token, err := uc.TokenService.IssueFull(account, true)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}
	uc.Log.Info("step-up verification successful",
		zap.String(constvars.LoggingUsernameKey, account.Username),
	)
	return &responses.VerifyMFA{
		Token: token,
		User: &responses.StaffProfile{
			ID:       account.ID,
			Username: account.Username,
			Role:     account.Role,
			FullName: account.FullName,
		},
	}, nil
}

// Logout denylists the presented token's jti for the remainder of its
// lifetime so it can no longer pass the gate.
func (uc *authUsecase) Logout(ctx context.Context, claims *tokens.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := uc.TokenDenylist.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}
	uc.Log.Info("logout successful",
		zap.String(constvars.LoggingStaffIDKey, claims.UserID),
	)
	return nil
}
