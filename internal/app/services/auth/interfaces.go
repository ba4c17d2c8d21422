package auth

import (
	"context"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/pkg/dto/requests"
	"staffportal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	VerifyMFA(ctx context.Context, request *requests.VerifyMFA) (*responses.VerifyMFA, error)
	Logout(ctx context.Context, claims *tokens.Claims) error
}
