package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"staffportal-service/internal/app/services/shared/redis"
	"staffportal-service/internal/app/services/shared/tokens"
	"staffportal-service/internal/pkg/constvars"
	"staffportal-service/internal/pkg/exceptions"
	"staffportal-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log           *zap.Logger
	TokenService  *tokens.TokenService
	TokenDenylist redis.TokenDenylist
}

func NewMiddlewares(logger *zap.Logger, tokenService *tokens.TokenService, tokenDenylist redis.TokenDenylist) *Middlewares {
	return &Middlewares{
		Log:           logger,
		TokenService:  tokenService,
		TokenDenylist: tokenDenylist,
	}
}

// Authenticate admits only live session tokens. Step-up tokens prove the
// password stage but never open protected resources, and a denylisted jti is
// treated the same as a forged token.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("authorization header absent")))
			return
		}

		rawToken := strings.TrimPrefix(header, constvars.BearerTokenPrefix)
		claims, err := m.TokenService.Verify(rawToken)
		if err != nil {
			if err == tokens.ErrTokenExpired {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenExpired(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMalformed(err))
			return
		}

		if claims.IsStepUp() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(fmt.Errorf("step-up token on protected route")))
			return
		}

		revoked, err := m.TokenDenylist.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if revoked {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenRevoked(fmt.Errorf("jti %s is denylisted", claims.ID)))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_TOKEN_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree on the role frozen into the session token.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(constvars.CONTEXT_TOKEN_CLAIMS_KEY).(*tokens.Claims)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("no claims in request context")))
				return
			}
			if claims.Role != role {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleForbidden(fmt.Errorf("role %s does not satisfy %s", claims.Role, role)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireRole(constvars.RoleAdmin)(next)
}
