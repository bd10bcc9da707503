package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/identity"
	"github.com/Samrat25/HireX/internal/http/response"
	"github.com/Samrat25/HireX/internal/security"
)

type contextKey string

const ContextProfileKey contextKey = "profile"

type AuthMiddleware struct {
	verifier *security.TokenVerifier
	identity *app.IdentityService
}

func NewAuthMiddleware(verifier *security.TokenVerifier, identityService *app.IdentityService) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, identity: identityService}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "missing authorization header", nil))
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil))
			return
		}
		claims, err := m.verifier.Parse(parts[1])
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "invalid token", err))
			return
		}
		defaultRole := identity.RoleCandidate
		if requested := strings.TrimSpace(r.Header.Get("X-Default-Role")); requested == string(identity.RoleAdmin) {
			defaultRole = identity.RoleAdmin
		}
		profile, err := m.identity.Resolve(r.Context(), *claims, defaultRole)
		if err != nil {
			response.Error(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), ContextProfileKey, *profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireRole(role identity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, ok := ProfileFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeForbidden, "role not found", nil))
				return
			}
			if profile.Role != role {
				response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func ProfileFromContext(ctx context.Context) (identity.Profile, bool) {
	profile, ok := ctx.Value(ContextProfileKey).(identity.Profile)
	return profile, ok
}
