package app

import (
	"context"
	"time"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/identity"
	"github.com/Samrat25/HireX/internal/security"
)

// IdentityService resolves authenticated token claims into a profile held by
// the external identity provider. The provider owns the role; this service
// only reads it.
type IdentityService struct {
	provider identity.Provider
	logger   Logger
}

func NewIdentityService(provider identity.Provider, logger Logger) *IdentityService {
	return &IdentityService{provider: provider, logger: logger}
}

// Resolve fetches the profile for the authenticated user. On first sign-in
// (no profile yet) one is created with the caller-supplied default role. If
// the provider fails after authentication succeeded, the user is not blocked:
// a candidate-role profile built from the token claims is returned instead.
func (s *IdentityService) Resolve(ctx context.Context, claims security.Claims, defaultRole identity.Role) (*identity.Profile, error) {
	now := time.Now().UTC()
	profile, err := s.provider.GetProfile(ctx, claims.UserID)
	if err == nil {
		if err := s.provider.UpdateLastLogin(ctx, claims.UserID, now); err != nil {
			s.logError("failed to update last login for " + claims.UserID)
		}
		return profile, nil
	}
	if common.Is(err, common.CodeNotFound) {
		created, createErr := s.provider.CreateProfile(ctx, identity.Profile{
			UserID:        claims.UserID,
			Email:         claims.Email,
			DisplayName:   claims.Name,
			Role:          defaultRole,
			EmailVerified: claims.EmailVerified,
			CreatedAt:     now,
			LastLoginAt:   now,
		})
		if createErr == nil {
			return created, nil
		}
		err = createErr
	}
	s.logError("profile lookup failed for " + claims.UserID + ": " + err.Error())
	return &identity.Profile{
		UserID:        claims.UserID,
		Email:         claims.Email,
		DisplayName:   claims.Name,
		Role:          identity.RoleCandidate,
		EmailVerified: claims.EmailVerified,
		LastLoginAt:   now,
	}, nil
}

func (s *IdentityService) logError(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg)
}
