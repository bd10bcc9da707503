package identity

import (
	"context"
	"time"
)

// Role is managed by the external identity provider; the workflow only ever
// reads it.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
)

type Profile struct {
	UserID          string    `json:"uid"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"display_name"`
	Role            Role      `json:"role"`
	EmailVerified   bool      `json:"email_verified"`
	ProfileComplete bool      `json:"profile_complete"`
	CreatedAt       time.Time `json:"created_at"`
	LastLoginAt     time.Time `json:"last_login_at"`
}

// Provider is the external identity/profile collaborator. It is consumed,
// never implemented, by the core.
type Provider interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, profile Profile) (*Profile, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}
