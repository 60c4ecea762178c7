package ports

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

// LoginResult carries everything a handler needs after a successful login.
type LoginResult struct {
	Token      string
	Identity   *domain.Identity
	RedirectTo string
}

type AuthService interface {
	// Register creates a standard account. Administrators are never created
	// through registration, only by bootstrap seeding.
	Register(ctx context.Context, name, email, password string) (*domain.Account, error)

	// Login authenticates an email/password pair against both collections,
	// privileged first, and issues a session token on success. next, when
	// non-empty, overrides the kind-appropriate landing path in RedirectTo.
	// Failures of any cause surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password, next string) (*LoginResult, error)

	// Logout revokes the given session token unconditionally. Revoking an
	// already-invalid token is not an error.
	Logout(ctx context.Context, token string) error

	// SeedAdmin creates the privileged account if none exists yet. Returns
	// true when an account was created, false when seeding was a no-op.
	SeedAdmin(ctx context.Context, email, password string) (bool, error)
}

// SessionResolver maps an opaque session token to at most one identity.
// A token that cannot be resolved yields (nil, nil): an invalid or expired
// session is anonymity, not an error.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}
