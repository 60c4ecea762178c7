package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// SessionResolver maps a session token to the current identity.
//
// ID sequences are independent per kind, so the identifier embedded in a
// token can name an account in both collections at once. Resolution checks
// the privileged collection first; this ordering is the documented tie-break
// and must not be reordered.
type SessionResolver struct {
	repo      ports.AccountRepository
	denylist  TokenDenylist
	jwtSecret string
	logger    zerolog.Logger
}

func NewSessionResolver(repo ports.AccountRepository, denylist TokenDenylist, jwtSecret string, logger zerolog.Logger) *SessionResolver {
	return &SessionResolver{repo: repo, denylist: denylist, jwtSecret: jwtSecret, logger: logger}
}

// Resolve returns the identity named by the token, or (nil, nil) when the
// token is malformed, expired, revoked, or names no account. Only
// infrastructure failures (store unreachable) surface as errors.
func (r *SessionResolver) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := parseClaims(token, r.jwtSecret)
	if err != nil {
		return nil, nil
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, nil
	}

	if jti, _ := claims["jti"].(string); jti != "" {
		revoked, err := r.denylist.IsRevoked(ctx, jti)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, nil
		}
	}

	// Privileged first, then standard.
	for _, kind := range []domain.IdentityKind{domain.KindPrivileged, domain.KindStandard} {
		account, err := r.repo.FindByID(ctx, kind, id)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				continue
			}
			return nil, err
		}
		return &domain.Identity{Kind: kind, Account: account}, nil
	}

	// Token was valid but the account is gone: treat as an expired session.
	r.logger.Debug().Int64("account_id", id).Msg("session names no account")
	return nil, nil
}
