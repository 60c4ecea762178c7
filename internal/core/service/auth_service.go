package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// Landing paths selected after login by identity kind.
const (
	AdminLanding  = "/admin/dashboard"
	PublicLanding = "/"
)

// TokenDenylist abstracts the session-revocation store (Redis).
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService implements registration, login, logout, and bootstrap seeding.
type AuthService struct {
	repo      ports.AccountRepository
	denylist  TokenDenylist
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, denylist TokenDenylist, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, denylist: denylist, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a standard account. Only the bootstrap seeder creates
// privileged accounts.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Account, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, domain.KindStandard, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("account registered")
	return created, nil
}

// Login checks the privileged collection first, then the standard one. An
// email present in the privileged collection with a non-matching password
// still falls through to the standard collection. Every failure collapses
// into ErrInvalidCredentials so responses never reveal which collection, if
// any, the email belongs to.
func (s *AuthService) Login(ctx context.Context, email, password, next string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(identity)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	redirect := next
	if redirect == "" {
		if identity.Privileged() {
			redirect = AdminLanding
		} else {
			redirect = PublicLanding
		}
	}

	s.logger.Info().Str("kind", string(identity.Kind)).Int64("account_id", identity.Account.ID).Msg("login")
	return &ports.LoginResult{Token: token, Identity: identity, RedirectTo: redirect}, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	for _, kind := range []domain.IdentityKind{domain.KindPrivileged, domain.KindStandard} {
		account, err := s.repo.FindByEmail(ctx, kind, email)
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				continue
			}
			return nil, err
		}
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil {
			return &domain.Identity{Kind: kind, Account: account}, nil
		}
	}
	return nil, nil
}

// Logout revokes the token's jti until its natural expiry. Tokens that no
// longer parse have nothing left to revoke and are a silent no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := parseClaims(token, s.jwtSecret)
	if err != nil {
		return nil
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil
	}

	ttl := s.tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.denylist.Revoke(ctx, jti, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.logger.Info().Str("jti", jti).Msg("session revoked")
	return nil
}

// SeedAdmin creates the privileged account when none exists. Idempotent:
// re-running against a seeded store is a no-op, including when two processes
// race and the uniqueness constraint fails the loser.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, domain.ErrInvalidCredentials
	}

	n, err := s.repo.CountByKind(ctx, domain.KindPrivileged)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	_, err = s.repo.Create(ctx, domain.KindPrivileged, &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info().Str("email", email).Msg("admin account seeded")
	return true, nil
}

// issueToken signs an HS256 session token. The subject carries only the
// numeric account ID; the kind is recovered at resolution time by the
// privileged-first lookup in SessionResolver.
func (s *AuthService) issueToken(identity *domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(identity.Account.ID, 10),
		"jti": randomHex(16),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseClaims verifies signature, algorithm, and expiry.
func parseClaims(token, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
