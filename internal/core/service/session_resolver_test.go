package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

func newTestResolver(repo *stubAccountRepo, denylist *stubDenylist) *SessionResolver {
	return NewSessionResolver(repo, denylist, "secret", zerolog.Nop())
}

func loginToken(t *testing.T, svc *AuthService, email, password string) string {
	t.Helper()
	result, err := svc.Login(context.Background(), email, password, "")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return result.Token
}

func TestSessionResolver_ResolvesStandard(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(domain.KindStandard, 7, "gina@x.com", "pass")
	denylist := newStubDenylist()
	svc := newTestAuthService(repo, denylist)
	resolver := newTestResolver(repo, denylist)

	token := loginToken(t, svc, "gina@x.com", "pass")

	identity, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity == nil {
		t.Fatalf("expected identity, got nil")
	}
	if identity.Kind != domain.KindStandard || identity.Account.ID != 7 {
		t.Fatalf("resolved wrong identity: kind=%s id=%d", identity.Kind, identity.Account.ID)
	}
}

func TestSessionResolver_PrivilegedWinsIDCollision(t *testing.T) {
	// Per-kind sequences can allocate the same numeric ID to a standard and
	// a privileged account. A token carrying that ID must always resolve to
	// the privileged one.
	repo := newStubAccountRepo()
	repo.seed(domain.KindPrivileged, 3, "admin@x.com", "adminpass")
	repo.seed(domain.KindStandard, 3, "user@x.com", "userpass")
	denylist := newStubDenylist()
	svc := newTestAuthService(repo, denylist)
	resolver := newTestResolver(repo, denylist)

	token := loginToken(t, svc, "admin@x.com", "adminpass")

	identity, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity == nil {
		t.Fatalf("expected identity, got nil")
	}
	if identity.Kind != domain.KindPrivileged {
		t.Fatalf("expected privileged identity, got %s", identity.Kind)
	}
	if identity.Account.Email != "admin@x.com" {
		t.Fatalf("resolved wrong account: %s", identity.Account.Email)
	}
}

func TestSessionResolver_GarbageToken(t *testing.T) {
	resolver := newTestResolver(newStubAccountRepo(), newStubDenylist())

	identity, err := resolver.Resolve(context.Background(), "garbage")
	if err != nil {
		t.Fatalf("expected nil error for garbage token, got %v", err)
	}
	if identity != nil {
		t.Fatalf("expected nil identity for garbage token, got %+v", identity)
	}
}

func TestSessionResolver_RevokedToken(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(domain.KindStandard, 1, "hank@x.com", "pass")
	denylist := newStubDenylist()
	svc := newTestAuthService(repo, denylist)
	resolver := newTestResolver(repo, denylist)

	token := loginToken(t, svc, "hank@x.com", "pass")
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	identity, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("revoked token must not resolve, got %+v", identity)
	}
}

func TestSessionResolver_ExpiredToken(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(domain.KindStandard, 1, "ida@x.com", "pass")
	resolver := newTestResolver(repo, newStubDenylist())

	// Sign a token that expired a minute ago.
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "1",
		"jti": randomHex(16),
		"iat": now.Add(-time.Hour).Unix(),
		"exp": now.Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	identity, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("expired token must not resolve, got %+v", identity)
	}
}

func TestSessionResolver_DeletedAccount(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(domain.KindStandard, 1, "jack@x.com", "pass")
	denylist := newStubDenylist()
	svc := newTestAuthService(repo, denylist)
	resolver := newTestResolver(repo, denylist)

	token := loginToken(t, svc, "jack@x.com", "pass")
	delete(repo.accounts[domain.KindStandard], 1)

	identity, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if identity != nil {
		t.Fatalf("token for a deleted account must not resolve, got %+v", identity)
	}
}
