package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

type stubResolver struct {
	identities map[string]*domain.Identity
}

func (r *stubResolver) Resolve(_ context.Context, token string) (*domain.Identity, error) {
	return r.identities[token], nil
}

func runSession(t *testing.T, resolver *stubResolver, authorization string) *domain.Identity {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *domain.Identity
	handler := Session(resolver)(func(c echo.Context) error {
		captured = CurrentIdentity(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return captured
}

func TestSession_AttachesIdentity(t *testing.T) {
	identity := &domain.Identity{Kind: domain.KindPrivileged, Account: &domain.Account{ID: 2}}
	resolver := &stubResolver{identities: map[string]*domain.Identity{"good-token": identity}}

	got := runSession(t, resolver, "Bearer good-token")
	if got != identity {
		t.Fatalf("expected identity attached, got %+v", got)
	}
}

func TestSession_AnonymousWithoutHeader(t *testing.T) {
	resolver := &stubResolver{identities: map[string]*domain.Identity{}}

	if got := runSession(t, resolver, ""); got != nil {
		t.Fatalf("expected no identity, got %+v", got)
	}
}

func TestSession_InvalidTokenPassesThrough(t *testing.T) {
	resolver := &stubResolver{identities: map[string]*domain.Identity{}}

	if got := runSession(t, resolver, "Bearer expired"); got != nil {
		t.Fatalf("expected no identity for unknown token, got %+v", got)
	}
}

func TestSession_MalformedHeaderIgnored(t *testing.T) {
	identity := &domain.Identity{Kind: domain.KindStandard, Account: &domain.Account{ID: 1}}
	resolver := &stubResolver{identities: map[string]*domain.Identity{"tok": identity}}

	if got := runSession(t, resolver, "Basic dXNlcjpwYXNz"); got != nil {
		t.Fatalf("expected non-bearer scheme ignored, got %+v", got)
	}
}
