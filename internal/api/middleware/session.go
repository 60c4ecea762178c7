package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

const identityContextKey = "identity"

// Session resolves the bearer token, if any, into the current identity and
// attaches it to the request. It never rejects: anonymous requests and
// requests with invalid or expired tokens pass through with no identity, and
// the guards decide what that means per route.
func Session(resolver ports.SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token != "" {
				identity, err := resolver.Resolve(c.Request().Context(), token)
				if err != nil {
					return err
				}
				if identity != nil {
					c.Set(identityContextKey, identity)
				}
			}
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity attached by Session, or nil when the
// request is anonymous.
func CurrentIdentity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityContextKey).(*domain.Identity)
	return identity
}

func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
