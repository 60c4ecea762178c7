package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Login entry point and public landing page referenced by guard responses.
const (
	loginPath  = "/auth/login"
	publicPath = "/"
)

// RequireAuthenticated rejects anonymous requests. The 401 body names the
// login entry point and echoes the originally requested destination so the
// client can resume it after logging in. The guard only reads the session,
// never mutates it.
func RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentIdentity(c) == nil {
			return unauthenticated(c)
		}
		return next(c)
	}
}

// RequirePrivileged rejects identities that are not administrators. The
// authentication check always runs first, so an anonymous request gets 401
// here, never 403, whether or not RequireAuthenticated precedes this guard
// in the chain.
func RequirePrivileged(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := CurrentIdentity(c)
		if identity == nil {
			return unauthenticated(c)
		}
		if !identity.Privileged() {
			return c.JSON(http.StatusForbidden, map[string]string{
				"error":    "access denied, admins only",
				"redirect": publicPath,
			})
		}
		return next(c)
	}
}

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "authentication required",
		"login": loginPath,
		"next":  c.Request().RequestURI,
	})
}
