package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/api/metrics"
	"github.com/devfolio/portfolio-api/internal/api/middleware"
	"github.com/devfolio/portfolio-api/internal/core/domain"
	"github.com/devfolio/portfolio-api/internal/core/ports"
	"github.com/devfolio/portfolio-api/internal/core/service"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token      string           `json:"token,omitempty"`
	Identity   *domain.Identity `json:"identity,omitempty"`
	RedirectTo string           `json:"redirect_to,omitempty"`
}

// Register creates a new standard account.
//
// @Summary      Register a standard account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{Identity: &domain.Identity{Kind: domain.KindStandard, Account: account}})
}

// Login authenticates against both account collections and issues a session
// token. A caller already holding a valid session is redirected to its
// kind-appropriate landing page without re-prompting.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Param        next  query     string        false "Destination to resume after login"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	if identity := middleware.CurrentIdentity(c); identity != nil {
		redirect := service.PublicLanding
		if identity.Privileged() {
			redirect = service.AdminLanding
		}
		return c.JSON(http.StatusOK, authResponse{Identity: identity, RedirectTo: redirect})
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, resumeDestination(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginFailuresTotal.Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(result.Identity.Kind)).Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token:      result.Token,
		Identity:   result.Identity,
		RedirectTo: result.RedirectTo,
	})
}

// Logout revokes the presented session token. Always succeeds and always
// points the client back at the public landing page.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		if err := h.authService.Logout(c.Request().Context(), parts[1]); err != nil {
			return err
		}
		metrics.SessionsRevokedTotal.Inc()
	}
	return c.JSON(http.StatusOK, authResponse{RedirectTo: service.PublicLanding})
}

// Me reports the current identity, or null when the request is anonymous.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, authResponse{Identity: middleware.CurrentIdentity(c)})
}

// resumeDestination returns the validated post-login destination captured by
// a guard redirect. Only same-site paths are honoured.
func resumeDestination(c echo.Context) string {
	next := c.QueryParam("next")
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
