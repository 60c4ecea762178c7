package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrDuplicateEmail, http.StatusConflict},
		{domain.ErrDuplicateMessage, http.StatusConflict},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrProjectNotFound, http.StatusNotFound},
		{domain.ErrResumeNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		code, _ := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, _ := renderError(t, fmt.Errorf("find project: %w", domain.ErrProjectNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped domain error, got %d", code)
	}
}

func TestErrorHandler_InvalidCredentialsStayGeneric(t *testing.T) {
	// Whatever the failure cause, the client-visible message is the same.
	code, msg := renderError(t, domain.ErrInvalidCredentials)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "invalid credentials" {
		t.Fatalf("expected generic message, got %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked to client: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "invalid payload" {
		t.Fatalf("unexpected message %q", msg)
	}
}
