package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestMiddleware_ValidToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret-at-least-32-chars-long"), time.Hour)
	accountID := uuid.New()
	token, err := issuer.Issue(accountID, "maria")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Middleware(issuer)(func(c echo.Context) error {
		called = true
		owner, ok := OwnerID(c)
		if !ok || owner != accountID {
			t.Errorf("expected owner %s in context, got %v ok=%v", accountID, owner, ok)
		}
		if Username(c) != "maria" {
			t.Errorf("expected username maria, got %q", Username(c))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Error("expected next handler to be called")
	}
}

func TestMiddleware_RejectsMissingAndMalformedHeaders(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret-at-least-32-chars-long"), time.Hour)
	e := echo.New()

	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc123",
		"bad token":    "Bearer not.a.token",
		"single token": "Bearer",
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		c := e.NewContext(req, httptest.NewRecorder())

		err := Middleware(issuer)(func(c echo.Context) error {
			t.Errorf("%s: next handler should not run", name)
			return nil
		})(c)

		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %v", name, err)
		}
	}
}
