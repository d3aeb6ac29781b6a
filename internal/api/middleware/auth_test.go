package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
)

type stubVerifier struct {
	claims *domain.AdminClaims
	err    error
	calls  int
	tokens []string
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*domain.AdminClaims, error) {
	s.calls++
	s.tokens = append(s.tokens, token)
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func newGateContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

func TestAdmin_ValidSession(t *testing.T) {
	verifier := &stubVerifier{claims: &domain.AdminClaims{Username: "alice"}}
	c, rec, _ := newGateContext(t, &http.Cookie{Name: CookieName, Value: "good-token"})

	called := 0
	handler := Admin(verifier)(func(c echo.Context) error {
		called++
		if c.Get("username") != "alice" {
			t.Fatalf("username not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if called != 1 {
		t.Fatalf("wrapped handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(verifier.tokens) != 1 || verifier.tokens[0] != "good-token" {
		t.Fatalf("verifier saw wrong token: %v", verifier.tokens)
	}
}

func TestAdmin_MissingCookie(t *testing.T) {
	verifier := &stubVerifier{claims: &domain.AdminClaims{Username: "alice"}}
	c, rec, e := newGateContext(t, nil)

	called := 0
	handler := Admin(verifier)(func(c echo.Context) error {
		called++
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if called != 0 {
		t.Fatalf("wrapped handler must not run without a cookie")
	}
	if verifier.calls != 0 {
		t.Fatalf("verifier must not be consulted without a cookie")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdmin_EmptyCookie(t *testing.T) {
	verifier := &stubVerifier{claims: &domain.AdminClaims{Username: "alice"}}
	c, rec, e := newGateContext(t, &http.Cookie{Name: CookieName, Value: ""})

	called := 0
	handler := Admin(verifier)(func(c echo.Context) error {
		called++
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if called != 0 {
		t.Fatalf("wrapped handler must not run with an empty cookie")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdmin_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{err: domain.ErrTokenInvalid}
	c, rec, e := newGateContext(t, &http.Cookie{Name: CookieName, Value: "tampered"})

	called := 0
	handler := Admin(verifier)(func(c echo.Context) error {
		called++
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if called != 0 {
		t.Fatalf("wrapped handler must not run with an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
