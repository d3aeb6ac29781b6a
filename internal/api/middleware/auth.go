package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
)

// CookieName is the admin session cookie, set at login and cleared at logout.
const CookieName = "admin-token"

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.AdminClaims, error)
}

// Admin gates a route group behind a valid admin session cookie. Every
// failure mode (missing cookie, tampered or expired token, non-admin claims,
// revoked session) produces the same 401 so the response reveals nothing
// about why verification failed. On success the admin username is injected
// into the request context and the wrapped handler runs unchanged.
func Admin(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			claims, err := verifier.Verify(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set("username", claims.Username)
			return next(c)
		}
	}
}
