package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	ownerIDKey  = "owner_id"
	usernameKey = "username"
)

// Middleware authenticates requests with a Bearer token and stores the
// resolved owner identity in the echo context. Handlers read it back with
// OwnerID/Username — owner identity is always threaded explicitly, never
// taken from ambient session state.
func Middleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			owner, err := claims.OwnerID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			c.Set(ownerIDKey, owner)
			c.Set(usernameKey, claims.Username)
			return next(c)
		}
	}
}

// OwnerID returns the authenticated owner id from the echo context.
func OwnerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ownerIDKey).(uuid.UUID)
	return id, ok
}

// Username returns the authenticated username from the echo context.
func Username(c echo.Context) string {
	name, _ := c.Get(usernameKey).(string)
	return name
}
