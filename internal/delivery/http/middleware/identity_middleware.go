// Package middleware contains the Echo middleware of the HTTP delivery.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// userIDContextKey is the Echo context key the identity middleware stores the
// caller's user id under.
const userIDContextKey = "userID"

// UserIDHeader carries the authenticated caller's id. Authentication itself
// happens at the edge gateway; this service trusts the forwarded header.
const UserIDHeader = "X-User-ID"

// IdentityMiddleware extracts the caller identity from the forwarded header.
type IdentityMiddleware struct{}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// RequireUser rejects requests without a well-formed forwarded user id and
// stores the parsed id on the context for handlers.
func (m *IdentityMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(UserIDHeader)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "User identity header is missing"})
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user identity header"})
		}

		c.Set(userIDContextKey, userID)

		return next(c)
	}
}

// GetUserID returns the caller's user id set by RequireUser.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(userIDContextKey).(uuid.UUID)

	return userID, ok
}
