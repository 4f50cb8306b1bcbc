package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMiddleware_RequireUser(t *testing.T) {
	m := NewIdentityMiddleware()
	userID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, userID.String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireUser(func(c echo.Context) error {
		got, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, userID, got)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityMiddleware_RequireUser_MissingHeader(t *testing.T) {
	m := NewIdentityMiddleware()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireUser(func(c echo.Context) error {
		t.Error("handler should not run")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIdentityMiddleware_RequireUser_MalformedHeader(t *testing.T) {
	m := NewIdentityMiddleware()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireUser(func(c echo.Context) error {
		t.Error("handler should not run")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
