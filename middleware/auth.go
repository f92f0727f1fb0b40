package middleware

import (
	"net/http"
	"time"

	"law_office_app_go/db"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "law_office_session"
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
)

// RequireAuth is middleware that requires a valid session
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			session, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				ClearSessionCookie(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			if !session.User.IsActive {
				ClearSessionCookie(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "Account is deactivated")
			}

			c.Set(ContextKeyUser, &session.User)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// GetCurrentUser returns the authenticated user from the request context
func GetCurrentUser(c echo.Context) *models.User {
	if user, ok := c.Get(ContextKeyUser).(*models.User); ok {
		return user
	}
	return nil
}

// SetSessionCookie writes the session cookie on login
func SetSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
