package handlers

import (
	"net/http"
	"strings"
	"time"

	"law_office_app_go/db"
	"law_office_app_go/middleware"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// Package level variable holding a real bcrypt hash, used so password checks
// take the same time whether or not the account exists
var globalDummyHash string

func init() {
	hash, _ := services.HashPassword("dummy_password_for_timing_mitigation")
	if hash != "" {
		globalDummyHash = hash
	}
}

const authFailureMessage = "Invalid email or password"

// RegisterPostHandler creates a new account from email/password
func RegisterPostHandler(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")

	if name == "" || email == "" || len(password) < 8 {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, email and a password of at least 8 characters are required")
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, genericFailureMessage)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		IsActive: true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// Uniform message; duplicate emails are not distinguished
		return echo.NewHTTPError(http.StatusBadRequest, "Could not create account. Please try again.")
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, genericFailureMessage)
	}
	middleware.SetSessionCookie(c, session.Token, session.ExpiresAt)

	return c.JSON(http.StatusCreated, user)
}

// LoginPostHandler handles the login form submission
func LoginPostHandler(c echo.Context) error {
	email := strings.TrimSpace(strings.ToLower(c.FormValue("email")))
	password := c.FormValue("password")

	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Timing attack mitigation: always run a bcrypt comparison
		services.VerifyPassword(globalDummyHash, password)
		return echo.NewHTTPError(http.StatusUnauthorized, authFailureMessage)
	}

	if !services.VerifyPassword(user.Password, password) {
		return echo.NewHTTPError(http.StatusUnauthorized, authFailureMessage)
	}

	if !user.IsActive {
		return echo.NewHTTPError(http.StatusUnauthorized, authFailureMessage)
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, genericFailureMessage)
	}
	middleware.SetSessionCookie(c, session.Token, session.ExpiresAt)

	now := time.Now()
	db.DB.Model(&user).Update("last_login_at", now)

	return c.JSON(http.StatusOK, user)
}

// LogoutHandler destroys the current session
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		services.DeleteSession(db.DB, cookie.Value)
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// GetCurrentUserHandler returns the authenticated user
func GetCurrentUserHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return c.JSON(http.StatusOK, user)
}
