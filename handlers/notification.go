package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetNotificationsHandler returns the current user's recent unread notifications
func GetNotificationsHandler(c echo.Context) error {
	userID := currentUserID(c)

	notifications, err := Notifications.GetUnreadNotifications(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notifications")
	}
	count, err := Notifications.GetNotificationCount(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count notifications")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unread_count":  count,
	})
}

// MarkNotificationReadHandler marks one notification as read
func MarkNotificationReadHandler(c echo.Context) error {
	if err := Notifications.MarkAsRead(c.Param("id"), currentUserID(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to mark notification as read")
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsReadHandler marks every unread notification as read
func MarkAllNotificationsReadHandler(c echo.Context) error {
	if err := Notifications.MarkAllAsRead(currentUserID(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to mark notifications as read")
	}
	return c.NoContent(http.StatusNoContent)
}
