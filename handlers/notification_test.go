package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"law_office_app_go/middleware"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupNotificationStore(database *gorm.DB) *services.StoreNotifier {
	store := services.NewStoreNotifier(database)
	Notify = store
	Notifications = store
	return store
}

func notificationTestUser(t *testing.T, database *gorm.DB) *models.User {
	user := &models.User{Name: "Sam Adler", Email: "sam@office.test", Password: "x", IsActive: true}
	assert.NoError(t, database.Create(user).Error)
	return user
}

func TestGetNotifications(t *testing.T) {
	database := setupTestDB(t)
	store := setupNotificationStore(database)
	user := notificationTestUser(t, database)

	store.Success(user.ID, "Client saved", "/clients")
	store.Error(user.ID, "Something went wrong. Please try again.")
	store.Success("someone-else", "Not yours", "/cases")

	_, c, rec := setupEcho(http.MethodGet, "/api/notifications", nil)
	c.Set(middleware.ContextKeyUser, user)

	err := GetNotificationsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Notifications []models.Notification `json:"notifications"`
		UnreadCount   int64                 `json:"unread_count"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Len(t, payload.Notifications, 2)
	assert.Equal(t, int64(2), payload.UnreadCount)
}

func TestMarkNotificationRead(t *testing.T) {
	database := setupTestDB(t)
	store := setupNotificationStore(database)
	user := notificationTestUser(t, database)

	store.Success(user.ID, "Client saved", "/clients")

	var n models.Notification
	assert.NoError(t, database.First(&n).Error)

	_, c, rec := setupEcho(http.MethodPost, "/api/notifications/"+n.ID+"/read", nil)
	c.Set(middleware.ContextKeyUser, user)
	c.SetParamNames("id")
	c.SetParamValues(n.ID)

	err := MarkNotificationReadHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	count, err := store.GetNotificationCount(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	database := setupTestDB(t)
	store := setupNotificationStore(database)
	user := notificationTestUser(t, database)

	store.Success(user.ID, "One", "")
	store.Error(user.ID, "Two")

	_, c, rec := setupEcho(http.MethodPost, "/api/notifications/read-all", nil)
	c.Set(middleware.ContextKeyUser, user)

	err := MarkAllNotificationsReadHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	count, err := store.GetNotificationCount(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
