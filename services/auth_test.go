package services

import (
	"testing"
	"time"

	"law_office_app_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(&models.User{}, &models.Session{})
	return db
}

func createAuthTestUser(db *gorm.DB) *models.User {
	hash, _ := HashPassword("correct horse battery")
	user := &models.User{
		Name:     "Sam Adler",
		Email:    "sam@office.test",
		Password: hash,
		IsActive: true,
	}
	db.Create(user)
	return user
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, VerifyPassword(hash, "hunter2hunter2"))
	assert.False(t, VerifyPassword(hash, "hunter2hunter3"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestGenerateSessionTokenIsUnique(t *testing.T) {
	a, err := GenerateSessionToken()
	assert.NoError(t, err)
	b, err := GenerateSessionToken()
	assert.NoError(t, err)

	assert.Len(t, a, SessionTokenLength*2) // hex encoded
	assert.NotEqual(t, a, b)
}

func TestCreateAndValidateSession(t *testing.T) {
	db := setupAuthTestDB()
	user := createAuthTestUser(db)

	session, err := CreateSession(db, user.ID, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	validated, err := ValidateSession(db, session.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, validated.UserID)
	assert.Equal(t, user.Email, validated.User.Email)
}

func TestValidateSessionUnknownToken(t *testing.T) {
	db := setupAuthTestDB()

	_, err := ValidateSession(db, "no-such-token")
	assert.Error(t, err)
}

func TestValidateSessionExpiredIsDeleted(t *testing.T) {
	db := setupAuthTestDB()
	user := createAuthTestUser(db)

	session, err := CreateSession(db, user.ID, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	db.Model(session).Update("expires_at", time.Now().Add(-1*time.Hour))

	_, err = ValidateSession(db, session.Token)
	assert.Error(t, err)

	// Expired sessions are purged on sight
	var count int64
	db.Model(&models.Session{}).Where("token = ?", session.Token).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteSession(t *testing.T) {
	db := setupAuthTestDB()
	user := createAuthTestUser(db)

	session, err := CreateSession(db, user.ID, "127.0.0.1", "test-agent")
	assert.NoError(t, err)

	assert.NoError(t, DeleteSession(db, session.Token))

	_, err = ValidateSession(db, session.Token)
	assert.Error(t, err)
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := setupAuthTestDB()
	user := createAuthTestUser(db)

	fresh, _ := CreateSession(db, user.ID, "127.0.0.1", "test-agent")
	stale, _ := CreateSession(db, user.ID, "127.0.0.1", "test-agent")
	db.Model(stale).Update("expires_at", time.Now().Add(-1*time.Hour))

	assert.NoError(t, CleanupExpiredSessions(db))

	var count int64
	db.Model(&models.Session{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err := ValidateSession(db, fresh.Token)
	assert.NoError(t, err)
}
