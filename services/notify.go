package services

import (
	"law_office_app_go/models"
	"log"

	"gorm.io/gorm"
)

// Notifier is the notification port every handler talks to. Calls are
// fire-and-forget: delivery problems are logged, never returned, so feedback
// can never block navigation.
type Notifier interface {
	Success(userID, message, linkURL string)
	Error(userID, message string)
}

// StoreNotifier persists notifications so the bell menu can replay them
type StoreNotifier struct {
	DB *gorm.DB
}

// NewStoreNotifier creates a DB-backed notifier
func NewStoreNotifier(db *gorm.DB) *StoreNotifier {
	return &StoreNotifier{DB: db}
}

func (s *StoreNotifier) Success(userID, message, linkURL string) {
	s.record(userID, models.NotificationLevelSuccess, message, linkURL)
}

func (s *StoreNotifier) Error(userID, message string) {
	s.record(userID, models.NotificationLevelError, message, "")
}

func (s *StoreNotifier) record(userID, level, message, linkURL string) {
	n := &models.Notification{
		Level:   level,
		Message: message,
		LinkURL: linkURL,
	}
	if userID != "" {
		n.UserID = &userID
	}
	if err := s.DB.Create(n).Error; err != nil {
		log.Printf("[WARNING] Failed to store notification: %v", err)
	}
}

// GetUnreadNotifications returns the most recent unread notifications for a user
func (s *StoreNotifier) GetUnreadNotifications(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.Where("(user_id IS NULL OR user_id = ?) AND read_at IS NULL", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&notifications).Error
	return notifications, err
}

// GetNotificationCount returns the unread notification count for a user
func (s *StoreNotifier) GetNotificationCount(userID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Notification{}).
		Where("(user_id IS NULL OR user_id = ?) AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

// MarkAsRead marks one notification as read for a user
func (s *StoreNotifier) MarkAsRead(notificationID, userID string) error {
	return s.DB.Model(&models.Notification{}).
		Where("id = ? AND (user_id IS NULL OR user_id = ?)", notificationID, userID).
		Update("read_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// MarkAllAsRead marks every unread notification as read for a user
func (s *StoreNotifier) MarkAllAsRead(userID string) error {
	return s.DB.Model(&models.Notification{}).
		Where("(user_id IS NULL OR user_id = ?) AND read_at IS NULL", userID).
		Update("read_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// RecordingNotifier collects messages in memory; used as the test substitute
type RecordingNotifier struct {
	Successes []string
	Errors    []string
}

func (r *RecordingNotifier) Success(userID, message, linkURL string) {
	r.Successes = append(r.Successes, message)
}

func (r *RecordingNotifier) Error(userID, message string) {
	r.Errors = append(r.Errors, message)
}
