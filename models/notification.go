package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification levels
const (
	NotificationLevelSuccess = "SUCCESS"
	NotificationLevelError   = "ERROR"
	NotificationLevelInfo    = "INFO"
)

type Notification struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Targeting; null = all users
	UserID *string `gorm:"type:uuid;index" json:"user_id,omitempty"`

	Level   string `gorm:"not null" json:"level"`
	Message string `gorm:"type:text;not null" json:"message"`
	LinkURL string `json:"link_url,omitempty"` // e.g., "/cases/{case_id}"

	// Read tracking
	ReadAt *time.Time `json:"read_at,omitempty"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
