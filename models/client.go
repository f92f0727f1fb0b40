package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a person the office represents
type Client struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName    string `gorm:"not null" json:"fullname"`
	Email       string `gorm:"not null" json:"email"`
	PhoneNumber string `gorm:"not null" json:"phonenumber"`
	Address     string `gorm:"type:text" json:"address"`

	// Public URL of the uploaded profile image, empty when none was attached
	ImageURL string `json:"imageUrl"`
}

// BeforeCreate hook to generate UUID
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}
