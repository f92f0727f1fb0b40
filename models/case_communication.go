package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Communication type constants
const (
	CommunicationTypeCall    = "call"
	CommunicationTypeEmail   = "email"
	CommunicationTypeMeeting = "meeting"
	CommunicationTypeLetter  = "letter"
)

// CaseCommunication records a client-facing exchange on a case
type CaseCommunication struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"-"`

	Title      string    `gorm:"not null" json:"title"`
	Type       string    `gorm:"not null" json:"type"`
	OccurredAt time.Time `gorm:"not null" json:"date"`
	Summary    string    `json:"summary"`
	Detail     string    `gorm:"type:text" json:"detail"`
}

// BeforeCreate hook to generate UUID
func (c *CaseCommunication) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseCommunication model
func (CaseCommunication) TableName() string {
	return "case_communications"
}

// CommunicationTypes returns the accepted communication type values
func CommunicationTypes() []string {
	return []string{CommunicationTypeCall, CommunicationTypeEmail,
		CommunicationTypeMeeting, CommunicationTypeLetter}
}
