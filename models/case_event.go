package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseEvent is a dated entry in a case's own timeline (distinct from the
// office-wide calendar, see CalendarEvent)
type CaseEvent struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"-"`

	Title      string    `gorm:"not null" json:"title"`
	OccurredAt time.Time `gorm:"not null" json:"date"`
}

// BeforeCreate hook to generate UUID
func (e *CaseEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseEvent model
func (CaseEvent) TableName() string {
	return "case_events"
}
