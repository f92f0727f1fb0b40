package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseMilestone marks a named point in a case's progress
type CaseMilestone struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"-"`

	Title     string    `gorm:"not null" json:"title"`
	ReachedAt time.Time `gorm:"not null" json:"date"`
}

// BeforeCreate hook to generate UUID
func (m *CaseMilestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseMilestone model
func (CaseMilestone) TableName() string {
	return "case_milestones"
}
