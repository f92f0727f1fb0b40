package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseExpense tracks a cost incurred for a case
type CaseExpense struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"-"`

	Name       string    `gorm:"not null" json:"name"`
	Amount     float64   `gorm:"not null" json:"amount"`
	IncurredAt time.Time `gorm:"not null" json:"date"`
}

// BeforeCreate hook to generate UUID
func (e *CaseExpense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseExpense model
func (CaseExpense) TableName() string {
	return "case_expenses"
}
