package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseDocument stores the storage locator of an uploaded file attached to a case.
// FileURL is always the blob store URL, never a local path.
type CaseDocument struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseID string `gorm:"type:uuid;not null;index" json:"case_id"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"-"`

	FileURL          string `gorm:"not null" json:"fileUrl"`
	FileOriginalName string `json:"file_original_name"`
	FileSize         int64  `json:"file_size"`
	MimeType         string `json:"mime_type"`
	Description      string `gorm:"type:text" json:"description"`
}

// BeforeCreate hook to generate UUID
func (d *CaseDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CaseDocument model
func (CaseDocument) TableName() string {
	return "case_documents"
}
