package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusActive  = "active"
	CaseStatusPending = "pending"
	CaseStatusClosed  = "closed"
	CaseStatusAppeal  = "appeal"
)

// Practice area constants
const (
	PracticeAreaCivil     = "civil"
	PracticeAreaCriminal  = "criminal"
	PracticeAreaCorporate = "corporate"
	PracticeAreaFamily    = "family"
	PracticeAreaProperty  = "property"
)

// Case represents a legal matter handled by the office.
// ClientName is a denormalized copy of the client's display name taken at
// submission time; editing the client does not cascade here.
type Case struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CaseNumber   string `gorm:"not null;uniqueIndex" json:"casenumber"`
	CaseName     string `gorm:"not null" json:"casename"`
	ClientName   string `gorm:"not null;index" json:"clientname"`
	AttorneyName string `json:"attorneyname"`
	CourtName    string `json:"courtname"`

	PracticeArea string `gorm:"not null;index" json:"practicearea"`
	Status       string `gorm:"not null;default:active;index" json:"status"`

	FilingDate      time.Time `gorm:"not null" json:"filingdate"`
	Description     string    `gorm:"type:text" json:"description"`
	ExpectedExpense float64   `json:"expectedexpense"`

	// Owned sub-records; these have no lifecycle outside their case
	Expenses       []CaseExpense       `gorm:"foreignKey:CaseID" json:"expenses,omitempty"`
	Documents      []CaseDocument      `gorm:"foreignKey:CaseID" json:"documents,omitempty"`
	Events         []CaseEvent         `gorm:"foreignKey:CaseID" json:"events,omitempty"`
	Milestones     []CaseMilestone     `gorm:"foreignKey:CaseID" json:"milestones,omitempty"`
	Communications []CaseCommunication `gorm:"foreignKey:CaseID" json:"communications,omitempty"`
}

// BeforeCreate hook to generate UUID and default the filing date
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.FilingDate.IsZero() {
		c.FilingDate = time.Now()
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsClosed checks if the case is closed
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusActive, CaseStatusPending, CaseStatusClosed, CaseStatusAppeal:
		return true
	}
	return false
}

// IsValidPracticeArea checks if the practice area is valid
func IsValidPracticeArea(area string) bool {
	switch area {
	case PracticeAreaCivil, PracticeAreaCriminal, PracticeAreaCorporate,
		PracticeAreaFamily, PracticeAreaProperty:
		return true
	}
	return false
}

// CaseStatuses returns the accepted case status values
func CaseStatuses() []string {
	return []string{CaseStatusActive, CaseStatusPending, CaseStatusClosed, CaseStatusAppeal}
}

// PracticeAreas returns the accepted practice area values
func PracticeAreas() []string {
	return []string{PracticeAreaCivil, PracticeAreaCriminal, PracticeAreaCorporate,
		PracticeAreaFamily, PracticeAreaProperty}
}
