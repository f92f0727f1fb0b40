package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Calendar event type constants
const (
	EventTypeCourt    = "court"
	EventTypeMeeting  = "meeting"
	EventTypeDeadline = "deadline"
	EventTypeInternal = "internal"
	EventTypeOther    = "other"
)

// CalendarEvent is an entry on the office-wide calendar. CaseName is a
// denormalized copy of the related case's name, empty when none is linked.
type CalendarEvent struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title    string `gorm:"not null" json:"title"`
	Type     string `gorm:"not null;index" json:"type"`
	Location string `json:"location"`

	StartsAt time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	AllDay   bool      `gorm:"not null;default:false" json:"all_day"`

	CaseID   *string `gorm:"type:uuid;index" json:"case_id,omitempty"`
	CaseName string  `json:"casename"`

	// Comma-separated participant names
	Participants string `gorm:"type:text" json:"participants"`

	// Minutes before StartsAt at which a reminder email is due; 0 disables it
	ReminderOffsetMinutes int  `gorm:"not null;default:0" json:"reminder_offset_minutes"`
	ReminderSent          bool `gorm:"not null;default:false" json:"reminder_sent"`

	// Relationships
	RelatedCase *Case `gorm:"foreignKey:CaseID" json:"case,omitempty"`
}

// BeforeCreate hook to generate UUID
func (e *CalendarEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for CalendarEvent model
func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// ParticipantList splits the stored participants into individual names
func (e *CalendarEvent) ParticipantList() []string {
	if strings.TrimSpace(e.Participants) == "" {
		return nil
	}
	parts := strings.Split(e.Participants, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ReminderDueAt returns the time the reminder should fire and whether one is configured
func (e *CalendarEvent) ReminderDueAt() (time.Time, bool) {
	if e.ReminderOffsetMinutes <= 0 {
		return time.Time{}, false
	}
	return e.StartsAt.Add(-time.Duration(e.ReminderOffsetMinutes) * time.Minute), true
}

// IsValidEventType checks if the event type is valid
func IsValidEventType(eventType string) bool {
	switch eventType {
	case EventTypeCourt, EventTypeMeeting, EventTypeDeadline, EventTypeInternal, EventTypeOther:
		return true
	}
	return false
}

// EventTypes returns the accepted calendar event type values
func EventTypes() []string {
	return []string{EventTypeCourt, EventTypeMeeting, EventTypeDeadline,
		EventTypeInternal, EventTypeOther}
}
