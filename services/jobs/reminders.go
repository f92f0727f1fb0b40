package jobs

import (
	"log"
	"time"

	"law_office_app_go/config"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"gorm.io/gorm"
)

// SendDueReminders emails a reminder for every calendar event whose reminder
// window has opened and which has not been reminded yet. Events already in the
// past are marked sent without emailing.
func SendDueReminders(db *gorm.DB, cfg *config.Config) error {
	now := time.Now()

	var events []models.CalendarEvent
	if err := db.Where("reminder_offset_minutes > 0 AND reminder_sent = ?", false).
		Where("starts_at > ?", now.Add(-24*time.Hour)).
		Find(&events).Error; err != nil {
		return err
	}

	var users []models.User
	if err := db.Where("is_active = ?", true).Find(&users).Error; err != nil {
		return err
	}

	for i := range events {
		event := &events[i]
		dueAt, ok := event.ReminderDueAt()
		if !ok || now.Before(dueAt) {
			continue
		}

		if now.Before(event.StartsAt) {
			for _, user := range users {
				email := services.BuildEventReminderEmail(event, user.Email)
				if err := services.SendEmail(cfg, email); err != nil {
					log.Printf("[WARNING] Failed to send reminder for event %s to %s: %v",
						event.ID, user.Email, err)
				}
			}
		}

		if err := db.Model(event).Update("reminder_sent", true).Error; err != nil {
			log.Printf("[WARNING] Failed to mark reminder sent for event %s: %v", event.ID, err)
		}
	}

	return nil
}
