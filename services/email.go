package services

import (
	"fmt"
	"log"
	"strings"

	"law_office_app_go/config"
	"law_office_app_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email through Resend. In test mode (or when no API key is
// configured) the message is logged to the console instead.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode || cfg.ResendAPIKey == "" {
		log.Printf("[EMAIL TEST MODE] To: %s | Subject: %s\n%s",
			strings.Join(email.To, ", "), email.Subject, email.TextBody)
		return nil
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// BuildEventReminderEmail builds the reminder message for an upcoming event
func BuildEventReminderEmail(event *models.CalendarEvent, to string) *Email {
	when := event.StartsAt.Format("Mon, 02 Jan 2006 15:04")
	if event.AllDay {
		when = event.StartsAt.Format("Mon, 02 Jan 2006") + " (all day)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Reminder: %s\n\n", event.Title)
	fmt.Fprintf(&b, "When: %s\n", when)
	if event.Location != "" {
		fmt.Fprintf(&b, "Where: %s\n", event.Location)
	}
	if event.CaseName != "" {
		fmt.Fprintf(&b, "Case: %s\n", event.CaseName)
	}
	if names := event.ParticipantList(); len(names) > 0 {
		fmt.Fprintf(&b, "Participants: %s\n", strings.Join(names, ", "))
	}
	text := b.String()

	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("Upcoming: %s", event.Title),
		TextBody: text,
		HTMLBody: "<pre>" + text + "</pre>",
	}
}
