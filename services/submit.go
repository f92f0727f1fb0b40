package services

import (
	"context"
	"fmt"
	"time"

	"law_office_app_go/forms"
	"law_office_app_go/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission pipeline. Each Save* function turns a validated snapshot into
// exactly one create or update call, performing any attachment upload first so
// the written record always carries the storage URL. Upload and write failures
// surface as a single error; an upload that succeeded before a failed write is
// not rolled back.

// ResolveClientReference returns the canonical client display name. When a
// client was picked from the list, the picked record's name wins over whatever
// raw text was typed, even if stale.
func ResolveClientReference(db *gorm.DB, pickedClientID, typedName string) (string, error) {
	if pickedClientID == "" {
		return typedName, nil
	}
	var client models.Client
	if err := db.First(&client, "id = ?", pickedClientID).Error; err != nil {
		return "", fmt.Errorf("failed to resolve client reference: %w", err)
	}
	return client.FullName, nil
}

// SaveClient creates or updates a client from a validated snapshot.
// existingID empty means create. An attached picture is uploaded before the
// record write and the record stores the returned URL, never the file handle.
func SaveClient(ctx context.Context, db *gorm.DB, storage StorageProvider, vals forms.Values, existingID string) (*models.Client, error) {
	client := &models.Client{
		ID:          existingID,
		FullName:    vals["fullname"].Text(),
		Email:       vals["email"].Text(),
		PhoneNumber: vals["phonenumber"].Text(),
		Address:     vals["address"].Text(),
	}
	if client.ID == "" {
		client.ID = uuid.New().String()
	}

	if ref := vals["picture"].File(); ref != nil {
		if err := ValidateImageContent(ref); err != nil {
			return nil, err
		}
		key := GenerateClientImageKey(client.ID, ref.Name)
		result, err := storage.Upload(ctx, ref, key)
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile image: %w", err)
		}
		client.ImageURL = result.URL
	}

	if existingID == "" {
		if err := db.Create(client).Error; err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}
		return client, nil
	}

	// Full-record update; the edit form always resubmits every field
	updates := map[string]interface{}{
		"full_name":    client.FullName,
		"email":        client.Email,
		"phone_number": client.PhoneNumber,
		"address":      client.Address,
	}
	if client.ImageURL != "" {
		updates["image_url"] = client.ImageURL
	}
	if err := db.Model(&models.Client{}).Where("id = ?", existingID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// SaveCase creates or updates a case. clientName must already be resolved
// through ResolveClientReference.
func SaveCase(db *gorm.DB, vals forms.Values, clientName, existingID string) (*models.Case, error) {
	filingDate, err := ParseDate(vals["filingdate"].Text())
	if err != nil {
		return nil, err
	}

	record := &models.Case{
		ID:              existingID,
		CaseNumber:      vals["casenumber"].Text(),
		CaseName:        vals["casename"].Text(),
		ClientName:      clientName,
		AttorneyName:    vals["attorneyname"].Text(),
		CourtName:       vals["courtname"].Text(),
		PracticeArea:    vals["practicearea"].Choice(),
		Status:          vals["status"].Choice(),
		FilingDate:      filingDate,
		Description:     SanitizeRichText(vals["description"].Text()),
		ExpectedExpense: vals["expectedexpense"].Number(),
	}

	if existingID == "" {
		if err := db.Create(record).Error; err != nil {
			return nil, fmt.Errorf("failed to create case: %w", err)
		}
		return record, nil
	}

	updates := map[string]interface{}{
		"case_number":      record.CaseNumber,
		"case_name":        record.CaseName,
		"client_name":      record.ClientName,
		"attorney_name":    record.AttorneyName,
		"court_name":       record.CourtName,
		"practice_area":    record.PracticeArea,
		"status":           record.Status,
		"filing_date":      record.FilingDate,
		"description":      record.Description,
		"expected_expense": record.ExpectedExpense,
	}
	if err := db.Model(&models.Case{}).Where("id = ?", existingID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return record, nil
}

// SaveCaseExpense appends an expense to a case
func SaveCaseExpense(db *gorm.DB, caseID string, vals forms.Values) (*models.CaseExpense, error) {
	date, err := ParseDate(vals["date"].Text())
	if err != nil {
		return nil, err
	}
	expense := &models.CaseExpense{
		CaseID:     caseID,
		Name:       vals["name"].Text(),
		Amount:     vals["amount"].Number(),
		IncurredAt: date,
	}
	if err := db.Create(expense).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// SaveCaseMilestone appends a milestone to a case
func SaveCaseMilestone(db *gorm.DB, caseID string, vals forms.Values) (*models.CaseMilestone, error) {
	date, err := ParseDate(vals["date"].Text())
	if err != nil {
		return nil, err
	}
	milestone := &models.CaseMilestone{
		CaseID:    caseID,
		Title:     vals["title"].Text(),
		ReachedAt: date,
	}
	if err := db.Create(milestone).Error; err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	return milestone, nil
}

// SaveCaseEvent appends a timeline entry to a case
func SaveCaseEvent(db *gorm.DB, caseID string, vals forms.Values) (*models.CaseEvent, error) {
	date, err := ParseDate(vals["date"].Text())
	if err != nil {
		return nil, err
	}
	event := &models.CaseEvent{
		CaseID:     caseID,
		Title:      vals["title"].Text(),
		OccurredAt: date,
	}
	if err := db.Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to create case event: %w", err)
	}
	return event, nil
}

// SaveCaseCommunication appends a communication record to a case
func SaveCaseCommunication(db *gorm.DB, caseID string, vals forms.Values) (*models.CaseCommunication, error) {
	date, err := ParseDate(vals["date"].Text())
	if err != nil {
		return nil, err
	}
	communication := &models.CaseCommunication{
		CaseID:     caseID,
		Title:      vals["title"].Text(),
		Type:       vals["type"].Choice(),
		OccurredAt: date,
		Summary:    vals["summary"].Text(),
		Detail:     SanitizeRichText(vals["detail"].Text()),
	}
	if err := db.Create(communication).Error; err != nil {
		return nil, fmt.Errorf("failed to create communication: %w", err)
	}
	return communication, nil
}

// SaveCaseDocument uploads the attached file and then writes the document
// record carrying the upload's URL
func SaveCaseDocument(ctx context.Context, db *gorm.DB, storage StorageProvider, caseID string, vals forms.Values) (*models.CaseDocument, error) {
	ref := vals["file"].File()
	if ref == nil {
		return nil, fmt.Errorf("no file attached")
	}

	key := GenerateCaseDocumentKey(caseID, ref.Name)
	result, err := storage.Upload(ctx, ref, key)
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	document := &models.CaseDocument{
		CaseID:           caseID,
		FileURL:          result.URL,
		FileOriginalName: ref.Name,
		FileSize:         result.FileSize,
		MimeType:         result.MimeType,
		Description:      vals["description"].Text(),
	}
	if err := db.Create(document).Error; err != nil {
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}
	return document, nil
}

// SaveCalendarEvent creates or updates an office calendar event. A picked case
// reference is denormalized into CaseName; the canonical case name overrides
// any typed text.
func SaveCalendarEvent(db *gorm.DB, vals forms.Values, pickedCaseID, existingID string, startsAt, endsAt time.Time, allDay bool) (*models.CalendarEvent, error) {
	caseName := vals["casename"].Text()
	var caseIDPtr *string
	if pickedCaseID != "" {
		var related models.Case
		if err := db.First(&related, "id = ?", pickedCaseID).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve case reference: %w", err)
		}
		caseName = related.CaseName
		caseIDPtr = &related.ID
	}

	event := &models.CalendarEvent{
		ID:                    existingID,
		Title:                 vals["title"].Text(),
		Type:                  vals["type"].Choice(),
		Location:              vals["location"].Text(),
		StartsAt:              startsAt,
		EndsAt:                endsAt,
		AllDay:                allDay,
		CaseID:                caseIDPtr,
		CaseName:              caseName,
		Participants:          vals["participants"].Text(),
		ReminderOffsetMinutes: int(vals["reminderoffset"].Number()),
	}

	if existingID == "" {
		if err := db.Create(event).Error; err != nil {
			return nil, fmt.Errorf("failed to create event: %w", err)
		}
		return event, nil
	}

	updates := map[string]interface{}{
		"title":                   event.Title,
		"type":                    event.Type,
		"location":                event.Location,
		"starts_at":               event.StartsAt,
		"ends_at":                 event.EndsAt,
		"all_day":                 event.AllDay,
		"case_id":                 event.CaseID,
		"case_name":               event.CaseName,
		"participants":            event.Participants,
		"reminder_offset_minutes": event.ReminderOffsetMinutes,
		// Rescheduling re-arms the reminder
		"reminder_sent": false,
	}
	if err := db.Model(&models.CalendarEvent{}).Where("id = ?", existingID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}
