package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"law_office_app_go/forms"
	"law_office_app_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSubmitTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(
		&models.Client{},
		&models.Case{},
		&models.CaseExpense{},
		&models.CaseDocument{},
		&models.CaseEvent{},
		&models.CaseMilestone{},
		&models.CaseCommunication{},
		&models.CalendarEvent{},
	)
	return db
}

// recordingStorage counts uploads and returns a deterministic URL per key
type recordingStorage struct {
	uploads []string
	failing bool
}

func (r *recordingStorage) Upload(ctx context.Context, ref *forms.FileRef, key string) (*StorageResult, error) {
	if r.failing {
		return nil, errors.New("storage unavailable")
	}
	r.uploads = append(r.uploads, key)
	return &StorageResult{
		Key:      key,
		FileName: ref.Name,
		FileSize: ref.Size,
		MimeType: ref.ContentType,
		URL:      "https://files.test/" + key,
	}, nil
}

func (r *recordingStorage) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*StorageResult, error) {
	if r.failing {
		return nil, errors.New("storage unavailable")
	}
	r.uploads = append(r.uploads, key)
	return &StorageResult{Key: key, FileSize: size, MimeType: contentType, URL: "https://files.test/" + key}, nil
}

func (r *recordingStorage) Delete(ctx context.Context, key string) error { return nil }
func (r *recordingStorage) GetPublicURL(key string) string               { return "https://files.test/" + key }
func (r *recordingStorage) IsConfigured() bool                           { return true }

func pngFileRef(name string) *forms.FileRef {
	content := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, []byte("fakepixels")...)
	return &forms.FileRef{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func pdfFileRef(name string) *forms.FileRef {
	content := []byte("%PDF-1.4 fake document body")
	return &forms.FileRef{
		Name:        name,
		Size:        int64(len(content)),
		ContentType: "application/pdf",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func clientValues() forms.Values {
	return forms.Values{
		"fullname":    forms.Text("Jane Roe"),
		"email":       forms.Text("jane@roe.com"),
		"phonenumber": forms.Text("0712345678"),
		"address":     forms.Text("12 Harbor Lane"),
	}
}

func TestSaveClientWithoutPicture(t *testing.T) {
	db := setupSubmitTestDB()
	storage := &recordingStorage{}

	client, err := SaveClient(context.Background(), db, storage, clientValues(), "")

	assert.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Empty(t, storage.uploads)

	var saved models.Client
	assert.NoError(t, db.First(&saved, "id = ?", client.ID).Error)
	assert.Equal(t, "Jane Roe", saved.FullName)
	assert.Empty(t, saved.ImageURL)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestSaveClientUploadsPictureBeforeWrite(t *testing.T) {
	db := setupSubmitTestDB()
	storage := &recordingStorage{}

	vals := clientValues()
	vals["picture"] = forms.File(pngFileRef("portrait.png"))

	client, err := SaveClient(context.Background(), db, storage, vals, "")

	assert.NoError(t, err)
	assert.Len(t, storage.uploads, 1)

	// The record carries the URL handed back by storage, not a file handle
	var saved models.Client
	assert.NoError(t, db.First(&saved, "id = ?", client.ID).Error)
	assert.Equal(t, "https://files.test/"+storage.uploads[0], saved.ImageURL)
}

func TestSaveClientUploadFailureWritesNothing(t *testing.T) {
	db := setupSubmitTestDB()
	storage := &recordingStorage{failing: true}

	vals := clientValues()
	vals["picture"] = forms.File(pngFileRef("portrait.png"))

	_, err := SaveClient(context.Background(), db, storage, vals, "")

	assert.Error(t, err)
	var count int64
	db.Model(&models.Client{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSaveClientRejectsFakeImageContent(t *testing.T) {
	db := setupSubmitTestDB()
	storage := &recordingStorage{}

	vals := clientValues()
	vals["picture"] = forms.File(pdfFileRef("sneaky.png"))

	_, err := SaveClient(context.Background(), db, storage, vals, "")

	assert.Error(t, err)
	assert.Empty(t, storage.uploads)
}

func TestSaveClientUpdateKeepsExistingImage(t *testing.T) {
	db := setupSubmitTestDB()
	storage := &recordingStorage{}

	created, err := SaveClient(context.Background(), db, storage, clientValues(), "")
	assert.NoError(t, err)
	db.Model(&models.Client{}).Where("id = ?", created.ID).Update("image_url", "https://files.test/existing.png")

	vals := clientValues()
	vals["fullname"] = forms.Text("Jane Roe-Smith")
	_, err = SaveClient(context.Background(), db, storage, vals, created.ID)
	assert.NoError(t, err)

	var saved models.Client
	assert.NoError(t, db.First(&saved, "id = ?", created.ID).Error)
	assert.Equal(t, "Jane Roe-Smith", saved.FullName)
	assert.Equal(t, "https://files.test/existing.png", saved.ImageURL)
}

func TestResolveClientReferencePickedRecordWins(t *testing.T) {
	db := setupSubmitTestDB()

	client := &models.Client{FullName: "Jane Roe", Email: "jane@roe.com", PhoneNumber: "0712345678"}
	assert.NoError(t, db.Create(client).Error)

	// Stale typed text loses to the picked record's canonical name
	name, err := ResolveClientReference(db, client.ID, "Janet Rowe")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Roe", name)

	// No pick keeps the typed text
	name, err = ResolveClientReference(db, "", "Janet Rowe")
	assert.NoError(t, err)
	assert.Equal(t, "Janet Rowe", name)

	// A dangling pick is an error, not a silent fallback
	_, err = ResolveClientReference(db, "no-such-id", "Janet Rowe")
	assert.Error(t, err)
}

func caseValues() forms.Values {
	return forms.Values{
		"casenumber":   forms.Text("CV-2024-001"),
		"casename":     forms.Text("Roe v. Doe"),
		"clientname":   forms.Text("Jane Roe"),
		"attorneyname": forms.Text("Sam Adler"),
		"courtname":    forms.Text("High Court"),
		"practicearea": forms.Choice(models.PracticeAreaCivil),
		"status":       forms.Choice(models.CaseStatusActive),
		"filingdate":   forms.Text("2024-03-15"),
		"description":  forms.Text("Initial filing"),
	}
}

func TestSaveCaseCreateAndUpdate(t *testing.T) {
	db := setupSubmitTestDB()

	created, err := SaveCase(db, caseValues(), "Jane Roe", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2024-03-15", created.FilingDate.Format("2006-01-02"))

	vals := caseValues()
	vals["status"] = forms.Choice(models.CaseStatusClosed)
	_, err = SaveCase(db, vals, "Jane Roe", created.ID)
	assert.NoError(t, err)

	var saved models.Case
	assert.NoError(t, db.First(&saved, "id = ?", created.ID).Error)
	assert.Equal(t, models.CaseStatusClosed, saved.Status)

	var count int64
	db.Model(&models.Case{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSaveCaseSanitizesDescription(t *testing.T) {
	db := setupSubmitTestDB()

	vals := caseValues()
	vals["description"] = forms.Text(`<p>Filed on time</p><script>alert("x")</script>`)

	created, err := SaveCase(db, vals, "Jane Roe", "")
	assert.NoError(t, err)
	assert.Contains(t, created.Description, "Filed on time")
	assert.NotContains(t, created.Description, "<script>")
}

func TestSaveCaseDocumentCarriesUploadURL(t *testing.T) {
	db := setupSubmitTestDB()
	storage := &recordingStorage{}

	caseRecord, err := SaveCase(db, caseValues(), "Jane Roe", "")
	assert.NoError(t, err)

	doc, err := SaveCaseDocument(context.Background(), db, storage, caseRecord.ID, forms.Values{
		"file":        forms.File(pdfFileRef("brief.pdf")),
		"description": forms.Text("Opening brief"),
	})

	assert.NoError(t, err)
	assert.Len(t, storage.uploads, 1)
	assert.Equal(t, "https://files.test/"+storage.uploads[0], doc.FileURL)
	assert.Equal(t, "brief.pdf", doc.FileOriginalName)
	assert.Equal(t, "application/pdf", doc.MimeType)
}

func TestSaveCaseDocumentUploadFailureWritesNothing(t *testing.T) {
	db := setupSubmitTestDB()
	storage := &recordingStorage{failing: true}

	caseRecord, err := SaveCase(db, caseValues(), "Jane Roe", "")
	assert.NoError(t, err)

	_, err = SaveCaseDocument(context.Background(), db, storage, caseRecord.ID, forms.Values{
		"file": forms.File(pdfFileRef("brief.pdf")),
	})

	assert.Error(t, err)
	var count int64
	db.Model(&models.CaseDocument{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSaveCaseExpense(t *testing.T) {
	db := setupSubmitTestDB()

	caseRecord, err := SaveCase(db, caseValues(), "Jane Roe", "")
	assert.NoError(t, err)

	expense, err := SaveCaseExpense(db, caseRecord.ID, forms.Values{
		"name":   forms.Text("Court filing fee"),
		"amount": forms.Number(250),
		"date":   forms.Text("2024-03-20"),
	})

	assert.NoError(t, err)
	assert.Equal(t, caseRecord.ID, expense.CaseID)
	assert.Equal(t, 250.0, expense.Amount)
	assert.Equal(t, "2024-03-20", expense.IncurredAt.Format("2006-01-02"))
}

func TestSaveCaseCommunicationSanitizesDetail(t *testing.T) {
	db := setupSubmitTestDB()

	caseRecord, err := SaveCase(db, caseValues(), "Jane Roe", "")
	assert.NoError(t, err)

	comm, err := SaveCaseCommunication(db, caseRecord.ID, forms.Values{
		"title":   forms.Text("Call with client"),
		"type":    forms.Choice(models.CommunicationTypeCall),
		"date":    forms.Text("2024-03-21"),
		"summary": forms.Text("Discussed settlement"),
		"detail":  forms.Text(`Notes<script>steal()</script>`),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.CommunicationTypeCall, comm.Type)
	assert.NotContains(t, comm.Detail, "<script>")
}

func TestSaveCalendarEventResolvesCaseReference(t *testing.T) {
	db := setupSubmitTestDB()

	caseRecord, err := SaveCase(db, caseValues(), "Jane Roe", "")
	assert.NoError(t, err)

	startsAt, _ := ParseDateTime("2024-04-01T09:00")
	endsAt, _ := ParseDateTime("2024-04-01T10:00")

	event, err := SaveCalendarEvent(db, forms.Values{
		"title":    forms.Text("Pre-trial hearing"),
		"type":     forms.Choice(models.EventTypeCourt),
		"casename": forms.Text("typed stale name"),
	}, caseRecord.ID, "", startsAt, endsAt, false)

	assert.NoError(t, err)
	assert.Equal(t, "Roe v. Doe", event.CaseName)
	assert.NotNil(t, event.CaseID)
	assert.Equal(t, caseRecord.ID, *event.CaseID)
}

func TestSaveCalendarEventUpdateRearmsReminder(t *testing.T) {
	db := setupSubmitTestDB()

	startsAt, _ := ParseDateTime("2024-04-01T09:00")
	endsAt, _ := ParseDateTime("2024-04-01T10:00")

	event, err := SaveCalendarEvent(db, forms.Values{
		"title":          forms.Text("Deadline review"),
		"type":           forms.Choice(models.EventTypeDeadline),
		"reminderoffset": forms.Number(60),
	}, "", "", startsAt, endsAt, false)
	assert.NoError(t, err)

	db.Model(&models.CalendarEvent{}).Where("id = ?", event.ID).Update("reminder_sent", true)

	// Rescheduling re-arms the reminder
	newStart, _ := ParseDateTime("2024-04-02T09:00")
	newEnd, _ := ParseDateTime("2024-04-02T10:00")
	_, err = SaveCalendarEvent(db, forms.Values{
		"title":          forms.Text("Deadline review"),
		"type":           forms.Choice(models.EventTypeDeadline),
		"reminderoffset": forms.Number(60),
	}, "", event.ID, newStart, newEnd, false)
	assert.NoError(t, err)

	var saved models.CalendarEvent
	assert.NoError(t, db.First(&saved, "id = ?", event.ID).Error)
	assert.False(t, saved.ReminderSent)
	assert.Equal(t, "2024-04-02", saved.StartsAt.Format("2006-01-02"))
}
