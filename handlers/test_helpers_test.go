package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"law_office_app_go/config"
	"law_office_app_go/db"
	"law_office_app_go/forms"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.Exec("PRAGMA journal_mode=WAL;").Error
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Client{},
		&models.Case{},
		&models.CaseExpense{},
		&models.CaseDocument{},
		&models.CaseEvent{},
		&models.CaseMilestone{},
		&models.CaseCommunication{},
		&models.CalendarEvent{},
		&models.Notification{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

// setupNotifier swaps the notification port for an in-memory recorder
func setupNotifier() *services.RecordingNotifier {
	recorder := &services.RecordingNotifier{}
	Notify = recorder
	return recorder
}

// stubStorage records uploads and hands back deterministic URLs
type stubStorage struct {
	uploads []string
	failing bool
}

func (s *stubStorage) Upload(ctx context.Context, ref *forms.FileRef, key string) (*services.StorageResult, error) {
	if s.failing {
		return nil, errors.New("storage unavailable")
	}
	s.uploads = append(s.uploads, key)
	return &services.StorageResult{
		Key:      key,
		FileName: ref.Name,
		FileSize: ref.Size,
		MimeType: ref.ContentType,
		URL:      "https://files.test/" + key,
	}, nil
}

func (s *stubStorage) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*services.StorageResult, error) {
	if s.failing {
		return nil, errors.New("storage unavailable")
	}
	s.uploads = append(s.uploads, key)
	return &services.StorageResult{Key: key, FileSize: size, MimeType: contentType, URL: "https://files.test/" + key}, nil
}

func (s *stubStorage) Delete(ctx context.Context, key string) error { return nil }
func (s *stubStorage) GetPublicURL(key string) string               { return "https://files.test/" + key }
func (s *stubStorage) IsConfigured() bool                           { return true }

// setupStorage swaps the global blob store for a recording stub
func setupStorage() *stubStorage {
	stub := &stubStorage{}
	services.Storage = stub
	return stub
}

// multipartBody builds a multipart form from fields plus an optional file part
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		assert.NoError(t, err)
		_, err = part.Write(fileContent)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func pngBytes() []byte {
	return append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, []byte("fakepixels")...)
}

func createTestCase(t *testing.T, database *gorm.DB) *models.Case {
	filing, _ := time.Parse("2006-01-02", "2024-03-15")
	caseRecord := &models.Case{
		CaseNumber:   "CV-2024-001",
		CaseName:     "Roe v. Doe",
		ClientName:   "Jane Roe",
		AttorneyName: "Sam Adler",
		PracticeArea: models.PracticeAreaCivil,
		Status:       models.CaseStatusActive,
		FilingDate:   filing,
	}
	assert.NoError(t, database.Create(caseRecord).Error)
	return caseRecord
}

func createTestClient(t *testing.T, database *gorm.DB) *models.Client {
	client := &models.Client{
		FullName:    "Jane Roe",
		Email:       "jane@roe.com",
		PhoneNumber: "0712345678",
		Address:     "12 Harbor Lane",
	}
	assert.NoError(t, database.Create(client).Error)
	return client
}
