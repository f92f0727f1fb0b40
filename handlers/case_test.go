package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"law_office_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func caseForm() url.Values {
	f := url.Values{}
	f.Add("casenumber", "CV-2024-002")
	f.Add("casename", "Stone v. Quarry")
	f.Add("clientname", "Bob Stone")
	f.Add("attorneyname", "Sam Adler")
	f.Add("courtname", "High Court")
	f.Add("practicearea", models.PracticeAreaCivil)
	f.Add("status", models.CaseStatusActive)
	f.Add("filingdate", "2024-05-01")
	f.Add("description", "Boundary dispute")
	return f
}

func TestCreateCase(t *testing.T) {
	t.Run("Valid submission", func(t *testing.T) {
		database := setupTestDB(t)
		recorder := setupNotifier()

		_, c, rec := setupEcho(http.MethodPost, "/cases", strings.NewReader(caseForm().Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cases", rec.Header().Get("Location"))
		assert.Equal(t, []string{"Case saved"}, recorder.Successes)

		var saved models.Case
		assert.NoError(t, database.First(&saved, "case_number = ?", "CV-2024-002").Error)
		assert.Equal(t, "Bob Stone", saved.ClientName)
		assert.Equal(t, "2024-05-01", saved.FilingDate.Format("2006-01-02"))
	})

	t.Run("Picked client overrides typed name", func(t *testing.T) {
		database := setupTestDB(t)
		setupNotifier()
		client := createTestClient(t, database)

		f := caseForm()
		f.Set("clientname", "Stale Typed Name")
		f.Add("client_id", client.ID)

		_, c, rec := setupEcho(http.MethodPost, "/cases", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, rec.Code)

		var saved models.Case
		assert.NoError(t, database.First(&saved, "case_number = ?", "CV-2024-002").Error)
		assert.Equal(t, "Jane Roe", saved.ClientName)
	})

	t.Run("Invalid status reported, nothing written", func(t *testing.T) {
		database := setupTestDB(t)
		setupNotifier()

		f := caseForm()
		f.Set("status", "archived")

		_, c, rec := setupEcho(http.MethodPost, "/cases", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var payload struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Select a valid case status", payload.Errors["status"])

		var count int64
		database.Model(&models.Case{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Unparseable expected expense hits the numeric rule", func(t *testing.T) {
		setupTestDB(t)
		setupNotifier()

		f := caseForm()
		f.Add("expectedexpense", "lots")

		_, c, rec := setupEcho(http.MethodPost, "/cases", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")

		err := CreateCaseHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var payload struct {
			Errors map[string]string `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Expected expense must be greater than zero", payload.Errors["expectedexpense"])
	})
}

func TestGetCases(t *testing.T) {
	database := setupTestDB(t)
	createTestCase(t, database)

	filing, _ := time.Parse("2006-01-02", "2024-06-01")
	database.Create(&models.Case{
		CaseNumber:   "CR-2024-007",
		CaseName:     "State v. Quarry",
		ClientName:   "Bob Stone",
		AttorneyName: "Sam Adler",
		PracticeArea: models.PracticeAreaCriminal,
		Status:       models.CaseStatusPending,
		FilingDate:   filing,
	})

	t.Run("All cases, newest filing first", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)

		var cases []models.Case
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cases))
		assert.Len(t, cases, 2)
		assert.Equal(t, "CR-2024-007", cases[0].CaseNumber)
	})

	t.Run("Status filter", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?status=pending", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)

		var cases []models.Case
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cases))
		assert.Len(t, cases, 1)
		assert.Equal(t, models.CaseStatusPending, cases[0].Status)
	})

	t.Run("Practice area filter", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?practicearea=civil", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)

		var cases []models.Case
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cases))
		assert.Len(t, cases, 1)
		assert.Equal(t, models.PracticeAreaCivil, cases[0].PracticeArea)
	})

	t.Run("Unknown filter value means all", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?status=archived", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)

		var cases []models.Case
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cases))
		assert.Len(t, cases, 2)
	})

	t.Run("Keyword filter", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?keyword=Roe", nil)

		err := GetCasesHandler(c)
		assert.NoError(t, err)

		var cases []models.Case
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cases))
		assert.Len(t, cases, 1)
		assert.Equal(t, "Roe v. Doe", cases[0].CaseName)
	})
}

func TestGetCaseDetail(t *testing.T) {
	database := setupTestDB(t)
	caseRecord := createTestCase(t, database)

	incurred, _ := time.Parse("2006-01-02", "2024-03-20")
	database.Create(&models.CaseExpense{CaseID: caseRecord.ID, Name: "Filing fee", Amount: 250, IncurredAt: incurred})
	database.Create(&models.CaseMilestone{CaseID: caseRecord.ID, Title: "Discovery complete", ReachedAt: incurred})

	t.Run("Includes owned sub-records", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases/"+caseRecord.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(caseRecord.ID)

		err := GetCaseDetailHandler(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var detail models.Case
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		assert.Len(t, detail.Expenses, 1)
		assert.Len(t, detail.Milestones, 1)
		assert.Empty(t, detail.Documents)
	})

	t.Run("Not found", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/cases/nope", nil)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		err := GetCaseDetailHandler(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)
	})
}

func TestUpdateCase(t *testing.T) {
	database := setupTestDB(t)
	recorder := setupNotifier()
	caseRecord := createTestCase(t, database)

	f := caseForm()
	f.Set("casenumber", caseRecord.CaseNumber)
	f.Set("casename", caseRecord.CaseName)
	f.Set("clientname", caseRecord.ClientName)
	f.Set("status", models.CaseStatusClosed)
	f.Set("filingdate", "2024-03-15")

	_, c, rec := setupEcho(http.MethodPost, "/cases/"+caseRecord.ID, strings.NewReader(f.Encode()))
	c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.SetParamNames("id")
	c.SetParamValues(caseRecord.ID)

	err := UpdateCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"Case updated"}, recorder.Successes)

	var saved models.Case
	assert.NoError(t, database.First(&saved, "id = ?", caseRecord.ID).Error)
	assert.Equal(t, models.CaseStatusClosed, saved.Status)
}

func TestDeleteCase(t *testing.T) {
	database := setupTestDB(t)
	caseRecord := createTestCase(t, database)

	_, c, rec := setupEcho(http.MethodDelete, "/api/cases/"+caseRecord.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(caseRecord.ID)

	err := DeleteCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	database.Model(&models.Case{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
