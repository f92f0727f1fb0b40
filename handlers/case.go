package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"law_office_app_go/db"
	"law_office_app_go/forms"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// buildCaseForm binds the request's fields into a case form. The clientname
// field holds the resolved reference, never the raw typed text, when a client
// was picked.
func buildCaseForm(c echo.Context, clientName string) *forms.Form {
	form := forms.New(forms.CaseSchema())
	form.SetField("casenumber", forms.Text(c.FormValue("casenumber")))
	form.SetField("casename", forms.Text(c.FormValue("casename")))
	form.SetField("clientname", forms.Text(clientName))
	form.SetField("attorneyname", forms.Text(c.FormValue("attorneyname")))
	form.SetField("courtname", forms.Text(c.FormValue("courtname")))
	form.SetField("practicearea", forms.Choice(c.FormValue("practicearea")))
	form.SetField("status", forms.Choice(c.FormValue("status")))
	form.SetField("filingdate", forms.Text(c.FormValue("filingdate")))
	form.SetField("description", forms.Text(c.FormValue("description")))

	if raw := c.FormValue("expectedexpense"); raw != "" {
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			form.SetField("expectedexpense", forms.Number(amount))
		} else {
			// Unparseable input still hits the numeric rule and its message
			form.SetField("expectedexpense", forms.Number(0))
		}
	}
	return form
}

// GetCasesHandler returns cases, narrowed by optional status, practice area
// and keyword filters; absent parameters mean "all"
func GetCasesHandler(c echo.Context) error {
	query := db.DB.Order("filing_date DESC")

	if status := c.QueryParam("status"); status != "" && models.IsValidCaseStatus(status) {
		query = query.Where("status = ?", status)
	}
	if area := c.QueryParam("practicearea"); area != "" && models.IsValidPracticeArea(area) {
		query = query.Where("practice_area = ?", area)
	}
	if keyword := c.QueryParam("keyword"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("case_number LIKE ? OR case_name LIKE ? OR client_name LIKE ? OR description LIKE ?",
			like, like, like, like)
	}

	var cases []models.Case
	if err := query.Find(&cases).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch cases")
	}

	return c.JSON(http.StatusOK, cases)
}

// GetCaseDetailHandler returns one case with its owned sub-records
func GetCaseDetailHandler(c echo.Context) error {
	var caseRecord models.Case
	if err := db.DB.
		Preload("Expenses").
		Preload("Documents").
		Preload("Events").
		Preload("Milestones").
		Preload("Communications").
		First(&caseRecord, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	return c.JSON(http.StatusOK, caseRecord)
}

// CreateCaseHandler runs the case form through the submission pipeline
func CreateCaseHandler(c echo.Context) error {
	clientName, err := services.ResolveClientReference(db.DB, c.FormValue("client_id"), c.FormValue("clientname"))
	if err != nil {
		return respondFailure(c)
	}

	form := buildCaseForm(c, clientName)

	_, err = form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveCase(db.DB, vals, clientName, "")
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Case saved", "/cases")
}

// UpdateCaseHandler re-submits the full case record
func UpdateCaseHandler(c echo.Context) error {
	id := c.Param("id")
	var existing models.Case
	if err := db.DB.First(&existing, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	clientName, err := services.ResolveClientReference(db.DB, c.FormValue("client_id"), c.FormValue("clientname"))
	if err != nil {
		return respondFailure(c)
	}

	form := buildCaseForm(c, clientName)

	_, err = form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveCase(db.DB, vals, clientName, id)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Case updated", "/cases")
}

// DeleteCaseHandler soft-deletes a case; owned sub-records stay attached to
// the soft-deleted parent
func DeleteCaseHandler(c echo.Context) error {
	result := db.DB.Delete(&models.Case{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete case")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	return c.NoContent(http.StatusNoContent)
}
