package handlers

import (
	"errors"
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/forms"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// GetCaseEventsHandler returns the timeline entries owned by a case
func GetCaseEventsHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	var events []models.CaseEvent
	if err := db.DB.Where("case_id = ?", caseID).Order("occurred_at ASC").Find(&events).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch case events")
	}
	return c.JSON(http.StatusOK, events)
}

// CreateCaseEventHandler appends a timeline entry through the mini-form pipeline
func CreateCaseEventHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	form := forms.New(forms.CaseEventSchema())
	form.SetField("title", forms.Text(c.FormValue("title")))
	form.SetField("date", forms.Text(c.FormValue("date")))

	_, err := form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveCaseEvent(db.DB, caseID, vals)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Event added", "/cases/"+caseID)
}

// DeleteCaseEventHandler removes one timeline entry from its case
func DeleteCaseEventHandler(c echo.Context) error {
	result := db.DB.Where("case_id = ?", c.Param("id")).Delete(&models.CaseEvent{}, "id = ?", c.Param("eid"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete case event")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Case event not found")
	}
	return c.NoContent(http.StatusNoContent)
}
