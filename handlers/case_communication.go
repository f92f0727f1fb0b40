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

// GetCaseCommunicationsHandler returns the communications owned by a case
func GetCaseCommunicationsHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	var communications []models.CaseCommunication
	if err := db.DB.Where("case_id = ?", caseID).Order("occurred_at DESC").Find(&communications).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch communications")
	}
	return c.JSON(http.StatusOK, communications)
}

// CreateCaseCommunicationHandler appends a communication through the mini-form pipeline
func CreateCaseCommunicationHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	form := forms.New(forms.CommunicationSchema())
	form.SetField("title", forms.Text(c.FormValue("title")))
	form.SetField("type", forms.Choice(c.FormValue("type")))
	form.SetField("date", forms.Text(c.FormValue("date")))
	form.SetField("summary", forms.Text(c.FormValue("summary")))
	form.SetField("detail", forms.Text(c.FormValue("detail")))

	_, err := form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveCaseCommunication(db.DB, caseID, vals)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Communication logged", "/cases/"+caseID)
}

// DeleteCaseCommunicationHandler removes one communication from its case
func DeleteCaseCommunicationHandler(c echo.Context) error {
	result := db.DB.Where("case_id = ?", c.Param("id")).Delete(&models.CaseCommunication{}, "id = ?", c.Param("cid"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete communication")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Communication not found")
	}
	return c.NoContent(http.StatusNoContent)
}
