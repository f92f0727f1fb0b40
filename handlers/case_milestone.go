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

// GetCaseMilestonesHandler returns the milestones owned by a case
func GetCaseMilestonesHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	var milestones []models.CaseMilestone
	if err := db.DB.Where("case_id = ?", caseID).Order("reached_at ASC").Find(&milestones).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch milestones")
	}
	return c.JSON(http.StatusOK, milestones)
}

// CreateCaseMilestoneHandler appends a milestone through the mini-form pipeline
func CreateCaseMilestoneHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	form := forms.New(forms.MilestoneSchema())
	form.SetField("title", forms.Text(c.FormValue("title")))
	form.SetField("date", forms.Text(c.FormValue("date")))

	_, err := form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveCaseMilestone(db.DB, caseID, vals)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Milestone added", "/cases/"+caseID)
}

// DeleteCaseMilestoneHandler removes one milestone from its case
func DeleteCaseMilestoneHandler(c echo.Context) error {
	result := db.DB.Where("case_id = ?", c.Param("id")).Delete(&models.CaseMilestone{}, "id = ?", c.Param("mid"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete milestone")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Milestone not found")
	}
	return c.NoContent(http.StatusNoContent)
}
