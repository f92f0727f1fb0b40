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

// GetCaseExpensesHandler returns the expenses owned by a case
func GetCaseExpensesHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	var expenses []models.CaseExpense
	if err := db.DB.Where("case_id = ?", caseID).Order("incurred_at DESC").Find(&expenses).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch expenses")
	}
	return c.JSON(http.StatusOK, expenses)
}

// CreateCaseExpenseHandler appends an expense through the mini-form pipeline
func CreateCaseExpenseHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	form := forms.New(forms.ExpenseSchema())
	form.SetField("name", forms.Text(c.FormValue("name")))
	form.SetField("date", forms.Text(c.FormValue("date")))
	if amount, err := strconv.ParseFloat(c.FormValue("amount"), 64); err == nil {
		form.SetField("amount", forms.Number(amount))
	} else {
		form.SetField("amount", forms.Number(0))
	}

	_, err := form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveCaseExpense(db.DB, caseID, vals)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Expense recorded", "/cases/"+caseID)
}

// DeleteCaseExpenseHandler removes one expense from its case
func DeleteCaseExpenseHandler(c echo.Context) error {
	result := db.DB.Where("case_id = ?", c.Param("id")).Delete(&models.CaseExpense{}, "id = ?", c.Param("eid"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete expense")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Expense not found")
	}
	return c.NoContent(http.StatusNoContent)
}
