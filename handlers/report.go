package handlers

import (
	"fmt"
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCasesHandler downloads the full case list as a workbook
func ExportCasesHandler(c echo.Context) error {
	buf, err := services.ExportCasesWorkbook(db.DB)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="cases.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportCaseExpensesHandler downloads one case's expense ledger as a workbook
func ExportCaseExpensesHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	buf, err := services.ExportExpenseLedger(db.DB, caseID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="expenses_%s.xlsx"`, caseID))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
