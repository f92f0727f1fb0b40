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

// GetCaseDocumentsHandler returns the documents owned by a case
func GetCaseDocumentsHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	var documents []models.CaseDocument
	if err := db.DB.Where("case_id = ?", caseID).Order("created_at DESC").Find(&documents).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch documents")
	}
	return c.JSON(http.StatusOK, documents)
}

// CreateCaseDocumentHandler uploads the attached file first, then writes the
// document record carrying the upload's URL
func CreateCaseDocumentHandler(c echo.Context) error {
	caseID := c.Param("id")
	if !caseExists(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	form := forms.New(forms.DocumentSchema())
	if fh, err := c.FormFile("file"); err == nil {
		form.SetField("file", forms.File(services.FileRefFromMultipart(fh)))
	} else {
		form.SetField("file", forms.File(nil))
	}
	form.SetField("description", forms.Text(c.FormValue("description")))

	_, err := form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveCaseDocument(c.Request().Context(), db.DB, services.Storage, caseID, vals)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Document uploaded", "/cases/"+caseID)
}

// DeleteCaseDocumentHandler removes one document record from its case.
// The blob itself is left in storage; records never point at deleted blobs
// the other way around.
func DeleteCaseDocumentHandler(c echo.Context) error {
	result := db.DB.Where("case_id = ?", c.Param("id")).Delete(&models.CaseDocument{}, "id = ?", c.Param("did"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete document")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Document not found")
	}
	return c.NoContent(http.StatusNoContent)
}
