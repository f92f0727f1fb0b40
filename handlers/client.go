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

// buildClientForm binds the request's fields into a client form
func buildClientForm(c echo.Context) *forms.Form {
	form := forms.New(forms.ClientSchema())
	form.SetField("fullname", forms.Text(c.FormValue("fullname")))
	form.SetField("email", forms.Text(c.FormValue("email")))
	form.SetField("phonenumber", forms.Text(c.FormValue("phonenumber")))
	form.SetField("address", forms.Text(c.FormValue("address")))
	if fh, err := c.FormFile("picture"); err == nil {
		form.SetField("picture", forms.File(services.FileRefFromMultipart(fh)))
	}
	return form
}

// GetClientsHandler returns all clients, optionally narrowed by a keyword
func GetClientsHandler(c echo.Context) error {
	query := db.DB.Order("created_at DESC")

	if keyword := c.QueryParam("keyword"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ? OR phone_number LIKE ?", like, like, like)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch clients")
	}

	return c.JSON(http.StatusOK, clients)
}

// GetClientHandler returns one client or a not-found state
func GetClientHandler(c echo.Context) error {
	var client models.Client
	if err := db.DB.First(&client, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}
	return c.JSON(http.StatusOK, client)
}

// CreateClientHandler runs the client form through the submission pipeline
func CreateClientHandler(c echo.Context) error {
	form := buildClientForm(c)

	_, err := form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveClient(c.Request().Context(), db.DB, services.Storage, vals, "")
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Client saved", "/clients")
}

// UpdateClientHandler re-submits the full client record
func UpdateClientHandler(c echo.Context) error {
	id := c.Param("id")
	var existing models.Client
	if err := db.DB.First(&existing, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}

	form := buildClientForm(c)

	_, err := form.Submit(func(vals forms.Values) error {
		_, saveErr := services.SaveClient(c.Request().Context(), db.DB, services.Storage, vals, id)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Client updated", "/clients")
}

// DeleteClientHandler soft-deletes a client. Cases keep their denormalized
// client name; nothing cascades.
func DeleteClientHandler(c echo.Context) error {
	result := db.DB.Delete(&models.Client{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete client")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}
	return c.NoContent(http.StatusNoContent)
}
