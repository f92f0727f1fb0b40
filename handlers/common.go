package handlers

import (
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/forms"
	"law_office_app_go/middleware"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// Notify is the notification port used by every handler. Wired to the
// DB-backed notifier at startup; tests substitute a recorder.
var Notify services.Notifier

// Notifications backs the bell-menu read endpoints
var Notifications *services.StoreNotifier

// Collaborator failures all map to this one message; no error-code-specific
// text is exposed to the user
const genericFailureMessage = "Something went wrong. Please try again."

func currentUserID(c echo.Context) string {
	if user := middleware.GetCurrentUser(c); user != nil {
		return user.ID
	}
	return ""
}

// respondInvalid surfaces all field errors and leaves the form retryable
func respondInvalid(c echo.Context, form *forms.Form) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
		"errors": form.FieldErrors(),
	})
}

// respondFailure reports a collaborator failure: an error notification plus
// one generic retry message, keeping the user on the form
func respondFailure(c echo.Context) error {
	if Notify != nil {
		Notify.Error(currentUserID(c), genericFailureMessage)
	}
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error": genericFailureMessage,
	})
}

// respondSuccess records a success notification and redirects to the list view
func respondSuccess(c echo.Context, message, listRoute string) error {
	if Notify != nil {
		Notify.Success(currentUserID(c), message, listRoute)
	}
	return c.Redirect(http.StatusSeeOther, listRoute)
}

// caseExists checks that the owning case of a sub-record is present
func caseExists(id string) bool {
	var count int64
	db.DB.Model(&models.Case{}).Where("id = ?", id).Count(&count)
	return count > 0
}
