package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"law_office_app_go/db"
	"law_office_app_go/forms"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// buildEventForm binds the request's fields into a calendar event form
func buildEventForm(c echo.Context) *forms.Form {
	form := forms.New(forms.EventSchema())
	form.SetField("title", forms.Text(c.FormValue("title")))
	form.SetField("type", forms.Choice(c.FormValue("type")))
	form.SetField("date", forms.Text(c.FormValue("date")))
	form.SetField("location", forms.Text(c.FormValue("location")))
	form.SetField("casename", forms.Text(c.FormValue("casename")))
	form.SetField("participants", forms.Text(c.FormValue("participants")))

	if raw := c.FormValue("reminderoffset"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil {
			form.SetField("reminderoffset", forms.Number(float64(minutes)))
		} else {
			form.SetField("reminderoffset", forms.Number(0))
		}
	}
	return form
}

// eventTimeRange derives the start/end instants from the validated date plus
// the optional start/end time fields. All-day events span the whole date.
func eventTimeRange(c echo.Context, dateStr string) (time.Time, time.Time, bool, error) {
	date, err := services.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}

	allDay := c.FormValue("allday") == "true" || c.FormValue("allday") == "on"
	if allDay {
		return date, date.Add(24 * time.Hour), true, nil
	}

	startsAt := date
	if raw := c.FormValue("starttime"); raw != "" {
		if t, err := time.Parse("15:04", raw); err == nil {
			startsAt = date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		}
	}
	endsAt := startsAt.Add(time.Hour)
	if raw := c.FormValue("endtime"); raw != "" {
		if t, err := time.Parse("15:04", raw); err == nil {
			endsAt = date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		}
	}
	return startsAt, endsAt, false, nil
}

// GetEventsHandler returns calendar events, narrowed by an optional date range
func GetEventsHandler(c echo.Context) error {
	query := db.DB.Order("starts_at ASC")

	if from := c.QueryParam("date_from"); from != "" {
		if parsed, err := services.ParseDate(from); err == nil {
			query = query.Where("starts_at >= ?", parsed)
		}
	}
	if to := c.QueryParam("date_to"); to != "" {
		if parsed, err := services.ParseDate(to); err == nil {
			// Include the entire end day
			query = query.Where("starts_at < ?", parsed.Add(24*time.Hour))
		}
	}
	if eventType := c.QueryParam("type"); eventType != "" && models.IsValidEventType(eventType) {
		query = query.Where("type = ?", eventType)
	}

	var events []models.CalendarEvent
	if err := query.Find(&events).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch events")
	}
	return c.JSON(http.StatusOK, events)
}

// GetEventHandler returns one calendar event or a not-found state
func GetEventHandler(c echo.Context) error {
	var event models.CalendarEvent
	if err := db.DB.Preload("RelatedCase").First(&event, "id = ?", c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	return c.JSON(http.StatusOK, event)
}

// CreateEventHandler runs the event form through the submission pipeline
func CreateEventHandler(c echo.Context) error {
	form := buildEventForm(c)

	_, err := form.Submit(func(vals forms.Values) error {
		startsAt, endsAt, allDay, rangeErr := eventTimeRange(c, vals["date"].Text())
		if rangeErr != nil {
			return rangeErr
		}
		_, saveErr := services.SaveCalendarEvent(db.DB, vals, c.FormValue("case_id"), "", startsAt, endsAt, allDay)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Event saved", "/events")
}

// UpdateEventHandler re-submits the full event record
func UpdateEventHandler(c echo.Context) error {
	id := c.Param("id")
	var existing models.CalendarEvent
	if err := db.DB.First(&existing, "id = ?", id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}

	form := buildEventForm(c)

	_, err := form.Submit(func(vals forms.Values) error {
		startsAt, endsAt, allDay, rangeErr := eventTimeRange(c, vals["date"].Text())
		if rangeErr != nil {
			return rangeErr
		}
		_, saveErr := services.SaveCalendarEvent(db.DB, vals, c.FormValue("case_id"), id, startsAt, endsAt, allDay)
		return saveErr
	})
	if errors.Is(err, forms.ErrInvalid) {
		return respondInvalid(c, form)
	}
	if err != nil {
		return respondFailure(c)
	}

	return respondSuccess(c, "Event updated", "/events")
}

// DeleteEventHandler soft-deletes a calendar event
func DeleteEventHandler(c echo.Context) error {
	result := db.DB.Delete(&models.CalendarEvent{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete event")
	}
	if result.RowsAffected == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "Event not found")
	}
	return c.NoContent(http.StatusNoContent)
}
