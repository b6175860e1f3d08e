package dtos

import (
	"strings"
	"unicode/utf8"

	"github.com/humosaic/calendar/internal/models"
)

const maxTitleLength = 100

// EventForm carries the raw string fields submitted by the event form.
// Validate collects every failing field at once; the UI shows all of them.
type EventForm struct {
	Title       string `json:"title"       schema:"title"`
	Date        string `json:"date"        schema:"date"`
	StartTime   string `json:"startTime"   schema:"startTime"`
	EndTime     string `json:"endTime"     schema:"endTime"`
	Description string `json:"description" schema:"description"`
}

func (dto *EventForm) Validate() (bool, map[string]string) {
	errs := make(map[string]string)

	if strings.TrimSpace(dto.Title) == "" {
		errs["title"] = "Title is required"
	} else if utf8.RuneCountInString(dto.Title) > maxTitleLength {
		errs["title"] = "Title must be 100 characters or less"
	}

	if dto.Date == "" {
		errs["date"] = "Date is required"
	} else if _, err := models.ParseDate(dto.Date); err != nil {
		errs["date"] = "Please enter a valid date"
	}

	var start, end *models.TimeOfDay
	if dto.StartTime != "" {
		if t, err := models.ParseTimeOfDay(dto.StartTime); err != nil {
			errs["startTime"] = "Please enter a valid time"
		} else {
			start = &t
		}
	}
	if dto.EndTime != "" {
		if t, err := models.ParseTimeOfDay(dto.EndTime); err != nil {
			errs["endTime"] = "Please enter a valid time"
		} else {
			end = &t
		}
	}

	// The range rule only applies when both times are present and parseable.
	if start != nil && end != nil &&
		end.MinutesSinceMidnight() <= start.MinutesSinceMidnight() {
		errs["endTime"] = "End time must be after start time"
	}

	return len(errs) == 0, errs
}

// Event converts a validated form into a domain event without an ID.
// Callers must run Validate first; unparseable fields come back zero.
func (dto *EventForm) Event() models.Event {
	date, _ := models.ParseDate(dto.Date)

	var start, end *models.TimeOfDay
	if t, err := models.ParseTimeOfDay(dto.StartTime); err == nil {
		start = &t
	}
	if t, err := models.ParseTimeOfDay(dto.EndTime); err == nil {
		end = &t
	}

	return models.Event{
		Title:       strings.TrimSpace(dto.Title),
		Date:        date,
		Start:       start,
		End:         end,
		Description: strings.TrimSpace(dto.Description),
	}
}

// EventFormFromEvent pre-fills the edit form from an existing event.
func EventFormFromEvent(e models.Event) EventForm {
	form := EventForm{
		Title:       e.Title,
		Date:        e.Date.String(),
		Description: e.Description,
	}
	if e.Start != nil {
		form.StartTime = e.Start.String()
	}
	if e.End != nil {
		form.EndTime = e.End.String()
	}
	return form
}
