package calendar

import (
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xdoubleu/essentia/v2/pkg/logging"

	"github.com/humosaic/calendar/internal/models"
)

// feedHandler exports the full event store as an iCalendar feed so the
// events can be subscribed to from any other calendar client.
func (app *App) feedHandler(w http.ResponseWriter, r *http.Request) {
	events := app.Services.Events.GetAll(r.Context())

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, event := range events {
		entry := cal.AddEvent(event.ID)
		entry.SetSummary(event.Title)
		if event.Description != "" {
			entry.SetDescription(event.Description)
		}

		start, end, allDay := eventWindow(event)
		if allDay {
			entry.SetAllDayStartAt(start)
			entry.SetAllDayEndAt(end)
		} else {
			entry.SetStartAt(start)
			entry.SetEndAt(end)
		}
	}

	w.Header().Set("Content-Type", "text/calendar")
	if _, err := w.Write([]byte(cal.Serialize())); err != nil {
		app.logger.Error("failed to write calendar feed", logging.ErrAttr(err))
	}
}

// eventWindow maps an event onto concrete local timestamps. Events without
// a start time become all-day entries; a missing end time defaults to one
// hour after the start.
func eventWindow(event models.Event) (time.Time, time.Time, bool) {
	date := event.Date

	if event.Start == nil {
		start := localTime(date, models.TimeOfDay{Hour: 0, Minute: 0})
		return start, start.AddDate(0, 0, 1), true
	}

	start := localTime(date, *event.Start)
	if event.End == nil {
		return start, start.Add(time.Hour), false
	}

	return start, localTime(date, *event.End), false
}

func localTime(date models.Date, t models.TimeOfDay) time.Time {
	return time.Date(
		date.Year,
		date.Month,
		date.Day,
		t.Hour,
		t.Minute,
		0,
		0,
		time.Local,
	)
}
