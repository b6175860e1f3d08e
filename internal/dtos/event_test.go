package dtos_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humosaic/calendar/internal/dtos"
	"github.com/humosaic/calendar/internal/models"
)

func TestEventFormValid(t *testing.T) {
	form := dtos.EventForm{
		Title:     "Team meeting",
		Date:      "2024-03-05",
		StartTime: "09:00",
		EndTime:   "10:30",
	}

	valid, errs := form.Validate()
	assert.True(t, valid)
	assert.Empty(t, errs)
}

func TestEventFormAllDayValid(t *testing.T) {
	form := dtos.EventForm{
		Title: "Holiday",
		Date:  "2024-03-05",
	}

	valid, errs := form.Validate()
	assert.True(t, valid)
	assert.Empty(t, errs)
}

func TestEventFormTitleRequired(t *testing.T) {
	form := dtos.EventForm{
		Title: "   ",
		Date:  "2024-03-05",
	}

	valid, errs := form.Validate()
	assert.False(t, valid)
	assert.Equal(t, "Title is required", errs["title"])
}

func TestEventFormTitleTooLong(t *testing.T) {
	form := dtos.EventForm{
		Title: strings.Repeat("a", 101),
		Date:  "2024-03-05",
	}

	valid, errs := form.Validate()
	assert.False(t, valid)
	assert.Equal(t, "Title must be 100 characters or less", errs["title"])

	form.Title = strings.Repeat("a", 100)
	valid, _ = form.Validate()
	assert.True(t, valid)
}

func TestEventFormDateErrors(t *testing.T) {
	form := dtos.EventForm{Title: "Meeting"}

	valid, errs := form.Validate()
	assert.False(t, valid)
	assert.Equal(t, "Date is required", errs["date"])

	form.Date = "2024-02-30"
	valid, errs = form.Validate()
	assert.False(t, valid)
	assert.Equal(t, "Please enter a valid date", errs["date"])
}

func TestEventFormTimeErrors(t *testing.T) {
	form := dtos.EventForm{
		Title:     "Meeting",
		Date:      "2024-03-05",
		StartTime: "25:00",
		EndTime:   "bogus",
	}

	valid, errs := form.Validate()
	assert.False(t, valid)
	assert.Equal(t, "Please enter a valid time", errs["startTime"])
	assert.Equal(t, "Please enter a valid time", errs["endTime"])
}

func TestEventFormEndBeforeStart(t *testing.T) {
	form := dtos.EventForm{
		Title:     "Meeting",
		Date:      "2024-03-05",
		StartTime: "10:00",
		EndTime:   "09:00",
	}

	valid, errs := form.Validate()
	assert.False(t, valid)
	assert.Equal(t, "End time must be after start time", errs["endTime"])

	form.EndTime = "10:00"
	valid, errs = form.Validate()
	assert.False(t, valid)
	assert.Equal(t, "End time must be after start time", errs["endTime"])
}

func TestEventFormCollectsAllErrors(t *testing.T) {
	form := dtos.EventForm{
		StartTime: "bad",
	}

	valid, errs := form.Validate()
	assert.False(t, valid)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "startTime")
}

func TestEventFormToEvent(t *testing.T) {
	form := dtos.EventForm{
		Title:       "  Team meeting  ",
		Date:        "2024-03-05",
		StartTime:   "09:00",
		EndTime:     "10:30",
		Description: " Bring notes ",
	}

	valid, _ := form.Validate()
	require.True(t, valid)

	event := form.Event()
	assert.Equal(t, "Team meeting", event.Title)
	assert.Equal(t, models.NewDate(2024, time.March, 5), event.Date)
	require.NotNil(t, event.Start)
	require.NotNil(t, event.End)
	assert.Equal(t, "09:00", event.Start.String())
	assert.Equal(t, "10:30", event.End.String())
	assert.Equal(t, "Bring notes", event.Description)
}

func TestEventFormRoundTrip(t *testing.T) {
	start := models.TimeOfDay{Hour: 9}
	event := models.Event{
		ID:          "evt_1",
		Title:       "Team meeting",
		Date:        models.NewDate(2024, time.March, 5),
		Start:       &start,
		Description: "Bring notes",
	}

	form := dtos.EventFormFromEvent(event)
	assert.Equal(t, "Team meeting", form.Title)
	assert.Equal(t, "2024-03-05", form.Date)
	assert.Equal(t, "09:00", form.StartTime)
	assert.Equal(t, "", form.EndTime)
	assert.Equal(t, "Bring notes", form.Description)

	valid, _ := form.Validate()
	assert.True(t, valid)
}
