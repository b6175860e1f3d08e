package calendar_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"

	"github.com/humosaic/calendar/internal/dtos"
)

func TestCreateEventHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/events",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.EventForm{
		Title:     "Team meeting",
		Date:      "2024-03-05",
		StartTime: "09:00",
		EndTime:   "10:30",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	events := testApp.Services.Events.GetByDate(
		context.Background(),
		mustDate(t, "2024-03-05"),
	)
	require.NotEmpty(t, events)
	defer testApp.Services.Events.Delete(
		context.Background(),
		events[len(events)-1].ID,
	)

	assert.Equal(t, "Team meeting", events[len(events)-1].Title)
}

func TestCreateEventHandlerFailedValidation(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/events",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.EventForm{
		Title:     "Team meeting",
		Date:      "2024-03-05",
		StartTime: "10:00",
		EndTime:   "09:00",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestUpdateEventHandler(t *testing.T) {
	event := createTestEvent(t, "Team meeting", "2024-03-05")
	defer testApp.Services.Events.Delete(context.Background(), event.ID)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/events/%s/edit", event.ID),
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.EventForm{
		Title: "Renamed",
		Date:  "2024-03-06",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	updated, err := testApp.Services.Events.GetByID(
		context.Background(),
		event.ID,
	)
	require.Nil(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, mustDate(t, "2024-03-06"), updated.Date)
}

func TestUpdateEventHandlerNotFound(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/events/evt_missing/edit",
	)

	tReq.SetFollowRedirect(false)

	tReq.SetContentType(test.FormContentType)
	tReq.SetData(dtos.EventForm{
		Title: "Renamed",
		Date:  "2024-03-06",
	})

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNotFound, rs.StatusCode)
}

func TestDeleteEventHandler(t *testing.T) {
	event := createTestEvent(t, "Team meeting", "2024-03-05")

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		fmt.Sprintf("/events/%s/delete", event.ID),
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusSeeOther, rs.StatusCode)

	_, err := testApp.Services.Events.GetByID(context.Background(), event.ID)
	assert.NotNil(t, err)
}

func TestDeleteEventHandlerNotFound(t *testing.T) {
	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodPost,
		"/events/evt_missing/delete",
	)

	tReq.SetFollowRedirect(false)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusNotFound, rs.StatusCode)
}
