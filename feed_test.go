package calendar_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
)

func TestFeedHandler(t *testing.T) {
	meeting := createTestEvent(t, "Team meeting", "2024-03-05")
	defer testApp.Services.Events.Delete(context.Background(), meeting.ID)

	holiday := createTestEvent(t, "Holiday", "2024-03-06")
	defer testApp.Services.Events.Delete(context.Background(), holiday.ID)

	tReq := test.CreateRequestTester(
		testApp.Routes(),
		http.MethodGet,
		"/feed.ics",
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
	assert.Contains(t, rs.Header.Get("Content-Type"), "text/calendar")

	body, err := io.ReadAll(rs.Body)
	require.Nil(t, err)

	feed := string(body)
	assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	assert.Contains(t, feed, "SUMMARY:Team meeting")
	assert.Contains(t, feed, "SUMMARY:Holiday")
	assert.Contains(t, feed, "UID:"+meeting.ID)
}
