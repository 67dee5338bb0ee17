// Package client provides the HTTP client for the Meeting Summarizer backend API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mserrors "github.com/otherjamesbrown/meetsum-cli/pkg/errors"
)

// recordedRequest captures what the fake backend received.
type recordedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// newFakeBackend returns a test server that records requests and replies
// with the given status and body.
func newFakeBackend(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var calls []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		calls = append(calls, recordedRequest{Method: r.Method, Path: r.URL.EscapedPath(), Body: data})
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

const meetingJSON = `{
	"_id": "m1",
	"title": "Meeting Summary",
	"transcript": "Q3 review notes...",
	"summary": "- point A\n- point B",
	"date": "2026-08-01T10:00:00Z",
	"participants": [],
	"status": "completed",
	"createdAt": "2026-08-01T10:00:00Z",
	"updatedAt": "2026-08-01T10:05:00Z"
}`

func TestCreateMeeting(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusCreated, meetingJSON)
	c := New(srv.URL, nil)

	date := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	meeting, err := c.CreateMeeting(context.Background(), CreateMeetingData{
		Title:        "Meeting Summary",
		Transcript:   "Q3 review notes...",
		CustomPrompt: "Focus on decisions",
		Date:         &date,
		Participants: []string{},
		Status:       StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, "m1", meeting.ID)
	assert.Equal(t, "- point A\n- point B", meeting.Summary)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/meetings", call.Path)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(call.Body, &sent))
	assert.Equal(t, "Meeting Summary", sent["title"])
	assert.Equal(t, "Q3 review notes...", sent["transcript"])
	assert.Equal(t, "Focus on decisions", sent["customPrompt"])
	assert.Equal(t, "pending", sent["status"])
}

func TestListMeetings(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusOK, "["+meetingJSON+"]")
	c := New(srv.URL, nil)

	meetings, err := c.ListMeetings(context.Background())

	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.Equal(t, "m1", meetings[0].ID)
	assert.Equal(t, http.MethodGet, (*calls)[0].Method)
	assert.Equal(t, "/meetings", (*calls)[0].Path)
}

func TestGetMeeting(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusOK, meetingJSON)
	c := New(srv.URL, nil)

	meeting, err := c.GetMeeting(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, "m1", meeting.ID)
	assert.Equal(t, "/meetings/m1", (*calls)[0].Path)
}

func TestUpdateMeeting_SendsOnlySetFields(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusOK, meetingJSON)
	c := New(srv.URL, nil)

	title := "Renamed"
	_, err := c.UpdateMeeting(context.Background(), "m1", UpdateMeetingData{Title: &title})

	require.NoError(t, err)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, "/meetings/m1", call.Path)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(call.Body, &sent))
	assert.Equal(t, map[string]interface{}{"title": "Renamed"}, sent)
}

func TestDeleteMeeting(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusNoContent, "")
	c := New(srv.URL, nil)

	err := c.DeleteMeeting(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, (*calls)[0].Method)
	assert.Equal(t, "/meetings/m1", (*calls)[0].Path)
}

func TestGenerateSummary(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusOK, meetingJSON)
	c := New(srv.URL, nil)

	meeting, err := c.GenerateSummary(context.Background(), "m1", "Bullet points only")

	require.NoError(t, err)
	assert.Equal(t, "- point A\n- point B", meeting.Summary)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/meetings/m1/summary", call.Path)
	assert.JSONEq(t, `{"customPrompt":"Bullet points only"}`, string(call.Body))
}

func TestGenerateSummary_OmitsEmptyPrompt(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusOK, meetingJSON)
	c := New(srv.URL, nil)

	_, err := c.GenerateSummary(context.Background(), "m1", "")

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string((*calls)[0].Body))
}

func TestShareSummary(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusOK, "")
	c := New(srv.URL, nil)

	err := c.ShareSummary(context.Background(), "m1", []string{"a@x.com", "b@x.com", "c@x.com"})

	require.NoError(t, err)
	call := (*calls)[0]
	assert.Equal(t, "/meetings/m1/share", call.Path)
	assert.JSONEq(t, `{"recipients":["a@x.com","b@x.com","c@x.com"]}`, string(call.Body))
}

func TestMeetingOps_ErrorNormalization(t *testing.T) {
	srv, _ := newFakeBackend(t, http.StatusTooManyRequests, `{"error":"quota exceeded"}`)
	c := New(srv.URL, nil)

	_, err := c.GenerateSummary(context.Background(), "m1", "")

	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}

func TestGetMeeting_NotFound(t *testing.T) {
	srv, _ := newFakeBackend(t, http.StatusNotFound, `{"message":"meeting not found"}`)
	c := New(srv.URL, nil)

	_, err := c.GetMeeting(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, mserrors.ErrNotFound))
	assert.Contains(t, err.Error(), "meeting not found")
}

func TestMeetingIDIsPathEscaped(t *testing.T) {
	srv, calls := newFakeBackend(t, http.StatusOK, meetingJSON)
	c := New(srv.URL, nil)

	_, err := c.GetMeeting(context.Background(), "m 1/x")

	require.NoError(t, err)
	assert.Equal(t, "/meetings/m%201%2Fx", (*calls)[0].Path)
}
