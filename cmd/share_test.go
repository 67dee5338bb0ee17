package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otherjamesbrown/meetsum-cli/client"
)

func TestNewShareCommand(t *testing.T) {
	cmd := NewShareCommand(nil)

	require.NotNil(t, cmd)
	assert.Equal(t, "share <meeting-id>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("to"))
}

func TestShare_SendsToRecipients(t *testing.T) {
	backend := &mockBackend{getResult: sampleMeeting("m1")}

	cmd := NewShareCommand(testDeps(backend))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"m1", "--to", "a@x.com, b@x.com"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{"m1"}, backend.getCalls)
	require.Len(t, backend.shareCalls, 1)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, backend.shareCalls[0])

	shareRecipients = ""
}

func TestShare_MeetingNotFound(t *testing.T) {
	backend := &mockBackend{
		getErr: &client.APIError{Status: 404, Message: "Meeting not found"},
	}

	cmd := NewShareCommand(testDeps(backend))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"gone", "--to", "a@x.com"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meeting gone not found")
	assert.Empty(t, backend.shareCalls)

	shareRecipients = ""
}

func TestShare_RequiresRecipients(t *testing.T) {
	cmd := NewShareCommand(testDeps(&mockBackend{}))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"m1"})

	require.Error(t, cmd.Execute())
}

func TestShare_NoSummaryOnMeeting(t *testing.T) {
	meeting := sampleMeeting("m2")
	meeting.Summary = ""
	backend := &mockBackend{getResult: meeting}

	cmd := NewShareCommand(testDeps(backend))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"m2", "--to", "a@x.com"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Empty(t, backend.shareCalls)

	shareRecipients = ""
}
