package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otherjamesbrown/meetsum-cli/client"
)

func resetSummarizeFlags() {
	summarizePrompt = ""
	summarizeRecipients = ""
}

func TestNewSummarizeCommand(t *testing.T) {
	cmd := NewSummarizeCommand(nil)

	require.NotNil(t, cmd)
	assert.Equal(t, "summarize [transcript-file]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("prompt"))
	assert.NotNil(t, cmd.Flags().Lookup("share"))
}

func TestSummarize_FromFile(t *testing.T) {
	resetSummarizeFlags()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("we discussed the roadmap"), 0o600))

	backend := &mockBackend{
		createResult:   &client.Meeting{ID: "m1", Status: client.StatusPending},
		generateResult: &client.Meeting{ID: "m1", Summary: "Roadmap agreed."},
	}

	cmd := NewSummarizeCommand(testDeps(backend))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Roadmap agreed.")
	require.Len(t, backend.createCalls, 1)
	assert.Equal(t, "we discussed the roadmap", backend.createCalls[0].Transcript)
	assert.Equal(t, []string{"m1"}, backend.generateCalls)
	assert.Empty(t, backend.shareCalls)
}

func TestSummarize_FromStdin(t *testing.T) {
	resetSummarizeFlags()

	backend := &mockBackend{
		createResult:   &client.Meeting{ID: "m2", Status: client.StatusPending},
		generateResult: &client.Meeting{ID: "m2", Summary: "Done."},
	}

	cmd := NewSummarizeCommand(testDeps(backend))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("pasted transcript"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	require.Len(t, backend.createCalls, 1)
	assert.Equal(t, "pasted transcript", backend.createCalls[0].Transcript)
}

func TestSummarize_EmptyStdin(t *testing.T) {
	resetSummarizeFlags()

	backend := &mockBackend{}

	cmd := NewSummarizeCommand(testDeps(backend))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("   \n"))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no transcript given")
	assert.Empty(t, backend.createCalls)
}

func TestSummarize_ShareFlag(t *testing.T) {
	resetSummarizeFlags()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("transcript"), 0o600))

	backend := &mockBackend{
		createResult:   &client.Meeting{ID: "m3", Status: client.StatusPending},
		generateResult: &client.Meeting{ID: "m3", Summary: "Summary."},
	}

	cmd := NewSummarizeCommand(testDeps(backend))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{path, "--share", "a@x.com, b@x.com"})

	require.NoError(t, cmd.Execute())

	require.Len(t, backend.shareCalls, 1)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, backend.shareCalls[0])

	resetSummarizeFlags()
}
