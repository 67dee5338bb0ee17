// Package workflow implements the client-side summarization workflows.
// This file contains mock implementations for workflow testing.
package workflow

import (
	"context"
	"io"
	"sync"

	"github.com/otherjamesbrown/meetsum-cli/client"
)

// generateCall records one GenerateSummary invocation.
type generateCall struct {
	ID     string
	Prompt string
}

// shareCall records one ShareSummary invocation.
type shareCall struct {
	ID         string
	Recipients []string
}

// mockAPI is a mock implementation of the API interface. It records every
// call and replies with configured results or errors.
type mockAPI struct {
	mu sync.Mutex

	createCalls   []client.CreateMeetingData
	generateCalls []generateCall
	shareCalls    []shareCall
	uploadCalls   []string

	createResult   *client.Meeting
	createErr      error
	generateResult *client.Meeting
	generateErr    error
	shareErr       error
	uploadResult   *client.PDFUploadResult
	uploadErr      error

	// uploadStarted and uploadRelease, when set, let a test hold an
	// upload in flight while it pokes at the controller.
	uploadStarted chan struct{}
	uploadRelease chan struct{}
}

// newMockAPI creates a mockAPI preloaded with happy-path responses.
func newMockAPI() *mockAPI {
	return &mockAPI{
		createResult: &client.Meeting{
			ID:         "m1",
			Title:      "Meeting Summary",
			Transcript: "Q3 review notes...",
			Status:     client.StatusPending,
		},
		generateResult: &client.Meeting{
			ID:      "m1",
			Summary: "- point A\n- point B",
			Status:  client.StatusCompleted,
		},
		uploadResult: &client.PDFUploadResult{
			Message: "PDF processed",
			Meeting: client.UploadedMeeting{
				ID:         "m-upload",
				Title:      "notes.pdf",
				Transcript: "extracted transcript",
				Status:     client.StatusPending,
			},
			ExtractedTextLength: 20,
			NumPages:            4,
		},
	}
}

func (m *mockAPI) CreateMeeting(ctx context.Context, data client.CreateMeetingData) (*client.Meeting, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, data)
	m.mu.Unlock()

	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.createResult, nil
}

func (m *mockAPI) GenerateSummary(ctx context.Context, id, customPrompt string) (*client.Meeting, error) {
	m.mu.Lock()
	m.generateCalls = append(m.generateCalls, generateCall{ID: id, Prompt: customPrompt})
	m.mu.Unlock()

	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return m.generateResult, nil
}

func (m *mockAPI) ShareSummary(ctx context.Context, id string, recipients []string) error {
	m.mu.Lock()
	m.shareCalls = append(m.shareCalls, shareCall{ID: id, Recipients: recipients})
	m.mu.Unlock()

	return m.shareErr
}

func (m *mockAPI) UploadPDF(ctx context.Context, filename string, file io.Reader) (*client.PDFUploadResult, error) {
	m.mu.Lock()
	m.uploadCalls = append(m.uploadCalls, filename)
	m.mu.Unlock()

	if m.uploadStarted != nil {
		close(m.uploadStarted)
	}
	if m.uploadRelease != nil {
		<-m.uploadRelease
	}

	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return m.uploadResult, nil
}

// totalCalls returns how many backend calls were issued in total.
func (m *mockAPI) totalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.createCalls) + len(m.generateCalls) + len(m.shareCalls) + len(m.uploadCalls)
}

// recordingNotifier collects notices for assertions.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (n *recordingNotifier) Notify(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) last() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return Notice{}, false
	}
	return n.notices[len(n.notices)-1], true
}

func (n *recordingNotifier) titles() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.notices))
	for i, notice := range n.notices {
		out[i] = notice.Title
	}
	return out
}
