package cmd

import (
	"context"
	"io"
	"time"

	"github.com/otherjamesbrown/meetsum-cli/client"
	"github.com/otherjamesbrown/meetsum-cli/config"
)

// mockBackend implements Backend for command tests. Configure the result
// fields; calls are recorded for assertions.
type mockBackend struct {
	createResult   *client.Meeting
	createErr      error
	generateResult *client.Meeting
	generateErr    error
	shareErr       error
	uploadResult   *client.PDFUploadResult
	uploadErr      error
	listResult     []client.Meeting
	listErr        error
	getResult      *client.Meeting
	getErr         error
	updateResult   *client.Meeting
	updateErr      error
	deleteErr      error

	createCalls   []client.CreateMeetingData
	generateCalls []string
	shareCalls    [][]string
	uploadCalls   []string
	getCalls      []string
	updateCalls   []client.UpdateMeetingData
	deleteCalls   []string
	listCalls     int
}

func (m *mockBackend) CreateMeeting(ctx context.Context, data client.CreateMeetingData) (*client.Meeting, error) {
	m.createCalls = append(m.createCalls, data)
	return m.createResult, m.createErr
}

func (m *mockBackend) GenerateSummary(ctx context.Context, id, customPrompt string) (*client.Meeting, error) {
	m.generateCalls = append(m.generateCalls, id)
	return m.generateResult, m.generateErr
}

func (m *mockBackend) ShareSummary(ctx context.Context, id string, recipients []string) error {
	m.shareCalls = append(m.shareCalls, recipients)
	return m.shareErr
}

func (m *mockBackend) UploadPDF(ctx context.Context, filename string, file io.Reader) (*client.PDFUploadResult, error) {
	m.uploadCalls = append(m.uploadCalls, filename)
	return m.uploadResult, m.uploadErr
}

func (m *mockBackend) ListMeetings(ctx context.Context) ([]client.Meeting, error) {
	m.listCalls++
	return m.listResult, m.listErr
}

func (m *mockBackend) GetMeeting(ctx context.Context, id string) (*client.Meeting, error) {
	m.getCalls = append(m.getCalls, id)
	return m.getResult, m.getErr
}

func (m *mockBackend) UpdateMeeting(ctx context.Context, id string, data client.UpdateMeetingData) (*client.Meeting, error) {
	m.updateCalls = append(m.updateCalls, data)
	return m.updateResult, m.updateErr
}

func (m *mockBackend) DeleteMeeting(ctx context.Context, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.deleteErr
}

// testDeps returns deps wired to the mock backend with an in-memory
// config, bypassing the real config file and keyring.
func testDeps(backend *mockBackend) *Deps {
	return &Deps{
		LoadConfig: func() (*config.CLIConfig, error) {
			return config.DefaultConfig(), nil
		},
		LoadToken: func() (string, error) { return "", nil },
		NewBackend: func(cfg *config.CLIConfig, token string) Backend {
			return backend
		},
	}
}

// sampleMeeting returns a completed meeting for display tests.
func sampleMeeting(id string) *client.Meeting {
	return &client.Meeting{
		ID:         id,
		Title:      "Q3 planning",
		Transcript: "we discussed the roadmap",
		Summary:    "Roadmap agreed.",
		Status:     client.StatusCompleted,
		Date:       time.Date(2026, 8, 14, 10, 0, 0, 0, time.UTC),
	}
}
