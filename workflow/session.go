// Package workflow implements the client-side state machines that sequence
// PDF upload, meeting creation, summary generation, and email dispatch
// against the summarizer backend.
//
// All session state lives in a Controller and is mutated only through the
// documented operations; the presentation layer reads it through accessors
// and never writes it directly. Each workflow carries one explicit phase
// enum (idle -> running -> success/error, idle again on the next trigger)
// instead of overlapping boolean flags, and writes to the meeting
// identifier are serialized: a manual generation is rejected while an
// upload is in flight.
package workflow

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/otherjamesbrown/meetsum-cli/client"
	"github.com/otherjamesbrown/meetsum-cli/pkg/logging"
)

// Phase is the state of one workflow.
type Phase string

const (
	// PhaseIdle means the workflow has never run since the last trigger.
	PhaseIdle Phase = "idle"
	// PhaseRunning means a request is in flight; re-entrant triggers are
	// rejected until it completes.
	PhaseRunning Phase = "running"
	// PhaseSuccess means the last run completed successfully.
	PhaseSuccess Phase = "success"
	// PhaseError means the last run failed; the user may re-trigger.
	PhaseError Phase = "error"
)

// DefaultCustomPrompt seeds the custom-instruction text for new sessions.
const DefaultCustomPrompt = "Summarize this meeting in clear, actionable bullet points. " +
	"Include key decisions, action items, and next steps."

// defaultMeetingTitle is used when a meeting is created implicitly from a
// pasted transcript rather than an uploaded document.
const defaultMeetingTitle = "Meeting Summary"

// NoticeLevel classifies a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a user-facing message emitted by a workflow.
type Notice struct {
	Level  NoticeLevel
	Title  string
	Detail string
}

// Notifier receives user-facing notices. The CLI prints them; tests
// collect them.
type Notifier interface {
	Notify(Notice)
}

// NopNotifier discards all notices.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(Notice) {}

// API is the subset of backend operations the workflows use.
// *client.APIClient satisfies it; tests substitute mocks.
type API interface {
	CreateMeeting(ctx context.Context, data client.CreateMeetingData) (*client.Meeting, error)
	GenerateSummary(ctx context.Context, id, customPrompt string) (*client.Meeting, error)
	ShareSummary(ctx context.Context, id string, recipients []string) error
	UploadPDF(ctx context.Context, filename string, file io.Reader) (*client.PDFUploadResult, error)
}

// Options configures a Controller.
type Options struct {
	// Notifier receives user-facing notices. Defaults to NopNotifier.
	Notifier Notifier

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger logging.Logger

	// Now supplies timestamps for implicit meeting creation. Defaults to
	// time.Now. Tests override it for deterministic dates.
	Now func() time.Time
}

// Controller owns the session state for one summarization task and
// sequences the upload, generation, and sharing workflows over it.
// The session is transient: it lives for one CLI invocation and is never
// persisted.
type Controller struct {
	api      API
	notifier Notifier
	logger   logging.Logger
	now      func() time.Time

	mu            sync.Mutex
	transcript    string
	customPrompt  string
	summary       string
	recipients    string
	meetingID     string
	uploadPhase   Phase
	generatePhase Phase
	sharePhase    Phase
}

// NewController creates a Controller with an empty session seeded with the
// default custom prompt.
func NewController(api API, opts *Options) *Controller {
	if opts == nil {
		opts = &Options{}
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Controller{
		api:           api,
		notifier:      notifier,
		logger:        logger,
		now:           now,
		customPrompt:  DefaultCustomPrompt,
		uploadPhase:   PhaseIdle,
		generatePhase: PhaseIdle,
		sharePhase:    PhaseIdle,
	}
}

// Transcript returns the session transcript text.
func (c *Controller) Transcript() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcript
}

// SetTranscript replaces the session transcript text.
func (c *Controller) SetTranscript(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = text
}

// CustomPrompt returns the session custom-instruction text.
func (c *Controller) CustomPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customPrompt
}

// SetCustomPrompt replaces the session custom-instruction text.
func (c *Controller) SetCustomPrompt(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customPrompt = text
}

// Summary returns the session summary text. This is a client-side copy,
// independently editable after generation; edits do not round-trip to the
// server.
func (c *Controller) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// SetSummary replaces the session summary text.
func (c *Controller) SetSummary(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = text
}

// Recipients returns the session recipient text (comma-separated).
func (c *Controller) Recipients() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recipients
}

// SetRecipients replaces the session recipient text.
func (c *Controller) SetRecipients(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipients = text
}

// MeetingID returns the meeting identifier associated with the session,
// or "" if no create-or-upload call has succeeded yet.
func (c *Controller) MeetingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.meetingID
}

// SeedMeeting associates the session with an existing meeting, loading its
// transcript and stored summary. Used by commands that operate on a
// meeting fetched from the backend rather than a fresh upload.
func (c *Controller) SeedMeeting(m *client.Meeting) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meetingID = m.ID
	c.transcript = m.Transcript
	c.summary = m.Summary
	if m.CustomPrompt != "" {
		c.customPrompt = m.CustomPrompt
	}
}

// UploadPhase returns the upload workflow phase.
func (c *Controller) UploadPhase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploadPhase
}

// GeneratePhase returns the generation workflow phase.
func (c *Controller) GeneratePhase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generatePhase
}

// SharePhase returns the sharing workflow phase.
func (c *Controller) SharePhase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sharePhase
}

// notifyError reports a failure to the user.
func (c *Controller) notifyError(title, detail string) {
	c.notifier.Notify(Notice{Level: NoticeError, Title: title, Detail: detail})
}

// notifySuccess reports a success to the user.
func (c *Controller) notifySuccess(title, detail string) {
	c.notifier.Notify(Notice{Level: NoticeSuccess, Title: title, Detail: detail})
}
