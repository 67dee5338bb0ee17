package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/otherjamesbrown/meetsum-cli/client"
	mserrors "github.com/otherjamesbrown/meetsum-cli/pkg/errors"
	"github.com/otherjamesbrown/meetsum-cli/pkg/logging"
)

// GenerateSummary runs the summary-generation workflow: if the session
// has no meeting yet, one is created from the current transcript first;
// then the backend is asked to summarize it with the session's custom
// instructions. On success the session summary holds the generated text.
//
// Invocable directly by the user or auto-chained from a successful upload.
// A second call with the meeting identifier already set never creates a
// second meeting.
func (c *Controller) GenerateSummary(ctx context.Context) error {
	c.mu.Lock()
	transcript := c.transcript
	prompt := c.customPrompt
	meetingID := c.meetingID

	if strings.TrimSpace(transcript) == "" {
		c.mu.Unlock()
		c.notifyError("Missing transcript", "Please enter a meeting transcript to summarize.")
		return fmt.Errorf("transcript is empty: %w", mserrors.ErrValidation)
	}
	// Single-writer rule for the meeting identifier: while an upload is
	// still in flight, a manual generation must not race it.
	if c.uploadPhase == PhaseRunning {
		c.mu.Unlock()
		c.notifyError("Upload in progress", "Please wait for the PDF upload to finish.")
		return fmt.Errorf("upload in flight: %w", mserrors.ErrBusy)
	}
	if c.generatePhase == PhaseRunning {
		c.mu.Unlock()
		return fmt.Errorf("summary generation in flight: %w", mserrors.ErrBusy)
	}
	c.generatePhase = PhaseRunning
	c.mu.Unlock()

	err := c.generate(ctx, transcript, prompt, meetingID)

	c.mu.Lock()
	if err != nil {
		c.generatePhase = PhaseError
	} else {
		c.generatePhase = PhaseSuccess
	}
	c.mu.Unlock()

	return err
}

// generate performs the create-if-needed and summarize calls. The phase
// bookkeeping stays in GenerateSummary so every exit path clears it.
func (c *Controller) generate(ctx context.Context, transcript, prompt, meetingID string) error {
	if meetingID == "" {
		date := c.now()
		meeting, err := c.api.CreateMeeting(ctx, client.CreateMeetingData{
			Title:        defaultMeetingTitle,
			Transcript:   transcript,
			CustomPrompt: prompt,
			Date:         &date,
			Participants: []string{},
			Status:       client.StatusPending,
		})
		if err != nil {
			c.logger.Error("creating meeting failed", logging.Err(err))
			c.notifyError("Error", "Failed to generate meeting summary. Please try again.")
			return fmt.Errorf("creating meeting: %w", err)
		}

		c.mu.Lock()
		c.meetingID = meeting.ID
		c.mu.Unlock()
		meetingID = meeting.ID

		c.logger.Debug("meeting created", logging.F("meeting_id", meetingID))
	}

	updated, err := c.api.GenerateSummary(ctx, meetingID, prompt)
	if err != nil {
		c.logger.Error("generating summary failed", logging.F("meeting_id", meetingID), logging.Err(err))
		c.notifyError("Error", "Failed to generate meeting summary. Please try again.")
		return fmt.Errorf("generating summary: %w", err)
	}

	if updated.Summary == "" {
		// Logical failure, not a transport one: the call succeeded but the
		// backend produced nothing. Logged distinctly, surfaced the same.
		c.logger.Error("backend returned meeting without summary", logging.F("meeting_id", meetingID))
		c.notifyError("Error", "Failed to generate meeting summary. Please try again.")
		return fmt.Errorf("meeting %s: %w", meetingID, mserrors.ErrNoSummary)
	}

	c.mu.Lock()
	c.summary = updated.Summary
	c.mu.Unlock()

	c.logger.Info("summary generated", logging.F("meeting_id", meetingID))
	c.notifySuccess("Summary generated", "Meeting summary has been generated successfully.")
	return nil
}
