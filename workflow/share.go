package workflow

import (
	"context"
	"fmt"
	"strings"

	mserrors "github.com/otherjamesbrown/meetsum-cli/pkg/errors"
	"github.com/otherjamesbrown/meetsum-cli/pkg/logging"
)

// SplitRecipients splits comma-separated recipient text into trimmed
// addresses, dropping empty pieces. No address validation is performed;
// malformed addresses are passed through to the backend uninterpreted.
func SplitRecipients(text string) []string {
	var out []string
	for _, piece := range strings.Split(text, ",") {
		if addr := strings.TrimSpace(piece); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// ShareSummary runs the sharing workflow: validate the session, split the
// recipient text, and dispatch the stored summary by email through the
// backend. A failed share leaves the generated summary intact.
func (c *Controller) ShareSummary(ctx context.Context) error {
	c.mu.Lock()
	summary := c.summary
	recipients := c.recipients
	meetingID := c.meetingID

	if strings.TrimSpace(summary) == "" {
		c.mu.Unlock()
		c.notifyError("No summary to send", "Please generate a summary first.")
		return fmt.Errorf("summary is empty: %w", mserrors.ErrValidation)
	}
	if strings.TrimSpace(recipients) == "" || meetingID == "" {
		c.mu.Unlock()
		c.notifyError("Missing recipients", "Please enter at least one email address.")
		return fmt.Errorf("no recipients or meeting: %w", mserrors.ErrValidation)
	}
	if c.sharePhase == PhaseRunning {
		c.mu.Unlock()
		return fmt.Errorf("share in flight: %w", mserrors.ErrBusy)
	}
	c.sharePhase = PhaseRunning
	c.mu.Unlock()

	list := SplitRecipients(recipients)

	err := c.api.ShareSummary(ctx, meetingID, list)

	c.mu.Lock()
	if err != nil {
		c.sharePhase = PhaseError
	} else {
		c.sharePhase = PhaseSuccess
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("sharing summary failed", logging.F("meeting_id", meetingID), logging.Err(err))
		c.notifyError("Error", "Failed to share the summary. Please try again.")
		return fmt.Errorf("sharing summary: %w", err)
	}

	c.logger.Info("summary shared", logging.F("meeting_id", meetingID), logging.F("recipients", len(list)))
	c.notifySuccess("Summary shared!", fmt.Sprintf("Meeting summary shared with %d recipient(s).", len(list)))
	return nil
}
