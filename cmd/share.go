package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mserrors "github.com/otherjamesbrown/meetsum-cli/pkg/errors"
)

// Share command flags.
var shareRecipients string

// NewShareCommand creates the 'share' command.
func NewShareCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}
	deps.fill()

	cmd := &cobra.Command{
		Use:   "share <meeting-id>",
		Short: "Share a meeting summary via email",
		Long: `Share the stored summary of a meeting with a list of recipients.

The meeting must already have a generated summary; the backend dispatches
the email.

Examples:
  meetsum share 665f1c2ab91e1c0012ab34cd --to "a@company.com, b@company.com"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShare(cmd, deps, args[0])
		},
	}

	cmd.Flags().StringVar(&shareRecipients, "to", "", "Comma-separated recipient email addresses (required)")
	cmd.MarkFlagRequired("to")

	return cmd
}

// runShare executes the share command.
func runShare(cmd *cobra.Command, deps *Deps, meetingID string) error {
	backend, _, err := deps.connect()
	if err != nil {
		return err
	}

	meeting, err := backend.GetMeeting(cmd.Context(), meetingID)
	if err != nil {
		if mserrors.IsNotFound(err) {
			return fmt.Errorf("meeting %s not found", meetingID)
		}
		return err
	}

	ctrl := deps.newController(backend)
	ctrl.SeedMeeting(meeting)
	ctrl.SetRecipients(shareRecipients)

	return ctrl.ShareSummary(cmd.Context())
}
