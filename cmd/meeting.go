package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetsum-cli/client"
	"github.com/otherjamesbrown/meetsum-cli/config"
)

// Meeting command flags.
var (
	meetingOutputFormat string
	meetingUpdateTitle  string
	meetingUpdateStatus string
	meetingUpdatePrompt string
	meetingDeleteYes    bool
)

// NewMeetingCommand creates the root meeting command with all subcommands.
func NewMeetingCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}
	deps.fill()

	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Manage meetings",
		Long: `Manage meeting records including listing, viewing, updating, and deleting.

Examples:
  # List all meetings
  meetsum meeting list

  # Show one meeting with its summary
  meetsum meeting get 665f1c2ab91e1c0012ab34cd

  # Output as JSON
  meetsum meeting list -o json`,
		Aliases: []string{"meetings"},
	}

	cmd.AddCommand(newMeetingListCommand(deps))
	cmd.AddCommand(newMeetingGetCommand(deps))
	cmd.AddCommand(newMeetingUpdateCommand(deps))
	cmd.AddCommand(newMeetingDeleteCommand(deps))

	return cmd
}

// newMeetingListCommand creates the 'meeting list' subcommand.
func newMeetingListCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List meetings",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingList(cmd, deps)
		},
	}

	cmd.Flags().StringVarP(&meetingOutputFormat, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// runMeetingList executes the 'meeting list' subcommand.
func runMeetingList(cmd *cobra.Command, deps *Deps) error {
	backend, cfg, err := deps.connect()
	if err != nil {
		return err
	}

	meetings, err := backend.ListMeetings(cmd.Context())
	if err != nil {
		return err
	}

	format := resolveFormat(meetingOutputFormat, cfg)
	if format != config.OutputFormatText {
		return writeStructured(cmd.OutOrStdout(), format, map[string]interface{}{
			"meetings": meetings,
			"count":    len(meetings),
		})
	}

	out := cmd.OutOrStdout()
	if len(meetings) == 0 {
		fmt.Fprintln(out, "No meetings found.")
		return nil
	}

	fmt.Fprintf(out, "Meetings (%d):\n\n", len(meetings))
	fmt.Fprintf(out, "  %-26s %-32s %-10s %s\n", "ID", "TITLE", "STATUS", "DATE")
	fmt.Fprintf(out, "  %-26s %-32s %-10s %s\n", "--", "-----", "------", "----")
	for _, m := range meetings {
		fmt.Fprintf(out, "  %-26s %-32s %-10s %s\n",
			m.ID, truncate(m.Title, 32), m.Status, m.Date.Format("2006-01-02 15:04"))
	}

	return nil
}

// newMeetingGetCommand creates the 'meeting get' subcommand.
func newMeetingGetCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "get <meeting-id>",
		Short:   "Show a meeting and its summary",
		Aliases: []string{"show"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingGet(cmd, deps, args[0])
		},
	}

	cmd.Flags().StringVarP(&meetingOutputFormat, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// runMeetingGet executes the 'meeting get' subcommand.
func runMeetingGet(cmd *cobra.Command, deps *Deps, id string) error {
	backend, cfg, err := deps.connect()
	if err != nil {
		return err
	}

	meeting, err := backend.GetMeeting(cmd.Context(), id)
	if err != nil {
		return err
	}

	format := resolveFormat(meetingOutputFormat, cfg)
	if format != config.OutputFormatText {
		return writeStructured(cmd.OutOrStdout(), format, meeting)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:           %s\n", meeting.ID)
	fmt.Fprintf(out, "Title:        %s\n", meeting.Title)
	fmt.Fprintf(out, "Status:       %s\n", meeting.Status)
	fmt.Fprintf(out, "Date:         %s\n", meeting.Date.Format("2006-01-02 15:04"))
	if len(meeting.Participants) > 0 {
		fmt.Fprintf(out, "Participants: %s\n", strings.Join(meeting.Participants, ", "))
	}
	fmt.Fprintf(out, "Transcript:   %d characters\n", len(meeting.Transcript))
	if meeting.Summary != "" {
		fmt.Fprintf(out, "\nSummary:\n%s\n", meeting.Summary)
	}
	if meeting.ActionItems != "" {
		fmt.Fprintf(out, "\nAction items:\n%s\n", meeting.ActionItems)
	}

	return nil
}

// newMeetingUpdateCommand creates the 'meeting update' subcommand.
func newMeetingUpdateCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <meeting-id>",
		Short: "Update meeting fields",
		Long: `Update fields of a meeting. Only the flags you pass are sent;
everything else is left unchanged.

Examples:
  meetsum meeting update 665f1c2a --title "Q3 planning"
  meetsum meeting update 665f1c2a --status completed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingUpdate(cmd, deps, args[0])
		},
	}

	cmd.Flags().StringVar(&meetingUpdateTitle, "title", "", "New meeting title")
	cmd.Flags().StringVar(&meetingUpdateStatus, "status", "", "New status (pending or completed)")
	cmd.Flags().StringVar(&meetingUpdatePrompt, "prompt", "", "New custom summarization instructions")

	return cmd
}

// runMeetingUpdate executes the 'meeting update' subcommand.
func runMeetingUpdate(cmd *cobra.Command, deps *Deps, id string) error {
	var data client.UpdateMeetingData
	changed := false

	if cmd.Flags().Changed("title") {
		data.Title = &meetingUpdateTitle
		changed = true
	}
	if cmd.Flags().Changed("status") {
		if meetingUpdateStatus != client.StatusPending && meetingUpdateStatus != client.StatusCompleted {
			return fmt.Errorf("status must be %q or %q", client.StatusPending, client.StatusCompleted)
		}
		data.Status = &meetingUpdateStatus
		changed = true
	}
	if cmd.Flags().Changed("prompt") {
		data.CustomPrompt = &meetingUpdatePrompt
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to update: pass at least one of --title, --status, --prompt")
	}

	backend, _, err := deps.connect()
	if err != nil {
		return err
	}

	meeting, err := backend.UpdateMeeting(cmd.Context(), id, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated meeting %s (%s)\n", meeting.ID, meeting.Title)
	return nil
}

// newMeetingDeleteCommand creates the 'meeting delete' subcommand.
func newMeetingDeleteCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <meeting-id>",
		Short:   "Delete a meeting",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingDelete(cmd, deps, args[0])
		},
	}

	cmd.Flags().BoolVarP(&meetingDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// runMeetingDelete executes the 'meeting delete' subcommand.
func runMeetingDelete(cmd *cobra.Command, deps *Deps, id string) error {
	if !meetingDeleteYes {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete meeting %s? This cannot be undone. (y/N): ", id)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	backend, _, err := deps.connect()
	if err != nil {
		return err
	}

	if err := backend.DeleteMeeting(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted meeting %s\n", id)
	return nil
}
