package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Summarize command flags.
var (
	summarizePrompt     string
	summarizeRecipients string
)

// NewSummarizeCommand creates the 'summarize' command.
func NewSummarizeCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}
	deps.fill()

	cmd := &cobra.Command{
		Use:   "summarize [transcript-file]",
		Short: "Generate an AI summary from a meeting transcript",
		Long: `Generate an AI summary from a meeting transcript.

The transcript is read from the given file, or from stdin when no file is
given. A meeting record is created on the backend, the summary is
generated, and the result is printed to stdout.

Examples:
  # Summarize a transcript file
  meetsum summarize notes.txt

  # Pipe a transcript in
  pbpaste | meetsum summarize

  # Custom instructions
  meetsum summarize notes.txt --prompt "List action items per person"

  # Generate and share in one step
  meetsum summarize notes.txt --share "a@company.com, b@company.com"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, deps, args)
		},
	}

	cmd.Flags().StringVarP(&summarizePrompt, "prompt", "p", "", "Custom summarization instructions")
	cmd.Flags().StringVar(&summarizeRecipients, "share", "", "Comma-separated recipients to share the summary with")

	return cmd
}

// runSummarize executes the summarize command.
func runSummarize(cmd *cobra.Command, deps *Deps, args []string) error {
	transcript, err := readTranscript(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	backend, _, err := deps.connect()
	if err != nil {
		return err
	}

	ctrl := deps.newController(backend)
	ctrl.SetTranscript(transcript)
	if summarizePrompt != "" {
		ctrl.SetCustomPrompt(summarizePrompt)
	}

	if err := ctrl.GenerateSummary(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ctrl.Summary())

	if summarizeRecipients != "" {
		ctrl.SetRecipients(summarizeRecipients)
		if err := ctrl.ShareSummary(cmd.Context()); err != nil {
			return err
		}
	}

	return nil
}

// readTranscript reads the transcript from the file argument or stdin.
func readTranscript(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading transcript file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading transcript from stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no transcript given: pass a file or pipe text to stdin")
	}
	return string(data), nil
}
