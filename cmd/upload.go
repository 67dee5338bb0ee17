package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetsum-cli/workflow"
)

// Upload command flags.
var (
	uploadPrompt     string
	uploadRecipients string
)

// NewUploadCommand creates the 'upload' command.
func NewUploadCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}
	deps.fill()

	cmd := &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF transcript and generate a summary",
		Long: `Upload a PDF document for server-side text extraction.

The backend extracts the text, creates a meeting from it, and a summary is
generated immediately. PDF files up to 10MB are accepted.

Examples:
  # Upload and summarize
  meetsum upload minutes.pdf

  # Upload with custom instructions and share the result
  meetsum upload minutes.pdf --prompt "Focus on budget items" --share "cfo@company.com"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, deps, args[0])
		},
	}

	cmd.Flags().StringVarP(&uploadPrompt, "prompt", "p", "", "Custom summarization instructions")
	cmd.Flags().StringVar(&uploadRecipients, "share", "", "Comma-separated recipients to share the summary with")

	return cmd
}

// runUpload executes the upload command.
func runUpload(cmd *cobra.Command, deps *Deps, path string) error {
	file, closeFile, err := workflow.OpenFile(path)
	if err != nil {
		return err
	}
	defer closeFile()

	backend, _, err := deps.connect()
	if err != nil {
		return err
	}

	ctrl := deps.newController(backend)
	if uploadPrompt != "" {
		ctrl.SetCustomPrompt(uploadPrompt)
	}

	if err := ctrl.UploadPDF(cmd.Context(), file); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ctrl.Summary())

	if uploadRecipients != "" {
		ctrl.SetRecipients(uploadRecipients)
		if err := ctrl.ShareSummary(cmd.Context()); err != nil {
			return err
		}
	}

	return nil
}
