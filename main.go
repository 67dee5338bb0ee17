// Package main provides the meetsum CLI entry point.
// meetsum is the command-line client for the meeting summarizer backend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetsum-cli/cmd"
	"github.com/otherjamesbrown/meetsum-cli/config"
	"github.com/otherjamesbrown/meetsum-cli/pkg/logging"
)

// Global flags.
var (
	apiURL       string
	timeout      time.Duration
	outputFormat string
	debug        bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "meetsum",
	Short: "Meeting summarizer CLI",
	Long: `meetsum is the command-line client for the meeting summarizer backend.

It turns meeting transcripts into AI-generated summaries with action
items, and emails them to participants.

COMMON WORKFLOWS:
  Summarize a transcript:  meetsum summarize notes.txt
  Summarize a PDF:         meetsum upload minutes.pdf
  Email a summary:         meetsum share <meeting-id> --to a@x.com,b@x.com
  Browse past meetings:    meetsum meeting list  →  meetsum meeting get <id>

Run 'meetsum <command> --help' for flags and examples.`,
	SilenceUsage: true,
}

// newDeps builds production dependencies with global flag overrides
// layered on top of the loaded configuration.
func newDeps() *cmd.Deps {
	deps := cmd.DefaultDeps()

	load := deps.LoadConfig
	deps.LoadConfig = func() (*config.CLIConfig, error) {
		cfg, err := load()
		if err != nil {
			return nil, err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		if timeout != 0 {
			cfg.Timeout = timeout
		}
		if outputFormat != "" {
			cfg.OutputFormat = config.OutputFormat(outputFormat)
		}
		if debug {
			cfg.Debug = true
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		level := logging.LevelWarn
		if cfg.Debug {
			level = logging.LevelDebug
		}
		deps.Logger = logging.NewLogger(&logging.Config{Level: level})

		return cfg, nil
	}

	return deps
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend base URL (e.g. http://localhost:5000/api)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (e.g. 30s, 2m)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json, yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	deps := newDeps()

	rootCmd.AddCommand(cmd.NewSummarizeCommand(deps))
	rootCmd.AddCommand(cmd.NewUploadCommand(deps))
	rootCmd.AddCommand(cmd.NewShareCommand(deps))
	rootCmd.AddCommand(cmd.NewMeetingCommand(deps))
	rootCmd.AddCommand(cmd.NewAuthCommand(deps))
	rootCmd.AddCommand(cmd.NewConfigCommand(deps))
	rootCmd.AddCommand(cmd.NewVersionCommand(deps))
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
