package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetsum-cli/config"
)

var configShowFormat string

// NewConfigCommand creates the config command with show and init
// subcommands.
func NewConfigCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}
	deps.fill()

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand(deps))
	cmd.AddCommand(newConfigInitCommand(deps))

	return cmd
}

// newConfigShowCommand creates the 'config show' subcommand.
func newConfigShowCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, deps)
		},
	}

	cmd.Flags().StringVarP(&configShowFormat, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// runConfigShow executes the 'config show' subcommand.
func runConfigShow(cmd *cobra.Command, deps *Deps) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	format := resolveFormat(configShowFormat, cfg)
	if format != config.OutputFormatText {
		return writeStructured(cmd.OutOrStdout(), format, cfg)
	}

	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config file:   %s", path)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprint(out, " (not present)")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "API URL:       %s\n", cfg.APIURL)
	fmt.Fprintf(out, "Timeout:       %s\n", cfg.Timeout)
	fmt.Fprintf(out, "Output format: %s\n", cfg.OutputFormat)
	fmt.Fprintf(out, "Debug:         %t\n", cfg.Debug)

	return nil
}

// newConfigInitCommand creates the 'config init' subcommand.
func newConfigInitCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd)
		},
	}
}

// runConfigInit executes the 'config init' subcommand.
func runConfigInit(cmd *cobra.Command) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := config.DefaultConfig().Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
