package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otherjamesbrown/meetsum-cli/config"
	"github.com/otherjamesbrown/meetsum-cli/pkg/buildinfo"
)

var versionOutputFormat string

// NewVersionCommand creates the version command.
func NewVersionCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}
	deps.fill()

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd)
		},
	}

	cmd.Flags().StringVarP(&versionOutputFormat, "output", "o", "", "Output format: text, json, yaml")

	return cmd
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command) error {
	info := buildinfo.Get()

	if versionOutputFormat != "" && config.OutputFormat(versionOutputFormat) != config.OutputFormatText {
		return writeStructured(cmd.OutOrStdout(), config.OutputFormat(versionOutputFormat), info)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "meetsum %s\n", buildinfo.String())
	return nil
}
