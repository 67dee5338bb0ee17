package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/otherjamesbrown/meetsum-cli/config"
)

// resolveFormat picks the output format: the per-command flag wins,
// otherwise the configured default applies.
func resolveFormat(flag string, cfg *config.CLIConfig) config.OutputFormat {
	if flag != "" {
		return config.OutputFormat(flag)
	}
	if cfg != nil && cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return config.OutputFormatText
}

// writeStructured emits v as JSON or YAML to out.
func writeStructured(out io.Writer, format config.OutputFormat, v interface{}) error {
	switch format {
	case config.OutputFormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputFormatYAML:
		enc := yaml.NewEncoder(out)
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// truncate shortens s to max runes for table display.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
