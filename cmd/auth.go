package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/otherjamesbrown/meetsum-cli/credentials"
)

// Auth command flags.
var (
	authLoginToken string
)

// NewAuthCommand creates the auth command with login, logout, and status
// subcommands.
func NewAuthCommand(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = DefaultDeps()
	}
	deps.fill()

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage API credentials",
		Long: `Manage the API token used to authenticate against the summarization
backend. Tokens are stored in the operating system keyring.

The MEETSUM_API_TOKEN environment variable, when set, takes precedence
over the keyring.`,
	}

	cmd.AddCommand(newAuthLoginCommand(deps))
	cmd.AddCommand(newAuthLogoutCommand(deps))
	cmd.AddCommand(newAuthStatusCommand(deps))

	return cmd
}

// newAuthLoginCommand creates the 'auth login' subcommand.
func newAuthLoginCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthLogin(cmd, deps)
		},
	}

	cmd.Flags().StringVar(&authLoginToken, "token", "", "API token (prompted for if omitted)")

	return cmd
}

// runAuthLogin executes the 'auth login' subcommand.
func runAuthLogin(cmd *cobra.Command, deps *Deps) error {
	token := strings.TrimSpace(authLoginToken)
	if token == "" {
		var err error
		token, err = promptToken(cmd)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := deps.Credentials.Save(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Token stored in %s.\n", deps.Credentials.Description())
	return nil
}

// promptToken reads a token from the terminal without echoing it. When
// stdin is not a terminal it falls back to a plain line read.
func promptToken(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "API token: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// newAuthLogoutCommand creates the 'auth logout' subcommand.
func newAuthLogoutCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthLogout(cmd, deps)
		},
	}
}

// runAuthLogout executes the 'auth logout' subcommand.
func runAuthLogout(cmd *cobra.Command, deps *Deps) error {
	if err := deps.Credentials.Clear(); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Token removed.")
	return nil
}

// newAuthStatusCommand creates the 'auth status' subcommand.
func newAuthStatusCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current credential status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthStatus(cmd, deps)
		},
	}
}

// runAuthStatus executes the 'auth status' subcommand.
func runAuthStatus(cmd *cobra.Command, deps *Deps) error {
	out := cmd.OutOrStdout()

	if env := os.Getenv(credentials.EnvToken); env != "" {
		fmt.Fprintf(out, "Authenticated via %s (%s)\n", credentials.EnvToken, credentials.MaskToken(env))
		return nil
	}

	token, err := deps.Credentials.Token()
	if err != nil {
		if errors.Is(err, credentials.ErrNoToken) {
			fmt.Fprintln(out, "Not authenticated. Run 'meetsum auth login' to store a token.")
			return nil
		}
		return fmt.Errorf("failed to read token: %w", err)
	}

	fmt.Fprintf(out, "Authenticated via %s (%s)\n", deps.Credentials.Description(), credentials.MaskToken(token))
	return nil
}
