// Package cmd provides CLI commands for the meetsum tool.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/otherjamesbrown/meetsum-cli/client"
	"github.com/otherjamesbrown/meetsum-cli/config"
	"github.com/otherjamesbrown/meetsum-cli/credentials"
	"github.com/otherjamesbrown/meetsum-cli/pkg/logging"
	"github.com/otherjamesbrown/meetsum-cli/workflow"
)

// Backend is the full client surface the commands use.
// *client.APIClient satisfies it; tests substitute mocks.
type Backend interface {
	workflow.API
	ListMeetings(ctx context.Context) ([]client.Meeting, error)
	GetMeeting(ctx context.Context, id string) (*client.Meeting, error)
	UpdateMeeting(ctx context.Context, id string, data client.UpdateMeetingData) (*client.Meeting, error)
	DeleteMeeting(ctx context.Context, id string) error
}

// Deps holds dependencies for meetsum commands so tests can inject fakes.
type Deps struct {
	// LoadConfig loads the CLI configuration.
	LoadConfig func() (*config.CLIConfig, error)

	// LoadToken loads the stored API token ("" when none is stored).
	LoadToken func() (string, error)

	// NewBackend constructs the API client for a configuration and token.
	NewBackend func(cfg *config.CLIConfig, token string) Backend

	// Credentials is the token store used by the auth commands. Defaults
	// to the system keyring.
	Credentials credentials.Store

	// Notifier receives workflow notices. Defaults to console output on
	// stderr.
	Notifier workflow.Notifier

	// Logger receives diagnostics.
	Logger logging.Logger
}

// DefaultDeps returns dependencies for production use.
func DefaultDeps() *Deps {
	return &Deps{
		LoadConfig: config.LoadConfig,
		LoadToken:  credentials.LoadToken,
		NewBackend: func(cfg *config.CLIConfig, token string) Backend {
			return client.NewFromConfig(cfg, token)
		},
		Credentials: credentials.NewKeyringStore(),
		Notifier:    NewConsoleNotifier(os.Stderr),
	}
}

// fill populates nil fields with defaults so partially constructed test
// deps still work.
func (d *Deps) fill() {
	if d.LoadConfig == nil {
		d.LoadConfig = config.LoadConfig
	}
	if d.LoadToken == nil {
		d.LoadToken = func() (string, error) { return "", nil }
	}
	if d.NewBackend == nil {
		d.NewBackend = func(cfg *config.CLIConfig, token string) Backend {
			return client.NewFromConfig(cfg, token)
		}
	}
	if d.Credentials == nil {
		d.Credentials = credentials.NewKeyringStore()
	}
	if d.Notifier == nil {
		d.Notifier = workflow.NopNotifier{}
	}
	if d.Logger == nil {
		d.Logger = logging.Nop()
	}
}

// connect loads configuration and credentials and constructs the backend
// client. This is the common preamble of every networked command.
func (d *Deps) connect() (Backend, *config.CLIConfig, error) {
	cfg, err := d.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	token, err := d.LoadToken()
	if err != nil {
		return nil, nil, fmt.Errorf("loading credentials: %w", err)
	}

	return d.NewBackend(cfg, token), cfg, nil
}

// newController builds a workflow controller over the backend.
func (d *Deps) newController(backend Backend) *workflow.Controller {
	return workflow.NewController(backend, &workflow.Options{
		Notifier: d.Notifier,
		Logger:   d.Logger,
	})
}
