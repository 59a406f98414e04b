// Package cli provides CLI commands for the gamify application.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/gamify/internal/config"
	"github.com/example/gamify/internal/wire"
)

// dbPathFlag holds the persistent --db flag. Empty means use configuration.
var dbPathFlag string

// RegisterGlobalFlags adds flags shared by every command.
func RegisterGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&dbPathFlag, "db", "", "path to the SQLite database (overrides GAMIFY_DB_PATH)")
}

// Setup loads configuration, installs the process logger, and configures the
// service container. Intended for the root command's PersistentPreRunE.
func Setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if dbPathFlag != "" {
		cfg.DBPath = dbPathFlag
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	wire.Configure(cfg, logger)
	return nil
}

// Teardown closes the service container. Intended for main after Execute.
func Teardown() {
	if err := wire.Shutdown(); err != nil {
		slog.Warn("shutdown failed", "error", err)
	}
}

// NewContext creates the context CLI commands run under.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	return context.Background()
}

// container returns the process-wide service container.
func container(ctx context.Context) (*wire.Container, error) {
	c, err := wire.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return c, nil
}
