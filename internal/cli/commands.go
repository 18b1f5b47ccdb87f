// Package cli defines the bookery command line: the API server, schema
// migration and build information.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mrlokans/bookery/internal/config"
	"github.com/mrlokans/bookery/internal/entrypoint"
	"github.com/mrlokans/bookery/internal/logging"
)

// BuildInfo is set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

// NewRootCommand builds the command tree. Running the root command without a
// subcommand starts the server.
func NewRootCommand(info BuildInfo) *cobra.Command {
	serve := newServeCommand(info)

	root := &cobra.Command{
		Use:   "bookery",
		Short: "Library records API for authors, books, costumers and rentals",
		Long: `bookery keeps the records of a small lending library in a relational
database and exposes them over HTTP.

Configuration is read from the environment; a .env file in the working
directory is loaded first when present.`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newMigrateCommand(), newVersionCommand(info))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute(info BuildInfo) {
	if err := NewRootCommand(info).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newServeCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default if no command given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			return entrypoint.Run(cfg, info.Version, logger)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			return entrypoint.Migrate(cfg, logger)
		},
	}
}

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and commit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bookery %s (commit %s)\n", info.Version, info.Commit)
		},
	}
}

func load() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := config.NewConfig()
	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger, nil
}
