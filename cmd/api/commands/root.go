// Package commands holds the careers command line.
package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yigit/careerhub/internal/pkg/logger"
)

var configPath string

// NewRootCommand builds the careers command tree. Without a subcommand it serves the API.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "careers",
		Short:         "Career services registration backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", filepath.Join("configs", "config.yaml"),
		"config file; environment variables override it")

	root.AddCommand(serveCmd(), migrateCmd(), checkCmd(), tokenCmd())
	return root
}

// Execute runs the command line.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		return err
	}
	return nil
}
