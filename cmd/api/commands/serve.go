package commands

import (
	"github.com/spf13/cobra"

	"github.com/yigit/careerhub/internal/pkg/logger"
	"github.com/yigit/careerhub/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the registration API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	srv, err := server.NewServer(configPath)
	if err != nil {
		return err
	}

	// Blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}
