package commands

import (
	"github.com/spf13/cobra"

	"github.com/yigit/careerhub/internal/bootstrap"
	"github.com/yigit/careerhub/internal/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
			if err != nil {
				return err
			}

			database, err := db.NewPostgresDB(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			return bootstrap.RunMigrations(database.Pool, lgr)
		},
	}
}
