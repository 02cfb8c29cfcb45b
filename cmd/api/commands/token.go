package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yigit/careerhub/internal/bootstrap"
	"github.com/yigit/careerhub/internal/config"
	"github.com/yigit/careerhub/internal/pkg/auth"
)

func tokenCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a service role token for the operator endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			return runToken(cmd.OutOrStdout(), bootstrap.NewJWTService(cfg), subject)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "who the token is issued to")
	return cmd
}

func runToken(out io.Writer, jwtService *auth.JWTService, subject string) error {
	if jwtService == nil {
		return errors.New("no auth service JWT secret is configured")
	}

	token, expiresIn, err := jwtService.GenerateServiceToken(subject)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, token)
	fmt.Fprintf(out, "expires in %ds\n", expiresIn)
	return nil
}
