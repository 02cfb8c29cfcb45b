package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yigit/careerhub/internal/app/services"
	"github.com/yigit/careerhub/internal/config"
	"github.com/yigit/careerhub/internal/domain/registration"
)

type checkOptions struct {
	email     string
	password  string
	confirm   string
	role      string
	studentID string
}

func checkCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate registration input offline, without contacting any backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regCfg, err := config.LoadRegistrationConfig(configPath)
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), services.SettingsFromConfig(regCfg).Rules, opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.password, "password", "", "password")
	cmd.Flags().StringVar(&opts.confirm, "confirm", "", "password confirmation (defaults to --password)")
	cmd.Flags().StringVar(&opts.role, "role", "student", "student or staff")
	cmd.Flags().StringVar(&opts.studentID, "student-id", "", "student ID, students only")

	return cmd
}

// runCheck prints the password strength and then "ok" or the first validation error.
// A validation failure is returned as an error so the exit status reflects it.
func runCheck(out io.Writer, rules registration.Rules, opts checkOptions) error {
	if opts.confirm == "" {
		opts.confirm = opts.password
	}

	draft := registration.NewDraft()
	fields := []struct{ name, value string }{
		{registration.FieldRole, opts.role},
		{registration.FieldEmail, opts.email},
		{registration.FieldPassword, opts.password},
		{registration.FieldConfirmPassword, opts.confirm},
		{registration.FieldStudentID, opts.studentID},
	}
	for _, f := range fields {
		if err := draft.UpdateField(f.name, f.value); err != nil {
			return err
		}
	}

	strength := rules.PasswordStrength(draft.Password)
	fmt.Fprintf(out, "password strength: %s (%d/4)\n", strength.Label, strength.Score)

	if err := rules.Validate(draft); err != nil {
		fmt.Fprintln(out, err.Error())
		return err
	}

	fmt.Fprintln(out, "ok")
	return nil
}
