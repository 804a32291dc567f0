package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rivalradar_backend/internal/platform/credential"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		Long: `Login exchanges your email and password for a token pair and stores it
in ~/.rivalradar/credentials.yaml. The password may also be given through
RIVALRADAR_PASSWORD.

Example:
  rivalctl login --email me@example.com --password secret123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = a.v.GetString("password")
			}
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}

			ctx, cancel := withTimeout(cmd, a)
			defer cancel()

			tokens, err := a.api().Login(ctx, email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			creds := &credential.Credentials{
				AccessToken:  tokens.AccessToken,
				RefreshToken: tokens.RefreshToken,
			}
			if tokens.ExpiresIn > 0 {
				creds.ExpiresAt = a.now().Add(time.Duration(tokens.ExpiresIn) * time.Second)
			}
			if err := a.store.Save(creds); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (credentials saved to %s)\n", email, a.store.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}
