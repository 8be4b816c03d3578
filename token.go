package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"careerportal-api/config"
	"careerportal-api/services/auth"
)

var tokenRole string

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token [subject]",
		Short: "Issue a bearer token for the recruiter dashboard",
		Long: `Issue a signed bearer token using JWT_SECRET.

Examples:
  careerportal-api token hr@example.com
  careerportal-api token ops@example.com --role recruiter`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			svc, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
			if err != nil {
				return err
			}
			token, expiresAt, err := svc.GenerateToken(args[0], tokenRole)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}

	cmd.Flags().StringVar(&tokenRole, "role", auth.RoleRecruiter, "role claim to embed")
	return cmd
}

func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables the API reads",
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := config.Describe()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), desc)
			return nil
		},
	}
}
