package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"careerportal-api/config"
	"careerportal-api/database"
	"careerportal-api/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Setup(cfg.Env, cfg.LogLevel)

			db, err := database.NewConnection(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := db.Migrate(ctx); err != nil {
				return err
			}
			log.Info().Str("database", cfg.Database.DBName).Msg("migration complete")
			return nil
		},
	}
}
