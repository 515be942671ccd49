package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-insights/internal/jobroles"
	"resume-insights/internal/shared/storage/db"
	"resume-insights/internal/shared/telemetry"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply migrations and upsert the job-role catalog into Postgres",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

var seedFile string

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML catalog to load instead of JOB_ROLES_FILE or the built-in catalog")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedFile != "" {
		cfg.JobRolesFile = seedFile
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultCLIOptions()))
	if err != nil {
		return err
	}
	defer db.Close(sqlDB)

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return err
	}
	repo := &jobroles.PGRepo{DB: sqlDB}
	if err := repo.Upsert(ctx, catalog); err != nil {
		return fmt.Errorf("upsert job roles: %w", err)
	}
	telemetry.Info("seed.job_roles_upserted", map[string]any{"count": len(catalog)})
	return nil
}
