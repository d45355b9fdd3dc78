package cmd

import (
	"fmt"

	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase(cmd.Context())
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		if err := models.Migrate(db); err != nil {
			return err
		}
		log.Info().Int("tables", len(models.All())).Msg("Migration complete")
		return nil
	},
}

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate typed query helpers for the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase(cmd.Context())
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		return models.GenerateModels(db, generateOut)
	},
}

var columnReportCmd = &cobra.Command{
	Use:   "column-report",
	Short: "Compare model fields against the live table columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDatabase(cmd.Context())
		if err != nil {
			return fmt.Errorf("error connecting to database: %w", err)
		}
		mismatches, err := models.GenerateColumnMismatchReport(db)
		if err != nil {
			return err
		}
		if mismatches > 0 {
			return fmt.Errorf("%d column mismatches found", mismatches)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "./query", "output directory for generated code")
	rootCmd.AddCommand(migrateCmd, generateCmd, columnReportCmd)
}
