// gainablectl runs the offline data scripts against the production database.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gainablefr/gainable-backend/internal/config"
	"github.com/gainablefr/gainable-backend/internal/database"
	"github.com/gainablefr/gainable-backend/internal/logging"
	"github.com/gainablefr/gainable-backend/internal/seed"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var expertSlug string

var rootCmd = &cobra.Command{
	Use:   "gainablectl",
	Short: "Data scripts for the Gainable.fr directory",
}

var seedDiagnosticiansCmd = &cobra.Command{
	Use:   "seed-diagnosticians",
	Short: "Insert the launch list of DPE diagnosticians (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := mustOpenDB()
		defer database.Close(db)
		return seed.Diagnosticians(db)
	},
}

var generateArticlesCmd = &cobra.Command{
	Use:   "generate-articles",
	Short: "Create the starter DRAFT articles for an expert",
	RunE: func(cmd *cobra.Command, args []string) error {
		db := mustOpenDB()
		defer database.Close(db)
		return seed.GenerateArticles(db, expertSlug)
	},
}

func mustOpenDB() *gorm.DB {
	cfg := config.Load()
	if cfg.DatabaseURL == "" && cfg.DBPassword == "" {
		slog.Error("DATABASE_URL or DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	db, err := database.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	return db
}

func init() {
	generateArticlesCmd.Flags().StringVar(&expertSlug, "expert-slug", "", "Target expert slug (defaults to the first referenced expert)")
	rootCmd.AddCommand(seedDiagnosticiansCmd)
	rootCmd.AddCommand(generateArticlesCmd)
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
