package cli

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/saikumarkadapa/portfolio-api/cmd"
	"github.com/saikumarkadapa/portfolio-api/internal/config"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// MigrateCmd creates or updates the database schema.
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Executes database migrations to create or update tables.",
	Long: `This command connects to the configured SQLite database and runs the
GORM automatic migrations for the projects, comments, contacts,
experiences and analytics tables, then seeds the analytics row.`,
	Run: func(cobraCmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			log.Fatalf("FATAL: Failed to get underlying SQL database: %v", err)
		}
		defer sqlDB.Close()

		if err := db.AutoMigrate(
			&models.Project{},
			&models.Comment{},
			&models.Contact{},
			&models.Experience{},
			&models.Analytics{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		// The analytics singleton must exist before any counter delta.
		if err := repository.EnsureAnalytics(db); err != nil {
			log.Fatalf("Failed to initialize analytics counters: %v", err)
		}

		fmt.Println("Database migrations executed successfully.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(MigrateCmd)
}
