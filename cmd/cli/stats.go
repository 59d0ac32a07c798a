package cli

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/saikumarkadapa/portfolio-api/cmd"
	"github.com/saikumarkadapa/portfolio-api/internal/config"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"github.com/saikumarkadapa/portfolio-api/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// StatsCmd prints the current site analytics counters.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Shows the site analytics counters.",
	Long:  `Prints the running visitor, comment, contact and like totals.`,
	Run:   runStats,
}

func init() {
	cmd.RootCmd.AddCommand(StatsCmd)
}

func runStats(cobraCmd *cobra.Command, args []string) {
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

	analyticsService := services.NewAnalyticsService(repository.NewAnalyticsRepository(db))
	snapshot, err := analyticsService.Snapshot()
	if err != nil {
		log.Fatalf("Failed to read analytics: %v", err)
	}

	fmt.Println("Site analytics:")
	fmt.Printf("Total visitors: %d\n", snapshot.TotalVisitors)
	fmt.Printf("Total comments: %d\n", snapshot.TotalComments)
	fmt.Printf("Total contacts: %d\n", snapshot.TotalContacts)
	fmt.Printf("Total likes:    %d\n", snapshot.TotalLikes)
	fmt.Printf("Last updated:   %s\n", snapshot.UpdatedAt.Format("2006-01-02 15:04:05"))

	fmt.Println("\nContent:")
	printRowCount(db, "Projects", &models.Project{})
	printRowCount(db, "Comments", &models.Comment{})
	printRowCount(db, "Contacts", &models.Contact{})
	printRowCount(db, "Experiences", &models.Experience{})

	var pending, unread int64
	db.Model(&models.Comment{}).Where("is_approved = ?", false).Count(&pending)
	db.Model(&models.Contact{}).Where("is_read = ?", false).Count(&unread)
	fmt.Printf("\nAwaiting moderation: %d comment(s), %d unread contact(s)\n", pending, unread)
}

func printRowCount(db *gorm.DB, label string, model interface{}) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count %s: %v", label, err)
	}
	fmt.Printf("%-12s %d\n", label+":", count)
}
