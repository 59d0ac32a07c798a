package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/saikumarkadapa/portfolio-api/cmd"
	"github.com/saikumarkadapa/portfolio-api/internal/api"
	"github.com/saikumarkadapa/portfolio-api/internal/config"
	"github.com/saikumarkadapa/portfolio-api/internal/mailer"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/monitor"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"github.com/saikumarkadapa/portfolio-api/internal/services"
	"github.com/saikumarkadapa/portfolio-api/internal/workers"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// RunServerCmd is the 'run-server' Cobra command: the entry point that
// wires the database, services, background workers and the HTTP server.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the portfolio API server and its background processes.",
	Long: `This command initializes the database, sets up the API routes,
starts the asynchronous notification workers and the project link
monitor, then launches the HTTP server.`,
	Run: func(cobraCmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := gorm.Open(sqlite.Open(cfg.Database.Name), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.AutoMigrate(
			&models.Project{},
			&models.Comment{},
			&models.Contact{},
			&models.Experience{},
			&models.Analytics{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		if err := repository.EnsureAnalytics(db); err != nil {
			log.Fatalf("Failed to initialize analytics counters: %v", err)
		}

		projectRepo := repository.NewProjectRepository(db)
		commentRepo := repository.NewCommentRepository(db)
		contactRepo := repository.NewContactRepository(db)
		experienceRepo := repository.NewExperienceRepository(db)
		analyticsRepo := repository.NewAnalyticsRepository(db)
		log.Println("Repositories initialized.")

		// Contact notifications are delivered off the request path by a
		// small worker pool draining this channel.
		notifications := make(chan models.ContactNotification, cfg.Notifications.BufferSize)
		siteMailer := mailer.New(mailer.Config{
			Host:      cfg.Mailer.Host,
			Port:      cfg.Mailer.Port,
			User:      cfg.Mailer.User,
			Password:  cfg.Mailer.Password,
			Recipient: cfg.Mailer.Recipient,
		})
		workers.StartNotificationWorkers(cfg.Notifications.WorkerCount, notifications, siteMailer)
		log.Printf("Notification channel initialized with a buffer of %d. %d worker(s) started.",
			cfg.Notifications.BufferSize, cfg.Notifications.WorkerCount)

		projectService := services.NewProjectService(projectRepo)
		experienceService := services.NewExperienceService(experienceRepo)
		moderationService := services.NewModerationService(commentRepo, contactRepo, notifications)
		analyticsService := services.NewAnalyticsService(analyticsRepo)
		log.Println("Services initialized.")

		monitorInterval := time.Duration(cfg.Monitor.IntervalMinutes) * time.Minute
		linkMonitor := monitor.NewLinkMonitor(projectRepo, monitorInterval)
		go linkMonitor.Start()
		log.Printf("Project link monitor started with an interval of %v.", monitorInterval)

		router := gin.Default()
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORS.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
		api.SetupRoutes(router, projectService, experienceService, moderationService, analyticsService)
		log.Println("API routes configured.")

		serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
		srv := &http.Server{
			Addr:    serverAddr,
			Handler: router,
		}

		go func() {
			log.Printf("Starting server on %s", serverAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutdown signal received. Stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		// Closing the channel lets the workers drain any queued
		// notifications and exit.
		close(notifications)

		log.Println("Server stopped cleanly.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
