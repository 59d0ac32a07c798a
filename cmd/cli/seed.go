package cli

import (
	"fmt"
	"log"

	"github.com/glebarez/sqlite"
	"github.com/saikumarkadapa/portfolio-api/cmd"
	"github.com/saikumarkadapa/portfolio-api/internal/config"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"github.com/saikumarkadapa/portfolio-api/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// SeedCmd loads the sample portfolio content into an empty database.
// Everything goes through the normal services, so the analytics counters
// stay consistent with the inserted rows.
var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Loads sample projects, experiences and comments into the database.",
	Long: `This command populates the database with the sample portfolio content
(projects, work experiences and a few approved comments). Run 'migrate'
first. Seeding twice will duplicate the content.`,
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

		if err := repository.EnsureAnalytics(db); err != nil {
			log.Fatalf("Failed to initialize analytics counters: %v", err)
		}

		projectService := services.NewProjectService(repository.NewProjectRepository(db))
		experienceService := services.NewExperienceService(repository.NewExperienceRepository(db))
		moderationService := services.NewModerationService(
			repository.NewCommentRepository(db),
			repository.NewContactRepository(db),
			nil, // no mail workers for seeding
		)

		for _, input := range sampleProjects() {
			if _, err := projectService.Create(input); err != nil {
				log.Fatalf("Failed to seed project %q: %v", input.Title, err)
			}
		}
		for _, input := range sampleExperiences() {
			if _, err := experienceService.Create(input); err != nil {
				log.Fatalf("Failed to seed experience %q: %v", input.Position, err)
			}
		}
		for _, input := range sampleComments() {
			comment, err := moderationService.SubmitComment(input)
			if err != nil {
				log.Fatalf("Failed to seed comment from %q: %v", input.Name, err)
			}
			if _, err := moderationService.ApproveComment(comment.ID); err != nil {
				log.Fatalf("Failed to approve seeded comment %d: %v", comment.ID, err)
			}
		}

		fmt.Println("Sample content loaded successfully.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(SeedCmd)
}

func sampleProjects() []services.ProjectInput {
	return []services.ProjectInput{
		{
			Title:        "E-Commerce Platform",
			Description:  "Full-stack MERN application with payment integration, admin dashboard, and real-time inventory management.",
			ImageURL:     "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?auto=format&fit=crop&w=800&h=400",
			Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Stripe"},
			GithubURL:    "https://github.com/saikumar/ecommerce",
			LiveURL:      "https://ecommerce-demo.com",
			Category:     "fullstack",
		},
		{
			Title:        "Task Management App",
			Description:  "React-based project management tool with drag-and-drop functionality and team collaboration features.",
			ImageURL:     "https://images.unsplash.com/photo-1611224923853-80b023f02d71?auto=format&fit=crop&w=800&h=400",
			Technologies: []string{"React", "TypeScript", "Tailwind CSS", "Firebase"},
			GithubURL:    "https://github.com/saikumar/task-manager",
			LiveURL:      "https://task-manager-demo.com",
			Category:     "frontend",
		},
		{
			Title:        "RESTful API Service",
			Description:  "Scalable Node.js API with authentication, rate limiting, and comprehensive documentation.",
			ImageURL:     "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?auto=format&fit=crop&w=800&h=400",
			Technologies: []string{"Express", "MongoDB", "JWT", "Swagger"},
			GithubURL:    "https://github.com/saikumar/api-service",
			Category:     "backend",
		},
	}
}

func sampleExperiences() []services.ExperienceInput {
	return []services.ExperienceInput{
		{
			Position:     "Senior Full Stack Developer",
			Company:      "Tech Solutions Inc.",
			Description:  "Led development of scalable web applications using MERN stack. Implemented CI/CD pipelines and mentored junior developers.",
			Technologies: []string{"React", "Node.js", "AWS", "Docker"},
			StartDate:    "2022",
		},
		{
			Position:     "Full Stack Developer",
			Company:      "StartupXYZ",
			Description:  "Developed and maintained multiple client projects. Specialized in React frontend and Express.js backend development.",
			Technologies: []string{"JavaScript", "Express", "MongoDB", "React"},
			StartDate:    "2021",
			EndDate:      "2022",
		},
		{
			Position:     "Junior Developer",
			Company:      "WebDev Agency",
			Description:  "Started my career focusing on frontend development and gradually expanded to full-stack capabilities.",
			Technologies: []string{"HTML/CSS", "JavaScript", "PHP", "MySQL"},
			StartDate:    "2020",
			EndDate:      "2021",
		},
	}
}

func sampleComments() []services.CommentInput {
	return []services.CommentInput{
		{
			Name:    "Jane Smith",
			Email:   "jane@example.com",
			Content: "Amazing portfolio! The design is clean and the projects showcase impressive technical skills. Looking forward to seeing more of your work.",
		},
		{
			Name:    "Mike Davis",
			Email:   "mike@example.com",
			Content: "Solid MERN stack implementation. The attention to detail in the UI/UX design is impressive. Would love to collaborate on a project!",
		},
		{
			Name:    "Anna Lee",
			Email:   "anna@example.com",
			Content: "Great work on the responsive design! The portfolio looks fantastic on mobile devices. Keep up the excellent work!",
		},
	}
}
