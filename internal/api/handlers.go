package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/services"
)

// SetupRoutes registers every API endpoint on the Gin engine and injects
// the service dependencies. All business endpoints live under /api.
func SetupRoutes(
	router *gin.Engine,
	projectService *services.ProjectService,
	experienceService *services.ExperienceService,
	moderationService *services.ModerationService,
	analyticsService *services.AnalyticsService,
) {
	router.GET("/health", HealthCheckHandler)

	api := router.Group("/api")
	{
		api.POST("/analytics/visit", RecordVisitHandler(analyticsService))
		api.GET("/analytics", GetAnalyticsHandler(analyticsService))

		api.GET("/projects", ListProjectsHandler(projectService))
		api.POST("/projects", CreateProjectHandler(projectService))
		api.POST("/projects/:id/like", LikeProjectHandler(projectService))
		api.DELETE("/projects/:id", DeleteProjectHandler(projectService))

		api.GET("/comments", ListCommentsHandler(moderationService))
		api.POST("/comments", CreateCommentHandler(moderationService))
		api.POST("/comments/:id/approve", ApproveCommentHandler(moderationService))
		api.POST("/comments/:id/like", LikeCommentHandler(moderationService))
		api.DELETE("/comments/:id", DeleteCommentHandler(moderationService))

		api.GET("/contacts", ListContactsHandler(moderationService))
		api.POST("/contacts", CreateContactHandler(moderationService))
		api.POST("/contacts/:id/read", MarkContactReadHandler(moderationService))
		api.DELETE("/contacts/:id", DeleteContactHandler(moderationService))

		api.GET("/experiences", ListExperiencesHandler(experienceService))
		api.POST("/experiences", CreateExperienceHandler(experienceService))
		api.DELETE("/experiences/:id", DeleteExperienceHandler(experienceService))
	}
}

// HealthCheckHandler handles /health for uptime monitoring.
func HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseIDParam reads the :id path parameter. On a malformed id it writes
// the 400 response itself and reports false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id parameter"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors to HTTP responses. Validation errors
// carry the field -> message map; anything unexpected becomes a generic
// 500 with the details logged, never returned.
func respondError(c *gin.Context, err error) {
	var validationErr *customerrors.ValidationError
	var notFoundErr *customerrors.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data",
			"errors":  validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Error()})
	case errors.Is(err, customerrors.ErrStorageUnavailable):
		log.Printf("Storage error: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Storage temporarily unavailable"})
	default:
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// RecordVisitHandler counts a page visit and returns the updated
// analytics snapshot.
func RecordVisitHandler(analyticsService *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := analyticsService.RecordVisit()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// GetAnalyticsHandler returns the current analytics snapshot.
func GetAnalyticsHandler(analyticsService *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := analyticsService.Snapshot()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, snapshot)
	}
}

// ListProjectsHandler returns projects, optionally filtered by the
// category query parameter ("all" or empty returns everything).
func ListProjectsHandler(projectService *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := projectService.List(c.Query("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

// CreateProjectHandler creates a new project.
func CreateProjectHandler(projectService *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ProjectInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
			return
		}
		project, err := projectService.Create(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, project)
	}
}

// LikeProjectHandler adds one like to a project.
func LikeProjectHandler(projectService *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		project, err := projectService.Like(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// DeleteProjectHandler removes a project.
func DeleteProjectHandler(projectService *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := projectService.Delete(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	}
}

// ListCommentsHandler returns comments. With ?approved=true only the
// approved ones are returned (the public path); without it every comment
// is returned (the moderation path).
func ListCommentsHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		approvedOnly := c.Query("approved") == "true"
		comments, err := moderationService.ListComments(approvedOnly)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comments)
	}
}

// CreateCommentHandler submits a new comment; it starts out unapproved.
func CreateCommentHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.CommentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
			return
		}
		comment, err := moderationService.SubmitComment(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

// ApproveCommentHandler marks a comment as approved.
func ApproveCommentHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		comment, err := moderationService.ApproveComment(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

// LikeCommentHandler adds one like to a comment.
func LikeCommentHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		comment, err := moderationService.LikeComment(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

// DeleteCommentHandler removes a comment.
func DeleteCommentHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := moderationService.DeleteComment(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
	}
}

// ListContactsHandler returns every contact submission.
func ListContactsHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		contacts, err := moderationService.ListContacts()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, contacts)
	}
}

// CreateContactHandler stores a contact submission and queues the
// best-effort e-mail notifications.
func CreateContactHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
			return
		}
		contact, err := moderationService.SubmitContact(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, contact)
	}
}

// MarkContactReadHandler marks a contact submission as read.
func MarkContactReadHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		contact, err := moderationService.MarkContactRead(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, contact)
	}
}

// DeleteContactHandler removes a contact submission.
func DeleteContactHandler(moderationService *services.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := moderationService.DeleteContact(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
	}
}

// ListExperiencesHandler returns experiences sorted by start recency.
func ListExperiencesHandler(experienceService *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		experiences, err := experienceService.List()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, experiences)
	}
}

// CreateExperienceHandler creates a new experience entry.
func CreateExperienceHandler(experienceService *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ExperienceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
			return
		}
		experience, err := experienceService.Create(input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, experience)
	}
}

// DeleteExperienceHandler removes an experience entry.
func DeleteExperienceHandler(experienceService *services.ExperienceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := experienceService.Delete(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
	}
}
