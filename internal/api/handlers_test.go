package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/saikumarkadapa/portfolio-api/internal/api"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"github.com/saikumarkadapa/portfolio-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires a full router over a fresh in-memory database,
// exactly as run-server does minus the mail workers and monitor.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.Comment{},
		&models.Contact{},
		&models.Experience{},
		&models.Analytics{},
	))
	require.NoError(t, repository.EnsureAnalytics(db))

	router := gin.New()
	api.SetupRoutes(router,
		services.NewProjectService(repository.NewProjectRepository(db)),
		services.NewExperienceService(repository.NewExperienceRepository(db)),
		services.NewModerationService(
			repository.NewCommentRepository(db),
			repository.NewContactRepository(db),
			nil,
		),
		services.NewAnalyticsService(repository.NewAnalyticsRepository(db)),
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	recorder := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestVisitEndpoint_IncrementsAndReturnsSnapshot(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/analytics/visit", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var snapshot models.Analytics
	decodeBody(t, recorder, &snapshot)
	assert.Equal(t, 1, snapshot.TotalVisitors)

	recorder = doJSON(t, router, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeBody(t, recorder, &snapshot)
	assert.Equal(t, 1, snapshot.TotalVisitors)
}

func TestCommentSubmission_Created(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/comments", gin.H{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"comment": "Amazing portfolio, the projects look great!",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var comment models.Comment
	decodeBody(t, recorder, &comment)
	assert.False(t, comment.IsApproved)
	assert.NotZero(t, comment.ID)
}

func TestCommentSubmission_TooShortIs400(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/comments", gin.H{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"comment": "hi",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decodeBody(t, recorder, &body)
	assert.Contains(t, body.Errors, "comment")

	// No record, no counter change.
	recorder = doJSON(t, router, http.MethodGet, "/api/analytics", nil)
	var snapshot models.Analytics
	decodeBody(t, recorder, &snapshot)
	assert.Zero(t, snapshot.TotalComments)
}

func TestApproveMissingComment_404AndNoCounterChange(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/comments/9999/approve", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, recorder, &body)
	assert.Contains(t, body.Message, "not found")

	recorder = doJSON(t, router, http.MethodGet, "/api/analytics", nil)
	var snapshot models.Analytics
	decodeBody(t, recorder, &snapshot)
	assert.Zero(t, snapshot.TotalComments)
	assert.Zero(t, snapshot.TotalLikes)
}

func TestCommentModerationFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/comments", gin.H{
		"name":    "Mike Davis",
		"email":   "mike@example.com",
		"comment": "Solid implementation, would love to collaborate!",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	var comment models.Comment
	decodeBody(t, recorder, &comment)

	// Unapproved comments are hidden from the public path.
	recorder = doJSON(t, router, http.MethodGet, "/api/comments?approved=true", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var comments []models.Comment
	decodeBody(t, recorder, &comments)
	assert.Empty(t, comments)

	// But visible to moderation.
	recorder = doJSON(t, router, http.MethodGet, "/api/comments", nil)
	decodeBody(t, recorder, &comments)
	assert.Len(t, comments, 1)

	recorder = doJSON(t, router, http.MethodPost, "/api/comments/1/approve", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/api/comments?approved=true", nil)
	decodeBody(t, recorder, &comments)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].IsApproved)

	recorder = doJSON(t, router, http.MethodPost, "/api/comments/1/like", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeBody(t, recorder, &comment)
	assert.Equal(t, 1, comment.Likes)

	recorder = doJSON(t, router, http.MethodDelete, "/api/comments/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/api/analytics", nil)
	var snapshot models.Analytics
	decodeBody(t, recorder, &snapshot)
	assert.Zero(t, snapshot.TotalComments)
	assert.Zero(t, snapshot.TotalLikes)
}

func TestContactSubmissionScenario(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/contacts", gin.H{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@x.com",
		"subject":   "Hi",
		"message":   "Hello there, loved the site",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var contact models.Contact
	decodeBody(t, recorder, &contact)
	assert.False(t, contact.IsRead)

	recorder = doJSON(t, router, http.MethodGet, "/api/analytics", nil)
	var snapshot models.Analytics
	decodeBody(t, recorder, &snapshot)
	assert.Equal(t, 1, snapshot.TotalContacts)

	recorder = doJSON(t, router, http.MethodPost, "/api/contacts/1/read", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	decodeBody(t, recorder, &contact)
	assert.True(t, contact.IsRead)
}

func TestProjectEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/projects", gin.H{
		"title":        "E-Commerce Platform",
		"description":  "Full-stack application with payment integration.",
		"imageUrl":     "https://example.com/shop.png",
		"technologies": []string{"React", "Node.js"},
		"category":     "fullstack",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/api/projects", gin.H{
		"title":        "Task Management App",
		"description":  "React-based project management tool.",
		"imageUrl":     "https://example.com/tasks.png",
		"technologies": []string{"React"},
		"category":     "frontend",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/api/projects?category=frontend", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var projects []models.Project
	decodeBody(t, recorder, &projects)
	require.Len(t, projects, 1)
	assert.Equal(t, "Task Management App", projects[0].Title)

	recorder = doJSON(t, router, http.MethodGet, "/api/projects?category=all", nil)
	decodeBody(t, recorder, &projects)
	assert.Len(t, projects, 2)

	recorder = doJSON(t, router, http.MethodPost, "/api/projects/1/like", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var project models.Project
	decodeBody(t, recorder, &project)
	assert.Equal(t, 1, project.Likes)

	recorder = doJSON(t, router, http.MethodDelete, "/api/projects/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodDelete, "/api/projects/1", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestExperienceEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/experiences", gin.H{
		"position":     "Senior Developer",
		"company":      "Tech Solutions Inc.",
		"description":  "Led development of scalable web applications.",
		"technologies": []string{"React", "AWS"},
		"startDate":    "2022",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var experience models.Experience
	decodeBody(t, recorder, &experience)
	assert.Nil(t, experience.EndDate)

	recorder = doJSON(t, router, http.MethodGet, "/api/experiences", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var experiences []models.Experience
	decodeBody(t, recorder, &experiences)
	assert.Len(t, experiences, 1)

	recorder = doJSON(t, router, http.MethodDelete, "/api/experiences/42", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestInvalidIDParameterIs400(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/comments/abc/like", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
