package services

import (
	"errors"
	"strings"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

// ProjectService provides the business logic for portfolio projects.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates and returns a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectInput is the client-supplied payload for a new project.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Category     string   `json:"category"`
}

// ProjectUpdate describes a partial update; nil fields are left unchanged.
type ProjectUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	Technologies []string `json:"technologies"`
	GithubURL    *string  `json:"githubUrl"`
	LiveURL      *string  `json:"liveUrl"`
	Category     *string  `json:"category"`
}

// List returns projects filtered by category. An empty category or the
// literal "all" returns everything.
func (s *ProjectService) List(category string) ([]models.Project, error) {
	if category == "" || category == "all" {
		return s.projectRepo.GetAll()
	}
	return s.projectRepo.GetByCategory(category)
}

// Create validates the input and inserts a new project with the
// server-controlled defaults (zero likes, creation timestamp).
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	vErr := customerrors.NewValidationError()
	if isBlank(input.Title) {
		vErr.Add("title", "title is required")
	}
	if isBlank(input.Description) {
		vErr.Add("description", "description is required")
	}
	if isBlank(input.ImageURL) {
		vErr.Add("imageUrl", "image URL is required")
	}
	if len(input.Technologies) == 0 {
		vErr.Add("technologies", "at least one technology is required")
	}
	if isBlank(input.Category) {
		vErr.Add("category", "category is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	project := &models.Project{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Technologies: input.Technologies,
		Category:     strings.TrimSpace(input.Category),
	}
	if !isBlank(input.GithubURL) {
		githubURL := strings.TrimSpace(input.GithubURL)
		project.GithubURL = &githubURL
	}
	if !isBlank(input.LiveURL) {
		liveURL := strings.TrimSpace(input.LiveURL)
		project.LiveURL = &liveURL
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update merges the non-nil fields into the project.
func (s *ProjectService) Update(id uint, update ProjectUpdate) (*models.Project, error) {
	updates := make(map[string]interface{})
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.ImageURL != nil {
		updates["image_url"] = *update.ImageURL
	}
	if update.Technologies != nil {
		updates["technologies"] = update.Technologies
	}
	if update.GithubURL != nil {
		updates["github_url"] = *update.GithubURL
	}
	if update.LiveURL != nil {
		updates["live_url"] = *update.LiveURL
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}

	project, err := s.projectRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &customerrors.NotFoundError{Kind: "project", ID: id}
		}
		return nil, err
	}
	return project, nil
}

// Like adds one like to the project and to totalLikes.
func (s *ProjectService) Like(id uint) (*models.Project, error) {
	project, err := s.projectRepo.Like(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &customerrors.NotFoundError{Kind: "project", ID: id}
		}
		return nil, err
	}
	return project, nil
}

// Delete removes the project.
func (s *ProjectService) Delete(id uint) error {
	deleted, err := s.projectRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &customerrors.NotFoundError{Kind: "project", ID: id}
	}
	return nil
}
