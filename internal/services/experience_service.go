package services

import (
	"errors"
	"sort"
	"strings"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
	"gorm.io/gorm"
)

// ExperienceService provides the business logic for work-experience
// entries.
type ExperienceService struct {
	experienceRepo repository.ExperienceRepository
}

// NewExperienceService creates and returns a new ExperienceService.
func NewExperienceService(experienceRepo repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experienceRepo: experienceRepo}
}

// ExperienceInput is the client-supplied payload for a new experience.
// An empty EndDate means the position is current.
type ExperienceInput struct {
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// ExperienceUpdate describes a partial update; nil fields are left
// unchanged.
type ExperienceUpdate struct {
	Position     *string  `json:"position"`
	Company      *string  `json:"company"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
}

// List returns every experience entry, most recent start period first.
// Start dates are free-text labels, so the ordering is computed here
// from the parsed start year rather than in SQL.
func (s *ExperienceService) List() ([]models.Experience, error) {
	experiences, err := s.experienceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(experiences, func(i, j int) bool {
		if experiences[i].StartYear() != experiences[j].StartYear() {
			return experiences[i].StartYear() > experiences[j].StartYear()
		}
		return experiences[i].ID > experiences[j].ID
	})
	return experiences, nil
}

// Create validates the input and inserts a new experience entry.
func (s *ExperienceService) Create(input ExperienceInput) (*models.Experience, error) {
	vErr := customerrors.NewValidationError()
	if isBlank(input.Position) {
		vErr.Add("position", "position is required")
	}
	if isBlank(input.Company) {
		vErr.Add("company", "company is required")
	}
	if isBlank(input.Description) {
		vErr.Add("description", "description is required")
	}
	if len(input.Technologies) == 0 {
		vErr.Add("technologies", "at least one technology is required")
	}
	if isBlank(input.StartDate) {
		vErr.Add("startDate", "start date is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	experience := &models.Experience{
		Position:     strings.TrimSpace(input.Position),
		Company:      strings.TrimSpace(input.Company),
		Description:  strings.TrimSpace(input.Description),
		Technologies: input.Technologies,
		StartDate:    strings.TrimSpace(input.StartDate),
	}
	if !isBlank(input.EndDate) {
		endDate := strings.TrimSpace(input.EndDate)
		experience.EndDate = &endDate
	}

	if err := s.experienceRepo.Create(experience); err != nil {
		return nil, err
	}
	return experience, nil
}

// Update merges the non-nil fields into the experience.
func (s *ExperienceService) Update(id uint, update ExperienceUpdate) (*models.Experience, error) {
	updates := make(map[string]interface{})
	if update.Position != nil {
		updates["position"] = *update.Position
	}
	if update.Company != nil {
		updates["company"] = *update.Company
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Technologies != nil {
		updates["technologies"] = update.Technologies
	}
	if update.StartDate != nil {
		updates["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		updates["end_date"] = *update.EndDate
	}

	experience, err := s.experienceRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &customerrors.NotFoundError{Kind: "experience", ID: id}
		}
		return nil, err
	}
	return experience, nil
}

// Delete removes the experience entry.
func (s *ExperienceService) Delete(id uint) error {
	deleted, err := s.experienceRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return &customerrors.NotFoundError{Kind: "experience", ID: id}
	}
	return nil
}
