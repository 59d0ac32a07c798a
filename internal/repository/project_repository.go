package repository

import (
	"errors"
	"fmt"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository is the data-access interface for portfolio projects.
type ProjectRepository interface {
	GetAll() ([]models.Project, error)
	GetByCategory(category string) ([]models.Project, error)
	Create(project *models.Project) error
	Update(id uint, updates map[string]interface{}) (*models.Project, error)
	Like(id uint) (*models.Project, error)
	Delete(id uint) (bool, error)
}

// GormProjectRepository is the GORM implementation of ProjectRepository.
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates and returns a new GormProjectRepository.
func NewProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// GetAll returns every project, newest first.
func (r *GormProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve projects: %v", customerrors.ErrStorageUnavailable, err)
	}
	return projects, nil
}

// GetByCategory returns the projects in one category, newest first.
func (r *GormProjectRepository) GetByCategory(category string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("category = ?", category).Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve projects for category %q: %v", customerrors.ErrStorageUnavailable, category, err)
	}
	return projects, nil
}

// Create inserts a new project. Projects carry no moderation state, so
// no counters change here; likes start at zero.
func (r *GormProjectRepository) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return fmt.Errorf("%w: failed to create project: %v", customerrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Update merges the given fields into the project and returns the
// updated record. Returns gorm.ErrRecordNotFound when missing.
func (r *GormProjectRepository) Update(id uint, updates map[string]interface{}) (*models.Project, error) {
	if err := encodeTechnologies(updates); err != nil {
		return nil, fmt.Errorf("%w: failed to encode technologies: %v", customerrors.ErrStorageUnavailable, err)
	}
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("%w: failed to update project %d: %v", customerrors.ErrStorageUnavailable, id, err)
		}
		if err := r.db.First(&project, id).Error; err != nil {
			return nil, fmt.Errorf("%w: failed to reload project %d: %v", customerrors.ErrStorageUnavailable, id, err)
		}
	}
	return &project, nil
}

// Like increments the project's like counter and totalLikes by 1 in one
// transaction. Likes are unbounded and not deduplicated.
func (r *GormProjectRepository) Like(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{}).Where("id = ?", id).
			Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		return applyAnalyticsDelta(tx, analyticsDelta{Likes: 1})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to like project %d: %v", customerrors.ErrStorageUnavailable, id, err)
	}
	project.Likes++
	return &project, nil
}

// Delete removes the project. Project likes stay counted in totalLikes;
// only deleted comments take their likes out of the totals.
func (r *GormProjectRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("%w: failed to delete project %d: %v", customerrors.ErrStorageUnavailable, id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
