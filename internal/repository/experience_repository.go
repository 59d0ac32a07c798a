package repository

import (
	"encoding/json"
	"fmt"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// ExperienceRepository is the data-access interface for work-experience
// entries. Recency ordering by start period happens in the service layer
// because start dates are free-text labels, not columns a database can
// sort.
type ExperienceRepository interface {
	GetAll() ([]models.Experience, error)
	Create(experience *models.Experience) error
	Update(id uint, updates map[string]interface{}) (*models.Experience, error)
	Delete(id uint) (bool, error)
}

// GormExperienceRepository is the GORM implementation of ExperienceRepository.
type GormExperienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates and returns a new GormExperienceRepository.
func NewExperienceRepository(db *gorm.DB) *GormExperienceRepository {
	return &GormExperienceRepository{db: db}
}

// GetAll returns every experience entry.
func (r *GormExperienceRepository) GetAll() ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.Find(&experiences).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve experiences: %v", customerrors.ErrStorageUnavailable, err)
	}
	return experiences, nil
}

// Create inserts a new experience entry.
func (r *GormExperienceRepository) Create(experience *models.Experience) error {
	if err := r.db.Create(experience).Error; err != nil {
		return fmt.Errorf("%w: failed to create experience: %v", customerrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Update merges the given fields into the experience and returns the
// updated record. Returns gorm.ErrRecordNotFound when missing.
func (r *GormExperienceRepository) Update(id uint, updates map[string]interface{}) (*models.Experience, error) {
	if err := encodeTechnologies(updates); err != nil {
		return nil, fmt.Errorf("%w: failed to encode technologies: %v", customerrors.ErrStorageUnavailable, err)
	}
	var experience models.Experience
	if err := r.db.First(&experience, id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&experience).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("%w: failed to update experience %d: %v", customerrors.ErrStorageUnavailable, id, err)
		}
		if err := r.db.First(&experience, id).Error; err != nil {
			return nil, fmt.Errorf("%w: failed to reload experience %d: %v", customerrors.ErrStorageUnavailable, id, err)
		}
	}
	return &experience, nil
}

// Delete removes the experience entry.
func (r *GormExperienceRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Experience{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("%w: failed to delete experience %d: %v", customerrors.ErrStorageUnavailable, id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// encodeTechnologies converts a []string technologies value in a partial
// update to its JSON column representation. Map-based updates bypass the
// field serializer, so the encoding happens here.
func encodeTechnologies(updates map[string]interface{}) error {
	techs, ok := updates["technologies"].([]string)
	if !ok {
		return nil
	}
	encoded, err := json.Marshal(techs)
	if err != nil {
		return err
	}
	updates["technologies"] = string(encoded)
	return nil
}
