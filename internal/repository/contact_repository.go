package repository

import (
	"errors"
	"fmt"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// ContactRepository is the data-access interface for contact-form
// submissions.
type ContactRepository interface {
	GetAll() ([]models.Contact, error)
	Create(contact *models.Contact) error
	MarkRead(id uint) (*models.Contact, error)
	Delete(id uint) (bool, error)
}

// GormContactRepository is the GORM implementation of ContactRepository.
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates and returns a new GormContactRepository.
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// GetAll returns every contact submission, newest first.
func (r *GormContactRepository) GetAll() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Order("created_at DESC, id DESC").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve contacts: %v", customerrors.ErrStorageUnavailable, err)
	}
	return contacts, nil
}

// Create inserts the contact and increments totalContacts atomically.
func (r *GormContactRepository) Create(contact *models.Contact) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contact).Error; err != nil {
			return err
		}
		return applyAnalyticsDelta(tx, analyticsDelta{Contacts: 1})
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create contact: %v", customerrors.ErrStorageUnavailable, err)
	}
	return nil
}

// MarkRead flips is_read to true. Marking an already read contact is a
// no-op; the flag never goes back to false.
func (r *GormContactRepository) MarkRead(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	if contact.IsRead {
		return &contact, nil
	}
	if err := r.db.Model(&contact).Update("is_read", true).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to mark contact %d as read: %v", customerrors.ErrStorageUnavailable, id, err)
	}
	contact.IsRead = true
	return &contact, nil
}

// Delete removes the contact and decrements totalContacts in the same
// transaction. Returns whether a contact existed to remove.
func (r *GormContactRepository) Delete(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var contact models.Contact
		if err := tx.First(&contact, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := applyAnalyticsDelta(tx, analyticsDelta{Contacts: -1}); err != nil {
			return err
		}
		if err := tx.Delete(&models.Contact{}, id).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: failed to delete contact %d: %v", customerrors.ErrStorageUnavailable, id, err)
	}
	return deleted, nil
}
