package repository

import (
	"errors"
	"fmt"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// CommentRepository is the data-access interface for visitor comments.
// Every mutation that changes a counter runs the counter adjustment in
// the same transaction as the record write.
type CommentRepository interface {
	GetAll() ([]models.Comment, error)
	GetApproved() ([]models.Comment, error)
	GetByID(id uint) (*models.Comment, error)
	Create(comment *models.Comment) error
	Approve(id uint) (*models.Comment, error)
	Like(id uint) (*models.Comment, error)
	Delete(id uint) (bool, error)
}

// GormCommentRepository is the GORM implementation of CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates and returns a new GormCommentRepository.
func NewCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// GetAll returns every comment, approved or not, newest first. This is
// the moderation read path.
func (r *GormCommentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve comments: %v", customerrors.ErrStorageUnavailable, err)
	}
	return comments, nil
}

// GetApproved returns only approved comments, newest first. This is the
// public read path.
func (r *GormCommentRepository) GetApproved() ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("is_approved = ?", true).Order("created_at DESC, id DESC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve approved comments: %v", customerrors.ErrStorageUnavailable, err)
	}
	return comments, nil
}

// GetByID fetches one comment. Returns gorm.ErrRecordNotFound when missing.
func (r *GormCommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create inserts the comment and increments totalComments atomically.
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return applyAnalyticsDelta(tx, analyticsDelta{Comments: 1})
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create comment: %v", customerrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Approve flips is_approved to true. Approving an already approved
// comment is a no-op. The comment was already counted at creation, so no
// counter changes here.
func (r *GormCommentRepository) Approve(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	if comment.IsApproved {
		return &comment, nil
	}
	if err := r.db.Model(&comment).Update("is_approved", true).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to approve comment %d: %v", customerrors.ErrStorageUnavailable, id, err)
	}
	comment.IsApproved = true
	return &comment, nil
}

// Like increments the comment's like counter and totalLikes by 1 in one
// transaction. Likes are unbounded and not deduplicated.
func (r *GormCommentRepository) Like(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&comment, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Comment{}).Where("id = ?", id).
			Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		return applyAnalyticsDelta(tx, analyticsDelta{Likes: 1})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to like comment %d: %v", customerrors.ErrStorageUnavailable, id, err)
	}
	comment.Likes++
	return &comment, nil
}

// Delete removes the comment and rolls its contribution out of the
// counters: totalComments by 1 and totalLikes by the comment's like
// count at deletion time. Returns whether a comment existed to remove.
func (r *GormCommentRepository) Delete(id uint) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := applyAnalyticsDelta(tx, analyticsDelta{Comments: -1, Likes: -comment.Likes}); err != nil {
			return err
		}
		if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: failed to delete comment %d: %v", customerrors.ErrStorageUnavailable, id, err)
	}
	return deleted, nil
}
