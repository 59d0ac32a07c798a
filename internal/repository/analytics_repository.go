package repository

import (
	"errors"
	"fmt"
	"time"

	customerrors "github.com/saikumarkadapa/portfolio-api/internal/errors"
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// analyticsRowID is the id of the single analytics row. The row is
// created once (EnsureAnalytics) and mutated in place for the life of
// the process; it is never deleted or reset.
const analyticsRowID = 1

// AnalyticsRepository is the data-access interface for the analytics singleton.
type AnalyticsRepository interface {
	Get() (*models.Analytics, error)
	IncrementVisitors() (*models.Analytics, error)
}

// GormAnalyticsRepository is the GORM implementation of AnalyticsRepository.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates and returns a new GormAnalyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// EnsureAnalytics creates the analytics row with zeroed counters if it
// does not exist yet. Called at migration and server start.
func EnsureAnalytics(db *gorm.DB) error {
	row := models.Analytics{ID: analyticsRowID}
	if err := db.FirstOrCreate(&row, models.Analytics{ID: analyticsRowID}).Error; err != nil {
		return fmt.Errorf("%w: failed to ensure analytics row: %v", customerrors.ErrStorageUnavailable, err)
	}
	return nil
}

// Get returns a copy of the current analytics counters.
func (r *GormAnalyticsRepository) Get() (*models.Analytics, error) {
	var row models.Analytics
	if err := r.db.First(&row, analyticsRowID).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to read analytics: %v", customerrors.ErrStorageUnavailable, err)
	}
	return &row, nil
}

// IncrementVisitors bumps totalVisitors by 1 and returns the updated
// counters. Every call counts; there is no dedup by session or IP.
func (r *GormAnalyticsRepository) IncrementVisitors() (*models.Analytics, error) {
	var row models.Analytics
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := applyAnalyticsDelta(tx, analyticsDelta{Visitors: 1}); err != nil {
			return err
		}
		return tx.First(&row, analyticsRowID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to increment visitors: %v", customerrors.ErrStorageUnavailable, err)
	}
	return &row, nil
}

// analyticsDelta describes a counter adjustment to be applied together
// with a record mutation, inside the same transaction.
type analyticsDelta struct {
	Visitors int
	Comments int
	Contacts int
	Likes    int
}

// applyAnalyticsDelta applies the adjustment to the singleton row using
// relative SQL updates, so concurrent transactions cannot lose counts.
func applyAnalyticsDelta(tx *gorm.DB, delta analyticsDelta) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if delta.Visitors != 0 {
		updates["total_visitors"] = gorm.Expr("total_visitors + ?", delta.Visitors)
	}
	if delta.Comments != 0 {
		updates["total_comments"] = gorm.Expr("total_comments + ?", delta.Comments)
	}
	if delta.Contacts != 0 {
		updates["total_contacts"] = gorm.Expr("total_contacts + ?", delta.Contacts)
	}
	if delta.Likes != 0 {
		updates["total_likes"] = gorm.Expr("total_likes + ?", delta.Likes)
	}

	result := tx.Model(&models.Analytics{}).Where("id = ?", analyticsRowID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("analytics row missing")
	}
	return nil
}
