package services

import (
	"github.com/saikumarkadapa/portfolio-api/internal/models"
	"github.com/saikumarkadapa/portfolio-api/internal/repository"
)

// AnalyticsService exposes the site counters. The counters themselves
// are mutated by the repositories as a side of record mutations; the
// only direct entry point here is the visitor counter.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates and returns a new AnalyticsService.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// Snapshot returns a read-only copy of the current counters.
func (s *AnalyticsService) Snapshot() (*models.Analytics, error) {
	return s.analyticsRepo.Get()
}

// RecordVisit counts one page visit and returns the updated counters.
// Every call counts; visits are intentionally not deduplicated.
func (s *AnalyticsService) RecordVisit() (*models.Analytics, error) {
	return s.analyticsRepo.IncrementVisitors()
}
