package models

import (
	"regexp"
	"strconv"
	"time"
)

// Experience is a work-experience entry. StartDate and EndDate are free
// text period labels ("2021", "March 2021"); a nil EndDate means the
// position is current.
type Experience struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Position     string    `json:"position" gorm:"not null"`
	Company      string    `json:"company" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	StartDate    string    `json:"startDate" gorm:"not null"`
	EndDate      *string   `json:"endDate"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// StartYear extracts the four-digit year from the StartDate label.
// Labels without a year sort last (zero).
func (e Experience) StartYear() int {
	match := yearPattern.FindString(e.StartDate)
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return year
}

// Duration renders the period as shown on the site, e.g. "2021 - 2022"
// or "2022 - Present" for an ongoing position.
func (e Experience) Duration() string {
	end := "Present"
	if e.EndDate != nil && *e.EndDate != "" {
		end = *e.EndDate
	}
	return e.StartDate + " - " + end
}
