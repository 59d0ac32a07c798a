package models

import "time"

// Project is a portfolio project shown on the site.
// Technologies is stored as a JSON array in a single column.
type Project struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	ImageURL     string    `json:"imageUrl" gorm:"not null"`
	Technologies []string  `json:"technologies" gorm:"serializer:json"`
	GithubURL    *string   `json:"githubUrl"`
	LiveURL      *string   `json:"liveUrl"`
	Category     string    `json:"category" gorm:"index;not null"` // "fullstack", "frontend", "backend"
	Likes        int       `json:"likes" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
