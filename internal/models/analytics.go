package models

import "time"

// Analytics is the singleton row of running site counters. Every counter
// is maintained in the same transaction as the record mutation that
// causes it, so at any point in time:
//
//	TotalComments == number of comments currently stored
//	TotalContacts == number of contacts currently stored
//	TotalLikes    == sum of like increments minus likes removed with deleted comments
//	TotalVisitors == number of recorded visits
type Analytics struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TotalVisitors int       `json:"totalVisitors" gorm:"not null;default:0"`
	TotalComments int       `json:"totalComments" gorm:"not null;default:0"`
	TotalContacts int       `json:"totalContacts" gorm:"not null;default:0"`
	TotalLikes    int       `json:"totalLikes" gorm:"not null;default:0"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName keeps the singular-looking table name used by the site.
func (Analytics) TableName() string {
	return "analytics"
}
