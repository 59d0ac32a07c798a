package models

import "time"

// Comment is a visitor comment. Comments are created unapproved and only
// become publicly visible once the site owner approves them.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Profession *string   `json:"profession"`
	Content    string    `json:"comment" gorm:"column:comment;not null"`
	Likes      int       `json:"likes" gorm:"not null;default:0"`
	IsApproved bool      `json:"isApproved" gorm:"not null;default:false;index"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
