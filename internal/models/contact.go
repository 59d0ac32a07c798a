package models

import "time"

// Contact is a contact-form submission. IsRead only ever goes from
// false to true; there is no un-read.
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	IsRead    bool      `json:"isRead" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// ContactNotification is the lightweight event passed through the
// notification channel to the mail workers. It carries only what the
// e-mails need, so the workers never touch the database.
type ContactNotification struct {
	FirstName  string
	LastName   string
	Email      string
	Subject    string
	Message    string
	ReceivedAt time.Time
}
