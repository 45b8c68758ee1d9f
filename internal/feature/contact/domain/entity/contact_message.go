// Package entity defines the domain entities for the contact feature.
package entity

import "time"

// ContactMessage is a submission of the public contact form. It is write-only.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Message   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (ContactMessage) TableName() string {
	return "contact_messages"
}
