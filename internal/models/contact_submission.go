package models

import (
	"gorm.io/gorm"
)

// ContactSubmission records every contact form submission and whether the
// relay accepted it.
type ContactSubmission struct {
	gorm.Model
	ClientID       string `json:"client_id" gorm:"index"`
	Backend        string `json:"backend"`
	Delivered      bool   `json:"delivered"`
	ContactMessage `gorm:"embedded"`
}
