package models

import (
	"gorm.io/gorm"
)

// StorageItem is one key of one client's local storage.
type StorageItem struct {
	gorm.Model
	ClientID string `gorm:"uniqueIndex:idx_client_key"`
	Key      string `gorm:"uniqueIndex:idx_client_key"`
	Value    string
}
