package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/central-adventures/trips/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormProvider struct {
	db *gorm.DB
}

var _ Provider = (*gormProvider)(nil)

func NewGormProvider(db *gorm.DB) Provider {
	return &gormProvider{db: db}
}

func (p *gormProvider) ForClient(clientID string) LocalStorage {
	return &gormStorage{db: p.db, clientID: clientID}
}

type gormStorage struct {
	db       *gorm.DB
	clientID string
}

func (s *gormStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var item models.StorageItem
	err := s.db.WithContext(ctx).Where(&models.StorageItem{ClientID: s.clientID, Key: key}).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read %s for client %s: %w", key, s.clientID, err)
	}
	return item.Value, true, nil
}

func (s *gormStorage) SetItem(ctx context.Context, key, value string) error {
	item := models.StorageItem{ClientID: s.clientID, Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("cannot write %s for client %s: %w", key, s.clientID, err)
	}
	return nil
}
