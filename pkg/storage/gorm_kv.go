package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carecompanion.app/companion-service/pkg/db"
	"carecompanion.app/companion-service/pkg/models"
)

// GormKV keeps entries in the kv_entries table of a sqlite or postgres database.
type GormKV struct {
	Db db.DB
}

func NewGormKV(instance *db.DB) *GormKV {
	return &GormKV{Db: *instance}
}

func (g *GormKV) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	var entry models.KVEntry
	err := g.Db.Conn.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (g *GormKV) SetItem(ctx context.Context, key string, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	entry := models.KVEntry{Key: key, Value: value}
	return g.Db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (g *GormKV) RemoveItem(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return g.Db.Conn.WithContext(ctx).Delete(&models.KVEntry{}, "key = ?", key).Error
}
