package store

import (
	"context"
	"errors"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBStore keeps save slots in a relational database through GORM.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore migrates the schema and wraps the database as a save store.
func NewDBStore(gdb *gorm.DB) (*DBStore, error) {
	if err := model.AutoMigrate(gdb); err != nil {
		return nil, errs.Wrap(errs.KindPersistence, "数据库迁移失败", err)
	}
	return &DBStore{db: gdb}, nil
}

func (s *DBStore) Put(ctx context.Context, key string, data []byte, version string, saveTime time.Time) error {
	slot := model.SaveSlot{
		SlotKey:  key,
		Data:     datatypes.JSON(data),
		Version:  version,
		SaveTime: saveTime,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "version", "save_time", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return errs.Wrap(errs.KindPersistence, "写入存档失败", err)
	}
	return nil
}

func (s *DBStore) Get(ctx context.Context, key string) ([]byte, error) {
	var slot model.SaveSlot
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Newf(errs.KindNotFound, "存档不存在：%s", key)
	}
	if err != nil {
		return nil, errs.Wrap(errs.KindPersistence, "读取存档失败", err)
	}
	return []byte(slot.Data), nil
}

func (s *DBStore) Exists(ctx context.Context, key string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.SaveSlot{}).Where("slot_key = ?", key).Count(&n).Error
	if err != nil {
		return false, errs.Wrap(errs.KindPersistence, "查询存档失败", err)
	}
	return n > 0, nil
}

func (s *DBStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&model.SaveSlot{}).Error
	if err != nil {
		return errs.Wrap(errs.KindPersistence, "删除存档失败", err)
	}
	return nil
}
