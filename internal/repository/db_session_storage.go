package repository

import (
	"ai_edu_navigator/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type DBSessionStorage struct {
	DB  *gorm.DB
	Key string
}

func NewDBSessionStorage(db *gorm.DB, key string) *DBSessionStorage {
	return &DBSessionStorage{DB: db, Key: key}
}

func (s *DBSessionStorage) Load(ctx context.Context) (*model.User, error) {
	var row model.DeviceSession
	err := s.DB.WithContext(ctx).Where("device_key = ?", s.Key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeUser(s.Key, []byte(row.Payload))
}

// Save 按主键 upsert，整行覆盖
func (s *DBSessionStorage) Save(ctx context.Context, user *model.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	row := &model.DeviceSession{
		DeviceKey: s.Key,
		Payload:   string(data),
		UpdatedAt: time.Now(),
	}
	return s.DB.WithContext(ctx).Save(row).Error
}

func (s *DBSessionStorage) Clear(ctx context.Context) error {
	return s.DB.WithContext(ctx).Where("device_key = ?", s.Key).Delete(&model.DeviceSession{}).Error
}
