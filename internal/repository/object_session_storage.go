package repository

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/pkg/objectstore"
	"context"
	"errors"
)

// ObjectSessionStorage 会话存为对象存储中的 sessions/<key>.json
type ObjectSessionStorage struct {
	Provider objectstore.Provider
	Key      string
}

func NewObjectSessionStorage(provider objectstore.Provider, key string) *ObjectSessionStorage {
	return &ObjectSessionStorage{Provider: provider, Key: key}
}

func (s *ObjectSessionStorage) objectKey() string {
	return objectstore.ObjectKey("sessions", s.Key+".json")
}

func (s *ObjectSessionStorage) Load(ctx context.Context) (*model.User, error) {
	data, err := s.Provider.Get(ctx, s.objectKey())
	if errors.Is(err, objectstore.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeUser(s.Key, data)
}

func (s *ObjectSessionStorage) Save(ctx context.Context, user *model.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	return s.Provider.Put(ctx, s.objectKey(), data, "application/json")
}

func (s *ObjectSessionStorage) Clear(ctx context.Context) error {
	return s.Provider.Delete(ctx, s.objectKey())
}
