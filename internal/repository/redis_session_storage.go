package repository

import (
	"ai_edu_navigator/internal/model"
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStorage 每个设备一个字符串键，TTL 为 0 时永不过期
type RedisSessionStorage struct {
	Client *redis.Client
	Key    string
	TTL    time.Duration
}

func NewRedisSessionStorage(client *redis.Client, key string, ttl time.Duration) *RedisSessionStorage {
	return &RedisSessionStorage{Client: client, Key: key, TTL: ttl}
}

func (s *RedisSessionStorage) Load(ctx context.Context) (*model.User, error) {
	data, err := s.Client.Get(ctx, s.Key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeUser(s.Key, data)
}

func (s *RedisSessionStorage) Save(ctx context.Context, user *model.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.Key, data, s.TTL).Err()
}

func (s *RedisSessionStorage) Clear(ctx context.Context) error {
	return s.Client.Del(ctx, s.Key).Err()
}
