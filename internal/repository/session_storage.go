package repository

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/util"
	"context"
	"encoding/json"
)

// SessionStorage 单个设备的会话持久化接口，整体读写，不做部分更新
type SessionStorage interface {
	// Load 没有会话时返回 (nil, nil)；内容损坏时返回 *util.StorageParseError
	Load(ctx context.Context) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	Clear(ctx context.Context) error
}

// SessionStorageFactory 按设备 ID 构造独立存储键的 SessionStorage
type SessionStorageFactory func(deviceID string) SessionStorage

// SessionKey 存储键：前缀 + 设备 ID
func SessionKey(prefix, deviceID string) string {
	if prefix == "" {
		prefix = util.DefaultSessionKey
	}
	return prefix + ":" + deviceID
}

func encodeUser(user *model.User) ([]byte, error) {
	return json.Marshal(user)
}

func decodeUser(key string, data []byte) (*model.User, error) {
	var user *model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, &util.StorageParseError{Key: key, Err: err}
	}
	return user, nil
}
