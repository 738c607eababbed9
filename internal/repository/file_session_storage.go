package repository

import (
	"ai_edu_navigator/internal/model"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileSessionStorage 以文件模拟设备 localStorage，每个键一个 JSON 文件
type FileSessionStorage struct {
	Fs  afero.Fs
	Dir string
	Key string
}

func NewFileSessionStorage(fs afero.Fs, dir, key string) *FileSessionStorage {
	return &FileSessionStorage{Fs: fs, Dir: dir, Key: key}
}

func (s *FileSessionStorage) path() string {
	// 冒号在部分文件系统上不合法
	name := strings.ReplaceAll(s.Key, ":", "_") + ".json"
	return filepath.Join(s.Dir, name)
}

func (s *FileSessionStorage) Load(ctx context.Context) (*model.User, error) {
	data, err := afero.ReadFile(s.Fs, s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeUser(s.Key, data)
}

func (s *FileSessionStorage) Save(ctx context.Context, user *model.User) error {
	data, err := encodeUser(user)
	if err != nil {
		return err
	}
	if err := s.Fs.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	return afero.WriteFile(s.Fs, s.path(), data, 0600)
}

func (s *FileSessionStorage) Clear(ctx context.Context) error {
	err := s.Fs.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
