package objectstore

import (
	"ai_edu_navigator/internal/config"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/afero"
)

var ErrObjectNotFound = errors.New("object not found")

// Provider 定义通用对象存储接口
type Provider interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Name() string
}

// LocalProvider 本地存储实现
type LocalProvider struct {
	Fs afero.Fs
}

func NewLocalProvider(root string) *LocalProvider {
	return &LocalProvider{Fs: afero.NewBasePathFs(afero.NewOsFs(), root)}
}

func (p *LocalProvider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	dir := filepath.Dir(key)
	if err := p.Fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return afero.WriteFile(p.Fs, key, data, 0644)
}

func (p *LocalProvider) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := afero.ReadFile(p.Fs, key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return data, nil
}

func (p *LocalProvider) Delete(ctx context.Context, key string) error {
	err := p.Fs.Remove(key)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (p *LocalProvider) Name() string { return "local" }

// MinioProvider MinIO存储实现
type MinioProvider struct {
	Bucket string
	Client *minio.Client
}

func NewMinioProvider(cfg *config.StorageConfig) (*MinioProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioSecure,
	})
	if err != nil {
		return nil, err
	}
	return &MinioProvider{Bucket: cfg.MinioBucket, Client: client}, nil
}

// EnsureBucket 桶不存在时创建
func (p *MinioProvider) EnsureBucket(ctx context.Context) error {
	exists, err := p.Client.BucketExists(ctx, p.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return p.Client.MakeBucket(ctx, p.Bucket, minio.MakeBucketOptions{})
}

func (p *MinioProvider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := p.Client.PutObject(ctx, p.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (p *MinioProvider) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, minioErr(err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, minioErr(err)
	}
	return data, nil
}

func (p *MinioProvider) Delete(ctx context.Context, key string) error {
	return p.Client.RemoveObject(ctx, p.Bucket, key, minio.RemoveObjectOptions{})
}

func (p *MinioProvider) Name() string { return "minio" }

func minioErr(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}
	return err
}

// OSSProvider 阿里云OSS存储实现
type OSSProvider struct {
	Bucket *oss.Bucket
}

func NewOSSProvider(cfg *config.StorageConfig) (*OSSProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSProvider{Bucket: bucket}, nil
}

func (p *OSSProvider) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return p.Bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType))
}

func (p *OSSProvider) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := p.Bucket.GetObject(key)
	if err != nil {
		if isOSSNotFound(err) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

func (p *OSSProvider) Delete(ctx context.Context, key string) error {
	return p.Bucket.DeleteObject(key)
}

func (p *OSSProvider) Name() string { return "oss" }

func isOSSNotFound(err error) bool {
	switch e := err.(type) {
	case oss.ServiceError:
		return e.StatusCode == 404
	case *oss.ServiceError:
		return e.StatusCode == 404
	}
	return false
}

// New 根据配置选择存储实现
func New(cfg *config.StorageConfig) (Provider, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalProvider(cfg.LocalPath), nil
	case "minio":
		p, err := NewMinioProvider(cfg)
		if err != nil {
			return nil, err
		}
		if err := p.EnsureBucket(context.Background()); err != nil {
			return nil, err
		}
		return p, nil
	case "oss":
		return NewOSSProvider(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// ObjectKey 拼接对象键，统一使用正斜杠
func ObjectKey(parts ...string) string {
	return path.Join(parts...)
}
