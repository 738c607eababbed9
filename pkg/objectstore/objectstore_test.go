package objectstore

import (
	"ai_edu_navigator/internal/config"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func TestLocalProvider(t *testing.T) {
	ctx := context.Background()
	p := &LocalProvider{Fs: afero.NewMemMapFs()}
	key := ObjectKey("sessions", "a.json")

	if _, err := p.Get(ctx, key); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("Get() on missing key error = %v", err)
	}
	if err := p.Put(ctx, key, []byte(`{"id":"1"}`), "application/json"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	data, err := p.Get(ctx, key)
	if err != nil || string(data) != `{"id":"1"}` {
		t.Fatalf("Get() = %q, %v", data, err)
	}
	if err := p.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := p.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() on missing key failed: %v", err)
	}
	if _, err := p.Get(ctx, key); !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("Get() after Delete error = %v", err)
	}
}

func TestNewSelectsProvider(t *testing.T) {
	p, err := New(&config.StorageConfig{Type: "local", LocalPath: t.TempDir()})
	if err != nil || p.Name() != "local" {
		t.Fatalf("New(local) = %v, %v", p, err)
	}
	if _, err := New(&config.StorageConfig{Type: "s3"}); err == nil {
		t.Fatalf("New(s3) should fail")
	}
}

func TestObjectKey(t *testing.T) {
	if got := ObjectKey("sessions", "", "x.json"); got != "sessions/x.json" {
		t.Fatalf("ObjectKey() = %q", got)
	}
}
