package repository

import (
	"ai_edu_navigator/internal/config"
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/util"
	"ai_edu_navigator/pkg/database"
	"ai_edu_navigator/pkg/objectstore"
	"context"
	"reflect"
	"testing"

	"github.com/spf13/afero"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testKey = "aiLearnUser:3b1d7c90-2f4e-4b8a-9c55-0a6e1f2d4c77"

func sampleUser() *model.User {
	return &model.User{
		ID:            "user-1",
		Email:         "alice@example.com",
		Name:          "alice",
		Provider:      model.ProviderEmail,
		QueuedCourses: []int{3, 1},
		Preferences: &model.Preferences{
			CustomerRole:       "developer",
			LearningGoal:       "professional",
			WeeklyFrequency:    "daily",
			LearningExperience: "both",
			TargetTime:         15,
		},
	}
}

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dialector, err := database.Dialector(&config.DatabaseConfig{Driver: "sqlite", Path: "file::memory:"})
	if err != nil {
		t.Fatalf("Dialector() failed: %v", err)
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm.Open() failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() failed: %v", err)
	}
	// 内存库按连接隔离
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	return db
}

func storages(t *testing.T) map[string]SessionStorage {
	return map[string]SessionStorage{
		"file":     NewFileSessionStorage(afero.NewMemMapFs(), "sessions", testKey),
		"database": NewDBSessionStorage(newSQLiteDB(t), testKey),
		"object":   NewObjectSessionStorage(&objectstore.LocalProvider{Fs: afero.NewMemMapFs()}, testKey),
	}
}

func TestSessionStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range storages(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.Load(ctx)
			if err != nil || got != nil {
				t.Fatalf("Load() on empty storage = %+v, %v; want nil, nil", got, err)
			}

			want := sampleUser()
			if err := s.Save(ctx, want); err != nil {
				t.Fatalf("Save() failed: %v", err)
			}
			got, err = s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Load() = %+v, want %+v", got, want)
			}

			// 覆盖写入
			want.Name = "Alice"
			want.QueuedCourses = nil
			if err := s.Save(ctx, want); err != nil {
				t.Fatalf("second Save() failed: %v", err)
			}
			got, _ = s.Load(ctx)
			if got.Name != "Alice" || got.QueuedCourses != nil {
				t.Fatalf("Load() after overwrite = %+v", got)
			}

			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear() failed: %v", err)
			}
			got, err = s.Load(ctx)
			if err != nil || got != nil {
				t.Fatalf("Load() after Clear = %+v, %v", got, err)
			}
			if err := s.Clear(ctx); err != nil {
				t.Fatalf("Clear() on empty storage failed: %v", err)
			}
		})
	}
}

func TestFileSessionStorageCorruptPayload(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileSessionStorage(fs, "sessions", testKey)
	if err := afero.WriteFile(fs, s.path(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load(context.Background())
	if !util.IsStorageParseError(err) {
		t.Fatalf("Load() error = %v, want StorageParseError", err)
	}
}

func TestFileSessionStoragePathHasNoColon(t *testing.T) {
	s := NewFileSessionStorage(afero.NewMemMapFs(), "sessions", testKey)
	if got := s.path(); got != "sessions/aiLearnUser_3b1d7c90-2f4e-4b8a-9c55-0a6e1f2d4c77.json" {
		t.Fatalf("path() = %q", got)
	}
}

func TestObjectSessionStorageCorruptPayload(t *testing.T) {
	provider := &objectstore.LocalProvider{Fs: afero.NewMemMapFs()}
	s := NewObjectSessionStorage(provider, testKey)
	if err := provider.Put(context.Background(), s.objectKey(), []byte("[]x"), "application/json"); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load(context.Background())
	if !util.IsStorageParseError(err) {
		t.Fatalf("Load() error = %v, want StorageParseError", err)
	}
}

func TestSessionKey(t *testing.T) {
	if got := SessionKey("", "abc"); got != "aiLearnUser:abc" {
		t.Fatalf("SessionKey default prefix = %q", got)
	}
	if got := SessionKey("edu", "abc"); got != "edu:abc" {
		t.Fatalf("SessionKey custom prefix = %q", got)
	}
}

func TestDBSessionStorageIsolatesDevices(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	a := NewDBSessionStorage(db, SessionKey("", "device-a"))
	b := NewDBSessionStorage(db, SessionKey("", "device-b"))

	if err := a.Save(ctx, sampleUser()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := b.Load(ctx)
	if err != nil || got != nil {
		t.Fatalf("other device Load() = %+v, %v; want nil", got, err)
	}
	if err := b.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if got, _ := a.Load(ctx); got == nil {
		t.Fatalf("clearing one device removed another device's session")
	}
}
