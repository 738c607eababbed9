package service

import (
	"ai_edu_navigator/internal/model"
	"ai_edu_navigator/internal/repository"
	"ai_edu_navigator/internal/util"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/afero"
)

const testDevice = "6f1c2a5e-8a63-4c1e-9a41-2f0d8c7b9e10"

func newTestStore(t *testing.T) (*SessionStore, *repository.FileSessionStorage) {
	t.Helper()
	storage := repository.NewFileSessionStorage(afero.NewMemMapFs(), "sessions", repository.SessionKey("", testDevice))
	store := NewSessionStore(testDevice, storage, NoLatency{})
	store.Now = func() time.Time { return time.UnixMilli(1700000000000) }
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return store, storage
}

func TestLoginRejectsEmailWithoutAt(t *testing.T) {
	for _, email := range []string{"", "alice", "alice.example.com", "   "} {
		store, storage := newTestStore(t)

		_, err := store.Login(context.Background(), email, "secret")
		if !util.IsValidationError(err) {
			t.Fatalf("Login(%q) error = %v, want validation error", email, err)
		}
		if !errors.Is(err, util.ErrInvalidEmail) {
			t.Fatalf("Login(%q) error should wrap ErrInvalidEmail", email)
		}

		_, err = store.Register(context.Background(), "Alice", email, "secret")
		if !util.IsValidationError(err) {
			t.Fatalf("Register(%q) error = %v, want validation error", email, err)
		}

		if store.User() != nil {
			t.Fatalf("user should stay nil after failed login")
		}
		stored, err := storage.Load(context.Background())
		if err != nil || stored != nil {
			t.Fatalf("storage should stay empty, got %+v, %v", stored, err)
		}
	}
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	before, err := store.Login(ctx, "bob@example.com", "x")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if _, err := store.Login(ctx, "broken", "x"); err == nil {
		t.Fatalf("expected validation error")
	}

	if got := store.User(); !reflect.DeepEqual(got, before) {
		t.Fatalf("user changed after failed login: %+v", got)
	}
	stored, _ := storage.Load(ctx)
	if !reflect.DeepEqual(stored, before) {
		t.Fatalf("stored user changed after failed login: %+v", stored)
	}
}

func TestLoginNameIsLocalPart(t *testing.T) {
	cases := map[string]string{
		"alice@example.com":  "alice",
		"a.b+c@d.org":        "a.b+c",
		"@nolocal.com":       "",
		"first@second@third": "first",
		"UPPER@Example.COM":  "UPPER",
	}
	for email, want := range cases {
		store, _ := newTestStore(t)
		user, err := store.Login(context.Background(), email, "pw")
		if err != nil {
			t.Fatalf("Login(%q) failed: %v", email, err)
		}
		if user.Name != want {
			t.Errorf("Login(%q) name = %q, want %q", email, user.Name, want)
		}
		if user.ID != "1700000000000" {
			t.Errorf("id = %q, want timestamp", user.ID)
		}
		if user.Provider != model.ProviderEmail {
			t.Errorf("provider = %q", user.Provider)
		}
		if store.State() != StateAuthenticated {
			t.Errorf("state = %s", store.State())
		}
	}
}

func TestRegisterKeepsName(t *testing.T) {
	store, _ := newTestStore(t)
	user, err := store.Register(context.Background(), "Alice Smith", "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if user.Name != "Alice Smith" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestSocialLogin(t *testing.T) {
	store, _ := newTestStore(t)
	n := 0
	store.RandIntn = func(int) int {
		n++
		return 100 + n
	}

	gh, err := store.LoginWithGithub(context.Background())
	if err != nil {
		t.Fatalf("LoginWithGithub() failed: %v", err)
	}
	if gh.Email != "github_user_101@example.com" || gh.Name != "GitHub User 102" || gh.Provider != model.ProviderGithub {
		t.Fatalf("unexpected github user %+v", gh)
	}

	li, err := store.LoginWithLinkedin(context.Background())
	if err != nil {
		t.Fatalf("LoginWithLinkedin() failed: %v", err)
	}
	if li.Email != "linkedin_user_103@example.com" || li.Name != "LinkedIn User 104" || li.Provider != model.ProviderLinkedin {
		t.Fatalf("unexpected linkedin user %+v", li)
	}
}

func TestSocialLoginProviderFailure(t *testing.T) {
	store, _ := newTestStore(t)
	store.SetLatency(&FailingLatency{Err: errors.New("timeout"), Ops: []Operation{OpLoginGithub}})

	if _, err := store.LoginWithGithub(context.Background()); !errors.Is(err, util.ErrProviderFailed) {
		t.Fatalf("error = %v, want ErrProviderFailed", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("failed provider login must not authenticate")
	}
	if store.IsLoading() {
		t.Fatalf("loading flag must be cleared after failure")
	}

	if _, err := store.Login(context.Background(), "ok@example.com", "pw"); err != nil {
		t.Fatalf("Login() should not be affected: %v", err)
	}
}

func TestConcurrentAuthRejected(t *testing.T) {
	store, _ := newTestStore(t)
	latency := NewBlockingLatency()
	store.SetLatency(latency)

	done := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), "first@example.com", "pw")
		done <- err
	}()

	<-latency.Started
	if !store.IsLoading() || store.State() != StateAuthenticating {
		t.Fatalf("store should be authenticating, state = %s", store.State())
	}
	if _, err := store.Register(context.Background(), "x", "second@example.com", "pw"); !errors.Is(err, util.ErrAuthInProgress) {
		t.Fatalf("second auth error = %v, want ErrAuthInProgress", err)
	}

	latency.Release()
	if err := <-done; err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if got := store.User(); got == nil || got.Email != "first@example.com" {
		t.Fatalf("unexpected user %+v", got)
	}
	if store.IsLoading() {
		t.Fatalf("loading flag should be cleared")
	}
}

func TestLogoutClearsMemoryAndStorage(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()
	if _, err := store.Login(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	if store.User() != nil || store.State() != StateUnauthenticated {
		t.Fatalf("user should be cleared")
	}
	if stored, _ := storage.Load(ctx); stored != nil {
		t.Fatalf("storage should be cleared, got %+v", stored)
	}
	// 未登录时再次退出不报错
	if err := store.Logout(ctx); err != nil {
		t.Fatalf("second Logout() failed: %v", err)
	}
}

func TestUpdatePreferences(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()

	user, err := store.UpdatePreferences(ctx, model.Preferences{CustomerRole: model.RoleDeveloper})
	if err != nil || user != nil {
		t.Fatalf("update without user should be a no-op, got %+v, %v", user, err)
	}

	if _, err := store.Login(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if _, err := store.UpdatePreferences(ctx, model.Preferences{CustomerRole: model.RoleDeveloper, TargetTime: 10}); err != nil {
		t.Fatalf("UpdatePreferences() failed: %v", err)
	}
	user, err = store.UpdatePreferences(ctx, model.Preferences{LearningGoal: model.GoalSkill})
	if err != nil {
		t.Fatalf("UpdatePreferences() failed: %v", err)
	}

	want := &model.Preferences{SchemaVersion: model.PreferencesSchemaVersion, LearningGoal: model.GoalSkill}
	if !reflect.DeepEqual(user.Preferences, want) {
		t.Fatalf("preferences = %+v, want whole replacement %+v", user.Preferences, want)
	}
	stored, _ := storage.Load(ctx)
	if !reflect.DeepEqual(stored.Preferences, want) {
		t.Fatalf("stored preferences = %+v", stored.Preferences)
	}
}

func TestCourseQueue(t *testing.T) {
	store, storage := newTestStore(t)
	ctx := context.Background()
	if _, err := store.Login(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if _, err := store.AddCourseToQueue(ctx, 3); err != nil {
		t.Fatalf("AddCourseToQueue() failed: %v", err)
	}
	user, err := store.AddCourseToQueue(ctx, 3)
	if err != nil {
		t.Fatalf("AddCourseToQueue() failed: %v", err)
	}
	if !reflect.DeepEqual(user.QueuedCourses, []int{3}) {
		t.Fatalf("queue = %v, want [3]", user.QueuedCourses)
	}

	if _, err := store.AddCourseToQueue(ctx, 5); err != nil {
		t.Fatalf("AddCourseToQueue() failed: %v", err)
	}
	user, _ = store.RemoveCourseFromQueue(ctx, 42)
	if !reflect.DeepEqual(user.QueuedCourses, []int{3, 5}) {
		t.Fatalf("removing absent id changed queue: %v", user.QueuedCourses)
	}

	user, _ = store.RemoveCourseFromQueue(ctx, 3)
	if !reflect.DeepEqual(user.QueuedCourses, []int{5}) {
		t.Fatalf("queue = %v, want [5]", user.QueuedCourses)
	}
	if store.IsInQueue(3) || !store.IsInQueue(5) {
		t.Fatalf("IsInQueue mismatch")
	}

	stored, _ := storage.Load(ctx)
	if !reflect.DeepEqual(stored.QueuedCourses, []int{5}) {
		t.Fatalf("stored queue = %v", stored.QueuedCourses)
	}

	// 清空后的队列与重新加载的结果一致
	user, err = store.RemoveCourseFromQueue(ctx, 5)
	if err != nil {
		t.Fatalf("RemoveCourseFromQueue() failed: %v", err)
	}
	if user.QueuedCourses != nil {
		t.Fatalf("emptied queue = %#v, want nil", user.QueuedCourses)
	}
	stored, _ = storage.Load(ctx)
	if !reflect.DeepEqual(stored, store.User()) {
		t.Fatalf("reloaded user differs:\n got %+v\nwant %+v", stored, store.User())
	}
}

func TestUserIsACopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	if _, err := store.Login(ctx, "a@b.c", "pw"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if _, err := store.AddCourseToQueue(ctx, 1); err != nil {
		t.Fatalf("AddCourseToQueue() failed: %v", err)
	}

	u := store.User()
	u.QueuedCourses[0] = 99
	u.Name = "changed"

	if got := store.User(); got.QueuedCourses[0] != 1 || got.Name != "a" {
		t.Fatalf("store state was mutated through returned user: %+v", got)
	}
}

func TestSessionSurvivesReload(t *testing.T) {
	fs := afero.NewMemMapFs()
	key := repository.SessionKey("", testDevice)
	ctx := context.Background()

	first := NewSessionStore(testDevice, repository.NewFileSessionStorage(fs, "sessions", key), NoLatency{})
	if err := first.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := first.Register(ctx, "Alice", "alice@example.com", "pw"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if _, err := first.UpdatePreferences(ctx, model.Preferences{
		CustomerRole:       model.RoleStudent,
		LearningGoal:       model.GoalCasual,
		WeeklyFrequency:    model.FrequencyDaily,
		LearningExperience: model.ExperienceBoth,
		TargetTime:         15,
	}); err != nil {
		t.Fatalf("UpdatePreferences() failed: %v", err)
	}
	if _, err := first.AddCourseToQueue(ctx, 7); err != nil {
		t.Fatalf("AddCourseToQueue() failed: %v", err)
	}
	if _, err := first.UpdateSettings(ctx, model.DefaultSettings()); err != nil {
		t.Fatalf("UpdateSettings() failed: %v", err)
	}

	second := NewSessionStore(testDevice, repository.NewFileSessionStorage(fs, "sessions", key), NoLatency{})
	if second.State() != StateUnauthenticated || !second.IsLoading() {
		t.Fatalf("store should be loading before Init")
	}
	if err := second.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if !reflect.DeepEqual(second.User(), first.User()) {
		t.Fatalf("reloaded user differs:\n got %+v\nwant %+v", second.User(), first.User())
	}
	if second.IsLoading() {
		t.Fatalf("loading flag should be cleared after Init")
	}
}

func TestCorruptSessionIsDiscarded(t *testing.T) {
	fs := afero.NewMemMapFs()
	key := repository.SessionKey("", testDevice)
	storage := repository.NewFileSessionStorage(fs, "sessions", key)
	ctx := context.Background()

	if err := afero.WriteFile(fs, "sessions/aiLearnUser_"+testDevice+".json", []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := storage.Load(ctx); !util.IsStorageParseError(err) {
		t.Fatalf("Load() error = %v, want parse error", err)
	}

	store := NewSessionStore(testDevice, storage, NoLatency{})
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init() should swallow parse errors, got %v", err)
	}
	if store.User() != nil {
		t.Fatalf("corrupt session should be treated as logged out")
	}
	if ok, _ := afero.Exists(fs, "sessions/aiLearnUser_"+testDevice+".json"); ok {
		t.Fatalf("corrupt session file should be deleted")
	}
}

// flakyStorage 前 failures 次读取返回 err
type flakyStorage struct {
	repository.SessionStorage
	failures int
	err      error
	loads    int
}

func (f *flakyStorage) Load(ctx context.Context) (*model.User, error) {
	f.loads++
	if f.loads <= f.failures {
		return nil, f.err
	}
	return f.SessionStorage.Load(ctx)
}

func TestInitRetriesAfterStorageError(t *testing.T) {
	fs := afero.NewMemMapFs()
	key := repository.SessionKey("", testDevice)
	ctx := context.Background()

	seed := NewSessionStore(testDevice, repository.NewFileSessionStorage(fs, "sessions", key), NoLatency{})
	if err := seed.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := seed.Login(ctx, "alice@example.com", "pw"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	down := errors.New("connection refused")
	storage := &flakyStorage{SessionStorage: repository.NewFileSessionStorage(fs, "sessions", key), failures: 1, err: down}
	store := NewSessionStore(testDevice, storage, NoLatency{})

	if err := store.Init(ctx); !errors.Is(err, down) {
		t.Fatalf("first Init() error = %v, want %v", err, down)
	}
	if !store.IsLoading() || store.User() != nil {
		t.Fatalf("failed Init must leave the store unloaded")
	}
	if err := store.Init(ctx); err != nil {
		t.Fatalf("second Init() should retry and succeed, got %v", err)
	}
	if u := store.User(); u == nil || u.Email != "alice@example.com" {
		t.Fatalf("session not restored after retry: %+v", u)
	}
	if err := store.Init(ctx); err != nil || storage.loads != 2 {
		t.Fatalf("Init() after success should not reload, loads = %d, err = %v", storage.loads, err)
	}
}

func TestEachLoginGetsNewSessionID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first, err := store.Login(ctx, "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	second, err := store.Login(ctx, "bob@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	// Now 固定，两次登录的用户 ID 相同
	if first.ID != second.ID {
		t.Fatalf("ids = %q, %q; want equal timestamps", first.ID, second.ID)
	}
	if first.SessionID == "" || first.SessionID == second.SessionID {
		t.Fatalf("session ids = %q, %q; want distinct", first.SessionID, second.SessionID)
	}
}
