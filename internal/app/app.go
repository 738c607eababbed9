package app

import (
	"ai_edu_navigator/internal/config"
	"ai_edu_navigator/internal/controller"
	"ai_edu_navigator/internal/repository"
	"ai_edu_navigator/internal/service"
	"ai_edu_navigator/internal/util"
	"ai_edu_navigator/pkg/database"
	"ai_edu_navigator/pkg/logger"
	"ai_edu_navigator/pkg/monitoring"
	"ai_edu_navigator/pkg/objectstore"
	"ai_edu_navigator/pkg/security"
	"ai_edu_navigator/pkg/tracing"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/afero"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Registry *service.SessionRegistry

	fs       afero.Fs
	latency  service.Latency
	tracer   *sdktrace.TracerProvider
	cancel   context.CancelFunc
	services *services

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

const sweepInterval = time.Minute

type Option func(*App)

// WithFs 替换文件会话和本地对象存储使用的文件系统
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// WithLatency 覆盖配置中的模拟延迟
func WithLatency(l service.Latency) Option {
	return func(a *App) { a.latency = l }
}

type repositories struct {
	course   *repository.CourseRepository
	progress *repository.ProgressRepository
}

type services struct {
	auth           *service.AuthService
	user           *service.UserService
	catalog        *service.CatalogService
	recommendation *service.RecommendationService
	onboarding     *service.OnboardingService
	progress       *service.ProgressService
	dashboard      *service.DashboardService
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	course         *controller.CourseController
	recommendation *controller.RecommendationController
	onboarding     *controller.OnboardingController
	progress       *controller.ProgressController
	dashboard      *controller.DashboardController
	app            *controller.AppController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，只有回调关心的字段会生效
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

// LatencyFromConfig 0 表示不模拟延迟
func LatencyFromConfig(cfg *config.Config) service.Latency {
	if d := cfg.Session.Latency(); d > 0 {
		return service.FixedLatency{Delay: d}
	}
	return service.NoLatency{}
}

// sessionStorageFactory 按 session.backend 选择会话存储，并初始化该后端依赖的连接
func (a *App) sessionStorageFactory(cfg *config.Config) (repository.SessionStorageFactory, error) {
	prefix := cfg.Session.KeyPrefix

	switch cfg.Session.Backend {
	case "", util.SessionBackendFile:
		dir := filepath.Join(cfg.Storage.LocalPath, "sessions")
		return func(deviceID string) repository.SessionStorage {
			return repository.NewFileSessionStorage(a.fs, dir, repository.SessionKey(prefix, deviceID))
		}, nil

	case util.SessionBackendRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
		ttl := cfg.Session.TTL()
		return func(deviceID string) repository.SessionStorage {
			return repository.NewRedisSessionStorage(rdb, repository.SessionKey(prefix, deviceID), ttl)
		}, nil

	case util.SessionBackendDatabase:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.DB = db
		return func(deviceID string) repository.SessionStorage {
			return repository.NewDBSessionStorage(db, repository.SessionKey(prefix, deviceID))
		}, nil

	case util.SessionBackendObject:
		provider, err := a.objectProvider(&cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("init object storage: %w", err)
		}
		logger.Log.Info("对象存储已就绪", zap.String("provider", provider.Name()))
		return func(deviceID string) repository.SessionStorage {
			return repository.NewObjectSessionStorage(provider, repository.SessionKey(prefix, deviceID))
		}, nil

	default:
		return nil, fmt.Errorf("unsupported session backend: %s", cfg.Session.Backend)
	}
}

func (a *App) objectProvider(cfg *config.StorageConfig) (objectstore.Provider, error) {
	if cfg.Type == "" || cfg.Type == util.StorageLocal {
		return &objectstore.LocalProvider{Fs: afero.NewBasePathFs(a.fs, cfg.LocalPath)}, nil
	}
	return objectstore.New(cfg)
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		course:   repository.NewCourseRepository(),
		progress: repository.NewProgressRepository(),
	}
}

func (a *App) initServices(repos *repositories, registry *service.SessionRegistry, cfg *config.Config) *services {
	s := &services{}
	s.auth = service.NewAuthService(registry, cfg)
	s.user = service.NewUserService(repos.course)
	s.catalog = service.NewCatalogService(repos.course)
	s.recommendation = service.NewRecommendationService(repos.course)
	s.onboarding = service.NewOnboardingService()
	s.progress = service.NewProgressService(repos.progress)
	s.dashboard = service.NewDashboardService(repos.course, repos.progress, s.recommendation)
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		user:           controller.NewUserController(s.user, s.onboarding),
		course:         controller.NewCourseController(s.catalog),
		recommendation: controller.NewRecommendationController(s.recommendation),
		onboarding:     controller.NewOnboardingController(s.onboarding),
		progress:       controller.NewProgressController(s.progress),
		dashboard:      controller.NewDashboardController(s.dashboard),
		app:            controller.NewAppController(),
		health:         controller.NewHealthController(a.DB, a.Redis, a.Config.Session.Backend),
	}
}

func (a *App) setupMiddlewares(ctx context.Context, router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	router.Use(security.RateLimiter(ctx, cfg.RateLimit.MaxRequests, window, security.DeviceOrIPKey(util.DeviceIDHeader)))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(util.DeviceIDHeader))
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, opts ...Option) (*App, error) {
	app := &App{
		Config: cfg,
		fs:     afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(app)
	}

	factory, err := app.sessionStorageFactory(cfg)
	if err != nil {
		return nil, err
	}

	latency := app.latency
	if latency == nil {
		latency = LatencyFromConfig(cfg)
		// 配置热更新只作用于来自配置的延迟
		app.RegisterConfigCallback(func(newCfg *config.Config) {
			app.Registry.SetLatency(LatencyFromConfig(newCfg))
			logger.Log.Info("会话延迟已更新", zap.Duration("latency", newCfg.Session.Latency()))
		})
	}
	app.Registry = service.NewSessionRegistry(factory, latency)

	repos := app.initRepositories()
	app.services = app.initServices(repos, app.Registry, cfg)
	controllers := app.initControllers(app.services)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
		app.tracer = tp
	}

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel
	app.Registry.StartSweeper(ctx, sweepInterval, cfg.Session.IdleTimeout())

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(ctx, router, cfg)
	app.registerRoutes(router, controllers)

	logger.Log.Info("App initialized",
		zap.String("sessionBackend", cfg.Session.Backend),
		zap.Duration("latency", cfg.Session.Latency()),
	)
	return app, nil
}

// Close 释放后台协程和外部连接
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close()

	logger.Log.Info("Server exiting")
}
