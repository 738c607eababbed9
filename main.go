// @title AI Edu Navigator API
// @version 1.0
// @description AI 学习应用的后端服务：模拟登录、引导偏好、课程目录与个性化推荐。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"ai_edu_navigator/internal/app"
	"ai_edu_navigator/internal/config"
	"ai_edu_navigator/pkg/configwatcher"
	"ai_edu_navigator/pkg/logger"
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	watch := flag.Bool("watch", true, "监听配置文件变化并热更新")
	flag.Parse()

	// .env 不存在时忽略，环境变量仍然生效
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	application, err := app.NewApp(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize app", zap.Error(err))
	}

	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			file := filepath.Join(*configDir, "config.yaml")
			if err := configwatcher.WatchConfig(ctx, file, application.ApplyConfig); err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	application.Run()
}
