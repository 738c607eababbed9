package logger

import (
	"ai_edu_navigator/internal/config"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 在 InitLogger 之前是 no-op，测试和库调用无需初始化
var Log = zap.NewNop()

const serviceName = "ai-edu-navigator"

// InitLogger 文件输出 JSON，控制台输出可读格式；log.file 为 "-" 时只写控制台
func InitLogger(cfg *config.Config) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	level := levelFor(cfg)
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), level),
	}

	if cfg.Log.File != "-" {
		filename := cfg.Log.File
		if filename == "" {
			filename = "logs/app.log"
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level))
	}

	Log = zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.String("service", serviceName)),
	)
}

// levelFor 显式配置的 log.level 优先，否则按 server.mode 决定
func levelFor(cfg *config.Config) zap.AtomicLevel {
	if cfg.Log.Level != "" {
		if lvl, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
			return zap.NewAtomicLevelAt(lvl)
		}
	}
	if cfg.Server.Mode == "debug" {
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

func consoleEncoder(base zapcore.EncoderConfig) zapcore.Encoder {
	base.EncodeLevel = zapcore.CapitalColorLevelEncoder
	base.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewConsoleEncoder(base)
}
