package cmn

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogDir = "logs"
)

var (
	logger     = zap.NewNop()
	MiniLogger = zap.NewNop()
	logOnce    sync.Once
)

// InitLogger 初始化全局日志，debug 模式输出彩色控制台日志，否则输出 JSON 并写入 logs 目录
func InitLogger(debug bool) {
	logOnce.Do(func() {
		var l *zap.Logger
		var err error

		if debug {
			l = newDevLogger()
		} else {
			l, err = newProdLogger(defaultLogDir)
			if err != nil {
				// 文件日志不可用时退回控制台，服务照常启动
				fmt.Printf("init prod logger failed, fallback to console: %v\n", err)
				l = newDevLogger()
			}
		}

		zap.ReplaceGlobals(l)
		logger = l
		MiniLogger = newMiniLogger()
	})

	MiniLogger.Info("[ OK ] log module initialized")
}

// GetLogger 获取全局的logger，未初始化时返回 Nop logger
func GetLogger() *zap.Logger {
	return logger
}

// SyncLogger 刷新缓冲区，进程退出前调用
func SyncLogger() {
	_ = logger.Sync()
}

func newDevLogger() *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "T"
	encoderConfig.CallerKey = "C"
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zapcore.DebugLevel,
	)

	return zap.New(core, zap.AddCaller())
}

// newProdLogger 控制台与文件同时输出 JSON，文件名带启动时间戳
func newProdLogger(dir string) (*zap.Logger, error) {
	if err := InitDir(dir); err != nil {
		return nil, err
	}

	fileName := filepath.Join(dir, time.Now().Format("2006-01-02T15-04-05")+".log")
	file, err := os.Create(fileName)
	if err != nil {
		return nil, fmt.Errorf("create log file %s: %w", fileName, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(file),
		zapcore.InfoLevel,
	)

	return zap.New(zapcore.NewTee(consoleCore, fileCore), zap.AddCaller()), nil
}

// newMiniLogger 只输出消息本身，用于启动阶段的模块状态行
func newMiniLogger() *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey: "msg",
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		zapcore.InfoLevel,
	)

	return zap.New(core)
}
