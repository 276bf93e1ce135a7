package cmd

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bootstrapLogger writes to stderr until the configured logger is ready
// bootstrapLogger 在配置的日志器就绪前输出到 stderr
var bootstrapLogger = newBootstrapLogger()

// newBootstrapLogger console logger, DEBUG=1 lowers the level to debug
// newBootstrapLogger 控制台日志器，设置 DEBUG 环境变量时输出 debug 级别
func newBootstrapLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if os.Getenv("DEBUG") != "" {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}
	lg, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return lg
}
