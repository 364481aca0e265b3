package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared one. They start as no-ops
// so library code can log before InitLogger runs; main replaces them.
var (
	Log  = zap.NewNop()
	SLog = zap.NewNop().Sugar()
)

// InitLogger configures zap according to APP_ENV. Development gets the
// console encoder, everything else JSON at Info level.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Without a logger there is nothing sensible left to do.
		panic("logger init failed: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Call via defer in main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
