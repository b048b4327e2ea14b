// Package logger holds the process-wide zap loggers.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// Init replaces the no-op loggers. Unknown levels fall back to info.
func Init(level string, dev bool) error {
	var cfg zap.Config
	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	SLog = l.Sugar()
	return nil
}

func Sync() {
	_ = Log.Sync()
}
