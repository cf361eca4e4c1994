package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Local environments get the development encoder.
func New(level, env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if env == "local" || env == "dev" {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// Init builds the logger and installs it as the zap global. The returned func flushes it.
func Init(level, env string) (func(), error) {
	l, err := New(level, env)
	if err != nil {
		return nil, err
	}
	undo := zap.ReplaceGlobals(l)
	return func() {
		_ = l.Sync()
		undo()
	}, nil
}
