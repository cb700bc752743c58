package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a production JSON logger named after the binary. level is a zap
// level name such as "debug" or "info"; empty means info.
func New(name, level string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar().Named(name), nil
}
