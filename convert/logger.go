package convert

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the convert package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the convert package's logger, replacing any
// previously installed logger including the default. It must not race
// with in-flight conversions.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	logger = l
}
