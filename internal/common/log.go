// Package common holds process-wide singletons shared by every package.
package common

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/portfolio/backend/internal/platform/timeutil"
)

// severityNames maps zap levels onto Cloud Logging severity names so
// entries from this service group correctly in the hosting project.
// Unmapped levels fall back to DEFAULT.
var severityNames = map[zapcore.Level]string{
	zapcore.DebugLevel:  "DEBUG",
	zapcore.InfoLevel:   "INFO",
	zapcore.WarnLevel:   "WARNING",
	zapcore.ErrorLevel:  "ERROR",
	zapcore.DPanicLevel: "CRITICAL",
	zapcore.PanicLevel:  "ALERT",
	zapcore.FatalLevel:  "EMERGENCY",
}

var (
	once     sync.Once
	logger   *zap.Logger
	sugar    *zap.SugaredLogger
	buildErr error
)

// encoderConfig is the JSON layout for this service's log lines:
// Cloud Logging field names, severity levels, and the same fixed
// microsecond RFC 3339 timestamps the API uses for milliseconds.
func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(timeutil.RFC3339Micros))
	}
	cfg.LevelKey = "severity"
	cfg.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(severityName(level))
	}
	cfg.MessageKey = "message"
	cfg.CallerKey = "caller"
	return cfg
}

func severityName(level zapcore.Level) string {
	if name, ok := severityNames[level]; ok {
		return name
	}
	return "DEFAULT"
}

func build() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}
	cfg.EncoderConfig = encoderConfig()

	logger, buildErr = cfg.Build(zap.AddCaller())
	if buildErr != nil {
		logger = zap.NewNop()
	}
	sugar = logger.Sugar()
}

// Logger returns the process-wide zap.Logger instance.
func Logger() *zap.Logger {
	once.Do(build)
	return logger
}

// Sugar returns a sugared logger sharing the same core as Logger.
func Sugar() *zap.SugaredLogger {
	once.Do(build)
	return sugar
}

// Sync flushes buffered log entries. Call during shutdown.
func Sync() error {
	once.Do(build)
	return logger.Sync()
}

// Err reports initialization failure, if any.
func Err() error {
	once.Do(build)
	return buildErr
}
