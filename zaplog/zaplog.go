package zaplog

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	logpkg "github.com/midgardlabs/coffer/log"
)

// Environment controls the baseline logger profile.
type Environment string

const (
	// EnvironmentProduction selects the JSON encoder with ISO8601 timestamps.
	EnvironmentProduction Environment = "production"
	// EnvironmentStaging behaves like production.
	EnvironmentStaging Environment = "staging"
	// EnvironmentDevelopment selects the human-readable console encoder.
	EnvironmentDevelopment Environment = "development"
	// EnvironmentLocal behaves like development.
	EnvironmentLocal Environment = "local"
)

// Config contains the logger initialization inputs.
type Config struct {
	Environment Environment
	Level       string
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// Logger is a strict structured logger that implements log.Logger. It
// intentionally exposes no printf/line/fatal helpers.
type Logger struct {
	logger *zap.Logger
}

// Compile-time assertion: *Logger implements logpkg.Logger.
var _ logpkg.Logger = (*Logger)(nil)

// New creates a structured logger for the given environment. An empty Level
// defaults to info.
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid zaplog config: %w", err)
	}

	baseConfig := buildConfigByEnvironment(cfg.Environment)

	levelText := cfg.Level
	if levelText == "" {
		levelText = "info"
	}

	level, err := logpkg.ParseLevel(levelText)
	if err != nil {
		return nil, fmt.Errorf("invalid zaplog level: %w", err)
	}

	baseConfig.Level = zap.NewAtomicLevelAt(levelToZap(level))
	baseConfig.DisableStacktrace = true

	zl, err := baseConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{logger: zl}, nil
}

// Wrap adapts an existing zap logger; useful in tests with observed cores.
func Wrap(zl *zap.Logger) *Logger {
	return &Logger{logger: zl}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log implements log.Logger. It dispatches to the matching zap level. If ctx
// carries an active OpenTelemetry span, trace_id and span_id are appended so
// logs correlate with distributed traces.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	zapFields := fieldsToZap(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	switch level {
	case logpkg.LevelDebug:
		l.must().Debug(msg, zapFields...)
	case logpkg.LevelInfo:
		l.must().Info(msg, zapFields...)
	case logpkg.LevelWarn:
		l.must().Warn(msg, zapFields...)
	case logpkg.LevelError:
		l.must().Error(msg, zapFields...)
	default:
		l.must().Info(msg, zapFields...)
	}
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return &Logger{logger: l.must().With(fieldsToZap(fields)...)}
}

// Enabled reports whether the logger would emit a log at the given level.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.must().Core().Enabled(levelToZap(level))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.must().Sync()
}

func buildConfigByEnvironment(env Environment) zap.Config {
	switch env {
	case EnvironmentLocal, EnvironmentDevelopment:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		return cfg
	default:
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		return cfg
	}
}

func levelToZap(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelInfo:
		return zapcore.InfoLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func fieldsToZap(fields []logpkg.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))

	for _, field := range fields {
		switch value := field.Value.(type) {
		case string:
			zapFields = append(zapFields, zap.String(field.Key, value))
		case int:
			zapFields = append(zapFields, zap.Int(field.Key, value))
		case bool:
			zapFields = append(zapFields, zap.Bool(field.Key, value))
		case error:
			zapFields = append(zapFields, zap.NamedError(field.Key, value))
		default:
			zapFields = append(zapFields, zap.Any(field.Key, value))
		}
	}

	return zapFields
}
