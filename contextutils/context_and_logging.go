package contextutils

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKey struct{}

var (
	// This logger is used when there is no logger attached to the context.
	// Rather than returning nil and causing a panic, we will use the fallback
	// logger.
	fallbackLogger *zap.SugaredLogger
	// The atomic level set for any logger built here. Accessing this atomic level
	// and calling set level will change the log output dynamically.
	level zap.AtomicLevel
)

func buildProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	level = zap.NewAtomicLevel()
	config.Level = level
	return config.Build()
}

func init() {
	if logger, err := buildProductionLogger(); err != nil {
		// We failed to create a fallback logger. Our fallback
		// unfortunately falls back to noop.
		fallbackLogger = zap.NewNop().Sugar()
	} else {
		fallbackLogger = logger.Sugar()
	}
}

// WithLogger returns a copy of the parent context carrying a logger named
// for the given component.
func WithLogger(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, loggerKey{}, fallbackLogger.Named(name))
}

// LoggerFrom returns the logger stored in context, or the fallback logger if
// none is set.
func LoggerFrom(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
			return logger
		}
	}
	return fallbackLogger
}

func SetLogLevelFromString(logLevel string) {
	var setLevel zapcore.Level

	switch logLevel {
	case "debug":
		setLevel = zapcore.DebugLevel
	case "warn":
		setLevel = zapcore.WarnLevel
	case "error":
		setLevel = zapcore.ErrorLevel
	case "panic":
		setLevel = zapcore.PanicLevel
	case "fatal":
		setLevel = zapcore.FatalLevel
	default:
		setLevel = zapcore.InfoLevel
	}

	SetLogLevel(setLevel)
}

func SetLogLevel(l zapcore.Level) {
	level.SetLevel(l)
}

func GetLogLevel() zapcore.Level {
	return level.Level()
}
