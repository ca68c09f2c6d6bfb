// Package logger provides a global, sugared Zap logger with context-scoped
// fields and an optional OpenTelemetry bridge. Log lines go to stderr so that
// stdout stays reserved for the operator-facing output of the application.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/txlisten/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type of the context key holding a derived logger.
type ctxKeyType struct{}

var ctxKey ctxKeyType

var (
	// baseLogger is the global SugaredLogger. It discards everything until Init runs.
	baseLogger = zap.NewNop().Sugar()

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// Encoding selects the log line format.
type Encoding string

const (
	EncodingConsole Encoding = "console"
	EncodingJSON    Encoding = "json"
)

// config holds configuration options for the logger.
type config struct {
	level    string    // minimum log level (debug, info, warn, error, panic, fatal)
	encoding Encoding  // console or json
	writer   io.Writer // destination of the log lines
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level. Default: "info".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithEncoding sets the log line format. Default: EncodingConsole.
func WithEncoding(e Encoding) Option {
	return func(c *config) {
		c.encoding = e
	}
}

// WithWriter redirects log lines. Default: os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// newEncoder builds the zap encoder for the requested format.
func newEncoder(e Encoding) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if e == EncodingJSON {
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// Init configures the global logger. If an OpenTelemetry LoggerProvider was
// registered by telemetry.Init, an otelzap core is teed in so every line is
// also exported. Calling Init more than once has no effect after the first
// successful call.
//
// Returns an error if the log level cannot be parsed.
func Init(opts ...Option) error {
	cfg := config{
		level:    "info",
		encoding: EncodingConsole,
		writer:   os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(newEncoder(cfg.encoding), zapcore.AddSync(cfg.writer), level),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(telemetry.InstrumentationName, otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. Call it on shutdown.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the global one) enriched
// with keysAndValues and, when ctx carries a valid span, its trace and span ids.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		keysAndValues = append(keysAndValues,
			"trace.id", spanCtx.TraceID().String(),
			"span.id", spanCtx.SpanID().String(),
		)
	}

	if len(keysAndValues) == 0 {
		return l
	}
	return l.With(keysAndValues...)
}

// Derive returns a child context whose logger always includes keysAndValues.
// Subsequent log calls made with the returned context carry those fields.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = baseLogger
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

// log writes msg at level using the logger derived from ctx.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message and then exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
