package log

import (
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog.
//
// The minimum level is shared with the provider that created the logger, so
// SetLevel on the provider also affects loggers handed out earlier.
type ZerologLogger struct {
	logger zerolog.Logger
	level  *atomic.Int32
}

// NewZerologLogger creates a JSON logger writing to w at the given level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	lvl := &atomic.Int32{}
	lvl.Store(int32(level))
	return &ZerologLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
		level:  lvl,
	}
}

// Debug implements Logger.Debug.
func (z *ZerologLogger) Debug(msg string, fields ...any) {
	z.emit(LevelDebug, msg, fields)
}

// Info implements Logger.Info.
func (z *ZerologLogger) Info(msg string, fields ...any) {
	z.emit(LevelInfo, msg, fields)
}

// Warn implements Logger.Warn.
func (z *ZerologLogger) Warn(msg string, fields ...any) {
	z.emit(LevelWarn, msg, fields)
}

// Error implements Logger.Error.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	z.emit(LevelError, msg, fields)
}

// With implements Logger.With.
func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{
		logger: z.logger.With().Fields(fields).Logger(),
		level:  z.level,
	}
}

// Enabled implements Logger.Enabled.
func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	return level >= Level(z.level.Load())
}

// Zerolog exposes the underlying zerolog logger.
func (z *ZerologLogger) Zerolog() *zerolog.Logger {
	return &z.logger
}

func (z *ZerologLogger) emit(level Level, msg string, fields []any) {
	if !z.Enabled(context.Background(), level) {
		return
	}

	var event *zerolog.Event
	switch level {
	case LevelDebug:
		event = z.logger.Debug()
	case LevelInfo:
		event = z.logger.Info()
	case LevelWarn:
		event = z.logger.Warn()
	default:
		event = z.logger.Error()
	}

	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			event = event.Err(err)
			if st := extractStacktrace(err); st != "" {
				event = event.Str(StacktraceKey, st)
			}
			fields = fields[1:]
		}
	}

	event.Fields(fields).Msg(msg)
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// ZerologProvider implements LoggerProvider with a single zerolog root logger.
type ZerologProvider struct {
	root *ZerologLogger
}

// NewZerologProvider creates a provider writing JSON lines to w.
func NewZerologProvider(w io.Writer, level Level) *ZerologProvider {
	return &ZerologProvider{root: NewZerologLogger(w, level)}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	return p.root
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return p.root.With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.root.level.Store(int32(level))
}

// Root returns the provider's root logger.
func (p *ZerologProvider) Root() *ZerologLogger {
	return p.root
}

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = NewZerologProvider(os.Stderr, LevelWarn)
)

// SetProvider replaces the global logger provider.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// GetProvider returns the global logger provider.
func GetProvider() LoggerProvider {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider
}

// GetLogger returns the global default logger.
func GetLogger() Logger {
	return GetProvider().GetLogger()
}

// GetLoggerWithName returns a global logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	return GetProvider().GetLoggerWithName(name)
}

// SetLevel sets the level of the global provider.
func SetLevel(level Level) {
	GetProvider().SetLevel(level)
}
